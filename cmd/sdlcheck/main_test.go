package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/sdlcheck/internal/config"
	"github.com/hanpama/sdlcheck/internal/validate"
)

func writeSchema(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), append([]string{"--log-level", "error"}, args...), &stdout, &stderr)
	return stdout.String(), err
}

func TestCheckValid(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "schema.graphql", "type Query { a: String }")
	out, err := runCLI(t, "check", dir)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestCheckInvalid(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "schema.graphql", "type Query { a: String }\nunion U\n")
	out, err := runCLI(t, "check", dir)
	require.ErrorIs(t, err, errInvalidSchema)
	require.Contains(t, out, path+":2:")
	require.Contains(t, out, "Union type U must define one or more member types.")
	require.Contains(t, out, "1 problem(s) found")
}

func TestCheckJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "schema.graphqls", "type Foo { a: String }\nunion U\n")
	out, err := runCLI(t, "check", "--format", "json", dir)
	require.ErrorIs(t, err, errInvalidSchema)

	var report struct {
		Valid    bool
		Problems []problem
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.False(t, report.Valid)
	require.Len(t, report.Problems, 2)
	require.Equal(t, "Query root type must be provided.", report.Problems[0].Message)
	require.Empty(t, report.Problems[0].Locations)
	require.Equal(t, path, report.Problems[1].Locations[0].File)
	require.Equal(t, 2, report.Problems[1].Locations[0].Line)
}

func TestCheckBuildErrors(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "schema.graphql", "type Query { a: Missing }")
	out, err := runCLI(t, "check", dir)
	require.ErrorIs(t, err, errInvalidSchema)
	require.Contains(t, out, "Undefined type Missing.")

	writeSchema(t, dir, "schema.graphql", "type Query {")
	_, err = runCLI(t, "check", dir)
	require.ErrorIs(t, err, errInvalidSchema)
}

func TestCheckAllowLegacyName(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "schema.graphql", "type Query { __legacy: String }")

	out, err := runCLI(t, "check", dir)
	require.ErrorIs(t, err, errInvalidSchema)
	require.Contains(t, out, `Name "__legacy" must not begin with "__", which is reserved by GraphQL introspection.`)

	_, err = runCLI(t, "check", "--allow-legacy-name", "__legacy", dir)
	require.NoError(t, err)
}

func TestCheckUsesConfig(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "schema.graphql", "type Query { __legacy: String }")
	cfg := writeSchema(t, t.TempDir(), "sdlcheck.yaml", `
schema:
  paths: [`+dir+`]
  allowedLegacyNames: [__legacy]
cache:
  disabled: true
`)
	_, err := runCLI(t, "--config", cfg, "check")
	require.NoError(t, err)
}

func TestCheckFlagErrors(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "schema.graphql", "type Query { a: String }")

	_, err := runCLI(t, "check", "--format", "xml", dir)
	require.ErrorContains(t, err, `unknown format "xml"`)

	var stdout, stderr bytes.Buffer
	err = run(context.Background(), []string{"--log-level", "loud", "check", dir}, &stdout, &stderr)
	require.ErrorContains(t, err, "invalid --log-level")

	_, err = runCLI(t, "check", filepath.Join(dir, "missing"))
	require.Error(t, err)
	require.NotErrorIs(t, err, errInvalidSchema)
}

func TestPrint(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "a.graphql", "type Query { a: String }")
	writeSchema(t, dir, "b.graphql", "extend type Query { b: Int }")
	out, err := runCLI(t, "print", dir)
	require.NoError(t, err)
	require.Equal(t, "type Query {\n  a: String\n  b: Int\n}\n", out)
}

func TestNewCache(t *testing.T) {
	c, err := newCache(config.CacheConfig{Size: 4}, true)
	require.NoError(t, err)
	require.Equal(t, validate.NoCache{}, c)

	c, err = newCache(config.CacheConfig{Size: 4, Disabled: true}, false)
	require.NoError(t, err)
	require.Equal(t, validate.NoCache{}, c)

	c, err = newCache(config.CacheConfig{Size: 4}, false)
	require.NoError(t, err)
	require.NotEqual(t, validate.NoCache{}, c)

	_, err = newCache(config.CacheConfig{Size: 0}, false)
	require.Error(t, err)
}
