package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func startWatcher(t *testing.T, paths ...string) <-chan struct{} {
	t.Helper()
	w, err := New(paths, 20*time.Millisecond, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) { changes <- struct{}{} })
	}()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})
	return changes
}

func waitChange(t *testing.T, changes <-chan struct{}) {
	t.Helper()
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func requireNoChange(t *testing.T, changes <-chan struct{}) {
	t.Helper()
	select {
	case <-changes:
		t.Fatal("unexpected change notification")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchDirectory(t *testing.T) {
	dir := t.TempDir()
	changes := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	requireNoChange(t, changes)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.graphql"), []byte("type Query { a: String }"), 0o644))
	}
	waitChange(t, changes)
}

func TestWatchNewSubdirectory(t *testing.T) {
	dir := t.TempDir()
	changes := startWatcher(t, dir)

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(sub, "a.graphqls"), []byte("type Query { a: String }"), 0o644))
	waitChange(t, changes)
}

func TestWatchExplicitFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "schema.sdl")
	require.NoError(t, os.WriteFile(file, []byte("type Query { a: String }"), 0o644))
	changes := startWatcher(t, file)

	require.NoError(t, os.WriteFile(file, []byte("type Query { b: String }"), 0o644))
	waitChange(t, changes)
}

func TestRelevant(t *testing.T) {
	w := &Watcher{files: map[string]bool{"/x/schema.sdl": true}}
	cases := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: "/x/a.graphql", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/x/a.graphqls", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "/x/schema.sdl", Op: fsnotify.Rename}, true},
		{fsnotify.Event{Name: "/x/a.graphql", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/x/a.txt", Op: fsnotify.Write}, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, w.relevant(tc.ev), tc.ev.String())
	}
}

func TestNewMissingPath(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "missing")}, time.Millisecond, nil)
	require.Error(t, err)
}
