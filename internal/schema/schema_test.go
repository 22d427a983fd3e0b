package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/gqlerror"

	language "github.com/hanpama/sdlcheck/internal/language"
)

func mustBuild(t *testing.T, sdl string, opts ...Option) *Schema {
	t.Helper()
	s, err := BuildFromSDL([]*language.Source{{Name: "schema.graphql", Input: sdl}}, opts...)
	require.NoError(t, err)
	return s
}

func typeNames(types []NamedType) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Def().Name)
	}
	return names
}

func TestBuildKeepsFragments(t *testing.T) {
	s := mustBuild(t, `
type Query { a: String }
extend type Query { b: Int }
extend type Query { a: ID }
`)
	q, ok := s.Type("Query").(*Object)
	require.True(t, ok)
	require.Same(t, q, s.Query)
	require.NotNil(t, q.AST)
	require.Len(t, q.ExtensionASTs, 2)
	require.Len(t, q.Nodes(), 3)

	// merged view: one entry per name, last declaration wins
	require.Len(t, q.Fields, 2)
	require.Equal(t, "a", q.Fields[0].Name)
	require.Equal(t, "ID", q.Fields[0].Type.String())
	require.Equal(t, "b", q.Fields[1].Name)
}

func TestBuildKeepsRepeatedEntries(t *testing.T) {
	s := mustBuild(t, `
type Query { node(id: ID, id: String): Node }
interface Node { id: ID }
type User implements Node & Node { id: ID }
union Result = User | User
extend union Result = User
`)
	user := s.Type("User").(*Object)
	require.Equal(t, []string{"Node", "Node"}, typeNames(user.Interfaces))

	result := s.Type("Result").(*Union)
	require.Equal(t, []string{"User", "User", "User"}, typeNames(result.Types))

	field := s.Query.(*Object).Field("node")
	require.Len(t, field.Args, 2)
	require.Equal(t, "ID", field.Arg("id").Type.String())
}

func TestBuildRoots(t *testing.T) {
	t.Run("conventional names", func(t *testing.T) {
		s := mustBuild(t, `
type Query { a: String }
enum Mutation { A }
`)
		require.Equal(t, "Query", s.Query.Def().Name)
		require.Equal(t, KindEnum, s.Mutation.Kind())
		require.Nil(t, s.Subscription)
	})

	t.Run("schema definition", func(t *testing.T) {
		s := mustBuild(t, `
schema { query: Root }
extend schema { subscription: Events }
type Root { a: String }
type Events { a: String }
type Query { a: String }
`)
		require.Equal(t, "Root", s.Query.Def().Name)
		require.Equal(t, "Events", s.Subscription.Def().Name)
		require.Nil(t, s.Mutation)
		require.Len(t, s.Nodes(), 2)
	})

	t.Run("no roots", func(t *testing.T) {
		s := mustBuild(t, `type Foo { a: String }`)
		require.Nil(t, s.Query)
	})
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		sdl  string
		want []string
	}{
		{
			name: "undefined type",
			sdl:  `type Query { a: Missing }`,
			want: []string{"Undefined type Missing."},
		},
		{
			name: "redeclared type",
			sdl:  "type Query { a: String }\ntype Query { b: String }",
			want: []string{"Cannot redeclare type Query."},
		},
		{
			name: "extension without base",
			sdl:  "type Query { a: String }\nextend type Foo { a: String }",
			want: []string{"Cannot extend type Foo because it is not defined."},
		},
		{
			name: "extension kind mismatch",
			sdl:  "type Query { a: String }\nextend interface Query { b: String }",
			want: []string{"Cannot extend type Query because the base type is a OBJECT, not INTERFACE."},
		},
		{
			name: "interface implementing interfaces",
			sdl:  "type Query { a: String }\ninterface Node implements Missing { id: ID }",
			want: []string{"Interface Node cannot implement other interfaces."},
		},
		{
			name: "interface extension implementing interfaces",
			sdl:  "type Query { a: String }\ninterface Node { id: ID }\ninterface Entity { id: ID }\nextend interface Node implements Entity { name: String }",
			want: []string{"Interface Node cannot implement other interfaces."},
		},
		{
			name: "duplicate root operation",
			sdl:  "schema { query: Query }\nextend schema { query: Query }\ntype Query { a: String }",
			want: []string{"Must provide only one query type in schema."},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildFromSDL([]*language.Source{{Name: "schema.graphql", Input: tc.sdl}})
			require.Error(t, err)
			var list gqlerror.List
			require.ErrorAs(t, err, &list)
			var got []string
			for _, e := range list {
				got = append(got, e.Message)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildUserScalarReplacesBuiltin(t *testing.T) {
	s := mustBuild(t, `
"custom"
scalar String
type Query { a: String }
`)
	str := s.Type("String").(*Scalar)
	require.Equal(t, "custom", str.Description)
	count := 0
	for _, typ := range s.Types {
		if typ.Def().Name == "String" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestBuildAllowedLegacyNames(t *testing.T) {
	s := mustBuild(t, `type Query { a: String }`, WithAllowedLegacyNames("__legacy"))
	require.True(t, s.IsAllowedLegacyName("__legacy"))
	require.False(t, s.IsAllowedLegacyName("a"))
}

func TestPossibleTypes(t *testing.T) {
	s := mustBuild(t, `
type Query { a: String }
interface Node { id: ID }
type A implements Node { id: ID }
type B { id: ID }
type C implements Node & Node { id: ID }
union U = A | B
`)
	node := s.Type("Node")
	require.Equal(t, []string{"A", "C"}, objectNames(s.PossibleTypes(node)))
	require.Equal(t, []string{"A", "B"}, objectNames(s.PossibleTypes(s.Type("U"))))
	require.Nil(t, s.PossibleTypes(s.Type("A")))
	require.True(t, s.IsPossibleType(node, s.Type("A").(*Object)))
	require.False(t, s.IsPossibleType(node, s.Type("B").(*Object)))
}

func objectNames(objs []*Object) []string {
	names := make([]string, 0, len(objs))
	for _, o := range objs {
		names = append(names, o.Name)
	}
	return names
}

func TestTypePredicates(t *testing.T) {
	s := mustBuild(t, `
type Query { a: String }
interface Node { id: ID }
type User implements Node { id: ID }
type Other { id: ID }
union Entity = User
input Filter { a: String }
enum Color { RED }
`)
	user := s.Type("User")
	node := s.Type("Node")
	str := s.Type("String")

	require.True(t, IsInputType(ListOf(NonNullOf(s.Type("Filter")))))
	require.True(t, IsInputType(s.Type("Color")))
	require.False(t, IsInputType(user))
	require.False(t, IsInputType(nil))

	require.True(t, IsOutputType(NonNullOf(s.Type("Entity"))))
	require.False(t, IsOutputType(s.Type("Filter")))

	require.True(t, IsNonNullType(NonNullOf(str)))
	require.False(t, IsNonNullType(ListOf(NonNullOf(str))))

	require.True(t, IsIntrospectionType(s.Type("__Schema")))
	require.False(t, IsIntrospectionType(user))

	require.True(t, IsEqualType(ListOf(NonNullOf(str)), ListOf(NonNullOf(str))))
	require.False(t, IsEqualType(ListOf(str), NonNullOf(ListOf(str))))

	cases := []struct {
		sub, super Type
		want       bool
	}{
		{user, node, true},
		{NonNullOf(user), node, true},
		{user, NonNullOf(node), false},
		{ListOf(NonNullOf(user)), ListOf(node), true},
		{ListOf(user), node, false},
		{s.Type("Other"), node, false},
		{user, s.Type("Entity"), true},
		{node, user, false},
		{str, str, true},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, IsTypeSubTypeOf(s, tc.sub, tc.super), "%s <: %s", tc.sub, tc.super)
	}
}

func TestInspect(t *testing.T) {
	s := mustBuild(t, `type Query { a: String }`)
	require.Equal(t, "[String!]", Inspect(ListOf(NonNullOf(s.Type("String")))))
	require.Equal(t, "<nil>", Inspect(nil))
	var obj *Object
	require.Equal(t, "<nil>", Inspect(obj))
	require.Equal(t, "@include", Inspect(s.Directive("include")))
}

func TestRender(t *testing.T) {
	s := mustBuild(t, `
schema { query: Root }

type Root {
  "the user"
  user(id: ID!, limit: Int = 10): User
  old: String @deprecated(reason: "gone")
}

interface Node { id: ID! }

type User implements Node { id: ID! }

union Entity = User

enum Color { RED GREEN @deprecated }

input Filter { color: Color = RED }

scalar Date @specifiedBy(url: "https://example.com/date")

directive @tag(name: String!) repeatable on FIELD_DEFINITION
`)
	want := `schema {
  query: Root
}

enum Color {
  RED
  GREEN @deprecated
}

scalar Date @specifiedBy(url: "https://example.com/date")

union Entity = User

input Filter {
  color: Color = RED
}

interface Node {
  id: ID!
}

type Root {
  """
  the user
  """
  user(id: ID!, limit: Int = 10): User
  old: String @deprecated(reason: "gone")
}

type User implements Node {
  id: ID!
}

directive @tag(name: String!) repeatable on FIELD_DEFINITION
`
	if diff := cmp.Diff(want, Render(s)); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}
