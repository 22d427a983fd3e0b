package schema

import (
	language "github.com/hanpama/sdlcheck/internal/language"
)

// builtinSource is prepended to every build. User declarations of the same
// names replace these definitions.
var builtinSource = &language.Source{
	Name:    "builtin.graphql",
	BuiltIn: true,
	Input: `
"The ` + "`String`" + ` scalar type represents textual data, represented as UTF-8 character sequences."
scalar String

"The ` + "`Int`" + ` scalar type represents non-fractional signed whole numeric values."
scalar Int

"The ` + "`Float`" + ` scalar type represents signed double-precision fractional values."
scalar Float

"The ` + "`Boolean`" + ` scalar type represents ` + "`true` or `false`" + `."
scalar Boolean

"The ` + "`ID`" + ` scalar type represents a unique identifier, often used to refetch an object or as a key for caching."
scalar ID

"Directs the executor to include this field or fragment only when the ` + "`if`" + ` argument is true."
directive @include("Included when true." if: Boolean!) on FIELD | FRAGMENT_SPREAD | INLINE_FRAGMENT

"Directs the executor to skip this field or fragment when the ` + "`if`" + ` argument is true."
directive @skip("Skipped when true." if: Boolean!) on FIELD | FRAGMENT_SPREAD | INLINE_FRAGMENT

"Marks an element of a GraphQL schema as no longer supported."
directive @deprecated(reason: String = "No longer supported") on FIELD_DEFINITION | ARGUMENT_DEFINITION | INPUT_FIELD_DEFINITION | ENUM_VALUE

"Exposes a URL that specifies the behavior of this scalar."
directive @specifiedBy(url: String!) on SCALAR

type __Schema {
  description: String
  types: [__Type!]!
  queryType: __Type!
  mutationType: __Type
  subscriptionType: __Type
  directives: [__Directive!]!
}

type __Type {
  kind: __TypeKind!
  name: String
  description: String
  fields(includeDeprecated: Boolean = false): [__Field!]
  interfaces: [__Type!]
  possibleTypes: [__Type!]
  enumValues(includeDeprecated: Boolean = false): [__EnumValue!]
  inputFields(includeDeprecated: Boolean = false): [__InputValue!]
  ofType: __Type
  specifiedByURL: String
}

type __Field {
  name: String!
  description: String
  args(includeDeprecated: Boolean = false): [__InputValue!]!
  type: __Type!
  isDeprecated: Boolean!
  deprecationReason: String
}

type __InputValue {
  name: String!
  description: String
  type: __Type!
  defaultValue: String
  isDeprecated: Boolean!
  deprecationReason: String
}

type __EnumValue {
  name: String!
  description: String
  isDeprecated: Boolean!
  deprecationReason: String
}

type __Directive {
  name: String!
  description: String
  locations: [__DirectiveLocation!]!
  args(includeDeprecated: Boolean = false): [__InputValue!]!
  isRepeatable: Boolean!
}

enum __TypeKind {
  SCALAR
  OBJECT
  INTERFACE
  UNION
  ENUM
  INPUT_OBJECT
  LIST
  NON_NULL
}

enum __DirectiveLocation {
  QUERY
  MUTATION
  SUBSCRIPTION
  FIELD
  FRAGMENT_DEFINITION
  FRAGMENT_SPREAD
  INLINE_FRAGMENT
  VARIABLE_DEFINITION
  SCHEMA
  SCALAR
  OBJECT
  FIELD_DEFINITION
  ARGUMENT_DEFINITION
  INTERFACE
  UNION
  ENUM
  ENUM_VALUE
  INPUT_OBJECT
  INPUT_FIELD_DEFINITION
}
`,
}

func isBuiltin(pos *language.Position) bool {
	return pos != nil && pos.Src != nil && pos.Src.BuiltIn
}

func isBuiltinDefinition(d *Definition) bool {
	return d.AST != nil && isBuiltin(d.AST.Position)
}
