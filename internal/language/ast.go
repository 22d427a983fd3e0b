package language

import "github.com/vektah/gqlparser/v2/ast"

type (
	Source                  = ast.Source
	SchemaDocument          = ast.SchemaDocument
	SchemaDefinition        = ast.SchemaDefinition
	OperationTypeDefinition = ast.OperationTypeDefinition
	DirectiveDefinition     = ast.DirectiveDefinition
	DirectiveList           = ast.DirectiveList
	Value                   = ast.Value
	FieldDefinition         = ast.FieldDefinition
	ArgumentDefinition      = ast.ArgumentDefinition
	EnumValueDefinition     = ast.EnumValueDefinition
	Type                    = ast.Type
	Definition              = ast.Definition
	DefinitionList          = ast.DefinitionList
	Position                = ast.Position
)

type DefinitionKind = ast.DefinitionKind

type Operation = ast.Operation

type DirectiveLocation = ast.DirectiveLocation

const (
	Query        Operation = ast.Query
	Mutation     Operation = ast.Mutation
	Subscription Operation = ast.Subscription

	Object      DefinitionKind = ast.Object
	Interface   DefinitionKind = ast.Interface
	Union       DefinitionKind = ast.Union
	Scalar      DefinitionKind = ast.Scalar
	Enum        DefinitionKind = ast.Enum
	InputObject DefinitionKind = ast.InputObject
)
