package validate

import (
	language "github.com/hanpama/sdlcheck/internal/language"
	"github.com/hanpama/sdlcheck/internal/schema"
)

// Lookups over the raw declaration and extension nodes of a type. The merged
// view on schema types hides repeated names, so duplicates are located here.
// Results follow fragment order, then declaration order within a fragment.

func definitionPosition(def *schema.Definition) *language.Position {
	if def == nil || def.AST == nil {
		return nil
	}
	return def.AST.Position
}

func allDefinitionPositions(def *schema.Definition) []*language.Position {
	var out []*language.Position
	for _, node := range def.Nodes() {
		out = append(out, node.Position)
	}
	return out
}

func allFieldNodes(def *schema.Definition, fieldName string) []*language.FieldDefinition {
	var out []*language.FieldDefinition
	for _, node := range def.Nodes() {
		for _, f := range node.Fields {
			if f.Name == fieldName {
				out = append(out, f)
			}
		}
	}
	return out
}

func fieldNode(def *schema.Definition, fieldName string) *language.FieldDefinition {
	if nodes := allFieldNodes(def, fieldName); len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

func fieldPosition(def *schema.Definition, fieldName string) *language.Position {
	if f := fieldNode(def, fieldName); f != nil {
		return f.Position
	}
	return nil
}

func fieldTypePosition(def *schema.Definition, fieldName string) *language.Position {
	if f := fieldNode(def, fieldName); f != nil {
		return typePosition(f.Type)
	}
	return nil
}

// allFieldArgNodes searches the arguments of the first node declaring
// fieldName.
func allFieldArgNodes(def *schema.Definition, fieldName, argName string) []*language.ArgumentDefinition {
	f := fieldNode(def, fieldName)
	if f == nil {
		return nil
	}
	return matchingArgs(f.Arguments, argName)
}

func fieldArgPosition(def *schema.Definition, fieldName, argName string) *language.Position {
	if args := allFieldArgNodes(def, fieldName, argName); len(args) > 0 {
		return args[0].Position
	}
	return nil
}

func fieldArgTypePosition(def *schema.Definition, fieldName, argName string) *language.Position {
	if args := allFieldArgNodes(def, fieldName, argName); len(args) > 0 {
		return typePosition(args[0].Type)
	}
	return nil
}

func allDirectiveArgNodes(d *schema.Directive, argName string) []*language.ArgumentDefinition {
	if d.AST == nil {
		return nil
	}
	return matchingArgs(d.AST.Arguments, argName)
}

func directiveArgTypePosition(d *schema.Directive, argName string) *language.Position {
	if args := allDirectiveArgNodes(d, argName); len(args) > 0 {
		return typePosition(args[0].Type)
	}
	return nil
}

func matchingArgs(args []*language.ArgumentDefinition, argName string) []*language.ArgumentDefinition {
	var out []*language.ArgumentDefinition
	for _, a := range args {
		if a.Name == argName {
			out = append(out, a)
		}
	}
	return out
}

func argPositions(args []*language.ArgumentDefinition) []*language.Position {
	out := make([]*language.Position, 0, len(args))
	for _, a := range args {
		out = append(out, a.Position)
	}
	return out
}

func fieldPositions(fields []*language.FieldDefinition) []*language.Position {
	out := make([]*language.Position, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Position)
	}
	return out
}

// Implements entries and union members are bare names in the syntax tree,
// so each matching entry is located at the fragment that lists it.

func allImplementsPositions(def *schema.Definition, ifaceName string) []*language.Position {
	var out []*language.Position
	for _, node := range def.Nodes() {
		for _, name := range node.Interfaces {
			if name == ifaceName {
				out = append(out, node.Position)
			}
		}
	}
	return out
}

func implementsPosition(def *schema.Definition, ifaceName string) *language.Position {
	if nodes := allImplementsPositions(def, ifaceName); len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

func unionMemberPositions(def *schema.Definition, memberName string) []*language.Position {
	var out []*language.Position
	for _, node := range def.Nodes() {
		for _, name := range node.Types {
			if name == memberName {
				out = append(out, node.Position)
			}
		}
	}
	return out
}

func enumValuePositions(def *schema.Definition, valueName string) []*language.Position {
	var out []*language.Position
	for _, node := range def.Nodes() {
		for _, v := range node.EnumValues {
			if v.Name == valueName {
				out = append(out, v.Position)
			}
		}
	}
	return out
}

// operationTypePosition finds the operation type entry for op in the schema
// declaration and its extensions, falling back to the root type's own node.
func operationTypePosition(s *schema.Schema, root schema.NamedType, op language.Operation) *language.Position {
	for _, node := range s.Nodes() {
		for _, ot := range node.OperationTypes {
			if ot.Operation == op {
				return ot.Position
			}
		}
	}
	return definitionPosition(root.Def())
}

func typePosition(t *language.Type) *language.Position {
	if t == nil {
		return nil
	}
	return t.Position
}
