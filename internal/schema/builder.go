package schema

import (
	"github.com/vektah/gqlparser/v2/gqlerror"

	language "github.com/hanpama/sdlcheck/internal/language"
)

// Option configures Build.
type Option func(*Schema)

// WithAllowedLegacyNames exempts names from name validation.
func WithAllowedLegacyNames(names ...string) Option {
	return func(s *Schema) { s.AllowLegacyNames(names...) }
}

// BuildFromSDL parses sources together with the built-in scalars, directives
// and introspection types and builds a schema from the result.
func BuildFromSDL(sources []*language.Source, opts ...Option) (*Schema, error) {
	all := make([]*language.Source, 0, len(sources)+1)
	all = append(all, builtinSource)
	all = append(all, sources...)
	doc, err := language.ParseSchemas(all...)
	if err != nil {
		return nil, err
	}
	return Build(doc, opts...)
}

// Build assembles a schema from a parsed document. Declarations and
// extensions are kept per type so that validation can inspect every
// fragment. Unresolvable references are reported as a gqlerror.List.
//
// Build does not check the rules enforced by validation: duplicate fields,
// arguments, enum values or interfaces are carried into the result.
func Build(doc *language.SchemaDocument, opts ...Option) (*Schema, error) {
	b := &builder{schema: NewSchema()}
	b.collectDefinitions(doc.Definitions)
	b.collectExtensions(doc.Extensions)
	b.collectDirectives(doc)
	for _, t := range b.schema.Types {
		b.populate(t)
	}
	b.populateRoots(doc)
	if len(b.errs) > 0 {
		return nil, b.errs
	}
	for _, opt := range opts {
		opt(b.schema)
	}
	return b.schema, nil
}

type builder struct {
	schema *Schema
	errs   gqlerror.List
}

func (b *builder) errorf(pos *language.Position, format string, args ...any) {
	b.errs = append(b.errs, gqlerror.ErrorPosf(pos, format, args...))
}

func (b *builder) collectDefinitions(defs language.DefinitionList) {
	for _, def := range defs {
		if prev := b.schema.Type(def.Name); prev != nil && !isBuiltinDefinition(prev.Def()) {
			b.errorf(def.Position, "Cannot redeclare type %s.", def.Name)
			continue
		}
		d := Definition{Name: def.Name, Description: def.Description, AST: def}
		var t NamedType
		switch def.Kind {
		case language.Scalar:
			t = &Scalar{Definition: d}
		case language.Object:
			t = &Object{Definition: d}
		case language.Interface:
			t = &Interface{Definition: d}
		case language.Union:
			t = &Union{Definition: d}
		case language.Enum:
			t = &Enum{Definition: d}
		case language.InputObject:
			t = &InputObject{Definition: d}
		default:
			panic("unreachable")
		}
		b.schema.AddType(t)
	}
}

func (b *builder) collectExtensions(exts language.DefinitionList) {
	for _, ext := range exts {
		t := b.schema.Type(ext.Name)
		if t == nil {
			b.errorf(ext.Position, "Cannot extend type %s because it is not defined.", ext.Name)
			continue
		}
		if base := t.Def().AST; base.Kind != ext.Kind {
			b.errorf(ext.Position, "Cannot extend type %s because the base type is a %s, not %s.", ext.Name, base.Kind, ext.Kind)
			continue
		}
		d := t.Def()
		d.ExtensionASTs = append(d.ExtensionASTs, ext)
	}
}

func (b *builder) collectDirectives(doc *language.SchemaDocument) {
	for _, def := range doc.Directives {
		if prev := b.schema.Directive(def.Name); prev != nil {
			if prev.AST == nil || !isBuiltin(prev.AST.Position) {
				b.errorf(def.Position, "Cannot redeclare directive %s.", def.Name)
				continue
			}
			b.removeDirective(prev)
		}
		b.schema.AddDirective(&Directive{
			Name:         def.Name,
			Description:  def.Description,
			Args:         b.arguments(def.Arguments),
			Locations:    def.Locations,
			IsRepeatable: def.IsRepeatable,
			AST:          def,
		})
	}
}

func (b *builder) removeDirective(d *Directive) {
	ds := b.schema.Directives[:0]
	for _, existing := range b.schema.Directives {
		if existing != d {
			ds = append(ds, existing)
		}
	}
	b.schema.Directives = ds
}

func (b *builder) populate(t NamedType) {
	switch t := t.(type) {
	case *Scalar:
	case *Object:
		for _, node := range t.Nodes() {
			t.Fields = b.mergeFields(t.Fields, node.Fields)
			for _, name := range node.Interfaces {
				if iface := b.named(name, node.Position); iface != nil {
					t.Interfaces = append(t.Interfaces, iface)
				}
			}
		}
	case *Interface:
		for _, node := range t.Nodes() {
			t.Fields = b.mergeFields(t.Fields, node.Fields)
			if len(node.Interfaces) > 0 {
				b.errorf(node.Position, "Interface %s cannot implement other interfaces.", t.Name)
			}
		}
	case *Union:
		for _, node := range t.Nodes() {
			for _, name := range node.Types {
				if member := b.named(name, node.Position); member != nil {
					t.Types = append(t.Types, member)
				}
			}
		}
	case *Enum:
		for _, node := range t.Nodes() {
			for _, v := range node.EnumValues {
				val := &EnumValue{Name: v.Name, Description: v.Description, AST: v}
				if i := indexOf(t.Values, func(e *EnumValue) bool { return e.Name == v.Name }); i >= 0 {
					t.Values[i] = val
				} else {
					t.Values = append(t.Values, val)
				}
			}
		}
	case *InputObject:
		for _, node := range t.Nodes() {
			for _, f := range node.Fields {
				field := &InputField{
					Name:         f.Name,
					Description:  f.Description,
					Type:         b.typeRef(f.Type),
					DefaultValue: f.DefaultValue,
					AST:          f,
				}
				if i := indexOf(t.Fields, func(e *InputField) bool { return e.Name == f.Name }); i >= 0 {
					t.Fields[i] = field
				} else {
					t.Fields = append(t.Fields, field)
				}
			}
		}
	default:
		panic("unreachable")
	}
}

// mergeFields adds defs to fields keyed by name. A later definition
// replaces an earlier one but keeps its position.
func (b *builder) mergeFields(fields []*Field, defs []*language.FieldDefinition) []*Field {
	for _, def := range defs {
		f := &Field{
			Name:        def.Name,
			Description: def.Description,
			Type:        b.typeRef(def.Type),
			Args:        b.arguments(def.Arguments),
			AST:         def,
		}
		if i := indexOf(fields, func(e *Field) bool { return e.Name == def.Name }); i >= 0 {
			fields[i] = f
		} else {
			fields = append(fields, f)
		}
	}
	return fields
}

func (b *builder) arguments(defs []*language.ArgumentDefinition) []*Argument {
	if len(defs) == 0 {
		return nil
	}
	args := make([]*Argument, 0, len(defs))
	for _, def := range defs {
		args = append(args, &Argument{
			Name:         def.Name,
			Description:  def.Description,
			Type:         b.typeRef(def.Type),
			DefaultValue: def.DefaultValue,
			AST:          def,
		})
	}
	return args
}

func (b *builder) typeRef(t *language.Type) Type {
	if t == nil {
		return nil
	}
	var ref Type
	if t.Elem != nil {
		ref = ListOf(b.typeRef(t.Elem))
	} else {
		named := b.named(t.NamedType, t.Position)
		if named == nil {
			return nil
		}
		ref = named
	}
	if t.NonNull {
		return NonNullOf(ref)
	}
	return ref
}

func (b *builder) named(name string, pos *language.Position) NamedType {
	t := b.schema.Type(name)
	if t == nil {
		b.errorf(pos, "Undefined type %s.", name)
	}
	return t
}

func (b *builder) populateRoots(doc *language.SchemaDocument) {
	if len(doc.Schema) > 1 {
		b.errorf(doc.Schema[1].Position, "Must provide only one schema definition.")
	}
	if len(doc.Schema) > 0 {
		b.schema.AST = doc.Schema[0]
	}
	b.schema.ExtensionASTs = doc.SchemaExtension

	nodes := b.schema.Nodes()
	if len(nodes) == 0 {
		b.schema.Query = b.schema.Type("Query")
		b.schema.Mutation = b.schema.Type("Mutation")
		b.schema.Subscription = b.schema.Type("Subscription")
		return
	}
	for _, node := range nodes {
		for _, op := range node.OperationTypes {
			t := b.named(op.Type, op.Position)
			if t == nil {
				continue
			}
			var root *NamedType
			switch op.Operation {
			case language.Query:
				root = &b.schema.Query
			case language.Mutation:
				root = &b.schema.Mutation
			case language.Subscription:
				root = &b.schema.Subscription
			default:
				panic("unreachable")
			}
			if *root != nil {
				b.errorf(op.Position, "Must provide only one %s type in schema.", op.Operation)
				continue
			}
			*root = t
		}
	}
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}
