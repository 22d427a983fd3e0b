package schema

import (
	language "github.com/hanpama/sdlcheck/internal/language"
)

// Schema is the type-system graph produced by Build. It is immutable once
// built; validation results are cached outside of it.
type Schema struct {
	Query        NamedType
	Mutation     NamedType
	Subscription NamedType

	// Types holds every named type in insertion order.
	Types      []NamedType
	Directives []*Directive

	AST           *language.SchemaDefinition
	ExtensionASTs []*language.SchemaDefinition

	allowedLegacyNames map[string]struct{}
	types              map[string]NamedType
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{types: make(map[string]NamedType)}
}

func (s *Schema) SetQueryType(t NamedType) *Schema {
	s.Query = t
	return s
}

func (s *Schema) SetMutationType(t NamedType) *Schema {
	s.Mutation = t
	return s
}

func (s *Schema) SetSubscriptionType(t NamedType) *Schema {
	s.Subscription = t
	return s
}

// AddType appends t to the type map. A type with the same name replaces the
// previous entry in place.
func (s *Schema) AddType(t NamedType) *Schema {
	if t == nil {
		s.Types = append(s.Types, t)
		return s
	}
	name := t.Def().Name
	if prev, ok := s.types[name]; ok {
		for i, existing := range s.Types {
			if existing == prev {
				s.Types[i] = t
			}
		}
	} else {
		s.Types = append(s.Types, t)
	}
	s.types[name] = t
	return s
}

func (s *Schema) AddDirective(d *Directive) *Schema {
	s.Directives = append(s.Directives, d)
	return s
}

// AllowLegacyNames exempts the given names from name validation.
func (s *Schema) AllowLegacyNames(names ...string) *Schema {
	if s.allowedLegacyNames == nil {
		s.allowedLegacyNames = make(map[string]struct{}, len(names))
	}
	for _, n := range names {
		s.allowedLegacyNames[n] = struct{}{}
	}
	return s
}

// IsAllowedLegacyName reports whether name is exempt from name validation.
func (s *Schema) IsAllowedLegacyName(name string) bool {
	_, ok := s.allowedLegacyNames[name]
	return ok
}

// Type returns the named type called name, or nil.
func (s *Schema) Type(name string) NamedType { return s.types[name] }

// Directive returns the directive definition called name, or nil.
func (s *Schema) Directive(name string) *Directive {
	for _, d := range s.Directives {
		if d != nil && d.Name == name {
			return d
		}
	}
	return nil
}

// Nodes returns the schema declaration followed by its extensions.
func (s *Schema) Nodes() []*language.SchemaDefinition {
	if s.AST == nil {
		return s.ExtensionASTs
	}
	return append([]*language.SchemaDefinition{s.AST}, s.ExtensionASTs...)
}

// PossibleTypes returns the object types that can be used where t is
// expected: the members of a union, or the implementations of an interface
// in type map order. Any other type yields nil.
func (s *Schema) PossibleTypes(t NamedType) []*Object {
	switch t := t.(type) {
	case *Union:
		var out []*Object
		for _, m := range t.Types {
			if obj, ok := m.(*Object); ok {
				out = append(out, obj)
			}
		}
		return out
	case *Interface:
		var out []*Object
		for _, nt := range s.Types {
			obj, ok := nt.(*Object)
			if !ok {
				continue
			}
			for _, iface := range obj.Interfaces {
				if iface == NamedType(t) {
					out = append(out, obj)
					break
				}
			}
		}
		return out
	default:
		return nil
	}
}

// IsPossibleType reports whether obj is one of the possible types of abstract.
func (s *Schema) IsPossibleType(abstract NamedType, obj *Object) bool {
	for _, pt := range s.PossibleTypes(abstract) {
		if pt == obj {
			return true
		}
	}
	return false
}

// Kind is the category of a named type.
type Kind int

const (
	KindScalar Kind = iota
	KindObject
	KindInterface
	KindUnion
	KindEnum
	KindInputObject
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "SCALAR"
	case KindObject:
		return "OBJECT"
	case KindInterface:
		return "INTERFACE"
	case KindUnion:
		return "UNION"
	case KindEnum:
		return "ENUM"
	case KindInputObject:
		return "INPUT_OBJECT"
	default:
		return "UNKNOWN"
	}
}

// Type is a type reference: a named type, or a list or non-null wrapper.
type Type interface {
	String() string
	isType()
}

// NamedType is implemented by *Scalar, *Object, *Interface, *Union, *Enum and
// *InputObject.
type NamedType interface {
	Type
	Kind() Kind
	Def() *Definition
}

// Definition is the part shared by every named type: its name and the raw
// declaration and extension nodes it was assembled from.
type Definition struct {
	Name          string
	Description   string
	AST           *language.Definition
	ExtensionASTs []*language.Definition
}

func (d *Definition) Def() *Definition { return d }

func (d *Definition) String() string { return d.Name }

// Nodes returns the declaration followed by the extensions, skipping an
// absent declaration.
func (d *Definition) Nodes() []*language.Definition {
	if d.AST == nil {
		return d.ExtensionASTs
	}
	return append([]*language.Definition{d.AST}, d.ExtensionASTs...)
}

type Scalar struct {
	Definition
}

// Object fields are the merged view across fragments. Interfaces keeps
// every implements entry in fragment order, repeats included.
type Object struct {
	Definition
	Fields     []*Field
	Interfaces []NamedType
}

type Interface struct {
	Definition
	Fields []*Field
}

// Union members keep every entry in fragment order, repeats included.
type Union struct {
	Definition
	Types []NamedType
}

type Enum struct {
	Definition
	Values []*EnumValue
}

type InputObject struct {
	Definition
	Fields []*InputField
}

func (*Scalar) Kind() Kind      { return KindScalar }
func (*Object) Kind() Kind      { return KindObject }
func (*Interface) Kind() Kind   { return KindInterface }
func (*Union) Kind() Kind       { return KindUnion }
func (*Enum) Kind() Kind        { return KindEnum }
func (*InputObject) Kind() Kind { return KindInputObject }

func (*Scalar) isType()      {}
func (*Object) isType()      {}
func (*Interface) isType()   {}
func (*Union) isType()       {}
func (*Enum) isType()        {}
func (*InputObject) isType() {}

// Field returns the field called name, or nil.
func (o *Object) Field(name string) *Field { return findField(o.Fields, name) }

// Field returns the field called name, or nil.
func (i *Interface) Field(name string) *Field { return findField(i.Fields, name) }

func findField(fields []*Field, name string) *Field {
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// List wraps a type in a list.
type List struct {
	OfType Type
}

// NonNull wraps a type so that it cannot be null.
type NonNull struct {
	OfType Type
}

func (*List) isType()    {}
func (*NonNull) isType() {}

func (l *List) String() string    { return "[" + typeString(l.OfType) + "]" }
func (n *NonNull) String() string { return typeString(n.OfType) + "!" }

func typeString(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func ListOf(t Type) *List       { return &List{OfType: t} }
func NonNullOf(t Type) *NonNull { return &NonNull{OfType: t} }

// Field belongs to an object or interface. Args keeps every declared
// argument in order, repeats included.
type Field struct {
	Name        string
	Description string
	Type        Type
	Args        []*Argument
	AST         *language.FieldDefinition
}

// Arg returns the first argument called name, or nil.
func (f *Field) Arg(name string) *Argument { return findArg(f.Args, name) }

type Argument struct {
	Name         string
	Description  string
	Type         Type
	DefaultValue *language.Value
	AST          *language.ArgumentDefinition
}

type InputField struct {
	Name         string
	Description  string
	Type         Type
	DefaultValue *language.Value
	AST          *language.FieldDefinition
}

type EnumValue struct {
	Name        string
	Description string
	AST         *language.EnumValueDefinition
}

type Directive struct {
	Name         string
	Description  string
	Args         []*Argument
	Locations    []language.DirectiveLocation
	IsRepeatable bool
	AST          *language.DirectiveDefinition
}

// Arg returns the first argument called name, or nil.
func (d *Directive) Arg(name string) *Argument { return findArg(d.Args, name) }

func findArg(args []*Argument, name string) *Argument {
	for _, a := range args {
		if a.Name == name {
			return a
		}
	}
	return nil
}
