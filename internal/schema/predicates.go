package schema

// Named unwraps list and non-null modifiers and returns the named type.
func Named(t Type) NamedType {
	for {
		switch tt := t.(type) {
		case *List:
			t = tt.OfType
		case *NonNull:
			t = tt.OfType
		case NamedType:
			return tt
		default:
			return nil
		}
	}
}

// IsInputType reports whether t may be used for arguments and input fields.
func IsInputType(t Type) bool {
	switch Named(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	default:
		return false
	}
}

// IsOutputType reports whether t may be used as the type of a field.
func IsOutputType(t Type) bool {
	switch Named(t).(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	default:
		return false
	}
}

func IsNonNullType(t Type) bool {
	_, ok := t.(*NonNull)
	return ok
}

func IsAbstractType(t Type) bool {
	switch t.(type) {
	case *Interface, *Union:
		return true
	default:
		return false
	}
}

var introspectionTypeNames = map[string]struct{}{
	"__Schema":            {},
	"__Directive":         {},
	"__DirectiveLocation": {},
	"__Type":              {},
	"__Field":             {},
	"__InputValue":        {},
	"__EnumValue":         {},
	"__TypeKind":          {},
}

// IsIntrospectionType reports whether t is one of the types describing the
// schema to introspection queries.
func IsIntrospectionType(t NamedType) bool {
	if t == nil {
		return false
	}
	_, ok := introspectionTypeNames[t.Def().Name]
	return ok
}

// IsEqualType reports whether a and b are the same type reference.
func IsEqualType(a, b Type) bool {
	switch ta := a.(type) {
	case *NonNull:
		tb, ok := b.(*NonNull)
		return ok && IsEqualType(ta.OfType, tb.OfType)
	case *List:
		tb, ok := b.(*List)
		return ok && IsEqualType(ta.OfType, tb.OfType)
	case NamedType:
		tb, ok := b.(NamedType)
		return ok && ta == tb
	default:
		return false
	}
}

// IsTypeSubTypeOf reports whether a value of type sub is always a valid
// value of type super.
func IsTypeSubTypeOf(s *Schema, sub, super Type) bool {
	if IsEqualType(sub, super) {
		return true
	}
	if superNN, ok := super.(*NonNull); ok {
		if subNN, ok := sub.(*NonNull); ok {
			return IsTypeSubTypeOf(s, subNN.OfType, superNN.OfType)
		}
		return false
	}
	if subNN, ok := sub.(*NonNull); ok {
		return IsTypeSubTypeOf(s, subNN.OfType, super)
	}
	if superList, ok := super.(*List); ok {
		if subList, ok := sub.(*List); ok {
			return IsTypeSubTypeOf(s, subList.OfType, superList.OfType)
		}
		return false
	}
	if _, ok := sub.(*List); ok {
		return false
	}
	if superNamed, ok := super.(NamedType); ok && IsAbstractType(superNamed) {
		if obj, ok := sub.(*Object); ok {
			return s.IsPossibleType(superNamed, obj)
		}
	}
	return false
}

// IsNamedType reports whether t is a non-nil named type.
func IsNamedType(t Type) bool {
	if _, ok := t.(NamedType); !ok {
		return false
	}
	return !isNilType(t)
}

// Inspect renders v the way diagnostics quote values: type references by
// their SDL spelling and nil as <nil>.
func Inspect(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case Type:
		if isNilType(v) {
			return "<nil>"
		}
		return v.String()
	case *Directive:
		if v == nil {
			return "<nil>"
		}
		return "@" + v.Name
	default:
		return "<unknown>"
	}
}

func isNilType(t Type) bool {
	switch t := t.(type) {
	case *Scalar:
		return t == nil
	case *Object:
		return t == nil
	case *Interface:
		return t == nil
	case *Union:
		return t == nil
	case *Enum:
		return t == nil
	case *InputObject:
		return t == nil
	case *List:
		return t == nil
	case *NonNull:
		return t == nil
	default:
		return false
	}
}
