package validate

import (
	"fmt"

	"github.com/hanpama/sdlcheck/internal/schema"
)

// Message templates. Keep the wording stable: callers match on it.

const (
	msgQueryRootMissing = "Query root type must be provided."
)

func msgQueryRootNotObject(t schema.NamedType) string {
	return "Query root type must be Object type, it cannot be " + schema.Inspect(t) + "."
}

func msgOptionalRootNotObject(operation string, t schema.NamedType) string {
	return operation + " root type must be Object type if provided, it cannot be " + schema.Inspect(t) + "."
}

func msgExpectedDirective(d *schema.Directive) string {
	return "Expected directive but got: " + schema.Inspect(d) + "."
}

func msgExpectedNamedType(t schema.NamedType) string {
	return "Expected GraphQL named type but got: " + schema.Inspect(t) + "."
}

func msgDuplicateDirectiveArg(directive, arg string) string {
	return fmt.Sprintf("Argument @%s(%s:) can only be defined once.", directive, arg)
}

func msgDirectiveArgNotInput(directive, arg string, t schema.Type) string {
	return fmt.Sprintf("The type of @%s(%s:) must be Input Type but got: %s.", directive, arg, schema.Inspect(t))
}

func msgNoFields(typeName string) string {
	return fmt.Sprintf("Type %s must define one or more fields.", typeName)
}

func msgDuplicateField(typeName, field string) string {
	return fmt.Sprintf("Field %s.%s can only be defined once.", typeName, field)
}

func msgFieldNotOutput(typeName, field string, t schema.Type) string {
	return fmt.Sprintf("The type of %s.%s must be Output Type but got: %s.", typeName, field, schema.Inspect(t))
}

func msgDuplicateFieldArg(typeName, field, arg string) string {
	return fmt.Sprintf("Field argument %s.%s(%s:) can only be defined once.", typeName, field, arg)
}

func msgFieldArgNotInput(typeName, field, arg string, t schema.Type) string {
	return fmt.Sprintf("The type of %s.%s(%s:) must be Input Type but got: %s.", typeName, field, arg, schema.Inspect(t))
}

func msgImplementsNonInterface(obj string, t schema.NamedType) string {
	return fmt.Sprintf("Type %s must only implement Interface types, it cannot implement %s.", obj, schema.Inspect(t))
}

func msgImplementsTwice(obj, iface string) string {
	return fmt.Sprintf("Type %s can only implement %s once.", obj, iface)
}

func msgInterfaceFieldMissing(iface, field, obj string) string {
	return fmt.Sprintf("Interface field %s.%s expected but %s does not provide it.", iface, field, obj)
}

func msgInterfaceFieldType(iface, field string, want schema.Type, obj string, got schema.Type) string {
	return fmt.Sprintf("Interface field %s.%s expects type %s but %s.%s is type %s.",
		iface, field, schema.Inspect(want), obj, field, schema.Inspect(got))
}

func msgInterfaceArgMissing(iface, field, arg, obj string) string {
	return fmt.Sprintf("Interface field argument %s.%s(%s:) expected but %s.%s does not provide it.",
		iface, field, arg, obj, field)
}

func msgInterfaceArgType(iface, field, arg string, want schema.Type, obj string, got schema.Type) string {
	return fmt.Sprintf("Interface field argument %s.%s(%s:) expects type %s but %s.%s(%s:) is type %s.",
		iface, field, arg, schema.Inspect(want), obj, field, arg, schema.Inspect(got))
}

func msgExtraRequiredArg(obj, field, arg string, t schema.Type, iface string) string {
	return fmt.Sprintf("Object field argument %s.%s(%s:) is of required type %s but is not also provided by the Interface field %s.%s.",
		obj, field, arg, schema.Inspect(t), iface, field)
}

func msgInterfaceNotImplemented(iface string) string {
	return fmt.Sprintf("Interface %s must be implemented by at least one Object type.", iface)
}

func msgNoUnionMembers(union string) string {
	return fmt.Sprintf("Union type %s must define one or more member types.", union)
}

func msgDuplicateUnionMember(union, member string) string {
	return fmt.Sprintf("Union type %s can only include type %s once.", union, member)
}

func msgUnionMemberNotObject(union string, t schema.NamedType) string {
	return fmt.Sprintf("Union type %s can only include Object types, it cannot include %s.", union, schema.Inspect(t))
}

func msgNoEnumValues(enum string) string {
	return fmt.Sprintf("Enum type %s must define one or more values.", enum)
}

func msgDuplicateEnumValue(enum, value string) string {
	return fmt.Sprintf("Enum type %s can include value %s only once.", enum, value)
}

func msgReservedEnumValue(enum, value string) string {
	return fmt.Sprintf("Enum type %s cannot include value: %s.", enum, value)
}

func msgNoInputFields(input string) string {
	return fmt.Sprintf("Input Object type %s must define one or more fields.", input)
}

func msgInputFieldNotInput(input, field string, t schema.Type) string {
	return fmt.Sprintf("The type of %s.%s must be Input Type but got: %s.", input, field, schema.Inspect(t))
}

func msgReservedName(name string) string {
	return fmt.Sprintf("Name %q must not begin with \"__\", which is reserved by GraphQL introspection.", name)
}

func msgInvalidName(name string) string {
	return fmt.Sprintf("Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but %q does not.", name)
}
