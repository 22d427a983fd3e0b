package validate

import (
	"github.com/hanpama/sdlcheck/internal/schema"
)

// validateObjectInterfaces checks every interface obj declares, once per
// interface name.
func validateObjectInterfaces(c *validationContext, obj *schema.Object) {
	seen := make(map[string]struct{}, len(obj.Interfaces))
	for _, declared := range obj.Interfaces {
		iface, ok := declared.(*schema.Interface)
		if !ok || iface == nil {
			c.report(msgImplementsNonInterface(obj.Name, declared), implementsPosition(obj.Def(), typeName(declared)))
			continue
		}

		if _, ok := seen[iface.Name]; ok {
			c.report(msgImplementsTwice(obj.Name, iface.Name), allImplementsPositions(obj.Def(), iface.Name)...)
			continue
		}
		seen[iface.Name] = struct{}{}

		validateObjectImplementsInterface(c, obj, iface)
	}
}

// validateObjectImplementsInterface checks that obj provides every field of
// iface. Return types are covariant: the object field may return a subtype.
// Argument types are invariant and must match exactly.
func validateObjectImplementsInterface(c *validationContext, obj *schema.Object, iface *schema.Interface) {
	for _, ifaceField := range iface.Fields {
		name := ifaceField.Name
		objField := obj.Field(name)
		if objField == nil {
			c.report(msgInterfaceFieldMissing(iface.Name, name, obj.Name),
				fieldPosition(iface.Def(), name), definitionPosition(obj.Def()))
			continue
		}

		if !schema.IsTypeSubTypeOf(c.schema, objField.Type, ifaceField.Type) {
			c.report(msgInterfaceFieldType(iface.Name, name, ifaceField.Type, obj.Name, objField.Type),
				fieldTypePosition(iface.Def(), name), fieldTypePosition(obj.Def(), name))
		}

		for _, ifaceArg := range ifaceField.Args {
			argName := ifaceArg.Name
			objArg := objField.Arg(argName)
			if objArg == nil {
				c.report(msgInterfaceArgMissing(iface.Name, name, argName, obj.Name),
					fieldArgPosition(iface.Def(), name, argName), fieldPosition(obj.Def(), name))
				continue
			}

			if !schema.IsEqualType(ifaceArg.Type, objArg.Type) {
				c.report(msgInterfaceArgType(iface.Name, name, argName, ifaceArg.Type, obj.Name, objArg.Type),
					fieldArgTypePosition(iface.Def(), name, argName), fieldArgTypePosition(obj.Def(), name, argName))
			}
		}

		for _, objArg := range objField.Args {
			if ifaceField.Arg(objArg.Name) == nil && schema.IsNonNullType(objArg.Type) {
				c.report(msgExtraRequiredArg(obj.Name, name, objArg.Name, objArg.Type, iface.Name),
					fieldArgTypePosition(obj.Def(), name, objArg.Name), fieldPosition(iface.Def(), name))
			}
		}
	}
}

// validateInterfacePopulation requires at least one object implementing iface.
func validateInterfacePopulation(c *validationContext, iface *schema.Interface) {
	if len(c.schema.PossibleTypes(iface)) == 0 {
		c.report(msgInterfaceNotImplemented(iface.Name), definitionPosition(iface.Def()))
	}
}

func typeName(t schema.NamedType) string {
	if !schema.IsNamedType(t) {
		return ""
	}
	return t.Def().Name
}
