package validate

import (
	"fmt"

	"github.com/hanpama/sdlcheck/internal/schema"
)

// validateTypes checks every named type in type map order, dispatching on
// its kind.
func validateTypes(c *validationContext) {
	for _, t := range c.schema.Types {
		if !schema.IsNamedType(t) {
			c.report(msgExpectedNamedType(t))
			continue
		}

		if !schema.IsIntrospectionType(t) {
			c.validateName(t.Def().Name, definitionPosition(t.Def()))
		}

		switch t := t.(type) {
		case *schema.Object:
			validateFields(c, t.Def(), t.Fields)
			validateObjectInterfaces(c, t)
		case *schema.Interface:
			validateFields(c, t.Def(), t.Fields)
			validateInterfacePopulation(c, t)
		case *schema.Union:
			validateUnionMembers(c, t)
		case *schema.Enum:
			validateEnumValues(c, t)
		case *schema.InputObject:
			validateInputFields(c, t)
		case *schema.Scalar:
		default:
			panic(fmt.Sprintf("validate: unexpected named type %T", t))
		}
	}
}
