package validate

import (
	language "github.com/hanpama/sdlcheck/internal/language"
	"github.com/hanpama/sdlcheck/internal/schema"
)

func validateEnumValues(c *validationContext, enum *schema.Enum) {
	if len(enum.Values) == 0 {
		c.report(msgNoEnumValues(enum.Name), definitionPosition(enum.Def()))
	}

	for _, value := range enum.Values {
		if nodes := enumValuePositions(enum.Def(), value.Name); len(nodes) > 1 {
			c.report(msgDuplicateEnumValue(enum.Name, value.Name), nodes...)
		}

		pos := enumValuePosition(value)
		c.validateName(value.Name, pos)

		switch value.Name {
		case "true", "false", "null":
			c.report(msgReservedEnumValue(enum.Name, value.Name), pos)
		}
	}
}

func enumValuePosition(v *schema.EnumValue) *language.Position {
	if v.AST == nil {
		return nil
	}
	return v.AST.Position
}
