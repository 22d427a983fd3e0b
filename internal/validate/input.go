package validate

import (
	language "github.com/hanpama/sdlcheck/internal/language"
	"github.com/hanpama/sdlcheck/internal/schema"
)

// validateInputFields checks the merged fields of an input object. Names
// repeated across fragments are not reported.
func validateInputFields(c *validationContext, input *schema.InputObject) {
	if len(input.Fields) == 0 {
		c.report(msgNoInputFields(input.Name), definitionPosition(input.Def()))
	}

	for _, field := range input.Fields {
		var pos, typePos *language.Position
		if field.AST != nil {
			pos, typePos = field.AST.Position, typePosition(field.AST.Type)
		}
		c.validateName(field.Name, pos)

		if !schema.IsInputType(field.Type) {
			c.report(msgInputFieldNotInput(input.Name, field.Name, field.Type), typePos)
		}
	}
}
