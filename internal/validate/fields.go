package validate

import (
	language "github.com/hanpama/sdlcheck/internal/language"
	"github.com/hanpama/sdlcheck/internal/schema"
)

// validateFields checks the fields of an object or interface type.
func validateFields(c *validationContext, def *schema.Definition, fields []*schema.Field) {
	if len(fields) == 0 {
		c.report(msgNoFields(def.Name), allDefinitionPositions(def)...)
	}

	for _, field := range fields {
		c.validateName(field.Name, fieldDefinitionPosition(field))

		// The merged view holds one entry per name; repeats only show up
		// in the raw fragments.
		if nodes := allFieldNodes(def, field.Name); len(nodes) > 1 {
			c.report(msgDuplicateField(def.Name, field.Name), fieldPositions(nodes)...)
			continue
		}

		if !schema.IsOutputType(field.Type) {
			c.report(msgFieldNotOutput(def.Name, field.Name, field.Type), fieldTypePosition(def, field.Name))
		}

		seen := make(map[string]struct{}, len(field.Args))
		for _, arg := range field.Args {
			c.validateName(arg.Name, argumentPosition(arg))

			if _, ok := seen[arg.Name]; ok {
				c.report(msgDuplicateFieldArg(def.Name, field.Name, arg.Name),
					argPositions(allFieldArgNodes(def, field.Name, arg.Name))...)
				continue
			}
			seen[arg.Name] = struct{}{}

			if !schema.IsInputType(arg.Type) {
				c.report(msgFieldArgNotInput(def.Name, field.Name, arg.Name, arg.Type),
					fieldArgTypePosition(def, field.Name, arg.Name))
			}
		}
	}
}

func fieldDefinitionPosition(f *schema.Field) *language.Position {
	if f.AST == nil {
		return nil
	}
	return f.AST.Position
}
