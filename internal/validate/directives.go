package validate

import (
	language "github.com/hanpama/sdlcheck/internal/language"
	"github.com/hanpama/sdlcheck/internal/schema"
)

// validateDirectives checks directive definitions in declaration order.
// Where a directive may be used is not checked.
func validateDirectives(c *validationContext) {
	for _, d := range c.schema.Directives {
		if d == nil {
			c.report(msgExpectedDirective(d))
			continue
		}

		var pos *language.Position
		if d.AST != nil {
			pos = d.AST.Position
		}
		c.validateName(d.Name, pos)

		seen := make(map[string]struct{}, len(d.Args))
		for _, arg := range d.Args {
			c.validateName(arg.Name, argumentPosition(arg))

			if _, ok := seen[arg.Name]; ok {
				c.report(msgDuplicateDirectiveArg(d.Name, arg.Name), argPositions(allDirectiveArgNodes(d, arg.Name))...)
				continue
			}
			seen[arg.Name] = struct{}{}

			if !schema.IsInputType(arg.Type) {
				c.report(msgDirectiveArgNotInput(d.Name, arg.Name, arg.Type), directiveArgTypePosition(d, arg.Name))
			}
		}
	}
}

func argumentPosition(arg *schema.Argument) *language.Position {
	if arg.AST == nil {
		return nil
	}
	return arg.AST.Position
}
