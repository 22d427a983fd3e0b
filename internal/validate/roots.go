package validate

import (
	language "github.com/hanpama/sdlcheck/internal/language"
	"github.com/hanpama/sdlcheck/internal/schema"
)

// validateRootTypes requires a query root and requires every present root to
// be an object type.
func validateRootTypes(c *validationContext) {
	s := c.schema
	if s.Query == nil {
		var pos *language.Position
		if s.AST != nil {
			pos = s.AST.Position
		}
		c.report(msgQueryRootMissing, pos)
	} else if _, ok := s.Query.(*schema.Object); !ok {
		c.report(msgQueryRootNotObject(s.Query), operationTypePosition(s, s.Query, language.Query))
	}

	if s.Mutation != nil {
		if _, ok := s.Mutation.(*schema.Object); !ok {
			c.report(msgOptionalRootNotObject("Mutation", s.Mutation), operationTypePosition(s, s.Mutation, language.Mutation))
		}
	}

	if s.Subscription != nil {
		if _, ok := s.Subscription.(*schema.Object); !ok {
			c.report(msgOptionalRootNotObject("Subscription", s.Subscription), operationTypePosition(s, s.Subscription, language.Subscription))
		}
	}
}
