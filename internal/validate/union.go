package validate

import (
	"github.com/hanpama/sdlcheck/internal/schema"
)

func validateUnionMembers(c *validationContext, union *schema.Union) {
	if len(union.Types) == 0 {
		c.report(msgNoUnionMembers(union.Name), definitionPosition(union.Def()))
	}

	seen := make(map[string]struct{}, len(union.Types))
	for _, member := range union.Types {
		name := typeName(member)
		if _, ok := seen[name]; ok {
			c.report(msgDuplicateUnionMember(union.Name, name), unionMemberPositions(union.Def(), name)...)
			continue
		}
		seen[name] = struct{}{}

		if obj, ok := member.(*schema.Object); !ok || obj == nil {
			c.report(msgUnionMemberNotObject(union.Name, member), unionMemberPositions(union.Def(), name)...)
		}
	}
}
