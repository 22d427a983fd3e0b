package validate

import (
	"regexp"
	"strings"

	language "github.com/hanpama/sdlcheck/internal/language"
)

var nameRE = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// nameError checks name against the name grammar. Names starting with "__"
// are reserved for introspection.
func nameError(name string, pos *language.Position) *Diagnostic {
	var msg string
	switch {
	case strings.HasPrefix(name, "__"):
		msg = msgReservedName(name)
	case !nameRE.MatchString(name):
		msg = msgInvalidName(name)
	default:
		return nil
	}
	d := &Diagnostic{Message: msg}
	if pos != nil {
		d.Locations = []*language.Position{pos}
	}
	return d
}

func (c *validationContext) validateName(name string, pos *language.Position) {
	if c.schema.IsAllowedLegacyName(name) {
		return
	}
	if d := nameError(name, pos); d != nil {
		c.addDiagnostic(d)
	}
}
