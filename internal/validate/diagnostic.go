package validate

import (
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"

	language "github.com/hanpama/sdlcheck/internal/language"
	"github.com/hanpama/sdlcheck/internal/schema"
)

// Diagnostic is one finding about a schema. Locations point at every source
// node involved, in the order they are relevant to the message.
type Diagnostic struct {
	Message   string
	Locations []*language.Position
}

func (d *Diagnostic) Error() string { return d.Message }

// GQLError converts the diagnostic into a gqlparser error, keeping the
// source name of the first location.
func (d *Diagnostic) GQLError() *gqlerror.Error {
	err := &gqlerror.Error{Message: d.Message}
	for _, pos := range d.Locations {
		err.Locations = append(err.Locations, gqlerror.Location{Line: pos.Line, Column: pos.Column})
	}
	if len(d.Locations) > 0 && d.Locations[0].Src != nil {
		err.Extensions = map[string]any{"file": d.Locations[0].Src.Name}
	}
	return err
}

// ValidationError is returned by AssertValid for a schema with diagnostics.
type ValidationError []*Diagnostic

func (e ValidationError) Error() string {
	msgs := make([]string, 0, len(e))
	for _, d := range e {
		msgs = append(msgs, d.Message)
	}
	return strings.Join(msgs, "\n\n")
}

// GQLErrors converts every diagnostic with Diagnostic.GQLError.
func (e ValidationError) GQLErrors() gqlerror.List {
	list := make(gqlerror.List, 0, len(e))
	for _, d := range e {
		list = append(list, d.GQLError())
	}
	return list
}

// validationContext collects the diagnostics of one run.
type validationContext struct {
	schema      *schema.Schema
	diagnostics []*Diagnostic
}

func newValidationContext(s *schema.Schema) *validationContext {
	return &validationContext{schema: s}
}

// report appends a diagnostic located at the non-nil positions.
func (c *validationContext) report(message string, positions ...*language.Position) {
	var locs []*language.Position
	for _, pos := range positions {
		if pos != nil {
			locs = append(locs, pos)
		}
	}
	c.addDiagnostic(&Diagnostic{Message: message, Locations: locs})
}

func (c *validationContext) addDiagnostic(d *Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// drain returns the diagnostics in the order they were reported. The result
// is never nil.
func (c *validationContext) drain() []*Diagnostic {
	out := c.diagnostics
	if out == nil {
		out = []*Diagnostic{}
	}
	c.diagnostics = nil
	return out
}
