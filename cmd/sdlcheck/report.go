package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/hanpama/sdlcheck/internal/validate"
)

// location is a position in a named document.
type location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// problem is one reported finding, from either the builder or validation.
type problem struct {
	Message   string     `json:"message"`
	Locations []location `json:"locations,omitempty"`
}

func diagnosticProblems(diags []*validate.Diagnostic) []problem {
	out := make([]problem, 0, len(diags))
	for _, d := range diags {
		p := problem{Message: d.Message}
		for _, pos := range d.Locations {
			loc := location{Line: pos.Line, Column: pos.Column}
			if pos.Src != nil {
				loc.File = pos.Src.Name
			}
			p.Locations = append(p.Locations, loc)
		}
		out = append(out, p)
	}
	return out
}

// buildProblems extracts positioned errors from a parse or build failure.
// It reports false for errors that carry no GraphQL positions.
func buildProblems(err error) ([]problem, bool) {
	var list gqlerror.List
	if !errors.As(err, &list) {
		var single *gqlerror.Error
		if !errors.As(err, &single) {
			return nil, false
		}
		list = gqlerror.List{single}
	}
	out := make([]problem, 0, len(list))
	for _, e := range list {
		file, _ := e.Extensions["file"].(string)
		p := problem{Message: e.Message}
		for _, loc := range e.Locations {
			p.Locations = append(p.Locations, location{File: file, Line: loc.Line, Column: loc.Column})
		}
		out = append(out, p)
	}
	return out, true
}

func writeReport(w io.Writer, format string, problems []problem) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Valid    bool      `json:"valid"`
			Problems []problem `json:"problems"`
		}{len(problems) == 0, problems})
	}

	for _, p := range problems {
		if len(p.Locations) == 0 {
			if _, err := fmt.Fprintln(w, p.Message); err != nil {
				return err
			}
			continue
		}
		first := p.Locations[0]
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s\n", first.File, first.Line, first.Column, p.Message); err != nil {
			return err
		}
		for _, loc := range p.Locations[1:] {
			if _, err := fmt.Fprintf(w, "\t%s:%d:%d\n", loc.File, loc.Line, loc.Column); err != nil {
				return err
			}
		}
	}
	if len(problems) > 0 {
		_, err := fmt.Fprintf(w, "%d problem(s) found\n", len(problems))
		return err
	}
	return nil
}
