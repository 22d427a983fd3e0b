package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanpama/sdlcheck/internal/schema"
	"github.com/hanpama/sdlcheck/internal/source"
)

func newPrintCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "print [paths...]",
		Short: "Print the merged schema as SDL",
		Long: `Print builds the schema from the given documents and prints it as a single
SDL document with extensions merged into their types. Built-in scalars,
directives and introspection types are omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := source.NewFileSystemDiscovery(g.schemaPaths(args)...)
			if err != nil {
				return err
			}
			s, err := source.Load(cmd.Context(), d, nil, schema.WithAllowedLegacyNames(g.cfg.Schema.AllowedLegacyNames...))
			if err != nil {
				return fmt.Errorf("build schema: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), schema.Render(s))
			return err
		},
	}
}
