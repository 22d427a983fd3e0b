package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanpama/sdlcheck/internal/config"
)

// globals holds state shared by every subcommand, filled in by the root
// command before any subcommand runs.
type globals struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globals{stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "sdlcheck",
		Short: "Validate GraphQL schema definition documents",
		Long: `sdlcheck builds a GraphQL schema from SDL documents and reports every
structural problem in it: missing or invalid root types, malformed directive
definitions, invalid names, and fields, interfaces, union members, enum values
and input fields that break the type system rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.logger != nil {
				_ = g.logger.Sync()
			}
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newCheckCmd(g), newPrintCmd(g))
	return cmd
}

func (g *globals) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = g.logLevel
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.logger = logger
	return nil
}

// schemaPaths returns args, falling back to the configured paths and then
// to the working directory.
func (g *globals) schemaPaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	if len(g.cfg.Schema.Paths) > 0 {
		return g.cfg.Schema.Paths
	}
	return []string{"."}
}
