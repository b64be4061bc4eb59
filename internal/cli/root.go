// Package cli implements the distrib command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by subcommands.
type app struct {
	debug  bool
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "distrib",
		Short:        "Count distribution densities, samplers and variances",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if a.debug {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(versionCmd())
	cmd.AddCommand(calcVarCmd(a))
	cmd.AddCommand(densityCmd(a))
	cmd.AddCommand(drawCmd(a))
	cmd.AddCommand(fitCmd(a))
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "distrib %s\n", version)
		},
	}
}
