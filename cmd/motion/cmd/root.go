// Package cmd implements the motion command-line interface: a demo
// panel for trying transitions, a preset inspector, and a project
// scaffolder. Commands are built with cobra; --verbose switches the
// context logger to debug level.
package cmd

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected via ldflags by the main package.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the motion CLI and returns an error if any command
// fails. The logger is attached to the context and accessible to all
// commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "motion",
		Short:        "Motion animates elements in and out of terminal surfaces",
		Long:         `Motion is the drift family's presence/transition toolkit: a lifecycle controller that keeps an element on the surface long enough to play its exit animation. This CLI demos transitions in the terminal, inspects effect presets, and scaffolds a demo project.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("motion %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newInitCmd())

	return root.ExecuteContext(ctx)
}
