// Package cli provides the command-line interface for taskboard.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

// NewRootCommand creates the root command for taskboard.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var overrides app.Overrides

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Browse and add to-do items from a remote task service",
		Long: `taskboard is a terminal client for a remote to-do collection.

Running taskboard without a subcommand opens the interactive board, which
loads the collection once and lets you search, filter by date, page through
results and add new tasks. The list and add commands do the same from scripts.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if err := c.ApplyOverrides(overrides); err != nil {
				return err
			}

			// A broken config file can still be replaced or inspected
			if c.LoadErr != nil {
				if isConfigRecoveryCommand(cmd) {
					return nil
				}
				return fmt.Errorf("load config: %w", c.LoadErr)
			}

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&overrides.Endpoint, "endpoint", "", "Override the task collection endpoint")
	root.PersistentFlags().StringVar(&overrides.LogLevel, "log-level", "", "Override the log level (debug, info, warn, error)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
	)

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	root.AddCommand(
		configCmd,
		tuiCmd,
		listCmd,
		addCmd,
	)

	return root
}

// isConfigRecoveryCommand reports whether cmd works without a loadable config.
func isConfigRecoveryCommand(cmd *cobra.Command) bool {
	if cmd.Parent() == nil || cmd.Parent().Name() != "config" {
		return false
	}
	return cmd.Name() == "init" || cmd.Name() == "template"
}
