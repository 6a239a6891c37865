package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pagelist/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagelist CLI.
// Run without a subcommand it behaves like "pagelist list".
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult *logging.LogPathResult
		opts      listOptions
	)

	cmd := &cobra.Command{
		Use:           "pagelist",
		Short:         "Paginated list viewer",
		Long:          "pagelist: browse a fixed list of items page by page with Previous and Next controls",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, &opts)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	addListFlags(cmd, &opts)
	cmd.AddCommand(NewListCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse the list interactively
  pagelist

  # Open on page 3 with 10 items per page
  pagelist list --page 3 --page-size 10

  # Print page 2 as JSON
  pagelist list --page 2 --output json

  # Print plain text (no colors, no interaction)
  pagelist list --plain

  # Initialize configuration
  pagelist config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigListCmd(), NewConfigValidateCmd())
	return cmd
}
