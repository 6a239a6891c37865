package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagelist/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Loads the configuration file, .env file, and PAGELIST_* environment
variables and checks the result: output format, page size, and item count.`,
		Example: `  # Validate current configuration
  pagelist config validate

  # Validate and show the effective values
  pagelist config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the effective configuration")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		cmd.Printf("  Config file:    %s\n", cfg.ConfigPath())
		cmd.Printf("  Output format:  %s\n", cfg.Output.DefaultFormat)
		cmd.Printf("  Page size:      %d\n", cfg.List.PageSize)
		cmd.Printf("  Item count:     %d\n", cfg.List.ItemCount)
		cmd.Printf("  Log level:      %s\n", cfg.Logging.Level)
	}

	return nil
}
