package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagelist/internal/config"
)

// NewConfigListCmd creates the config list command, which prints the effective configuration.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.GetGlobalConfig().Marshal()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
