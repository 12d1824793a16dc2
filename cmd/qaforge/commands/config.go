package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/qaforge/qaforge/internal/config"
)

// NewConfigCommand creates the config subcommand, which prints the effective
// configuration after merging file, environment, and defaults.
func NewConfigCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loadErr := config.LoadConfig(configPath)
			if loadErr != nil {
				return fmt.Errorf("load config: %w", loadErr)
			}

			rendered, marshalErr := yaml.Marshal(cfg)
			if marshalErr != nil {
				return fmt.Errorf("marshal config: %w", marshalErr)
			}

			fmt.Fprint(cmd.OutOrStdout(), string(rendered))

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: .qaforge.yaml in CWD or $HOME)")

	return cmd
}
