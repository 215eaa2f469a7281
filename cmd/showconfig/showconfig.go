// Package showconfig implements the config command, which prints the
// effective configuration.
package showconfig

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Kwehdev/discord-game-bot/cmd/common"
	"github.com/Kwehdev/discord-game-bot/internal/config"
)

const yamlIndent = 2

// Command returns the config command.
func Command(opts *common.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long:  "Prints the configuration after defaults, config.yaml, .env and environment are merged. Secrets are masked.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := common.LoadConfig(opts)
			if err != nil {
				return err
			}
			return Write(cmd.OutOrStdout(), cfg)
		},
	}
}

// Write renders cfg as YAML with secrets masked.
func Write(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	redacted := cfg.Redacted()
	if err := enc.Encode(&redacted); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
