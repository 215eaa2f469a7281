// Package bot implements the command that runs the chat bot.
package bot

import (
	"github.com/spf13/cobra"

	"github.com/Kwehdev/discord-game-bot/cmd/common"
	"github.com/Kwehdev/discord-game-bot/internal/bootstrap"
)

// Command returns the bot command.
func Command(opts *common.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Connect to Discord and serve commands",
		Long: `Connects to the Discord gateway and answers ?steam and ?help until interrupted.

The bot token is read from DISCORD_TOKEN. Health and Prometheus metrics are
served on the configured server address.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := common.NewCommandDeps(opts)
			if err != nil {
				return err
			}
			defer func() { _ = deps.Logger.Sync() }()

			return bootstrap.RunUntilInterrupt(cmd.Context(), deps.Config, deps.Logger)
		},
	}
}
