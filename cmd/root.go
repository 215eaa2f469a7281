// Package cmd implements the command-line interface for discord-game-bot.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kwehdev/discord-game-bot/cmd/bot"
	"github.com/Kwehdev/discord-game-bot/cmd/common"
	"github.com/Kwehdev/discord-game-bot/cmd/search"
	"github.com/Kwehdev/discord-game-bot/cmd/showconfig"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &common.Options{}

	rootCmd := &cobra.Command{
		Use:           "discord-game-bot",
		Short:         "A Discord bot that searches the Steam store",
		Long:          `A Discord bot that searches the Steam store and lets the requester pick a result by reaction.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&opts.ConfigFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "discord-game-bot version %s\n", Version)
		},
	})
	rootCmd.AddCommand(bot.Command(opts))
	rootCmd.AddCommand(search.Command(opts))
	rootCmd.AddCommand(showconfig.Command(opts))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}
