// Package common provides shared utilities for command implementations.
package common

import (
	"errors"
	"fmt"

	"github.com/Kwehdev/discord-game-bot/internal/bootstrap"
	"github.com/Kwehdev/discord-game-bot/internal/config"
	"github.com/Kwehdev/discord-game-bot/internal/logger"
)

// ErrOptionsRequired is returned when a command is built without options.
var ErrOptionsRequired = errors.New("command options are required")

// Options holds the persistent root flags.
type Options struct {
	// ConfigFile overrides the config.yaml lookup.
	ConfigFile string
	// Debug forces debug logging.
	Debug bool
}

// CommandDeps holds common dependencies for all commands.
type CommandDeps struct {
	Config *config.Config
	Logger logger.Logger
}

// LoadConfig loads configuration honouring the root flags.
func LoadConfig(opts *Options) (*config.Config, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Debug {
		cfg.App.Debug = true
		cfg.Logger.Level = "debug"
	}
	return cfg, nil
}

// NewCommandDeps loads the config and builds the logger from it.
func NewCommandDeps(opts *Options) (CommandDeps, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return CommandDeps{}, err
	}

	log, err := bootstrap.NewLogger(cfg)
	if err != nil {
		return CommandDeps{}, err
	}

	return CommandDeps{Config: cfg, Logger: log}, nil
}
