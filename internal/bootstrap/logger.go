package bootstrap

import (
	"fmt"

	"github.com/Kwehdev/discord-game-bot/internal/config"
	"github.com/Kwehdev/discord-game-bot/internal/logger"
)

// NewLogger builds the process logger and tags it with the app identity.
func NewLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return log.With(
		logger.String("service", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("environment", cfg.App.Environment),
	), nil
}
