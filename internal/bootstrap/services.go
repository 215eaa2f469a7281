// Package bootstrap wires configuration into running bot components.
package bootstrap

import (
	"github.com/Kwehdev/discord-game-bot/internal/catalog"
	"github.com/Kwehdev/discord-game-bot/internal/chat"
	"github.com/Kwehdev/discord-game-bot/internal/command"
	"github.com/Kwehdev/discord-game-bot/internal/config"
	"github.com/Kwehdev/discord-game-bot/internal/httpclient"
	"github.com/Kwehdev/discord-game-bot/internal/logger"
	"github.com/Kwehdev/discord-game-bot/internal/selection"
	"github.com/Kwehdev/discord-game-bot/internal/storefront"
	"github.com/Kwehdev/discord-game-bot/internal/telemetry"
	"github.com/Kwehdev/discord-game-bot/internal/throttle"
)

// Services holds the command pipeline built from one config.
type Services struct {
	Fetcher   *catalog.Fetcher
	Resolver  *storefront.Resolver
	Runner    *selection.Runner
	Handler   *command.Handler
	Router    *command.Router
	Telemetry *telemetry.Provider
}

// StoreClients holds the storefront callers. They share one limiter and
// one connection pool.
type StoreClients struct {
	Fetcher  *catalog.Fetcher
	Resolver *storefront.Resolver
}

// NewStoreClients builds the storefront callers for cfg.
func NewStoreClients(cfg config.StoreConfig) StoreClients {
	limiter := throttle.New(cfg.RequestsPerSecond, cfg.Burst)
	client := httpclient.New(httpclient.Config{Timeout: cfg.RequestTimeout})

	return StoreClients{
		Fetcher: catalog.NewFetcher(catalog.FetcherConfig{
			BaseURL:        cfg.BaseURL,
			UserAgent:      cfg.UserAgent,
			RequestTimeout: cfg.RequestTimeout,
			Transport:      client.Transport,
			Limiter:        limiter,
		}),
		Resolver: storefront.NewResolver(client, storefront.Config{
			BaseURL:     cfg.BaseURL,
			CountryCode: cfg.CountryCode,
			Language:    cfg.Language,
			Limiter:     limiter,
		}),
	}
}

// NewServices builds the full command pipeline on top of client.
func NewServices(cfg *config.Config, log logger.Logger, client chat.Client, provider *telemetry.Provider) *Services {
	store := NewStoreClients(cfg.Store)

	runner := selection.NewRunner(client, log, selection.Config{
		Timeout:        cfg.Selection.Timeout,
		CleanupTimeout: cfg.Selection.CleanupTimeout,
	})

	handler := command.NewHandler(command.HandlerDeps{
		Searcher:  store.Fetcher,
		Sessions:  runner,
		Details:   store.Resolver,
		Chat:      client,
		Telemetry: provider,
	}, command.HandlerConfig{
		NoMatchTTL:     cfg.Selection.NoMatchTTL,
		CleanupTimeout: cfg.Selection.CleanupTimeout,
	})

	router := command.NewRouter(cfg.Discord.Prefix, command.RouterDeps{
		Steam:     handler,
		Chat:      client,
		Logger:    log,
		Telemetry: provider,
	})

	return &Services{
		Fetcher:   store.Fetcher,
		Resolver:  store.Resolver,
		Runner:    runner,
		Handler:   handler,
		Router:    router,
		Telemetry: provider,
	}
}
