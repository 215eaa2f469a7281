package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Kwehdev/discord-game-bot/internal/chat"
	"github.com/Kwehdev/discord-game-bot/internal/config"
	"github.com/Kwehdev/discord-game-bot/internal/logger"
	"github.com/Kwehdev/discord-game-bot/internal/server"
	"github.com/Kwehdev/discord-game-bot/internal/telemetry"
)

// drainTimeout bounds how long shutdown waits for running commands, which
// still delete their transient messages after cancellation.
const drainTimeout = 15 * time.Second

// RunUntilInterrupt runs the bot until SIGINT or SIGTERM.
func RunUntilInterrupt(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, cfg, log)
}

// Run connects to the gateway, serves commands and the operational server,
// and shuts everything down once ctx is done.
func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	if err := cfg.ValidateBot(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Phase 1: telemetry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	provider := telemetry.NewProvider(registry)

	// Phase 2: chat session
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = chat.Intents

	var connected atomic.Bool
	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		connected.Store(true)
		log.Info("Logged in", logger.String("user", r.User.String()), logger.Int("guilds", len(r.Guilds)))
	})
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Resumed) {
		connected.Store(true)
	})
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		connected.Store(false)
		log.Warn("Gateway disconnected")
	})

	discord := chat.NewDiscord(session, log)
	defer discord.Close()

	// Phase 3: command pipeline
	services := NewServices(cfg, log, discord, provider)

	inflight := &commandTracker{}
	discord.OnMessage(func(in chat.Incoming) {
		if !inflight.start() {
			return
		}
		defer inflight.done()
		services.Router.Handle(ctx, in)
	})

	if err := session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	log.Info("Bot started", logger.String("prefix", cfg.Discord.Prefix))

	// Phase 4: operational server
	var serverErr <-chan error
	var srv *server.Server
	if cfg.Server.Enabled {
		srv = server.New(server.Config{
			Address:        cfg.Server.Address,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			IdleTimeout:    cfg.Server.IdleTimeout,
			ServiceName:    cfg.App.Name,
			ServiceVersion: cfg.App.Version,
			Debug:          cfg.App.Debug,
		}, log, server.Routes{
			Metrics: provider.Handler(),
			Checks: map[string]server.HealthChecker{
				"gateway": server.GatewayChecker(connected.Load),
			},
		})
		serverErr = srv.StartAsync()
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutdown requested")
	case err := <-serverErr:
		runErr = err
	}

	return errors.Join(runErr, shutdown(log, discord, session, srv, inflight))
}

func shutdown(
	log logger.Logger,
	discord *chat.Discord,
	session *discordgo.Session,
	srv *server.Server,
	inflight *commandTracker,
) error {
	// Stop accepting commands before waiting for the running ones.
	discord.Close()

	drained := make(chan struct{})
	go func() {
		inflight.closeAndWait()
		close(drained)
	}()

	select {
	case <-drained:
	case <-time.After(drainTimeout):
		log.Warn("Commands still running at shutdown", logger.Duration("waited", drainTimeout))
	}

	var errs []error
	if srv != nil {
		if err := srv.Shutdown(context.Background()); err != nil {
			errs = append(errs, err)
		}
	}
	if err := session.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close discord session: %w", err))
	}

	_ = log.Sync()
	return errors.Join(errs...)
}

// commandTracker counts running commands and refuses new ones once closed.
type commandTracker struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func (t *commandTracker) start() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return false
	}
	t.wg.Add(1)
	return true
}

func (t *commandTracker) done() { t.wg.Done() }

func (t *commandTracker) closeAndWait() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	t.wg.Wait()
}
