package selection

import (
	"context"
	"fmt"
	"time"

	"github.com/Kwehdev/discord-game-bot/internal/catalog"
	"github.com/Kwehdev/discord-game-bot/internal/chat"
	"github.com/Kwehdev/discord-game-bot/internal/logger"
)

// Session defaults
const (
	DefaultTimeout        = 30 * time.Second
	DefaultCleanupTimeout = 10 * time.Second
)

// Messenger is the part of chat.Client a session needs.
type Messenger interface {
	SendCard(ctx context.Context, channelID string, card chat.Card) (chat.Message, error)
	React(ctx context.Context, msg chat.Message, symbol string) error
	Reactions(ctx context.Context, msg chat.Message) ([]chat.Reaction, error)
	Subscribe(msg chat.Message) (<-chan chat.Reaction, func())
	Delete(ctx context.Context, msg chat.Message) error
}

// Config configures a Runner.
type Config struct {
	// Timeout bounds the wait for the requester's reaction.
	Timeout time.Duration
	// CleanupTimeout bounds deleting the list message.
	CleanupTimeout time.Duration
}

// Request describes one session.
type Request struct {
	ChannelID   string
	RequesterID string
	Title       string
	URL         string
	Candidates  []catalog.Candidate
}

// Runner runs sessions. It keeps no per-session state, so one Runner
// serves any number of concurrent sessions.
type Runner struct {
	chat           Messenger
	log            logger.Logger
	timeout        time.Duration
	cleanupTimeout time.Duration
}

// NewRunner creates a Runner.
func NewRunner(m Messenger, log logger.Logger, cfg Config) *Runner {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CleanupTimeout <= 0 {
		cfg.CleanupTimeout = DefaultCleanupTimeout
	}

	return &Runner{
		chat:           m,
		log:            log,
		timeout:        cfg.Timeout,
		cleanupTimeout: cfg.CleanupTimeout,
	}
}

// Run renders the candidate list, attaches selectors and waits for the
// requester's choice. Once the list message exists it is deleted before Run
// returns, whatever the outcome. An error means no outcome was reached.
func (r *Runner) Run(ctx context.Context, req Request) (Outcome, error) {
	selectors, err := NewSelectorSet(len(req.Candidates))
	if err != nil {
		return Outcome{}, err
	}

	msg, err := r.chat.SendCard(ctx, req.ChannelID, ListCard(req))
	if err != nil {
		return Outcome{}, fmt.Errorf("send candidate list: %w", err)
	}
	defer r.cleanup(ctx, msg)

	// Subscribe before attaching controls so no reaction falls in between.
	events, unsubscribe := r.chat.Subscribe(msg)
	defer unsubscribe()

	for _, symbol := range selectors {
		if err := r.chat.React(ctx, msg, symbol); err != nil {
			return Outcome{}, fmt.Errorf("attach selector %s: %w", symbol, err)
		}
	}

	if outcome, ok := r.early(ctx, msg, req.RequesterID, selectors); ok {
		return outcome, nil
	}

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	for {
		select {
		case reaction := <-events:
			if !IsQualifying(reaction, req.RequesterID, selectors) {
				continue
			}
			outcome, _ := selectors.Outcome(reaction.Symbol)
			return outcome, nil
		case <-timer.C:
			return TimedOut(), nil
		case <-ctx.Done():
			return Outcome{}, fmt.Errorf("await selection: %w", ctx.Err())
		}
	}
}

// early looks for a qualifying reaction applied before the wait started.
func (r *Runner) early(ctx context.Context, msg chat.Message, requesterID string, selectors SelectorSet) (Outcome, bool) {
	reactions, err := r.chat.Reactions(ctx, msg)
	if err != nil {
		r.log.Warn("Early reaction check failed, waiting for live reactions",
			logger.String("message_id", msg.ID),
			logger.Error(err),
		)
		return Outcome{}, false
	}

	for _, reaction := range reactions {
		if IsQualifying(reaction, requesterID, selectors) {
			return selectors.Outcome(reaction.Symbol)
		}
	}
	return Outcome{}, false
}

// cleanup deletes msg even when ctx is already cancelled.
func (r *Runner) cleanup(ctx context.Context, msg chat.Message) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.cleanupTimeout)
	defer cancel()

	if err := r.chat.Delete(ctx, msg); err != nil {
		r.log.Warn("Failed to delete candidate list",
			logger.String("message_id", msg.ID),
			logger.Error(err),
		)
	}
}
