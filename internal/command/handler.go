// Package command turns chat messages into bot commands and runs them.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Kwehdev/discord-game-bot/internal/catalog"
	"github.com/Kwehdev/discord-game-bot/internal/chat"
	"github.com/Kwehdev/discord-game-bot/internal/logger"
	"github.com/Kwehdev/discord-game-bot/internal/selection"
	"github.com/Kwehdev/discord-game-bot/internal/storefront"
	"github.com/Kwehdev/discord-game-bot/internal/telemetry"
)

// Handler defaults
const (
	DefaultNoMatchTTL     = 30 * time.Second
	DefaultCleanupTimeout = 10 * time.Second
)

// Searcher finds candidates for a query.
type Searcher interface {
	Search(ctx context.Context, query []string) ([]catalog.Candidate, error)
	SearchURL(query []string) string
}

// SessionRunner runs one selection session.
type SessionRunner interface {
	Run(ctx context.Context, req selection.Request) (selection.Outcome, error)
}

// DetailResolver loads store details for a chosen candidate.
type DetailResolver interface {
	Resolve(ctx context.Context, c catalog.Candidate) (*storefront.Detail, error)
}

// Messenger is the part of chat.Client the handler writes through.
type Messenger interface {
	Send(ctx context.Context, channelID, content string) (chat.Message, error)
	Reply(ctx context.Context, to chat.Message, content string) (chat.Message, error)
	SendCard(ctx context.Context, channelID string, card chat.Card) (chat.Message, error)
	Delete(ctx context.Context, msg chat.Message) error
}

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	// NoMatchTTL is how long the "no matches" reply stays up.
	NoMatchTTL time.Duration
	// CleanupTimeout bounds deleting that reply.
	CleanupTimeout time.Duration
}

// HandlerDeps holds the collaborators of a Handler.
type HandlerDeps struct {
	Searcher  Searcher
	Sessions  SessionRunner
	Details   DetailResolver
	Chat      Messenger
	Telemetry *telemetry.Provider
}

// Handler runs the steam command end to end. Every failure is settled here,
// either as one message to the channel or as a log line.
type Handler struct {
	searcher  Searcher
	sessions  SessionRunner
	details   DetailResolver
	chat      Messenger
	telemetry *telemetry.Provider

	noMatchTTL     time.Duration
	cleanupTimeout time.Duration

	now       func() time.Time
	afterFunc func(d time.Duration, f func())
}

// NewHandler creates a Handler.
func NewHandler(deps HandlerDeps, cfg HandlerConfig) *Handler {
	if cfg.NoMatchTTL <= 0 {
		cfg.NoMatchTTL = DefaultNoMatchTTL
	}
	if cfg.CleanupTimeout <= 0 {
		cfg.CleanupTimeout = DefaultCleanupTimeout
	}
	if deps.Telemetry == nil {
		deps.Telemetry = telemetry.NewProvider(nil)
	}

	return &Handler{
		searcher:       deps.Searcher,
		sessions:       deps.Sessions,
		details:        deps.Details,
		chat:           deps.Chat,
		telemetry:      deps.Telemetry,
		noMatchTTL:     cfg.NoMatchTTL,
		cleanupTimeout: cfg.CleanupTimeout,
		now:            time.Now,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Steam runs "?steam <query...>" for in.
func (h *Handler) Steam(ctx context.Context, in chat.Incoming, args []string) {
	log := logger.FromContext(ctx)
	ctx, span := h.telemetry.StartSpan(ctx, "command.steam", attribute.StringSlice("query", args))
	defer span.End()

	if len(args) == 0 {
		h.send(ctx, in.ChannelID, usageMessage)
		return
	}
	if args[0] == "--help" {
		h.send(ctx, in.ChannelID, notSupportedMessage)
		return
	}

	query := strings.Join(args, " ")

	candidates, err := h.search(ctx, args)
	if err != nil {
		log.Error("Store search failed", logger.String("query", query), logger.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		h.send(ctx, in.ChannelID, searchFailedMessage)
		return
	}

	if len(candidates) == 0 {
		log.Info("No store matches", logger.String("query", query))
		h.replyNoMatches(ctx, in, query)
		return
	}

	outcome, err := h.runSession(ctx, selection.Request{
		ChannelID:   in.ChannelID,
		RequesterID: in.AuthorID,
		Title:       fmt.Sprintf(listTitleFormat, query),
		URL:         h.searcher.SearchURL(args),
		Candidates:  candidates,
	})
	if err != nil {
		log.Error("Selection session failed", logger.String("query", query), logger.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "selection failed")
		return
	}

	span.SetAttributes(attribute.String("outcome", outcome.String()))
	if outcome.Kind != selection.KindChosen {
		log.Debug("Selection ended without a choice", logger.String("outcome", outcome.String()))
		return
	}

	h.showDetail(ctx, in.ChannelID, candidates[outcome.Index])
}

func (h *Handler) search(ctx context.Context, args []string) ([]catalog.Candidate, error) {
	start := time.Now()
	candidates, err := h.searcher.Search(ctx, args)

	result := telemetry.ResultFound
	switch {
	case err != nil:
		result = telemetry.ResultError
	case len(candidates) == 0:
		result = telemetry.ResultEmpty
	}
	h.telemetry.RecordSearch(ctx, result, time.Since(start))

	return candidates, err
}

func (h *Handler) runSession(ctx context.Context, req selection.Request) (selection.Outcome, error) {
	start := time.Now()
	h.telemetry.SessionStarted()

	outcome, err := h.sessions.Run(ctx, req)

	label := outcome.Kind.String()
	if err != nil {
		label = telemetry.ResultError
	}
	h.telemetry.SessionFinished(label, time.Since(start))

	return outcome, err
}

func (h *Handler) showDetail(ctx context.Context, channelID string, chosen catalog.Candidate) {
	log := logger.FromContext(ctx).With(
		logger.Int("app_id", chosen.ID),
		logger.String("app_name", chosen.DisplayName),
	)

	start := time.Now()
	detail, err := h.details.Resolve(ctx, chosen)

	switch {
	case errors.Is(err, storefront.ErrNotFound):
		h.telemetry.RecordDetail(ctx, telemetry.ResultNotFound, time.Since(start))
		log.Warn("Store has no details for app", logger.Error(err))
		h.send(ctx, channelID, fmt.Sprintf(notFoundFormat, chosen.DisplayName, h.now().Format(time.RFC1123)))
	case err != nil:
		h.telemetry.RecordDetail(ctx, telemetry.ResultError, time.Since(start))
		log.Error("Detail lookup failed", logger.Error(err))
		h.send(ctx, channelID, fmt.Sprintf(detailFailedFormat, chosen.DisplayName))
	default:
		h.telemetry.RecordDetail(ctx, telemetry.ResultFound, time.Since(start))
		if _, err := h.chat.SendCard(ctx, channelID, DetailCard(detail, chosen)); err != nil {
			log.Error("Failed to send detail card", logger.Error(err))
		}
	}
}

// replyNoMatches replies to in and removes the reply after noMatchTTL
// without holding up the caller.
func (h *Handler) replyNoMatches(ctx context.Context, in chat.Incoming, query string) {
	log := logger.FromContext(ctx)

	reply, err := h.chat.Reply(ctx, in.Message, fmt.Sprintf(noMatchesFormat, query))
	if err != nil {
		log.Error("Failed to send no-match reply", logger.Error(err))
		return
	}

	detached := context.WithoutCancel(ctx)
	h.afterFunc(h.noMatchTTL, func() {
		deleteCtx, cancel := context.WithTimeout(detached, h.cleanupTimeout)
		defer cancel()

		if err := h.chat.Delete(deleteCtx, reply); err != nil {
			log.Warn("Failed to delete no-match reply",
				logger.String("message_id", reply.ID),
				logger.Error(err),
			)
		}
	})
}

func (h *Handler) send(ctx context.Context, channelID, content string) {
	if _, err := h.chat.Send(ctx, channelID, content); err != nil {
		logger.FromContext(ctx).Error("Failed to send message",
			logger.String("channel_id", channelID),
			logger.Error(err),
		)
	}
}
