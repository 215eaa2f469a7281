package command

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Kwehdev/discord-game-bot/internal/chat"
	"github.com/Kwehdev/discord-game-bot/internal/logger"
	"github.com/Kwehdev/discord-game-bot/internal/telemetry"
)

// DefaultPrefix marks a message as a command.
const DefaultPrefix = "?"

// Command names
const (
	CommandSteam = "steam"
	CommandHelp  = "help"
)

// SteamCommand runs the steam command.
type SteamCommand interface {
	Steam(ctx context.Context, in chat.Incoming, args []string)
}

// Responder is the part of chat.Client the router answers through.
type Responder interface {
	Send(ctx context.Context, channelID, content string) (chat.Message, error)
	Reply(ctx context.Context, to chat.Message, content string) (chat.Message, error)
}

// RouterDeps holds the collaborators of a Router.
type RouterDeps struct {
	Steam     SteamCommand
	Chat      Responder
	Logger    logger.Logger
	Telemetry *telemetry.Provider
}

// Router dispatches prefixed chat messages to commands.
type Router struct {
	prefix    string
	steam     SteamCommand
	chat      Responder
	log       logger.Logger
	telemetry *telemetry.Provider
	newID     func() string
}

// NewRouter creates a Router. An empty prefix means DefaultPrefix.
func NewRouter(prefix string, deps RouterDeps) *Router {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	if deps.Telemetry == nil {
		deps.Telemetry = telemetry.NewProvider(nil)
	}

	return &Router{
		prefix:    prefix,
		steam:     deps.Steam,
		chat:      deps.Chat,
		log:       deps.Logger,
		telemetry: deps.Telemetry,
		newID:     uuid.NewString,
	}
}

// Parse splits a prefixed message into a lowercased command name and its
// arguments. ok is false when content is not a command.
func (r *Router) Parse(content string) (name string, args []string, ok bool) {
	body, found := strings.CutPrefix(content, r.prefix)
	if !found {
		return "", nil, false
	}

	tokens := strings.Fields(body)
	if len(tokens) == 0 {
		return "", nil, true
	}
	return strings.ToLower(tokens[0]), tokens[1:], true
}

// Handle runs the command in, if any. It blocks until the command is done,
// so callers dispatch it on its own goroutine.
func (r *Router) Handle(ctx context.Context, in chat.Incoming) {
	if in.AuthorIsBot {
		return
	}
	name, args, ok := r.Parse(in.Content)
	if !ok {
		return
	}

	log := r.log.With(
		logger.String("invocation_id", r.newID()),
		logger.String("command", name),
		logger.String("channel_id", in.ChannelID),
		logger.String("author_id", in.AuthorID),
	)
	ctx = logger.WithContext(ctx, log)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Debug("Dispatching command", logger.Strings("args", args))

	switch name {
	case CommandSteam:
		r.telemetry.RecordCommand(CommandSteam)
		r.steam.Steam(ctx, in, args)
	case CommandHelp:
		r.telemetry.RecordCommand(CommandHelp)
		if _, err := r.chat.Reply(ctx, in.Message, helpMessage); err != nil {
			log.Error("Failed to send help", logger.Error(err))
		}
	default:
		r.telemetry.RecordCommand("unknown")
		if _, err := r.chat.Send(ctx, in.ChannelID, unknownCommand); err != nil {
			log.Error("Failed to send unknown command reply", logger.Error(err))
		}
	}
}
