// Package chat holds the platform-neutral message, card and reaction types
// the bot works with, and the Discord adapter that backs them.
package chat

import "context"

// Card is a rich message: the bot renders both search lists and store
// details as cards.
type Card struct {
	Title       string
	Description string
	URL         string
	Image       string
	Fields      []CardField
}

// CardField is one name/value row on a card.
type CardField struct {
	Name   string
	Value  string
	Inline bool
}

// Message identifies a message the bot can reply to, react on or delete.
type Message struct {
	ID        string
	ChannelID string
	GuildID   string
}

// Reaction is one user applying one symbol to one message.
type Reaction struct {
	MessageID string
	UserID    string
	Symbol    string
}

// Incoming is a user-authored message delivered to the bot.
type Incoming struct {
	Message
	AuthorID    string
	AuthorIsBot bool
	Content     string
}

// Client is the set of chat primitives the bot relies on.
//
//go:generate mockgen -destination=../../testutils/mocks/chat/client.go -package=chat github.com/Kwehdev/discord-game-bot/internal/chat Client
type Client interface {
	// Send posts plain text to a channel.
	Send(ctx context.Context, channelID, content string) (Message, error)
	// Reply posts plain text as a reply to msg.
	Reply(ctx context.Context, to Message, content string) (Message, error)
	// SendCard posts a card to a channel.
	SendCard(ctx context.Context, channelID string, card Card) (Message, error)
	// React adds the bot's own reaction to msg.
	React(ctx context.Context, msg Message, symbol string) error
	// Reactions lists every user reaction already present on msg.
	Reactions(ctx context.Context, msg Message) ([]Reaction, error)
	// Subscribe streams reactions added to msg from now on. The returned
	// func stops the stream and must be called.
	Subscribe(msg Message) (<-chan Reaction, func())
	// Delete removes msg.
	Delete(ctx context.Context, msg Message) error
}
