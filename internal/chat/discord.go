package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Kwehdev/discord-game-bot/internal/logger"
)

// Card decoration applied to every embed.
const (
	embedAuthor = "Discord Game Bot"
	embedColor  = 0x16990f
)

// reactionPageSize is the maximum page size of the reaction users endpoint.
const reactionPageSize = 100

// Intents the bot needs: command messages and reactions in guilds and DMs.
const Intents = discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMessageReactions |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsDirectMessageReactions |
	discordgo.IntentMessageContent

// Discord implements Client on top of a discordgo session.
type Discord struct {
	session *discordgo.Session
	hub     *Hub
	log     logger.Logger
	now     func() time.Time
	remove  []func()
}

var _ Client = (*Discord)(nil)

// NewDiscord wraps session and starts routing its reaction events.
// The session is not opened here.
func NewDiscord(session *discordgo.Session, log logger.Logger) *Discord {
	d := &Discord{
		session: session,
		hub:     NewHub(),
		log:     log,
		now:     time.Now,
	}

	d.remove = append(d.remove, session.AddHandler(func(_ *discordgo.Session, e *discordgo.MessageReactionAdd) {
		if e.MessageReaction == nil {
			return
		}
		d.hub.Publish(Reaction{
			MessageID: e.MessageID,
			UserID:    e.UserID,
			Symbol:    e.Emoji.Name,
		})
	}))

	return d
}

// OnMessage registers fn for every message created in a channel the bot can
// see. Messages authored by the bot's own user are dropped here.
func (d *Discord) OnMessage(fn func(Incoming)) {
	d.remove = append(d.remove, d.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Message == nil || m.Author == nil {
			return
		}
		if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
			return
		}
		fn(incomingFromDiscord(m.Message))
	}))
}

// Close detaches every handler registered by this adapter.
func (d *Discord) Close() {
	for _, remove := range d.remove {
		remove()
	}
	d.remove = nil
}

func (d *Discord) Send(ctx context.Context, channelID, content string) (Message, error) {
	m, err := d.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return Message{}, fmt.Errorf("send message to %s: %w", channelID, err)
	}
	return messageFromDiscord(m), nil
}

func (d *Discord) Reply(ctx context.Context, to Message, content string) (Message, error) {
	ref := &discordgo.MessageReference{
		MessageID: to.ID,
		ChannelID: to.ChannelID,
		GuildID:   to.GuildID,
	}
	m, err := d.session.ChannelMessageSendReply(to.ChannelID, content, ref, discordgo.WithContext(ctx))
	if err != nil {
		return Message{}, fmt.Errorf("reply to %s: %w", to.ID, err)
	}
	return messageFromDiscord(m), nil
}

func (d *Discord) SendCard(ctx context.Context, channelID string, card Card) (Message, error) {
	m, err := d.session.ChannelMessageSendEmbed(channelID, EmbedFromCard(card, d.now()), discordgo.WithContext(ctx))
	if err != nil {
		return Message{}, fmt.Errorf("send card to %s: %w", channelID, err)
	}
	return messageFromDiscord(m), nil
}

func (d *Discord) React(ctx context.Context, msg Message, symbol string) error {
	if err := d.session.MessageReactionAdd(msg.ChannelID, msg.ID, symbol, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("react %s on %s: %w", symbol, msg.ID, err)
	}
	return nil
}

// Reactions reads the message's reaction summary, then the users behind each
// reaction that someone other than the bot has applied.
func (d *Discord) Reactions(ctx context.Context, msg Message) ([]Reaction, error) {
	m, err := d.session.ChannelMessage(msg.ChannelID, msg.ID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("load message %s: %w", msg.ID, err)
	}

	var reactions []Reaction
	for _, r := range m.Reactions {
		if r == nil || r.Emoji == nil {
			continue
		}
		others := r.Count
		if r.Me {
			others--
		}
		if others <= 0 {
			continue
		}

		users, err := d.session.MessageReactions(msg.ChannelID, msg.ID, r.Emoji.APIName(),
			reactionPageSize, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("load %s reactions on %s: %w", r.Emoji.Name, msg.ID, err)
		}
		for _, u := range users {
			reactions = append(reactions, Reaction{MessageID: msg.ID, UserID: u.ID, Symbol: r.Emoji.Name})
		}
	}

	return reactions, nil
}

func (d *Discord) Subscribe(msg Message) (<-chan Reaction, func()) {
	return d.hub.Subscribe(msg.ID)
}

func (d *Discord) Delete(ctx context.Context, msg Message) error {
	if err := d.session.ChannelMessageDelete(msg.ChannelID, msg.ID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete message %s: %w", msg.ID, err)
	}
	return nil
}

// EmbedFromCard renders card as a Discord embed stamped with now.
func EmbedFromCard(card Card, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Author:      &discordgo.MessageEmbedAuthor{Name: embedAuthor},
		Title:       card.Title,
		URL:         card.URL,
		Description: card.Description,
		Color:       embedColor,
		Timestamp:   now.UTC().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: now.UTC().Format(time.RFC1123)},
	}

	if card.Image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: card.Image}
	}

	for _, f := range card.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	return embed
}

func messageFromDiscord(m *discordgo.Message) Message {
	if m == nil {
		return Message{}
	}
	return Message{ID: m.ID, ChannelID: m.ChannelID, GuildID: m.GuildID}
}

func incomingFromDiscord(m *discordgo.Message) Incoming {
	in := Incoming{
		Message: messageFromDiscord(m),
		Content: m.Content,
	}
	if m.Author != nil {
		in.AuthorID = m.Author.ID
		in.AuthorIsBot = m.Author.Bot
	}
	return in
}
