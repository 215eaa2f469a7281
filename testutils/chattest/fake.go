// Package chattest provides an in-memory chat.Client for tests.
package chattest

import (
	"context"
	"fmt"
	"sync"

	"github.com/Kwehdev/discord-game-bot/internal/chat"
)

// Sent is one outbound message recorded by Fake.
type Sent struct {
	Message chat.Message
	Content string
	Card    *chat.Card
	ReplyTo string
}

// Fake records every call and routes injected reactions through a chat.Hub.
type Fake struct {
	mu sync.Mutex

	hub     *chat.Hub
	nextID  int
	sent    []Sent
	reacted map[string][]string
	deleted map[string]int

	// Early is returned by Reactions for any message.
	Early []chat.Reaction
	// OnReact runs after each successful React, outside the lock.
	OnReact func(f *Fake, msg chat.Message, symbol string)

	SendErr     error
	SendCardErr error
	ReactErr    error
	DeleteErr   error
	ReactionErr error
}

var _ chat.Client = (*Fake)(nil)

// New creates an empty Fake.
func New() *Fake {
	return &Fake{
		hub:     chat.NewHub(),
		reacted: make(map[string][]string),
		deleted: make(map[string]int),
	}
}

func (f *Fake) record(channelID string, s Sent) chat.Message {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	s.Message = chat.Message{ID: fmt.Sprintf("msg-%d", f.nextID), ChannelID: channelID}
	f.sent = append(f.sent, s)
	return s.Message
}

func (f *Fake) Send(_ context.Context, channelID, content string) (chat.Message, error) {
	if f.SendErr != nil {
		return chat.Message{}, f.SendErr
	}
	return f.record(channelID, Sent{Content: content}), nil
}

func (f *Fake) Reply(_ context.Context, to chat.Message, content string) (chat.Message, error) {
	if f.SendErr != nil {
		return chat.Message{}, f.SendErr
	}
	return f.record(to.ChannelID, Sent{Content: content, ReplyTo: to.ID}), nil
}

func (f *Fake) SendCard(_ context.Context, channelID string, card chat.Card) (chat.Message, error) {
	if f.SendCardErr != nil {
		return chat.Message{}, f.SendCardErr
	}
	return f.record(channelID, Sent{Card: &card}), nil
}

func (f *Fake) React(_ context.Context, msg chat.Message, symbol string) error {
	if f.ReactErr != nil {
		return f.ReactErr
	}

	f.mu.Lock()
	f.reacted[msg.ID] = append(f.reacted[msg.ID], symbol)
	hook := f.OnReact
	f.mu.Unlock()

	if hook != nil {
		hook(f, msg, symbol)
	}
	return nil
}

func (f *Fake) Reactions(_ context.Context, msg chat.Message) ([]chat.Reaction, error) {
	if f.ReactionErr != nil {
		return nil, f.ReactionErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]chat.Reaction, 0, len(f.Early))
	for _, r := range f.Early {
		r.MessageID = msg.ID
		out = append(out, r)
	}
	return out, nil
}

func (f *Fake) Subscribe(msg chat.Message) (<-chan chat.Reaction, func()) {
	return f.hub.Subscribe(msg.ID)
}

func (f *Fake) Delete(_ context.Context, msg chat.Message) error {
	f.mu.Lock()
	f.deleted[msg.ID]++
	f.mu.Unlock()

	return f.DeleteErr
}

// Inject delivers a reaction as if a user had just applied it.
func (f *Fake) Inject(r chat.Reaction) {
	f.hub.Publish(r)
}

// Sent returns a copy of every outbound message in order.
func (f *Fake) Sent() []Sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Sent(nil), f.sent...)
}

// Cards returns the cards sent, in order.
func (f *Fake) Cards() []chat.Card {
	f.mu.Lock()
	defer f.mu.Unlock()

	var cards []chat.Card
	for _, s := range f.sent {
		if s.Card != nil {
			cards = append(cards, *s.Card)
		}
	}
	return cards
}

// Reacted returns the symbols the bot attached to messageID, in order.
func (f *Fake) Reacted(messageID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.reacted[messageID]...)
}

// Deleted returns how many times messageID was deleted.
func (f *Fake) Deleted(messageID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleted[messageID]
}

// Subscribers returns the active reaction subscriptions for messageID.
func (f *Fake) Subscribers(messageID string) int {
	return f.hub.Subscribers(messageID)
}
