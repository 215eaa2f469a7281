package chat

import "sync"

// subscriberBuffer absorbs the bot's own selector reactions echoed back by
// the gateway while a session is still attaching controls.
const subscriberBuffer = 32

type subscription struct {
	ch   chan Reaction
	done chan struct{}
	once sync.Once
}

// Hub fans reaction events out to subscribers of the reacted message.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*subscription]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*subscription]struct{})}
}

// Subscribe registers interest in reactions on messageID.
func (h *Hub) Subscribe(messageID string) (<-chan Reaction, func()) {
	sub := &subscription{
		ch:   make(chan Reaction, subscriberBuffer),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	if h.subs[messageID] == nil {
		h.subs[messageID] = make(map[*subscription]struct{})
	}
	h.subs[messageID][sub] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		sub.once.Do(func() {
			close(sub.done)

			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[messageID], sub)
			if len(h.subs[messageID]) == 0 {
				delete(h.subs, messageID)
			}
		})
	}

	return sub.ch, cancel
}

// Publish delivers r to every current subscriber of r.MessageID.
// It blocks only while a subscriber's buffer is full and it is still active.
func (h *Hub) Publish(r Reaction) {
	h.mu.Lock()
	targets := make([]*subscription, 0, len(h.subs[r.MessageID]))
	for sub := range h.subs[r.MessageID] {
		targets = append(targets, sub)
	}
	h.mu.Unlock()

	for _, sub := range targets {
		select {
		case sub.ch <- r:
		case <-sub.done:
		}
	}
}

// Subscribers returns the number of active subscriptions for messageID.
func (h *Hub) Subscribers(messageID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[messageID])
}
