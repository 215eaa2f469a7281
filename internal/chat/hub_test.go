package chat_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Kwehdev/discord-game-bot/internal/chat"
)

func TestHub_DeliversOnlyToMatchingMessage(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := chat.NewHub()
	first, cancelFirst := hub.Subscribe("m1")
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe("m2")
	defer cancelSecond()

	hub.Publish(chat.Reaction{MessageID: "m1", UserID: "u1", Symbol: "1️⃣"})

	select {
	case got := <-first:
		assert.Equal(t, "u1", got.UserID)
	case <-time.After(time.Second):
		t.Fatal("subscriber of m1 did not receive the reaction")
	}

	select {
	case got := <-second:
		t.Fatalf("subscriber of m2 received %+v", got)
	default:
	}
}

func TestHub_FanOutToAllSubscribers(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := chat.NewHub()
	a, cancelA := hub.Subscribe("m1")
	defer cancelA()
	b, cancelB := hub.Subscribe("m1")
	defer cancelB()

	hub.Publish(chat.Reaction{MessageID: "m1", UserID: "u1", Symbol: "❌"})

	assert.Equal(t, "❌", (<-a).Symbol)
	assert.Equal(t, "❌", (<-b).Symbol)
}

func TestHub_CancelRemovesSubscription(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := chat.NewHub()
	_, cancel := hub.Subscribe("m1")
	require.Equal(t, 1, hub.Subscribers("m1"))

	cancel()
	cancel()

	assert.Equal(t, 0, hub.Subscribers("m1"))
	hub.Publish(chat.Reaction{MessageID: "m1"})
}

func TestHub_PublishDoesNotBlockOnCancelledSubscriber(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := chat.NewHub()
	_, cancel := hub.Subscribe("m1")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// Overfill the buffer; the publisher must unblock once cancelled.
		for range 100 {
			hub.Publish(chat.Reaction{MessageID: "m1", UserID: "spam"})
		}
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	wg.Wait()
}
