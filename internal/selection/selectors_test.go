package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kwehdev/discord-game-bot/internal/chat"
	"github.com/Kwehdev/discord-game-bot/internal/selection"
)

func TestNewSelectorSet_SizeAndUniqueness(t *testing.T) {
	t.Parallel()

	for n := 0; n <= selection.MaxChoices; n++ {
		set, err := selection.NewSelectorSet(n)
		require.NoError(t, err)
		require.Len(t, set, n+1, "n=%d", n)
		assert.Equal(t, selection.CancelSymbol, set[len(set)-1], "cancel must be last for n=%d", n)

		seen := make(map[string]bool, len(set))
		for _, s := range set {
			assert.False(t, seen[s], "duplicate selector %q for n=%d", s, n)
			seen[s] = true
		}
	}
}

func TestNewSelectorSet_TooMany(t *testing.T) {
	t.Parallel()

	_, err := selection.NewSelectorSet(selection.MaxChoices + 1)
	require.ErrorIs(t, err, selection.ErrTooManyCandidates)
}

func TestSelectorSet_Outcome(t *testing.T) {
	t.Parallel()

	set, err := selection.NewSelectorSet(3)
	require.NoError(t, err)

	got, ok := set.Outcome("2️⃣")
	require.True(t, ok)
	assert.Equal(t, selection.Chosen(1), got)

	got, ok = set.Outcome(selection.CancelSymbol)
	require.True(t, ok)
	assert.Equal(t, selection.Cancelled(), got)

	_, ok = set.Outcome("4️⃣")
	assert.False(t, ok)
}

func TestIsQualifying(t *testing.T) {
	t.Parallel()

	set, err := selection.NewSelectorSet(2)
	require.NoError(t, err)

	tests := []struct {
		name     string
		reaction chat.Reaction
		want     bool
	}{
		{name: "requester number", reaction: chat.Reaction{UserID: "req", Symbol: "1️⃣"}, want: true},
		{name: "requester cancel", reaction: chat.Reaction{UserID: "req", Symbol: selection.CancelSymbol}, want: true},
		{name: "other user number", reaction: chat.Reaction{UserID: "other", Symbol: "1️⃣"}, want: false},
		{name: "requester outside set", reaction: chat.Reaction{UserID: "req", Symbol: "3️⃣"}, want: false},
		{name: "requester unrelated emoji", reaction: chat.Reaction{UserID: "req", Symbol: "👍"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, selection.IsQualifying(tt.reaction, "req", set))
		})
	}
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "chosen(4)", selection.Chosen(4).String())
	assert.Equal(t, "cancelled", selection.Cancelled().String())
	assert.Equal(t, "timed_out", selection.TimedOut().String())
}
