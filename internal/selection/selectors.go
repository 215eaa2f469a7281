// Package selection runs the reaction-driven choice between search candidates.
package selection

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Kwehdev/discord-game-bot/internal/chat"
)

// CancelSymbol withdraws the candidate list without choosing.
const CancelSymbol = "❌"

// NumberSymbols are the keycap selectors for positions 1 to 10.
var NumberSymbols = [...]string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// MaxChoices is the largest candidate list a session can offer.
const MaxChoices = len(NumberSymbols)

// ErrTooManyCandidates is returned for lists longer than MaxChoices.
var ErrTooManyCandidates = errors.New("too many candidates for the available selectors")

// SelectorSet is one numbered symbol per candidate followed by CancelSymbol.
type SelectorSet []string

// NewSelectorSet builds the selectors for n candidates.
func NewSelectorSet(n int) (SelectorSet, error) {
	if n < 0 || n > MaxChoices {
		return nil, fmt.Errorf("%d candidates: %w", n, ErrTooManyCandidates)
	}

	set := make(SelectorSet, 0, n+1)
	set = append(set, NumberSymbols[:n]...)
	return append(set, CancelSymbol), nil
}

// Contains reports whether symbol is one of the set's selectors.
func (s SelectorSet) Contains(symbol string) bool {
	return slices.Contains(s, symbol)
}

// Outcome maps a member symbol to the outcome it stands for.
// The second result is false when symbol is not in the set.
func (s SelectorSet) Outcome(symbol string) (Outcome, bool) {
	i := slices.Index(s, symbol)
	switch {
	case i < 0:
		return Outcome{}, false
	case symbol == CancelSymbol:
		return Cancelled(), true
	default:
		return Chosen(i), true
	}
}

// IsQualifying reports whether r may resolve a session started by
// requesterID with selectors. Both the early check and the live stream use it.
func IsQualifying(r chat.Reaction, requesterID string, selectors SelectorSet) bool {
	return r.UserID == requesterID && selectors.Contains(r.Symbol)
}
