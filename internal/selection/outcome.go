package selection

import "fmt"

// Kind tags an Outcome.
type Kind int

const (
	// KindTimedOut means no qualifying reaction arrived in time.
	KindTimedOut Kind = iota
	// KindCancelled means the requester applied CancelSymbol.
	KindCancelled
	// KindChosen means the requester picked a candidate.
	KindChosen
)

func (k Kind) String() string {
	switch k {
	case KindTimedOut:
		return "timed_out"
	case KindCancelled:
		return "cancelled"
	case KindChosen:
		return "chosen"
	default:
		return "unknown"
	}
}

// Outcome is the single result of a session. Index is only meaningful for
// KindChosen.
type Outcome struct {
	Kind  Kind
	Index int
}

// Chosen returns the outcome for the candidate at index.
func Chosen(index int) Outcome { return Outcome{Kind: KindChosen, Index: index} }

// Cancelled returns the cancel outcome.
func Cancelled() Outcome { return Outcome{Kind: KindCancelled} }

// TimedOut returns the timeout outcome.
func TimedOut() Outcome { return Outcome{Kind: KindTimedOut} }

func (o Outcome) String() string {
	if o.Kind == KindChosen {
		return fmt.Sprintf("chosen(%d)", o.Index)
	}
	return o.Kind.String()
}
