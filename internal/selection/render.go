package selection

import (
	"fmt"
	"strings"

	"github.com/Kwehdev/discord-game-bot/internal/catalog"
	"github.com/Kwehdev/discord-game-bot/internal/chat"
)

const (
	pickInstructions   = "💡 React with a number (1️⃣, 2️⃣) to filter your results.\n\n"
	cancelInstructions = "😢 React with ❌ to delete.\n"
)

// ListCard renders the numbered candidate list for req.
func ListCard(req Request) chat.Card {
	var b strings.Builder
	for i, c := range req.Candidates {
		fmt.Fprintf(&b, "%d. %s\n", i+1, markdownLink(c))
	}
	b.WriteString(pickInstructions)
	b.WriteString(cancelInstructions)

	return chat.Card{
		Title:       req.Title,
		URL:         req.URL,
		Description: b.String(),
	}
}

func markdownLink(c catalog.Candidate) string {
	return "[" + c.DisplayName + "](" + c.URL + ")"
}
