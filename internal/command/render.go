package command

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Kwehdev/discord-game-bot/internal/catalog"
	"github.com/Kwehdev/discord-game-bot/internal/chat"
	"github.com/Kwehdev/discord-game-bot/internal/storefront"
)

// Detail card field names.
const (
	fieldReleaseDate     = "Release date"
	fieldMetacritic      = "Metacritic"
	fieldRecommendations = "Recommendations"
	fieldPrice           = "Price"
	fieldDevelopers      = "Developers"
)

var numberPrinter = message.NewPrinter(language.English)

// DetailCard renders d for the candidate it was resolved from. Fields the
// store did not report are left off.
func DetailCard(d *storefront.Detail, c catalog.Candidate) chat.Card {
	card := chat.Card{
		Title:       d.Name,
		Description: d.ShortDescription,
		URL:         c.URL,
		Image:       d.HeaderImage,
	}

	if d.ReleaseDate != nil && d.ReleaseDate.Date != "" {
		date := d.ReleaseDate.Date
		if d.ReleaseDate.ComingSoon {
			date += " (coming soon)"
		}
		card.Fields = append(card.Fields, chat.CardField{Name: fieldReleaseDate, Value: date, Inline: true})
	}

	if d.Metacritic != nil && d.Metacritic.Score > 0 {
		card.Fields = append(card.Fields, chat.CardField{
			Name:   fieldMetacritic,
			Value:  fmt.Sprintf("%d/100", d.Metacritic.Score),
			Inline: true,
		})
	}

	if d.Recommendations != nil && d.Recommendations.Total > 0 {
		card.Fields = append(card.Fields, chat.CardField{
			Name:   fieldRecommendations,
			Value:  numberPrinter.Sprintf("%d", d.Recommendations.Total),
			Inline: true,
		})
	}

	if price := formatPrice(d); price != "" {
		card.Fields = append(card.Fields, chat.CardField{Name: fieldPrice, Value: price, Inline: true})
	}

	if len(d.Developers) > 0 {
		card.Fields = append(card.Fields, chat.CardField{Name: fieldDevelopers, Value: strings.Join(d.Developers, ", ")})
	}

	return card
}

func formatPrice(d *storefront.Detail) string {
	switch {
	case d.IsFree:
		return "Free"
	case d.Price == nil || d.Price.FinalFormatted == "":
		return ""
	case d.Price.DiscountPercent > 0 && d.Price.InitialFormatted != "":
		return fmt.Sprintf("%s (-%d%%, was %s)", d.Price.FinalFormatted, d.Price.DiscountPercent, d.Price.InitialFormatted)
	default:
		return d.Price.FinalFormatted
	}
}
