package catalog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resultSelector matches page-1 result rows on the storefront search page.
const resultSelector = `[data-search-page="1"]`

// Positions of the id and slug in a result link split on "/":
// https://store.steampowered.com/app/{id}/{slug}/?snr=...
const (
	linkIDSegment   = 4
	linkSlugSegment = 5
)

// ErrExtraction is returned when result rows exist but none could be parsed.
// It signals that the storefront markup changed, not that nothing matched.
var ErrExtraction = errors.New("error retrieving data from result nodes")

// Extract reads up to MaxCandidates result rows from doc in document order.
// A page without result rows yields an empty slice and no error.
func Extract(doc *goquery.Document) ([]Candidate, error) {
	nodes := doc.Find(resultSelector)
	if nodes.Length() == 0 {
		return []Candidate{}, nil
	}

	candidates := make([]Candidate, 0, MaxCandidates)
	nodes.Slice(0, min(nodes.Length(), MaxCandidates)).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		if c, parsed := parseResultLink(href); parsed {
			candidates = append(candidates, c)
		}
	})

	if len(candidates) == 0 {
		return nil, ErrExtraction
	}

	return candidates, nil
}

// parseResultLink is the only place that knows the layout of a result URL.
func parseResultLink(href string) (Candidate, bool) {
	segments := strings.Split(href, "/")
	if len(segments) <= linkSlugSegment {
		return Candidate{}, false
	}

	id, err := strconv.Atoi(segments[linkIDSegment])
	if err != nil || id <= 0 {
		return Candidate{}, false
	}

	slug := segments[linkSlugSegment]
	if slug == "" {
		return Candidate{}, false
	}

	return Candidate{
		ID:          id,
		Slug:        slug,
		DisplayName: FormatName(slug),
		URL:         href,
	}, true
}
