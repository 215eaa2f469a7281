// Package catalog turns a storefront search page into an ordered list of
// selectable candidates.
package catalog

// MaxCandidates caps the number of candidates taken from one search page.
// It matches the number of distinct numbered selectors a session can offer.
const MaxCandidates = 10

// Candidate is one search result scraped from the storefront search page.
type Candidate struct {
	// ID is the catalog-assigned app id.
	ID int `json:"id"`
	// Slug is the raw name token from the result URL.
	Slug string `json:"slug"`
	// DisplayName is Slug formatted for humans.
	DisplayName string `json:"display_name"`
	// URL is the canonical store link for the result.
	URL string `json:"url"`
}
