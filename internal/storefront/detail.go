// Package storefront resolves a chosen search candidate into its store details.
package storefront

// Detail is the subset of the appdetails payload the bot renders.
// Pointer and slice fields are nil when the store omits them.
type Detail struct {
	AppID            int              `json:"steam_appid"`
	Name             string           `json:"name"`
	ShortDescription string           `json:"short_description"`
	HeaderImage      string           `json:"header_image"`
	IsFree           bool             `json:"is_free"`
	Developers       []string         `json:"developers,omitempty"`
	Price            *Price           `json:"price_overview,omitempty"`
	ReleaseDate      *ReleaseDate     `json:"release_date,omitempty"`
	Metacritic       *Metacritic      `json:"metacritic,omitempty"`
	Recommendations  *Recommendations `json:"recommendations,omitempty"`
}

// Price is the store's current price in the requested country.
type Price struct {
	Currency         string `json:"currency"`
	DiscountPercent  int    `json:"discount_percent"`
	InitialFormatted string `json:"initial_formatted"`
	FinalFormatted   string `json:"final_formatted"`
}

// ReleaseDate is the store's free-form release date.
type ReleaseDate struct {
	ComingSoon bool   `json:"coming_soon"`
	Date       string `json:"date"`
}

// Metacritic holds the critic score.
type Metacritic struct {
	Score int    `json:"score"`
	URL   string `json:"url"`
}

// Recommendations holds the user recommendation count.
type Recommendations struct {
	Total int `json:"total"`
}

// appDetailsEntry is one value of the appdetails response, keyed by app id.
type appDetailsEntry struct {
	Success bool    `json:"success"`
	Data    *Detail `json:"data"`
}
