package catalog

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	colly "github.com/gocolly/colly/v2"

	"github.com/Kwehdev/discord-game-bot/internal/throttle"
)

// Fetcher defaults
const (
	DefaultBaseURL        = "https://store.steampowered.com"
	DefaultUserAgent      = "DiscordGameBot/1.0"
	DefaultRequestTimeout = 15 * time.Second
	defaultMaxBodySize    = 4 * 1024 * 1024
)

// FetcherConfig configures the search page fetcher.
type FetcherConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout time.Duration
	// Transport overrides the collector's round tripper when set.
	Transport http.RoundTripper
	Limiter   *throttle.Limiter
}

// Fetcher downloads and parses storefront search pages.
type Fetcher struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	transport http.RoundTripper
	limiter   *throttle.Limiter
}

// NewFetcher creates a Fetcher, filling zero config values with defaults.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	return &Fetcher{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		timeout:   cfg.RequestTimeout,
		transport: cfg.Transport,
		limiter:   cfg.Limiter,
	}
}

// SearchURL returns the search page URL for the given query tokens.
func (f *Fetcher) SearchURL(query []string) string {
	values := url.Values{}
	values.Set("term", strings.Join(query, " "))
	return f.baseURL + "/search/?" + values.Encode()
}

// Fetch downloads the search page for query and parses it.
func (f *Fetcher) Fetch(ctx context.Context, query []string) (*goquery.Document, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	collector := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.UserAgent(f.userAgent),
		colly.MaxBodySize(defaultMaxBodySize),
		colly.IgnoreRobotsTxt(),
		colly.AllowURLRevisit(),
	)
	collector.SetRequestTimeout(f.timeout)
	if f.transport != nil {
		collector.WithTransport(f.transport)
	}

	var (
		doc      *goquery.Document
		parseErr error
	)
	collector.OnResponse(func(r *colly.Response) {
		doc, parseErr = goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
	})

	target := f.SearchURL(query)
	if err := collector.Visit(target); err != nil {
		return nil, fmt.Errorf("fetch search page %s: %w", target, err)
	}
	if parseErr != nil {
		return nil, fmt.Errorf("parse search page: %w", parseErr)
	}
	if doc == nil {
		return nil, fmt.Errorf("fetch search page %s: empty response", target)
	}

	return doc, nil
}

// Search fetches the search page for query and extracts its candidates.
func (f *Fetcher) Search(ctx context.Context, query []string) ([]Candidate, error) {
	doc, err := f.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	return Extract(doc)
}
