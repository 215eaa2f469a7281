package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Kwehdev/discord-game-bot/internal/catalog"
	"github.com/Kwehdev/discord-game-bot/internal/throttle"
)

// DefaultBaseURL is the public storefront API host.
const DefaultBaseURL = "https://store.steampowered.com"

// maxResponseBodyBytes bounds the appdetails payload.
const maxResponseBodyBytes = 2 * 1024 * 1024

// ErrNotFound is returned when the store answers but has no data for the app.
// Delisted or region-locked apps end up here.
var ErrNotFound = errors.New("app details not found")

// Config configures a Resolver.
type Config struct {
	BaseURL     string
	CountryCode string
	Language    string
	Limiter     *throttle.Limiter
}

// Resolver looks up app details by candidate id.
type Resolver struct {
	client    *http.Client
	baseURL   string
	country   string
	language  string
	limiter   *throttle.Limiter
	sanitizer *bluemonday.Policy
}

// NewResolver creates a Resolver. client must carry its own timeout.
func NewResolver(client *http.Client, cfg Config) *Resolver {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &Resolver{
		client:    client,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		country:   cfg.CountryCode,
		language:  cfg.Language,
		limiter:   cfg.Limiter,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Resolve fetches details for c. It returns ErrNotFound when the store
// reports no data for the id and a wrapped transport error for anything
// that went wrong on the way.
func (r *Resolver) Resolve(ctx context.Context, c catalog.Candidate) (*Detail, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	appID := strconv.Itoa(c.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.detailsURL(appID), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build appdetails request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("appdetails request for %s: %w", appID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("appdetails request for %s: unexpected status %d", appID, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read appdetails response: %w", err)
	}

	var payload map[string]appDetailsEntry
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode appdetails response: %w", err)
	}

	entry, ok := payload[appID]
	if !ok || !entry.Success || entry.Data == nil {
		return nil, fmt.Errorf("app %s: %w", appID, ErrNotFound)
	}

	detail := entry.Data
	detail.ShortDescription = r.cleanText(detail.ShortDescription)
	if detail.Name == "" {
		detail.Name = c.DisplayName
	}

	return detail, nil
}

func (r *Resolver) detailsURL(appID string) string {
	values := url.Values{}
	values.Set("appids", appID)
	if r.country != "" {
		values.Set("cc", r.country)
	}
	if r.language != "" {
		values.Set("l", r.language)
	}
	return r.baseURL + "/api/appdetails?" + values.Encode()
}

// cleanText strips markup the store embeds in descriptions.
func (r *Resolver) cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(r.sanitizer.Sanitize(s)))
}
