package storefront_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kwehdev/discord-game-bot/internal/catalog"
	"github.com/Kwehdev/discord-game-bot/internal/storefront"
)

const fullDetailsJSON = `{"220":{"success":true,"data":{
  "type":"game","name":"Half-Life 2","steam_appid":220,"is_free":false,
  "short_description":"The <strong>Combine</strong> &amp; the resistance.",
  "header_image":"https://cdn.example.com/220/header.jpg",
  "developers":["Valve"],
  "price_overview":{"currency":"USD","initial":999,"final":199,"discount_percent":80,
    "initial_formatted":"$9.99","final_formatted":"$1.99"},
  "metacritic":{"score":96,"url":"https://www.metacritic.com/game/pc/half-life-2"},
  "recommendations":{"total":123456},
  "release_date":{"coming_soon":false,"date":"16 Nov, 2004"}}}}`

const sparseDetailsJSON = `{"620":{"success":true,"data":{
  "name":"Portal 2","steam_appid":620,"short_description":"Puzzles.",
  "header_image":"https://cdn.example.com/620/header.jpg",
  "release_date":{"coming_soon":false,"date":"18 Apr, 2011"}}}}`

var halfLife2 = catalog.Candidate{
	ID: 220, Slug: "HalfLife_2", DisplayName: "HalfLife 2",
	URL: "https://store.steampowered.com/app/220/HalfLife_2/",
}

func newResolver(t *testing.T, handler http.HandlerFunc) *storefront.Resolver {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return storefront.NewResolver(&http.Client{Timeout: 5 * time.Second}, storefront.Config{
		BaseURL:     srv.URL,
		CountryCode: "us",
		Language:    "english",
	})
}

func TestResolve_FullRecord(t *testing.T) {
	t.Parallel()

	r := newResolver(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/appdetails", req.URL.Path)
		assert.Equal(t, "220", req.URL.Query().Get("appids"))
		assert.Equal(t, "us", req.URL.Query().Get("cc"))
		assert.Equal(t, "english", req.URL.Query().Get("l"))
		_, _ = w.Write([]byte(fullDetailsJSON))
	})

	d, err := r.Resolve(context.Background(), halfLife2)

	require.NoError(t, err)
	assert.Equal(t, "Half-Life 2", d.Name)
	assert.Equal(t, "The Combine & the resistance.", d.ShortDescription)
	assert.Equal(t, []string{"Valve"}, d.Developers)
	require.NotNil(t, d.Price)
	assert.Equal(t, "$1.99", d.Price.FinalFormatted)
	require.NotNil(t, d.Metacritic)
	assert.Equal(t, 96, d.Metacritic.Score)
	require.NotNil(t, d.Recommendations)
	assert.Equal(t, 123456, d.Recommendations.Total)
	require.NotNil(t, d.ReleaseDate)
	assert.Equal(t, "16 Nov, 2004", d.ReleaseDate.Date)
}

func TestResolve_OptionalFieldsAbsent(t *testing.T) {
	t.Parallel()

	r := newResolver(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sparseDetailsJSON))
	})

	d, err := r.Resolve(context.Background(), catalog.Candidate{ID: 620, DisplayName: "Portal 2"})

	require.NoError(t, err)
	assert.Nil(t, d.Price)
	assert.Nil(t, d.Metacritic)
	assert.Nil(t, d.Recommendations)
	assert.Empty(t, d.Developers)
	require.NotNil(t, d.ReleaseDate)
}

func TestResolve_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "success false", body: `{"220":{"success":false}}`},
		{name: "missing entry", body: `{"999":{"success":true,"data":{"name":"Other"}}}`},
		{name: "success without data", body: `{"220":{"success":true}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newResolver(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := r.Resolve(context.Background(), halfLife2)

			require.ErrorIs(t, err, storefront.ErrNotFound)
		})
	}
}

func TestResolve_TransportErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"220":`))
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "down", http.StatusBadGateway)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newResolver(t, tt.handler)

			_, err := r.Resolve(context.Background(), halfLife2)

			require.Error(t, err)
			assert.NotErrorIs(t, err, storefront.ErrNotFound)
		})
	}
}

func TestResolve_UnreachableHost(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	r := storefront.NewResolver(&http.Client{Timeout: time.Second}, storefront.Config{BaseURL: base})

	_, err := r.Resolve(context.Background(), halfLife2)

	require.Error(t, err)
	assert.NotErrorIs(t, err, storefront.ErrNotFound)
}
