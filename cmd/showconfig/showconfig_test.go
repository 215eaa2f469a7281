package showconfig_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Kwehdev/discord-game-bot/cmd/showconfig"
	"github.com/Kwehdev/discord-game-bot/internal/config"
)

func TestWrite_MasksTokenAndRoundTrips(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		App:       config.AppConfig{Name: "discord-game-bot", Environment: config.EnvProduction},
		Discord:   config.DiscordConfig{Token: "secret", Prefix: "?"},
		Store:     config.StoreConfig{BaseURL: "https://store.steampowered.com", RequestTimeout: 15 * time.Second},
		Selection: config.SelectionConfig{Timeout: 30 * time.Second},
	}

	var out bytes.Buffer
	require.NoError(t, showconfig.Write(&out, cfg))

	assert.NotContains(t, out.String(), "secret")
	assert.Contains(t, out.String(), "base_url: https://store.steampowered.com")

	var decoded config.Config
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "********", decoded.Discord.Token)
	assert.Equal(t, 30*time.Second, decoded.Selection.Timeout)
	assert.Equal(t, "secret", cfg.Discord.Token)
}
