// Package config loads the bot configuration from a YAML file, a .env file
// and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environments
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

const redacted = "********"

// ErrMissingToken is returned when the bot is started without credentials.
var ErrMissingToken = errors.New("discord token must be specified (DISCORD_TOKEN)")

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string][]string{
	"app.environment":           {"APP_ENV"},
	"app.debug":                 {"APP_DEBUG"},
	"logger.level":              {"LOG_LEVEL"},
	"logger.encoding":           {"LOG_FORMAT"},
	"discord.token":             {"DISCORD_TOKEN"},
	"discord.prefix":            {"BOT_PREFIX"},
	"store.base_url":            {"STORE_BASE_URL"},
	"store.country_code":        {"STORE_COUNTRY_CODE"},
	"store.language":            {"STORE_LANGUAGE"},
	"store.user_agent":          {"STORE_USER_AGENT"},
	"store.request_timeout":     {"STORE_REQUEST_TIMEOUT"},
	"store.requests_per_second": {"STORE_REQUESTS_PER_SECOND"},
	"store.burst":               {"STORE_BURST"},
	"selection.timeout":         {"SELECTION_TIMEOUT"},
	"selection.no_match_ttl":    {"SELECTION_NO_MATCH_TTL"},
	"selection.cleanup_timeout": {"SELECTION_CLEANUP_TIMEOUT"},
	"server.enabled":            {"SERVER_ENABLED"},
	"server.address":            {"SERVER_ADDRESS"},
	"server.read_timeout":       {"SERVER_READ_TIMEOUT"},
	"server.write_timeout":      {"SERVER_WRITE_TIMEOUT"},
	"server.idle_timeout":       {"SERVER_IDLE_TIMEOUT"},
}

// Load reads configuration. path may be empty, in which case config.yaml is
// looked up in the working directory and ./config; a missing file is not an
// error. A .env file in the working directory is loaded when present.
func Load(path string) (*Config, error) {
	// Existing environment variables win over .env.
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	applyEnvironment(&cfg)

	return &cfg, nil
}

func bindEnv(v *viper.Viper) error {
	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("bind %s: %w", strings.Join(envs, ","), err)
		}
	}
	return nil
}

// SetDefaults registers production-safe defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app", map[string]any{
		"name":        "discord-game-bot",
		"version":     "1.0.0",
		"environment": EnvProduction,
		"debug":       false,
	})

	v.SetDefault("logger", map[string]any{
		"level":        "info",
		"development":  false,
		"encoding":     "json",
		"output_paths": []string{"stdout"},
	})

	v.SetDefault("discord", map[string]any{
		"prefix": "?",
	})

	v.SetDefault("store", map[string]any{
		"base_url":            "https://store.steampowered.com",
		"country_code":        "us",
		"language":            "english",
		"user_agent":          "DiscordGameBot/1.0",
		"request_timeout":     "15s",
		"requests_per_second": 5,
		"burst":               5,
	})

	v.SetDefault("selection", map[string]any{
		"timeout":         "30s",
		"no_match_ttl":    "30s",
		"cleanup_timeout": "10s",
	})

	v.SetDefault("server", map[string]any{
		"enabled":       true,
		"address":       ":8080",
		"read_timeout":  "15s",
		"write_timeout": "15s",
		"idle_timeout":  "60s",
	})
}

// applyEnvironment adjusts logging for the app environment and debug flag.
func applyEnvironment(cfg *Config) {
	if cfg.App.Environment == EnvDevelopment {
		cfg.Logger.Development = true
		if os.Getenv("LOG_FORMAT") == "" {
			cfg.Logger.Encoding = "console"
		}
	}
	if cfg.App.Debug {
		cfg.Logger.Level = "debug"
	}
}

// Validate checks the settings every command needs.
func (c *Config) Validate() error {
	switch c.App.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return fmt.Errorf("invalid environment: %q", c.App.Environment)
	}

	if c.Store.BaseURL == "" {
		return errors.New("store base url must be specified")
	}
	if c.Store.RequestTimeout <= 0 {
		return errors.New("store request timeout must be positive")
	}
	if c.Store.RequestsPerSecond < 0 {
		return errors.New("store requests per second must not be negative")
	}
	if c.Selection.Timeout <= 0 {
		return errors.New("selection timeout must be positive")
	}

	return nil
}

// ValidateBot additionally checks what running the bot needs.
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Discord.Token == "" {
		return ErrMissingToken
	}
	if strings.TrimSpace(c.Discord.Prefix) == "" {
		return errors.New("command prefix must not be blank")
	}
	if c.Server.Enabled && c.Server.Address == "" {
		return errors.New("server address must be specified when the server is enabled")
	}
	return nil
}

// Redacted returns a copy of c that is safe to print.
func (c *Config) Redacted() Config {
	out := *c
	if out.Discord.Token != "" {
		out.Discord.Token = redacted
	}
	return out
}
