package config

import (
	"time"

	"github.com/Kwehdev/discord-game-bot/internal/logger"
)

// Config represents the application configuration.
type Config struct {
	// App holds application metadata
	App AppConfig `mapstructure:"app" yaml:"app"`
	// Logger holds logging configuration
	Logger logger.Config `mapstructure:"logger" yaml:"logger"`
	// Discord holds chat connection settings
	Discord DiscordConfig `mapstructure:"discord" yaml:"discord"`
	// Store holds storefront access settings
	Store StoreConfig `mapstructure:"store" yaml:"store"`
	// Selection holds interactive selection timing
	Selection SelectionConfig `mapstructure:"selection" yaml:"selection"`
	// Server holds the health and metrics server settings
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// AppConfig represents application-specific configuration settings.
type AppConfig struct {
	// Name is the name of the application
	Name string `mapstructure:"name" yaml:"name"`
	// Version is the version of the application
	Version string `mapstructure:"version" yaml:"version"`
	// Environment is the application environment (development, staging, production)
	Environment string `mapstructure:"environment" yaml:"environment"`
	// Debug forces debug logging
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// DiscordConfig holds the bot credentials and command prefix.
type DiscordConfig struct {
	Token  string `mapstructure:"token" yaml:"token"`
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
}

// StoreConfig configures search scraping and detail lookups.
type StoreConfig struct {
	BaseURL        string        `mapstructure:"base_url" yaml:"base_url"`
	CountryCode    string        `mapstructure:"country_code" yaml:"country_code"`
	Language       string        `mapstructure:"language" yaml:"language"`
	UserAgent      string        `mapstructure:"user_agent" yaml:"user_agent"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	// RequestsPerSecond caps outbound store requests; 0 disables the cap.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `mapstructure:"burst" yaml:"burst"`
}

// SelectionConfig holds selection and transient message timings.
type SelectionConfig struct {
	Timeout        time.Duration `mapstructure:"timeout" yaml:"timeout"`
	NoMatchTTL     time.Duration `mapstructure:"no_match_ttl" yaml:"no_match_ttl"`
	CleanupTimeout time.Duration `mapstructure:"cleanup_timeout" yaml:"cleanup_timeout"`
}

// ServerConfig represents the operational HTTP server settings.
type ServerConfig struct {
	Enabled      bool          `mapstructure:"enabled" yaml:"enabled"`
	Address      string        `mapstructure:"address" yaml:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
}
