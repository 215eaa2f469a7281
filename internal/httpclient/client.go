// Package httpclient builds the outbound HTTP clients used by the bot.
package httpclient

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds a whole request including reading the body.
	DefaultTimeout = 15 * time.Second

	defaultMaxIdleConns          = 20
	defaultMaxIdleConnsPerHost   = 5
	defaultIdleConnTimeout       = 90 * time.Second
	defaultResponseHeaderTimeout = 10 * time.Second
	defaultExpectContinueTimeout = 1 * time.Second
	defaultTLSHandshakeTimeout   = 10 * time.Second
)

// Config configures an HTTP client. Zero values use the package defaults.
type Config struct {
	Timeout               time.Duration
	ResponseHeaderTimeout time.Duration
	MaxIdleConnsPerHost   int
}

// NewTransport returns a transport with bounded handshakes and idle pools.
func NewTransport(cfg Config) *http.Transport {
	responseHeaderTimeout := cfg.ResponseHeaderTimeout
	if responseHeaderTimeout <= 0 {
		responseHeaderTimeout = defaultResponseHeaderTimeout
	}
	maxIdlePerHost := cfg.MaxIdleConnsPerHost
	if maxIdlePerHost <= 0 {
		maxIdlePerHost = defaultMaxIdleConnsPerHost
	}

	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          defaultMaxIdleConns,
		MaxIdleConnsPerHost:   maxIdlePerHost,
		IdleConnTimeout:       defaultIdleConnTimeout,
		ResponseHeaderTimeout: responseHeaderTimeout,
		ExpectContinueTimeout: defaultExpectContinueTimeout,
		TLSHandshakeTimeout:   defaultTLSHandshakeTimeout,
	}
}

// New creates an HTTP client with an explicit overall timeout.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: NewTransport(cfg),
	}
}
