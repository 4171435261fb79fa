// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	// MaxFormTimeout bounds STUDIOSITE_FORM_TIMEOUT. The contact POST waits
	// for the form endpoint inline, so the server write deadline grows with it.
	MaxFormTimeout = 2 * time.Minute

	// RenderMargin is the time a POST handler gets to render and write its
	// response after the form endpoint call has given up.
	RenderMargin = 5 * time.Second
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr    string        `env:"STUDIOSITE_LISTEN_ADDR" envDefault:"127.0.0.1:8080"`
	FormEndpoint  string        `env:"STUDIOSITE_FORM_ENDPOINT" envDefault:"https://formspree.io/f/nodestree"`
	FormTimeout   time.Duration `env:"STUDIOSITE_FORM_TIMEOUT" envDefault:"30s"`
	FormTTL       time.Duration `env:"STUDIOSITE_FORM_TTL" envDefault:"30m"`
	MaxForms      int           `env:"STUDIOSITE_MAX_FORMS" envDefault:"10000"`
	ContentPath   string        `env:"STUDIOSITE_CONTENT_PATH"`
	SecureCookies bool          `env:"STUDIOSITE_SECURE_COOKIES" envDefault:"false"`
	LogLevel      string        `env:"STUDIOSITE_LOG_LEVEL" envDefault:"info"`
	OTelEndpoint  string        `env:"STUDIOSITE_OTEL_ENDPOINT"`
}

// Load reads configuration from environment variables and returns a validated Config.
// Every variable is optional. STUDIOSITE_FORM_ENDPOINT must be an absolute
// http(s) URL; FORM_TIMEOUT must be positive and at most MaxFormTimeout.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.FormEndpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("STUDIOSITE_FORM_ENDPOINT must be an absolute http(s) URL, got %q", c.FormEndpoint)
	}
	if c.FormTimeout <= 0 || c.FormTimeout > MaxFormTimeout {
		return fmt.Errorf("STUDIOSITE_FORM_TIMEOUT must be in (0, %s], got %s", MaxFormTimeout, c.FormTimeout)
	}
	if c.FormTTL <= 0 {
		return fmt.Errorf("STUDIOSITE_FORM_TTL must be positive, got %s", c.FormTTL)
	}
	if c.MaxForms <= 0 {
		return fmt.Errorf("STUDIOSITE_MAX_FORMS must be positive, got %d", c.MaxForms)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// WriteTimeout returns the HTTP server write deadline. It outlasts the form
// endpoint timeout so a failed send still reaches the visitor as an error
// fragment instead of a dropped connection.
func (c *Config) WriteTimeout() time.Duration {
	return ServerWriteTimeout(c.FormTimeout)
}

// ShutdownTimeout returns how long graceful shutdown drains in-flight
// requests. It covers a contact submit that started just before the signal.
func (c *Config) ShutdownTimeout() time.Duration {
	return ServerWriteTimeout(c.FormTimeout)
}

// ServerWriteTimeout returns the write deadline for a server whose handlers
// wait up to formTimeout on the form endpoint.
func ServerWriteTimeout(formTimeout time.Duration) time.Duration {
	return formTimeout + RenderMargin
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// TracingEnabled returns true when an OTLP endpoint is configured.
func (c *Config) TracingEnabled() bool {
	return c.OTelEndpoint != ""
}

func parseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("STUDIOSITE_LOG_LEVEL has invalid level %q", raw)
	}
}
