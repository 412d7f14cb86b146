// Package config loads process configuration for the concerto
// binaries.
//
// Precedence, low to high: built-in defaults, a YAML file named by
// CONCERTO_CONFIG, then CONCERTO_-prefixed environment variables. A
// .env file is read first outside production so local runs can keep
// the API key out of the shell.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/concerto-events/concerto/internal/logger"
)

// Config contains process configuration.
type Config struct {
	// APIKey authenticates against the Ticketmaster Discovery API.
	APIKey string `koanf:"api_key"`

	// BaseURL overrides the provider endpoint, mainly for tests.
	BaseURL string `koanf:"base_url"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DefaultRadiusMiles bounds geographic searches without an
	// explicit radius.
	DefaultRadiusMiles int `koanf:"default_radius_miles"`

	// PageSize is the provider page size requested per search.
	PageSize int `koanf:"page_size"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		BaseURL:            "https://app.ticketmaster.com/discovery/v2",
		Addr:               ":8080",
		DefaultRadiusMiles: 20,
		PageSize:           100,
		LogLevel:           "info",
	}
}

// Load builds a Config by layering defaults, an optional YAML file,
// and environment variables.
func Load() (*Config, error) {
	// .env is a local-development convenience; in production we rely
	// on real environment variables.
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file loaded", logger.Fields{"reason": err.Error()})
		}
	}

	k := koanf.New(".")

	if path := os.Getenv("CONCERTO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// CONCERTO_API_KEY -> api_key, CONCERTO_LOG_LEVEL -> log_level, ...
	envProvider := env.Provider("CONCERTO_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "concerto_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	return &cfg, nil
}
