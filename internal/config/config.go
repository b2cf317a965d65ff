// Package config provides environment-driven configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the server settings read from the environment. Gemini,
// YouTube and news API keys are optional; the features they back
// degrade to fallbacks when absent.
type Config struct {
	Port         string
	DatabaseURL  string
	GeminiAPIKey string
	YouTubeKey   string
	NewsAPIKey   string
	NewsProvider string
	NewsCacheTTL time.Duration
}

// FromEnv loads the server configuration. DATABASE_URL is required;
// everything else has a default or is optional.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:         os.Getenv("PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		YouTubeKey:   os.Getenv("YOUTUBE_API_KEY"),
		NewsAPIKey:   os.Getenv("NEWS_API_KEY"),
		NewsProvider: os.Getenv("NEWS_PROVIDER"),
		NewsCacheTTL: 60 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	if raw := os.Getenv("NEWS_CACHE_TTL_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("invalid NEWS_CACHE_TTL_MS: %q", raw)
		}
		cfg.NewsCacheTTL = time.Duration(ms) * time.Millisecond
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
