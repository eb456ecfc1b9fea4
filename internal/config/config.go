// Package config holds the process-wide configuration for the quote service
// and the CLI, loaded once at startup from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Port is the service listen port.
	Port int `json:"port"`
	// BaseURL is the service address the CLI talks to.
	BaseURL string `json:"base_url"`
	// HTTPTimeoutSec bounds every client request to the service.
	HTTPTimeoutSec int `json:"http_timeout_sec"`
	// MarketSuffix is appended to bare tickers before the provider lookup.
	MarketSuffix string `json:"market_suffix"`
}

// Default returns the configuration with built-in defaults, overridden by
// environment variables (a .env file is honored when present).
func Default() *Config {
	cfg := &Config{
		Port:           8000,
		BaseURL:        "http://localhost:8000",
		HTTPTimeoutSec: 30,
		MarketSuffix:   ".TO",
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("TSXWATCH_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.Port = port
		}
	}
	if val := os.Getenv("TSXWATCH_BASE_URL"); val != "" {
		c.BaseURL = val
	}
	if val := os.Getenv("TSXWATCH_HTTP_TIMEOUT_SEC"); val != "" {
		if sec, err := strconv.Atoi(val); err == nil {
			c.HTTPTimeoutSec = sec
		}
	}
	if val := os.Getenv("MARKET_SUFFIX"); val != "" {
		c.MarketSuffix = val
	}
}
