package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string
	AlpacaKey     string
	AlpacaSecret  string
	AlpacaBaseURL string
	AlpacaDataURL string
	HTTPTimeout   time.Duration
	AllowedOrigin string
}

func Load() (Config, error) {
	// Best effort, same as the frontend's .env.local convention.
	_ = godotenv.Load()

	var c Config
	var missing []string
	c.AlpacaKey = os.Getenv("ALPACA_API_KEY")
	if c.AlpacaKey == "" {
		missing = append(missing, "ALPACA_API_KEY")
	}
	c.AlpacaSecret = os.Getenv("ALPACA_API_SECRET")
	if c.AlpacaSecret == "" {
		missing = append(missing, "ALPACA_API_SECRET")
	}
	c.HTTPAddr = os.Getenv("HTTP_ADDR")
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8000"
	}
	c.AlpacaBaseURL = strings.TrimRight(os.Getenv("ALPACA_BASE_URL"), "/")
	if c.AlpacaBaseURL == "" {
		c.AlpacaBaseURL = "https://paper-api.alpaca.markets"
	}
	c.AlpacaDataURL = strings.TrimRight(os.Getenv("ALPACA_DATA_URL"), "/")
	if c.AlpacaDataURL == "" {
		c.AlpacaDataURL = "https://data.alpaca.markets"
	}
	c.HTTPTimeout = 10 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, errors.New("invalid HTTP_TIMEOUT: " + v)
		}
		c.HTTPTimeout = d
	}
	c.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	if c.AllowedOrigin == "" {
		c.AllowedOrigin = "http://localhost:3000"
	}
	if len(missing) > 0 {
		return c, errors.New("missing required env: " + strings.Join(missing, ","))
	}
	return c, nil
}
