package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "http://localhost:3000/api"
	defaultTimeout = 12 * time.Second
)

// Config holds the handful of knobs the client reads from the environment.
// Everything has a working default so the binary runs with zero setup
// against a local backend.
type Config struct {
	BaseURL     string        // CINEPASS_API_URL
	Timeout     time.Duration // CINEPASS_TIMEOUT_SECONDS
	MaxAttempts int           // CINEPASS_MAX_ATTEMPTS
}

// Load reads an optional .env file and then the environment. Missing or
// malformed values fall back to defaults; configuration is never fatal for
// a client.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:     defaultBaseURL,
		Timeout:     defaultTimeout,
		MaxAttempts: 3,
	}
	if v := os.Getenv("CINEPASS_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("CINEPASS_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("CINEPASS_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxAttempts = n
		}
	}
	return cfg
}
