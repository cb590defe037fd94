package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	APIBaseURL       string        // Blog API base URL
	AssetsBaseURL    string        // Static asset (image) base URL
	RequestTimeout   time.Duration // Per-request HTTP timeout
	PostsFreshFor    time.Duration // Freshness window of the posts list
	AuthUserFreshFor time.Duration // Freshness window of the whoami lookup
	HintPath         string        // Location of the persisted logged_in flag
}

// Load reads configuration from the environment with sensible
// defaults. A .env file in the working directory is applied first
// without overriding already-set variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:8000/api"),
		AssetsBaseURL:    getEnv("ASSETS_BASE_URL", "http://localhost:8000/api/static"),
		RequestTimeout:   5 * time.Second,
		PostsFreshFor:    10 * time.Second,
		AuthUserFreshFor: 5 * time.Minute,
		HintPath:         getEnv("HINT_PATH", defaultHintPath()),
	}

	var err error
	if config.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", config.RequestTimeout); err != nil {
		return nil, err
	}
	if config.PostsFreshFor, err = durationEnv("POSTS_FRESH_FOR", config.PostsFreshFor); err != nil {
		return nil, err
	}
	if config.AuthUserFreshFor, err = durationEnv("AUTH_USER_FRESH_FOR", config.AuthUserFreshFor); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL cannot be empty")
	}

	if c.AssetsBaseURL == "" {
		return fmt.Errorf("ASSETS_BASE_URL cannot be empty")
	}

	if c.PostsFreshFor <= 0 || c.AuthUserFreshFor <= 0 {
		return fmt.Errorf("freshness windows must be positive")
	}

	return nil
}

func defaultHintPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "blogclient", "logged_in")
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %w", key, err)
	}
	return duration, nil
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
