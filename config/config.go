package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the matching environment variable is unset.
const (
	DefaultPort       = "8080"
	DefaultHubAPIURL  = "http://localhost:3000"
	DefaultHubTimeout = 10 * time.Second
	DefaultBGGURL     = "https://boardgamegeek.com/xmlapi"
	DefaultCORSOrigin = "http://localhost:5173"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// HubAPIURL is the base URL of the hub backend every mutation goes to.
	HubAPIURL  string
	HubTimeout time.Duration

	// CombinePolicy is "literal" or "utc"; see timepoint.ParsePolicy.
	CombinePolicy string
	// Timezone is the venue's wall-clock zone used for opening hours and,
	// under the utc policy, for combining form fields.
	Timezone *time.Location
	// DisplayTimezone is the zone event cards are rendered in. It follows
	// Timezone unless HUB_DISPLAY_TZ is set.
	DisplayTimezone *time.Location

	CORSOrigins []string
	BGGAPIURL   string
	VenueFile   string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is the only source.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:   env,
		Port:          getenv("PORT", DefaultPort),
		HubAPIURL:     strings.TrimRight(getenv("HUB_API_URL", DefaultHubAPIURL), "/"),
		HubTimeout:    DefaultHubTimeout,
		CombinePolicy: strings.ToLower(strings.TrimSpace(os.Getenv("HUB_COMBINE_POLICY"))),
		BGGAPIURL:     strings.TrimRight(getenv("BGG_API_URL", DefaultBGGURL), "/"),
		VenueFile:     os.Getenv("HUB_VENUE_FILE"),
		CORSOrigins:   splitList(getenv("HUB_CORS_ORIGINS", DefaultCORSOrigin)),
	}

	if s := os.Getenv("HUB_API_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("HUB_API_TIMEOUT: invalid duration %q", s)
		}
		cfg.HubTimeout = d
	}

	var err error
	if cfg.Timezone, err = location("HUB_TIMEZONE", time.UTC); err != nil {
		return nil, err
	}
	if cfg.DisplayTimezone, err = location("HUB_DISPLAY_TZ", cfg.Timezone); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// location resolves an IANA zone name from key; unset means fallback.
func location(key string, fallback *time.Location) (*time.Location, error) {
	name := strings.TrimSpace(os.Getenv(key))
	if name == "" {
		return fallback, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return loc, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
