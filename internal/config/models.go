package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/muurk/mylibrarybook/internal/urls"
)

// CurrentVersion is the only config file version this build understands.
const CurrentVersion = 1

const (
	DefaultTimeoutSeconds = 15
	DefaultDebounceMillis = 300
	MinDebounceMillis     = 50
	MaxDebounceMillis     = 5000
	DefaultStartCategory  = "science_fiction"
)

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int          `yaml:"version" toml:"version"`
	API         *APIConfig   `yaml:"api,omitempty" toml:"api,omitempty"`
	Preferences *Preferences `yaml:"preferences,omitempty" toml:"preferences,omitempty"`
}

// APIConfig describes where book data comes from.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" toml:"base_url"`                         // Open Library API root
	CoversURL      string `yaml:"covers_url" toml:"covers_url"`                     // Cover image host
	ArchiveURL     string `yaml:"archive_url" toml:"archive_url"`                   // Reader link root
	TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds"`           // Per-request timeout
	UserAgent      string `yaml:"user_agent,omitempty" toml:"user_agent,omitempty"` // Empty means the built-in agent
}

// Preferences represents browser behaviour the user can tune.
type Preferences struct {
	DebounceMillis int    `yaml:"debounce_millis" toml:"debounce_millis"`         // Pause before suggestions are fetched
	StartCategory  string `yaml:"start_category" toml:"start_category"`           // Home tab selected on launch
	MouseEnabled   bool   `yaml:"mouse_enabled" toml:"mouse_enabled"`             // Enable click and hover
	LogLevel       string `yaml:"log_level,omitempty" toml:"log_level,omitempty"` // Empty keeps logging off
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		API:         defaultAPI(),
		Preferences: defaultPreferences(),
	}
}

func defaultAPI() *APIConfig {
	return &APIConfig{
		BaseURL:        urls.OpenLibrary,
		CoversURL:      urls.Covers,
		ArchiveURL:     urls.Archive,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		DebounceMillis: DefaultDebounceMillis,
		StartCategory:  DefaultStartCategory,
		MouseEnabled:   true,
	}
}

// backfill replaces missing sections and zero fields with defaults so a
// partial file behaves like the defaults plus its overrides.
func (r *Registry) backfill() {
	if r.API == nil {
		r.API = defaultAPI()
	}
	if r.Preferences == nil {
		r.Preferences = defaultPreferences()
	}

	api := defaultAPI()
	if r.API.BaseURL == "" {
		r.API.BaseURL = api.BaseURL
	}
	if r.API.CoversURL == "" {
		r.API.CoversURL = api.CoversURL
	}
	if r.API.ArchiveURL == "" {
		r.API.ArchiveURL = api.ArchiveURL
	}
	if r.API.TimeoutSeconds == 0 {
		r.API.TimeoutSeconds = api.TimeoutSeconds
	}
	if r.Preferences.DebounceMillis == 0 {
		r.Preferences.DebounceMillis = DefaultDebounceMillis
	}
	if r.Preferences.StartCategory == "" {
		r.Preferences.StartCategory = DefaultStartCategory
	}
}

// Timeout returns the per-request timeout.
func (r *Registry) Timeout() time.Duration {
	return time.Duration(r.API.TimeoutSeconds) * time.Second
}

// Debounce returns the autocomplete delay.
func (r *Registry) Debounce() time.Duration {
	return time.Duration(r.Preferences.DebounceMillis) * time.Millisecond
}

var slugPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Validate checks values a hand-edited file could get wrong.
func (r *Registry) Validate() error {
	if r.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", r.Version, CurrentVersion)
	}
	if r.API == nil || r.Preferences == nil {
		return fmt.Errorf("config is missing its api or preferences section")
	}

	for name, raw := range map[string]string{
		"api.base_url":    r.API.BaseURL,
		"api.covers_url":  r.API.CoversURL,
		"api.archive_url": r.API.ArchiveURL,
	} {
		if err := validateURL(raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if r.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", r.API.TimeoutSeconds)
	}

	d := r.Preferences.DebounceMillis
	if d < MinDebounceMillis || d > MaxDebounceMillis {
		return fmt.Errorf("preferences.debounce_millis must be between %d and %d, got %d",
			MinDebounceMillis, MaxDebounceMillis, d)
	}

	if !slugPattern.MatchString(r.Preferences.StartCategory) {
		return fmt.Errorf("preferences.start_category %q is not a subject slug", r.Preferences.StartCategory)
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}
