// Package config provides user configuration management for mylibrarybook.
//
// The configuration file holds the API endpoints and a few browser
// preferences. It never holds browsing data: history, searches and
// results live only in memory for one session.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/mylibrarybook/config.yaml or $HOME/.config/mylibrarybook/config.yaml
//   - macOS: $HOME/.config/mylibrarybook/config.yaml
//   - Windows: %LOCALAPPDATA%\mylibrarybook\config.yaml
//
// A file passed with --config may be YAML or TOML, chosen by extension:
//
//	version = 1
//
//	[api]
//	base_url = "https://openlibrary.org"
//	timeout_seconds = 15
//
//	[preferences]
//	debounce_millis = 300
//	start_category = "fantasy"
//
// Keys left out keep their defaults.
//
// # Usage Example
//
//	registry, err := config.Load(flagPath)
//	if err != nil {
//	    return err
//	}
//	if err := registry.Validate(); err != nil {
//	    return fmt.Errorf("invalid config: %w", err)
//	}
//	client.SetTimeout(registry.Timeout())
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
