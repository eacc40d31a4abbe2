// Package logging provides structured logging for mylibrarybook.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless a level is configured, either through Options.Level
// (the --log-level flag) or the MYLIBRARYBOOK_LOG_LEVEL environment
// variable.
//
// # Output
//
// The browser draws on the whole terminal, so log entries are written to a
// file instead of stdout. The file defaults to mylibrarybook.log in the
// configuration directory and can be moved with --log-file or
// MYLIBRARYBOOK_LOG_FILE:
//
//	2025-11-25T10:30:45.123-0800  WARN  tui/search.go:88  Search failed
//	  {"query": "dune", "error": "Network Error: request failed ..."}
//
// # Log Levels
//
//   - Debug: API requests and responses, debounce firing, stale responses
//   - Info: navigation transitions, startup
//   - Warn: failed fetches (the user sees a short message on screen)
//   - Error: unexpected conditions such as an unknown view kind
//
// # Context Loggers
//
// The API client logs through logr so callers can attach a logger to a
// request context:
//
//	ctx = logging.WithLogger(ctx, logging.Logr().WithName("cli"))
//	page, err := client.Search(ctx, "dune", 1)
//
// Without one, FromContext falls back to the global zap logger.
package logging
