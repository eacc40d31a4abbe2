package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/config"
	"github.com/muurk/mylibrarybook/internal/logging"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
	"github.com/muurk/mylibrarybook/internal/ui"
)

// Global flags
var (
	configPath     string
	baseURL        string
	timeoutSeconds int
	logLevel       string
	logFile        string
	outputFormat   string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (.yaml or .toml); default is the user config directory")
	flags.StringVar(&baseURL, "base-url", "", "Open Library API root, overrides api.base_url")
	flags.IntVar(&timeoutSeconds, "timeout", 0, "Request timeout in seconds, overrides api.timeout_seconds")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logging is off when unset")
	flags.StringVar(&logFile, "log-file", "", "Log file path (default <config dir>/"+logging.DefaultLogFileName+")")
	flags.StringVar(&outputFormat, "format", string(ui.FormatDetailed), "Output format (detailed, compact, json)")
}

// session is what every command works with once flags and config are
// resolved.
type session struct {
	registry *config.Registry
	client   *openlibrary.Client
	printer  *ui.Printer
}

var current *session

// setup loads the config, applies flag overrides, and builds the client
// and printer. It runs before every command that talks to the API.
func setup(cmd *cobra.Command, args []string) error {
	registry, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, registry)
	if err := registry.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := initLogging(registry); err != nil {
		return err
	}

	format, err := ui.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	client := openlibrary.NewClientWithURL(registry.API.BaseURL)
	client.SetTimeout(registry.Timeout())
	client.Links = openlibrary.Links{CoversURL: registry.API.CoversURL, ArchiveURL: registry.API.ArchiveURL}
	if registry.API.UserAgent != "" {
		client.UserAgent = registry.API.UserAgent
	}

	current = &session{
		registry: registry,
		client:   client,
		printer:  ui.NewPrinter(cmd.OutOrStdout(), format),
	}

	logging.Debug("session ready",
		zap.String("command", cmd.CommandPath()),
		zap.String("base_url", client.BaseURL),
		zap.Duration("timeout", registry.Timeout()),
		zap.String("format", string(format)))
	return nil
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cmd *cobra.Command, registry *config.Registry) {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		registry.API.BaseURL = baseURL
	}
	if flags.Changed("timeout") {
		registry.API.TimeoutSeconds = timeoutSeconds
	}
	if flags.Changed("log-level") {
		registry.Preferences.LogLevel = logLevel
	}
}

func initLogging(registry *config.Registry) error {
	dir, err := config.GetConfigDir()
	if err != nil {
		dir = ""
	}
	return logging.Initialize(logging.Options{
		Level:      registry.Preferences.LogLevel,
		File:       logFile,
		DefaultDir: dir,
	})
}

// reportedError marks a failure that has already been shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// fail prints a failure box for a lookup and returns an error that makes
// the process exit 1 without printing it again.
func (s *session) fail(title string, err error) error {
	logging.Warn(title, zap.Error(err))
	s.printer.PrintError(title, err)
	return &reportedError{err: err}
}
