// Mylibrarybook is a terminal browser for the Open Library catalogue.
//
// It provides a full-screen browser with curated categories, search with
// live suggestions, book, author and subject pages, and lookup commands
// that print the same data for scripting.
//
// Usage:
//
//	mylibrarybook [command] [flags]
//
// Running without arguments launches the browser.
// See 'mylibrarybook --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/mylibrarybook/internal/logging"
	"github.com/muurk/mylibrarybook/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		// Lookup failures have already been printed as a result box.
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mylibrarybook",
	Short: "Browse the Open Library catalogue from the terminal",
	Long: `A terminal browser for the Open Library catalogue.

Browse curated categories and trending books, search with live
suggestions, and open book, author and subject pages. Lookup commands
print the same data for scripting.

If no command is specified, the browser will launch automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the browser when no subcommand is provided
		return runBrowse(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Version works without a config.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mylibrarybook %s (commit: %s)\n", version.Version, version.Commit)
	},
}
