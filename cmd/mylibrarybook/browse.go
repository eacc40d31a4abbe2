package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/mylibrarybook/internal/browser/tui"
	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

// Browser flags
var (
	startView     string
	startSearch   string
	startCategory string
	noMouse       bool
)

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, browseCmd} {
		cmd.Flags().StringVar(&startView, "start", "home", "First view: home or an info page slug (about, contact, ...)")
		cmd.Flags().StringVar(&startSearch, "search", "", "Open search results for this query")
		cmd.Flags().StringVar(&startCategory, "category", "", "Home category, overrides preferences.start_category")
		cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")
	}

	rootCmd.AddCommand(browseCmd)
}

// browseCmd launches the full-screen browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the book browser",
	Long: `Launch the full-screen book browser.

The browser shows curated categories and this week's trending books.
Press / to search; suggestions appear as you type. Open a book to see
its author, read link and subjects.

This is the default command.`,
	Example: `  # Launch the browser (browse is default)
  mylibrarybook

  # Open straight into search results
  mylibrarybook --search "ursula le guin"

  # Start on the fantasy tab without mouse capture
  mylibrarybook browse --category fantasy --no-mouse`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	s := current

	start, err := parseStart(startView, startSearch)
	if err != nil {
		return err
	}

	category := s.registry.Preferences.StartCategory
	if cmd.Flags().Changed("category") {
		if category, err = openlibrary.SubjectSlug(startCategory); err != nil {
			return fmt.Errorf("invalid --category: %w", err)
		}
	}

	return tui.Run(cmd.Context(), tui.Options{
		Library:       s.client,
		Links:         s.client.Links,
		Timeout:       s.registry.Timeout(),
		Debounce:      s.registry.Debounce(),
		StartCategory: category,
		Start:         start,
		Mouse:         s.registry.Preferences.MouseEnabled && !noMouse,
	})
}

// parseStart resolves the --start and --search flags to the first view.
func parseStart(view, search string) (navigation.View, error) {
	if q := strings.TrimSpace(search); q != "" {
		return navigation.Search(q), nil
	}
	if view == "" || strings.EqualFold(view, "home") {
		return navigation.Home(), nil
	}
	page, err := navigation.ParseStaticPage(view)
	if err != nil {
		return navigation.View{}, fmt.Errorf("invalid --start: %w", err)
	}
	return navigation.Static(page), nil
}
