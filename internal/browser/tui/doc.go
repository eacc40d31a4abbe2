// Package tui implements the terminal book browser for mylibrarybook.
//
// The browser is a full-screen Bubble Tea program over the Open Library
// API. It follows the Elm architecture: AppModel receives every message,
// updates state and returns commands, and View is a pure function of the
// model.
//
// # Architecture
//
// AppModel owns the navigation history and the chrome: the header with
// the brand, breadcrumbs and search box, the scrolling content viewport,
// and the footer with the static page links and key help. The content
// area is one Screen at a time:
//   - Home: curated category tabs with a paged grid, plus Trending This Week
//   - Search: paged results for a query
//   - Details: one work, its author, read link and subject tags
//   - Author: bio and works
//   - Subject: the works filed under a subject
//   - Static: About, Contact and the other informational pages
//
// A screen is built fresh whenever its view becomes current and fetches
// from Init. Screens never touch the history; they return navigation
// messages and AppModel applies them.
//
// # Fetching
//
// Every fetch runs as a command with its own timeout and carries the id
// of the request that issued it. A screen only applies the response to
// its latest request, so a reload or page change makes earlier responses
// harmless.
//
// # Search Suggestions
//
// The search box delegates to autocomplete.Controller. Keystrokes arm a
// debounce tick, the tick triggers a Suggest fetch, and only the response
// for the latest keystroke is shown. Suggestion failures are logged and
// never surface in the UI.
//
// # Framework Components
//
//   - bubbles/textinput: the search box
//   - bubbles/viewport: scrolling the screen content
//   - bubbles/spinner: loading indicators
//   - bubbles/paginator: page dots on paged grids
//   - bubbles/help: context-aware key help
//   - bubblezone: mouse hit-testing for cards, tabs and links
//   - lipgloss: styling and layout
//
// # Usage Example
//
//	err := tui.Run(ctx, tui.Options{
//	    Library:  openlibrary.NewClient(),
//	    Debounce: 300 * time.Millisecond,
//	    Mouse:    true,
//	})
//
// # Key Bindings
//
//   - / or s focuses search; enter searches, ↑/↓ pick a suggestion, esc closes
//   - arrows or hjkl move between cards, enter opens
//   - n/p page, tab switches the home category, r reloads after an error
//   - esc goes back, g goes home, 1-6 open the static pages, q quits
//
// # Thread Safety
//
// All model updates happen on the Bubble Tea goroutine. Fetch commands
// run elsewhere but only communicate through the messages they return.
package tui
