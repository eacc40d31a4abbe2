// Package ui provides terminal output components for the mylibrarybook
// lookup commands.
//
// The interactive browser lives in internal/browser/tui. The components
// here follow a "run once and exit" pattern instead: a command fetches,
// prints, and returns.
//
// # Components
//
//   - Header: command banner showing the lookup and its parameters
//   - Result: success, warning and failure boxes, failures with hints
//   - Printer: writes headers, text blocks, JSON and results in the
//     selected --format
//   - Confirm: typed confirmation before overwriting a config file
//
// Example:
//
//	p := ui.NewPrinter(cmd.OutOrStdout(), format)
//	p.PrintHeader(ui.NewHeader("Search Results", "mylibrarybook search dune",
//	    ui.Param{Key: "Query", Value: "dune"}))
//	page, err := client.Search(ctx, "dune", 1)
//	if err != nil {
//	    p.PrintError("Search failed", err)
//	    return err
//	}
//	p.PrintBlock("", openlibrary.FormatCards(cards, 1, links))
//
// # Logging Integration
//
// Logging is controlled by --log-level or the MYLIBRARYBOOK_LOG_LEVEL
// environment variable. When unset, zap logging is silent so the printed
// output stays clean.
package ui
