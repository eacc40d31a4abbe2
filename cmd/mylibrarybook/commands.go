package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/autocomplete"
	"github.com/muurk/mylibrarybook/internal/content"
	"github.com/muurk/mylibrarybook/internal/logging"
	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
	"github.com/muurk/mylibrarybook/internal/pagination"
	"github.com/muurk/mylibrarybook/internal/ui"
)

// Lookup command flags
var (
	searchPage  int
	subjectPage int
)

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(subjectCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(pageCmd)
}

// searchCmd prints one page of search results
var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search books by title or author",
	Long: `Search the Open Library catalogue and print one page of results.

Results come 30 to a page. Pages below 1 are treated as page 1.`,
	Example: `  # First page of results
  mylibrarybook search dune

  # Third page, one line per book
  mylibrarybook search frank herbert --page 3 --format compact`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "Result page (1-based)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	s := current
	query := strings.Join(args, " ")

	result, err := s.client.Search(cmd.Context(), query, searchPage)
	if err != nil {
		return s.fail("Search failed", err)
	}
	if s.printer.Format() == ui.FormatJSON {
		return s.printer.PrintJSON(result)
	}

	total := pagination.TotalPages(result.NumFound, pagination.SearchPageSize)
	s.printer.PrintHeader(ui.NewHeader("Search Results", "mylibrarybook search "+query,
		ui.Param{Key: "Query", Value: query},
		ui.Param{Key: "Page", Value: fmt.Sprintf("%d of %d", result.Page, max(total, 1))},
		ui.Param{Key: "Found", Value: strconv.Itoa(result.NumFound)},
	))
	s.printCards(openlibrary.Cards(result.Docs), pagination.Offset(result.Page, pagination.SearchPageSize)+1)
	return nil
}

// suggestCmd prints autocomplete suggestions
var suggestCmd = &cobra.Command{
	Use:   "suggest <query...>",
	Short: "Show search suggestions for a partial query",
	Long: `Print the suggestions the browser's search box would show.

Queries of two characters or fewer get no suggestions.`,
	Example: `  mylibrarybook suggest dun`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	s := current
	query := strings.Join(args, " ")

	if utf8.RuneCountInString(query) <= autocomplete.MinQueryLength {
		s.printer.Println(fmt.Sprintf("Type more than %d characters to get suggestions.", autocomplete.MinQueryLength))
		return nil
	}

	suggestions, err := s.client.Suggest(cmd.Context(), query)
	if err != nil {
		return s.fail("Suggestions failed", err)
	}
	if s.printer.Format() == ui.FormatJSON {
		return s.printer.PrintJSON(suggestions)
	}

	s.printer.PrintHeader(ui.NewHeader("Suggestions", "mylibrarybook suggest "+query,
		ui.Param{Key: "Query", Value: query},
	))
	s.printCards(openlibrary.Cards(suggestions), 1)
	return nil
}

// bookCmd prints one work
var bookCmd = &cobra.Command{
	Use:   "book <key>",
	Short: "Show book details",
	Long: `Print a work's details: title, author, cover and read links,
description and subjects.

The key may be a bare id (OL45883W) or a path (/works/OL45883W).`,
	Example: `  mylibrarybook book OL45883W
  mylibrarybook book /works/OL45883W --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runBook,
}

func runBook(cmd *cobra.Command, args []string) error {
	s := current

	book, err := s.client.Book(cmd.Context(), args[0])
	if err != nil {
		return s.fail("Could not load book", err)
	}

	var author *openlibrary.AuthorDetails
	if key := book.FirstAuthorKey(); key != "" {
		// The book is still worth printing without its author.
		if author, err = s.client.Author(cmd.Context(), key); err != nil {
			logging.Warn("author lookup failed", zap.String("author", key), zap.Error(err))
		}
	}

	if s.printer.Format() == ui.FormatJSON {
		return s.printer.PrintJSON(struct {
			Book   *openlibrary.BookDetails   `json:"book"`
			Author *openlibrary.AuthorDetails `json:"author,omitempty"`
		}{book, author})
	}

	authorName := ""
	if author != nil {
		authorName = author.Name
	}
	s.printer.PrintHeader(ui.NewHeader("Book Details", "mylibrarybook book "+args[0],
		ui.Param{Key: "Key", Value: book.Key},
		ui.Param{Key: "Web", Value: openlibrary.Web(book.Key)},
	))
	if s.printer.Format() == ui.FormatCompact {
		s.printer.PrintBlock("", book.FormatCompact(authorName))
		return nil
	}
	s.printer.PrintBlock("", book.FormatDetailed(authorName, s.client.Links))
	return nil
}

// authorCmd prints an author and their works
var authorCmd = &cobra.Command{
	Use:     "author <key>",
	Short:   "Show an author and their works",
	Example: `  mylibrarybook author OL23919A`,
	Args:    cobra.ExactArgs(1),
	RunE:    runAuthor,
}

func runAuthor(cmd *cobra.Command, args []string) error {
	s := current

	page, err := s.client.AuthorPage(cmd.Context(), args[0])
	if err != nil {
		return s.fail("Could not load author", err)
	}
	if s.printer.Format() == ui.FormatJSON {
		return s.printer.PrintJSON(page)
	}

	s.printer.PrintHeader(ui.NewHeader("Author", "mylibrarybook author "+args[0],
		ui.Param{Key: "Key", Value: page.Details.Key},
		ui.Param{Key: "Works", Value: strconv.Itoa(len(page.Works))},
	))
	if s.printer.Format() == ui.FormatCompact {
		s.printer.PrintBlock("", page.FormatCompact())
		return nil
	}
	s.printer.PrintBlock("", page.FormatDetailed(s.client.Links))
	return nil
}

// subjectCmd prints the works filed under a subject
var subjectCmd = &cobra.Command{
	Use:   "subject <name>",
	Short: "Show books for a subject",
	Long: `Print the works filed under a subject.

Without --page the unpaged listing (up to 50 works) is printed, as on
the browser's subject page. With --page the listing is paged 18 at a
time, as on the home categories.`,
	Example: `  mylibrarybook subject fiction
  mylibrarybook subject "science fiction" --page 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSubject,
}

func init() {
	subjectCmd.Flags().IntVar(&subjectPage, "page", 0, "Page of 18 works (0 prints the unpaged listing)")
}

func runSubject(cmd *cobra.Command, args []string) error {
	s := current
	name := strings.Join(args, " ")

	if subjectPage <= 0 {
		subject, err := s.client.Subject(cmd.Context(), name)
		if err != nil {
			return s.fail("Could not load subject", err)
		}
		if s.printer.Format() == ui.FormatJSON {
			return s.printer.PrintJSON(subject)
		}
		s.printer.PrintHeader(ui.NewHeader("Subject: "+subjectName(subject.Name, name), "mylibrarybook subject "+name,
			ui.Param{Key: "Works", Value: strconv.Itoa(subject.WorkCount)},
		))
		s.printCards(openlibrary.Cards(subject.Works), 1)
		return nil
	}

	page, err := s.client.SubjectPage(cmd.Context(), name, subjectPage)
	if err != nil {
		return s.fail("Could not load subject", err)
	}
	if s.printer.Format() == ui.FormatJSON {
		return s.printer.PrintJSON(page)
	}

	total := pagination.TotalPages(page.WorkCount, pagination.SubjectPageSize)
	s.printer.PrintHeader(ui.NewHeader("Subject: "+subjectName("", name), "mylibrarybook subject "+name,
		ui.Param{Key: "Page", Value: fmt.Sprintf("%d of %d", page.Page, max(total, 1))},
		ui.Param{Key: "Works", Value: strconv.Itoa(page.WorkCount)},
	))
	s.printCards(openlibrary.Cards(page.Works), pagination.Offset(page.Page, pagination.SubjectPageSize)+1)
	return nil
}

// subjectName prefers the name the API reported.
func subjectName(reported, requested string) string {
	if reported != "" {
		return reported
	}
	slug, err := openlibrary.SubjectSlug(requested)
	if err != nil {
		return requested
	}
	return openlibrary.SubjectTitle(slug)
}

// trendingCmd prints this week's trending works
var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show books trending this week",
	Args:  cobra.NoArgs,
	RunE:  runTrending,
}

func runTrending(cmd *cobra.Command, args []string) error {
	s := current

	books, err := s.client.Trending(cmd.Context())
	if err != nil {
		return s.fail("Could not load trending books", err)
	}
	if s.printer.Format() == ui.FormatJSON {
		return s.printer.PrintJSON(books)
	}

	s.printer.PrintHeader(ui.NewHeader("Trending This Week", "mylibrarybook trending"))
	s.printCards(openlibrary.Cards(books), 1)
	return nil
}

// pageCmd renders one of the informational pages
var pageCmd = &cobra.Command{
	Use:   "page <slug>",
	Short: "Show an informational page",
	Long: `Render one of the informational pages shown in the browser footer.

Pages: about, contact, for-parents, privacy, terms, dmca.`,
	Example: `  mylibrarybook page about
  mylibrarybook page privacy --format compact`,
	Args: cobra.ExactArgs(1),
	RunE: runPage,
}

func runPage(cmd *cobra.Command, args []string) error {
	s := current

	page, err := navigation.ParseStaticPage(args[0])
	if err != nil {
		return err
	}
	source, err := content.Source(page)
	if err != nil {
		return fmt.Errorf("failed to read page %s: %w", page, err)
	}

	switch s.printer.Format() {
	case ui.FormatJSON:
		return s.printer.PrintJSON(struct {
			Slug     string `json:"slug"`
			Title    string `json:"title"`
			Markdown string `json:"markdown"`
		}{page.Slug(), page.Title(), string(source)})
	case ui.FormatCompact:
		s.printer.Print(string(source))
		return nil
	}

	body, err := content.Render(page, s.printer.Width()-4)
	if err != nil {
		return fmt.Errorf("failed to render page %s: %w", page, err)
	}
	s.printer.PrintBlock(page.Title(), body)
	return nil
}

// printCards prints a card list in the session's format. start numbers
// the first card.
func (s *session) printCards(cards []openlibrary.Card, start int) {
	if len(cards) == 0 {
		if s.printer.Format() == ui.FormatDetailed {
			s.printer.PrintWarning("No results found.")
		}
		return
	}
	if s.printer.Format() == ui.FormatCompact {
		s.printer.PrintBlock("", openlibrary.FormatCardsCompact(cards))
		return
	}
	s.printer.PrintBlock("", openlibrary.FormatCards(cards, start, s.client.Links))
}
