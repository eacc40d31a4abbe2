package openlibrary

import (
	"strings"
	"testing"
)

func getSampleBook() *BookDetails {
	return &BookDetails{
		Key:         "/works/OL893415W",
		Title:       "Dune",
		Authors:     []BookAuthor{{}},
		Description: Text{Value: "Desert planet."},
		Covers:      []int{11481354},
		Subjects:    []string{"Science fiction", "Arrakis"},
		IA:          []string{"dune00herb"},
	}
}

func TestLinks(t *testing.T) {
	links := DefaultLinks()

	if got := links.Cover(42, CoverSmall); got != "https://covers.openlibrary.org/b/id/42-S.jpg" {
		t.Errorf("Cover(42, S) = %s", got)
	}
	if got := links.Cover(42, "XL"); got != "https://covers.openlibrary.org/b/id/42-M.jpg" {
		t.Errorf("Cover(42, XL) = %s, want medium fallback", got)
	}
	if got := links.Cover(0, CoverLarge); got != "" {
		t.Errorf("Cover(0) = %s, want empty", got)
	}
	if got := links.Read("dune00herb"); got != "https://archive.org/details/dune00herb/mode/2up" {
		t.Errorf("Read() = %s", got)
	}
	if got := links.Read(" "); got != "" {
		t.Errorf("Read(blank) = %s, want empty", got)
	}
	if got := Web("/works/OL1W"); got != "https://openlibrary.org/works/OL1W" {
		t.Errorf("Web() = %s", got)
	}
}

func TestBookFormatDetailed(t *testing.T) {
	out := getSampleBook().FormatDetailed("Frank Herbert", DefaultLinks())

	expectedParts := []string{
		"=== Dune ===",
		"by Frank Herbert",
		"Desert planet.",
		"11481354-L.jpg",
		"https://archive.org/details/dune00herb/mode/2up",
		"Science fiction, Arrakis",
	}
	for _, part := range expectedParts {
		if !strings.Contains(out, part) {
			t.Errorf("FormatDetailed() missing expected part: %s", part)
		}
	}
}

func TestBookFormatDetailedFallbacks(t *testing.T) {
	out := (&BookDetails{Key: "/works/X", Title: "X"}).FormatDetailed("", DefaultLinks())

	if !strings.Contains(out, "by "+UnknownAuthor) {
		t.Error("FormatDetailed() should fall back to Unknown Author")
	}
	if !strings.Contains(out, NoDescription) {
		t.Error("FormatDetailed() should fall back to the no-description text")
	}
	if strings.Contains(out, "Read Book") {
		t.Error("FormatDetailed() should omit the read link without an archive id")
	}
}

func TestFormatCards(t *testing.T) {
	cards := []Card{
		{Key: "/works/A", Title: "A", Authors: "X"},
		{Key: "/works/B", Title: "B", Authors: "Y", IA: "b01"},
	}

	out := FormatCards(cards, 31, DefaultLinks())
	if !strings.Contains(out, " 31. A") || !strings.Contains(out, " 32. B") {
		t.Errorf("FormatCards() numbering wrong:\n%s", out)
	}
	if strings.Count(out, "read:") != 1 {
		t.Errorf("FormatCards() should show one read link:\n%s", out)
	}

	compact := FormatCardsCompact(cards)
	if strings.Count(compact, "\n") != 2 {
		t.Errorf("FormatCardsCompact() should be one line per card:\n%s", compact)
	}
}

func TestAuthorPageFormat(t *testing.T) {
	page := &AuthorPage{Details: &AuthorDetails{Name: "Frank Herbert"}}

	out := page.FormatDetailed(DefaultLinks())
	if !strings.Contains(out, "Works by Frank Herbert") || !strings.Contains(out, "No works found.") {
		t.Errorf("FormatDetailed() = \n%s", out)
	}

	page.Works = []AuthorWork{{Key: "/works/A", Title: "Dune"}}
	if !strings.Contains(page.FormatCompact(), "Dune") {
		t.Error("FormatCompact() should list works")
	}
}

func TestCardSummary(t *testing.T) {
	if got := (Card{Title: "Dune", Authors: "Frank Herbert"}).Summary(); got != "Dune by Frank Herbert" {
		t.Errorf("Summary() = %s", got)
	}
}
