package openlibrary

import (
	"fmt"
	"strings"
)

// Summary returns a one-line "Title by Authors" summary of a card
func (c Card) Summary() string {
	return fmt.Sprintf("%s by %s", c.Title, c.Authors)
}

// FormatCards returns a numbered list of cards. start is the number of the
// first entry, so later pages continue the numbering.
func FormatCards(cards []Card, start int, links Links) string {
	var b strings.Builder
	for i, c := range cards {
		b.WriteString(fmt.Sprintf("%3d. %s\n", start+i, c.Title))
		b.WriteString(fmt.Sprintf("     by %s\n", c.Authors))
		b.WriteString(fmt.Sprintf("     key: %s", c.Key))
		if c.IA != "" {
			b.WriteString(fmt.Sprintf("  read: %s", links.Read(c.IA)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCardsCompact returns one tab-separated line per card.
func FormatCardsCompact(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(fmt.Sprintf("%s\t%s\t%s\n", c.Key, c.Title, c.Authors))
	}
	return b.String()
}

// FormatDetailed returns the full book record. authorName may be empty
// when the author lookup failed.
func (b *BookDetails) FormatDetailed(authorName string, links Links) string {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("=== %s ===\n", b.Title))
	if authorName == "" {
		authorName = UnknownAuthor
	}
	s.WriteString(fmt.Sprintf("by %s\n", authorName))
	if key := b.FirstAuthorKey(); key != "" {
		s.WriteString(fmt.Sprintf("Author key: %s\n", key))
	}
	s.WriteString(fmt.Sprintf("Key:        %s\n", b.Key))
	if cover := links.Cover(b.CoverID(), CoverLarge); cover != "" {
		s.WriteString(fmt.Sprintf("Cover:      %s\n", cover))
	}
	if ia := b.ReadIdentifier(""); ia != "" {
		s.WriteString(fmt.Sprintf("Read Book:  %s\n", links.Read(ia)))
	}
	s.WriteString("\n")
	s.WriteString(b.Description.OrDefault())
	s.WriteString("\n")

	if subjects := b.TopSubjects(10); len(subjects) > 0 {
		s.WriteString("\nSubjects: ")
		s.WriteString(strings.Join(subjects, ", "))
		s.WriteString("\n")
	}
	return s.String()
}

// FormatCompact returns a short book summary
func (b *BookDetails) FormatCompact(authorName string) string {
	if authorName == "" {
		authorName = UnknownAuthor
	}
	return fmt.Sprintf("%s\t%s\t%s\n", b.Key, b.Title, authorName)
}

// FormatDetailed returns the author record with their works
func (p *AuthorPage) FormatDetailed(links Links) string {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("=== %s ===\n", p.Details.Name))
	if photo := links.AuthorPhoto(p.Details.PhotoID(), CoverMedium); photo != "" {
		s.WriteString(fmt.Sprintf("Photo: %s\n", photo))
	}
	s.WriteString("\n")
	s.WriteString(p.Details.Bio.OrDefault())
	s.WriteString("\n\n")

	s.WriteString(fmt.Sprintf("Works by %s\n", p.Details.Name))
	if len(p.Works) == 0 {
		s.WriteString("No works found.\n")
		return s.String()
	}
	s.WriteString(FormatCards(Cards(p.Works), 1, links))
	return s.String()
}

// FormatCompact returns the author name followed by compact work lines
func (p *AuthorPage) FormatCompact() string {
	return p.Details.Name + "\n" + FormatCardsCompact(Cards(p.Works))
}
