package openlibrary

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NoDescription is shown when a book or author has no text.
const NoDescription = "No description available."

// UnknownAuthor is shown when a book carries no author names.
const UnknownAuthor = "Unknown Author"

// Text is a free-text field that Open Library returns either as a plain
// JSON string or as {"type": "/type/text", "value": "..."}.
type Text struct {
	Value string
}

// UnmarshalJSON accepts both encodings. null and unknown shapes decode
// to an empty Text.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Value = ""
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &t.Value)
	}
	var typed struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}
	if data[0] == '{' {
		if err := json.Unmarshal(data, &typed); err != nil {
			return err
		}
		t.Value = typed.Value
		return nil
	}
	t.Value = ""
	return nil
}

// MarshalJSON writes the plain string form.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Value)
}

// String returns the text with Windows line endings normalised.
func (t Text) String() string {
	return strings.ReplaceAll(t.Value, "\r\n", "\n")
}

// OrDefault returns the text, or NoDescription when it is blank.
func (t Text) OrDefault() string {
	if strings.TrimSpace(t.Value) == "" {
		return NoDescription
	}
	return t.String()
}

// SearchBook is one document from /search.json.
type SearchBook struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	AuthorName []string `json:"author_name,omitempty"`
	CoverI     int      `json:"cover_i,omitempty"`
	IA         []string `json:"ia,omitempty"`
}

// SearchPage is one page of search results.
type SearchPage struct {
	Docs     []SearchBook `json:"docs"`
	NumFound int          `json:"numFound"`
	Page     int          `json:"-"`
}

// Suggestion is an autocomplete entry. It is a trimmed-down search
// document without archive identifiers.
type Suggestion struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	AuthorName []string `json:"author_name,omitempty"`
	CoverI     int      `json:"cover_i,omitempty"`
}

// AuthorRef is the author stub embedded in subject works.
type AuthorRef struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// SubjectBook is one work from /subjects/{subject}.json.
type SubjectBook struct {
	Key     string      `json:"key"`
	Title   string      `json:"title"`
	Authors []AuthorRef `json:"authors,omitempty"`
	CoverID int         `json:"cover_id,omitempty"`
	IA      []string    `json:"ia,omitempty"`
}

// Subject is the unpaged subject listing.
type Subject struct {
	Name      string        `json:"name"`
	WorkCount int           `json:"work_count,omitempty"`
	Works     []SubjectBook `json:"works"`
}

// SubjectPage is one page of a subject listing.
type SubjectPage struct {
	Subject   string        `json:"-"`
	Works     []SubjectBook `json:"works"`
	WorkCount int           `json:"work_count"`
	Page      int           `json:"-"`
}

// AuthorWork is one entry from /authors/{key}/works.json.
type AuthorWork struct {
	Key    string   `json:"key"`
	Title  string   `json:"title"`
	Covers []int    `json:"covers,omitempty"`
	IA     []string `json:"ia,omitempty"`
}

// BookAuthor is the author reference inside a work record.
type BookAuthor struct {
	Author struct {
		Key string `json:"key"`
	} `json:"author"`
}

// BookDetails is the work record from /works/{id}.json.
type BookDetails struct {
	Key         string       `json:"key"`
	Title       string       `json:"title"`
	Authors     []BookAuthor `json:"authors,omitempty"`
	Description Text         `json:"description"`
	Covers      []int        `json:"covers,omitempty"`
	Subjects    []string     `json:"subjects,omitempty"`
	IA          []string     `json:"ia,omitempty"`
}

// FirstAuthorKey returns the key of the first listed author, or "".
func (b *BookDetails) FirstAuthorKey() string {
	if b == nil || len(b.Authors) == 0 {
		return ""
	}
	return b.Authors[0].Author.Key
}

// CoverID returns the first cover id, or 0.
func (b *BookDetails) CoverID() int {
	return firstPositive(b.Covers)
}

// TopSubjects returns at most n subjects.
func (b *BookDetails) TopSubjects(n int) []string {
	if len(b.Subjects) <= n {
		return b.Subjects
	}
	return b.Subjects[:n]
}

// ReadIdentifier picks the archive identifier for the read link: the one
// carried by the navigation (preferred) or the record's first.
func (b *BookDetails) ReadIdentifier(fromView string) string {
	if fromView != "" {
		return fromView
	}
	if len(b.IA) > 0 {
		return b.IA[0]
	}
	return ""
}

// AuthorDetails is the author record from /authors/{id}.json.
type AuthorDetails struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Photos []int  `json:"photos,omitempty"`
	Bio    Text   `json:"bio"`
}

// PhotoID returns the first usable photo id, or 0.
func (a *AuthorDetails) PhotoID() int {
	return firstPositive(a.Photos)
}

// AuthorPage bundles an author with their works.
type AuthorPage struct {
	Details *AuthorDetails `json:"details"`
	Works   []AuthorWork   `json:"works"`
}

// Card is the presentational shape shared by every list of books.
type Card struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Authors string `json:"authors"`
	CoverID int    `json:"cover_id,omitempty"`
	IA      string `json:"ia,omitempty"`
}

// Carder is implemented by every record that can be shown as a book card.
type Carder interface {
	Card() Card
}

// Card converts a search document to a card.
func (b SearchBook) Card() Card {
	return Card{
		Key:     b.Key,
		Title:   b.Title,
		Authors: joinAuthors(b.AuthorName),
		CoverID: b.CoverI,
		IA:      first(b.IA),
	}
}

// Card converts a subject work to a card.
func (b SubjectBook) Card() Card {
	names := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return Card{
		Key:     b.Key,
		Title:   b.Title,
		Authors: joinAuthors(names),
		CoverID: b.CoverID,
		IA:      first(b.IA),
	}
}

// Card converts an author's work to a card. Works carry no author names.
func (w AuthorWork) Card() Card {
	return Card{
		Key:     w.Key,
		Title:   w.Title,
		Authors: UnknownAuthor,
		CoverID: firstPositive(w.Covers),
		IA:      first(w.IA),
	}
}

// Card converts a suggestion to a card.
func (s Suggestion) Card() Card {
	return Card{
		Key:     s.Key,
		Title:   s.Title,
		Authors: joinAuthors(s.AuthorName),
		CoverID: s.CoverI,
	}
}

// Cards converts any slice of card-able records.
func Cards[T Carder](items []T) []Card {
	out := make([]Card, len(items))
	for i, item := range items {
		out[i] = item.Card()
	}
	return out
}

func joinAuthors(names []string) string {
	if len(names) == 0 {
		return UnknownAuthor
	}
	return strings.Join(names, ", ")
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func firstPositive(ids []int) int {
	if len(ids) == 0 || ids[0] <= 0 {
		return 0
	}
	return ids[0]
}
