package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

func searchPage(numFound int, titles ...string) *openlibrary.SearchPage {
	p := &openlibrary.SearchPage{NumFound: numFound}
	for i, title := range titles {
		p.Docs = append(p.Docs, openlibrary.SearchBook{
			Key:   "/works/OL" + string(rune('1'+i)) + "W",
			Title: title,
		})
	}
	return p
}

func TestEveryKindHasAScreen(t *testing.T) {
	e := testEnv(&fakeLibrary{})
	views := map[navigation.Kind]navigation.View{
		navigation.KindHome:    navigation.Home(),
		navigation.KindSearch:  navigation.Search("dune"),
		navigation.KindDetails: navigation.Details("/works/OL1W", ""),
		navigation.KindAuthor:  navigation.Author("/authors/OL1A"),
		navigation.KindSubject: navigation.Subject("fiction"),
		navigation.KindStatic:  navigation.Static(navigation.PageAbout),
	}
	for _, k := range navigation.Kinds() {
		v, ok := views[k]
		require.True(t, ok, "no test view for %s", k)
		assert.Equal(t, k, newScreen(v, e).Kind(), "screen for %s", k)
	}
}

func TestUnknownKindFallsBackToHome(t *testing.T) {
	e := testEnv(&fakeLibrary{})
	s := newScreen(navigation.View{Kind: navigation.Kind(99)}, e)
	assert.Equal(t, navigation.KindHome, s.Kind())
}

func TestResultsDropStaleResponse(t *testing.T) {
	e := testEnv(&fakeLibrary{})
	s := newResultsScreen(e, "dune")
	_ = s.Init()
	_, _ = s.Update(keyPress("r"))

	_, _ = s.Update(searchResultMsg{id: 2, page: 1, result: searchPage(1, "Fresh")})
	_, _ = s.Update(searchResultMsg{id: 1, page: 1, result: searchPage(1, "Stale")})

	require.Equal(t, statusLoaded, s.load.status)
	require.Equal(t, 1, s.grid.len())
	assert.Equal(t, "Fresh", s.grid.cards[0].Title)
}

func TestResultsErrorThenReload(t *testing.T) {
	lib := &fakeLibrary{searchErr: openlibrary.NewHTTPError(503, "/search.json")}
	e := testEnv(lib)
	s := newResultsScreen(e, "dune")

	msg := s.Init()()
	_, _ = s.Update(msg)
	assert.Equal(t, statusError, s.load.status)
	out := s.View(viewContext{width: 80}).content
	assert.Contains(t, out, searchErrorMessage)
	assert.NotContains(t, out, "503", "the status code stays in the log")

	lib.searchErr = nil
	lib.search = map[int]*openlibrary.SearchPage{1: searchPage(1, "Dune")}
	_, cmd := s.Update(keyPress("r"))
	require.NotNil(t, cmd)
	_, _ = s.Update(cmd())
	assert.Equal(t, statusLoaded, s.load.status)
	assert.Contains(t, s.View(viewContext{width: 80}).content, "Dune")
}

func TestResultsEmpty(t *testing.T) {
	e := testEnv(&fakeLibrary{})
	s := newResultsScreen(e, "zzzz")
	_, _ = s.Update(s.Init()())

	out := s.View(viewContext{width: 80}).content
	assert.Contains(t, out, `Search Results for "zzzz"`)
	assert.Contains(t, out, searchEmptyMessage)
}

func TestResultsPaging(t *testing.T) {
	lib := &fakeLibrary{search: map[int]*openlibrary.SearchPage{
		1: searchPage(75, "One"),
		2: searchPage(75, "Two"),
		3: searchPage(75, "Three"),
	}}
	e := testEnv(lib)
	s := newResultsScreen(e, "dune")
	_, cmd := s.Update(s.Init()())
	assert.Nil(t, cmd, "the first page does not scroll")
	assert.Equal(t, 3, s.pager.state.Total)

	_, cmd = s.Update(keyPress("p"))
	assert.Nil(t, cmd, "prev on page 1 is a no-op")

	_, cmd = s.Update(keyPress("n"))
	require.NotNil(t, cmd)
	_, scroll := s.Update(cmd())
	assert.Equal(t, 2, s.pager.state.Page)
	require.NotNil(t, scroll)
	assert.Equal(t, scrollTopMsg{}, scroll())

	_, cmd = s.Update(keyPress("n"))
	_, _ = s.Update(cmd())
	assert.Equal(t, 3, s.pager.state.Page)

	_, cmd = s.Update(keyPress("n"))
	assert.Nil(t, cmd, "next on the last page is a no-op")
	assert.Equal(t, []string{"Search dune 1", "Search dune 2", "Search dune 3"}, lib.Calls())
}

func TestGridKeysAndOpen(t *testing.T) {
	cards := make([]openlibrary.Card, 5)
	for i := range cards {
		cards[i] = openlibrary.Card{Key: "/works/OL" + string(rune('1'+i)) + "W", Title: "Book", IA: "ia" + string(rune('1'+i))}
	}
	g := newCardGrid("g-", cards)
	k := newGridKeys()
	width := 3*CardWidth + 2*CardGap // three columns

	g, _, ok := g.handleKey(keyPress("left"), width, k)
	assert.False(t, ok, "left at the first card is blocked")

	g, _, ok = g.handleKey(keyPress("right"), width, k)
	require.True(t, ok)
	g, _, ok = g.handleKey(keyPress("down"), width, k)
	require.True(t, ok)
	assert.Equal(t, 4, g.cursor)

	g, _, ok = g.handleKey(keyPress("down"), width, k)
	assert.False(t, ok, "down from the last row is blocked")

	_, cmd, _ := g.handleKey(keyPress("enter"), width, k)
	require.NotNil(t, cmd)
	assert.Equal(t, navigateMsg{view: navigation.Details("/works/OL5W", "ia5")}, cmd())
}

func TestGridDownLandsOnPartialRow(t *testing.T) {
	cards := make([]openlibrary.Card, 4)
	g := newCardGrid("g-", cards)
	g.cursor = 2
	width := 3*CardWidth + 2*CardGap

	g, _, ok := g.handleKey(keyPress("down"), width, newGridKeys())
	require.True(t, ok)
	assert.Equal(t, 3, g.cursor)
}

func TestDetailsAuthorFailureFailsScreen(t *testing.T) {
	lib := &fakeLibrary{book: &openlibrary.BookDetails{
		Key:     "/works/OL1W",
		Title:   "Dune",
		Authors: []openlibrary.BookAuthor{authorRef("/authors/OL1A")},
	}}
	e := testEnv(lib)
	s := newDetailsScreen(e, "/works/OL1W", "")
	_, _ = s.Update(s.Init()())

	assert.Equal(t, statusError, s.load.status)
	assert.Contains(t, s.View(viewContext{width: 80}).content, detailsErrorMessage)
	assert.Equal(t, []string{"Book /works/OL1W", "Author /authors/OL1A"}, lib.Calls())
}

func TestDetailsWithoutAuthor(t *testing.T) {
	lib := &fakeLibrary{book: &openlibrary.BookDetails{Key: "/works/OL1W", Title: "Anonymous Tales"}}
	e := testEnv(lib)
	s := newDetailsScreen(e, "/works/OL1W", "")
	_, _ = s.Update(s.Init()())

	require.Equal(t, statusLoaded, s.load.status)
	out := s.View(viewContext{width: 80}).content
	assert.Contains(t, out, "by "+openlibrary.UnknownAuthor)
	assert.Contains(t, out, openlibrary.NoDescription)
	assert.Nil(t, s.openAuthor())
	assert.Equal(t, []string{"Book /works/OL1W"}, lib.Calls())
}

func TestDetailsCopyReadLink(t *testing.T) {
	lib := &fakeLibrary{book: &openlibrary.BookDetails{Key: "/works/OL1W", Title: "Dune", IA: []string{"dune00herb"}}}
	e := testEnv(lib)
	var copied string
	e.copyText = func(s string) error {
		copied = s
		return nil
	}

	s := newDetailsScreen(e, "/works/OL1W", "preferred00")
	_, _ = s.Update(s.Init()())

	_, cmd := s.Update(keyPress("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, "https://archive.org/details/preferred00/mode/2up", copied)
	assert.Equal(t, statusMsg("Copied https://archive.org/details/preferred00/mode/2up"), cmd())

	e.copyText = func(string) error { return errors.New("no clipboard") }
	_, cmd = s.Update(keyPress("y"))
	assert.True(t, strings.HasPrefix(string(cmd().(statusMsg)), "Could not copy"))
}

func TestDetailsNoScan(t *testing.T) {
	lib := &fakeLibrary{book: &openlibrary.BookDetails{Key: "/works/OL1W", Title: "Dune"}}
	e := testEnv(lib)
	s := newDetailsScreen(e, "/works/OL1W", "")
	_, _ = s.Update(s.Init()())

	assert.Empty(t, s.ReadLink())
	assert.NotContains(t, s.View(viewContext{width: 80}).content, "Read Book")
	_, cmd := s.Update(keyPress("y"))
	assert.Equal(t, statusMsg("This book has no readable scan"), cmd())
}

func TestSubjectUsesUnpagedListing(t *testing.T) {
	lib := &fakeLibrary{subject: &openlibrary.Subject{
		Name:  "Fiction",
		Works: []openlibrary.SubjectBook{{Key: "/works/OL9W", Title: "Emma"}},
	}}
	e := testEnv(lib)
	s := newSubjectScreen(e, "fiction")

	assert.Contains(t, s.View(viewContext{width: 80}).content, "Subject: fiction")
	_, _ = s.Update(s.Init()())

	out := s.View(viewContext{width: 80}).content
	assert.Contains(t, out, "Subject: Fiction")
	assert.Contains(t, out, "Emma")
	assert.Equal(t, []string{"Subject fiction"}, lib.Calls())
}

func TestAuthorPage(t *testing.T) {
	lib := &fakeLibrary{authorPage: &openlibrary.AuthorPage{
		Details: &openlibrary.AuthorDetails{Key: "/authors/OL1A", Name: "Ursula K. Le Guin"},
	}}
	e := testEnv(lib)
	s := newAuthorScreen(e, "/authors/OL1A")
	_, _ = s.Update(s.Init()())

	out := s.View(viewContext{width: 80}).content
	assert.Contains(t, out, "Ursula K. Le Guin")
	assert.Contains(t, out, worksEmptyMessage)
}

func TestAuthorMissingDetailsIsAnError(t *testing.T) {
	lib := &fakeLibrary{authorPage: &openlibrary.AuthorPage{}}
	e := testEnv(lib)
	s := newAuthorScreen(e, "/authors/OL1A")
	_, _ = s.Update(s.Init()())

	assert.Equal(t, statusError, s.load.status)
}

func TestHomeTabsResetPaging(t *testing.T) {
	lib := &fakeLibrary{subjectPage: &openlibrary.SubjectPage{WorkCount: 100}}
	e := testEnv(lib)
	e.startCategory = "fantasy"
	s := newHomeScreen(e)
	require.Equal(t, "fantasy", s.Category().Subject)

	for _, msg := range collect(s.Init()) {
		_, _ = s.Update(msg)
	}
	_, cmd := s.Update(keyPress("n"))
	require.NotNil(t, cmd)
	_, _ = s.Update(cmd())
	require.Equal(t, 2, s.pager.state.Page)

	_, cmd = s.Update(keyPress("tab"))
	require.NotNil(t, cmd)
	assert.Equal(t, "romance", s.Category().Subject)
	_, _ = s.Update(cmd())
	assert.Equal(t, 1, s.pager.state.Page)

	assert.Contains(t, lib.Calls(), "SubjectPage fantasy 2")
	assert.Contains(t, lib.Calls(), "SubjectPage romance 1")
}

func TestHomeUnknownStartCategory(t *testing.T) {
	e := testEnv(&fakeLibrary{})
	e.startCategory = "poetry"
	assert.Equal(t, Categories[0], newHomeScreen(e).Category())
}

func TestStaticScreenRenders(t *testing.T) {
	e := testEnv(&fakeLibrary{})
	for _, p := range navigation.StaticPages() {
		out := newStaticScreen(e, p).View(viewContext{width: 80}).content
		assert.Contains(t, out, p.Title())
		assert.NotContains(t, out, "unavailable", "page %s", p)
	}
}

func TestLoadStateViews(t *testing.T) {
	var l loadState
	id := l.begin()
	body, ok := l.view("*")
	require.True(t, ok)
	assert.Contains(t, body, "Loading...")

	assert.False(t, l.current(id+1))
	l.fail("Broken.", errors.New("boom"))
	body, _ = l.view("*")
	assert.Contains(t, body, "Broken.")
	assert.NotContains(t, body, "boom")

	l.done()
	_, ok = l.view("*")
	assert.False(t, ok)
}

var _ tea.Model = AppModel{}

func authorRef(key string) openlibrary.BookAuthor {
	var a openlibrary.BookAuthor
	a.Author.Key = key
	return a
}
