package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/mylibrarybook/internal/autocomplete"
	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

func TestAppStartsAtHome(t *testing.T) {
	lib := &fakeLibrary{trending: []openlibrary.SearchBook{{Key: "/works/OL7W", Title: "Hot Book"}}}
	m := startApp(t, lib, navigation.Home())

	assert.Equal(t, navigation.KindHome, m.Screen().Kind())
	assert.ElementsMatch(t, []string{"SubjectPage science_fiction 1", "Trending"}, lib.Calls())

	out := m.View()
	assert.Contains(t, out, AppName)
	assert.Contains(t, out, trendingTitle)
	assert.Contains(t, out, "Hot Book")
	assert.Contains(t, out, "About")
}

func TestAppNarrowTerminal(t *testing.T) {
	m := NewAppModel(Options{Library: &fakeLibrary{}})
	assert.Equal(t, "Initializing...", m.View())

	model, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Contains(t, model.View(), "Terminal too narrow")
}

func TestSubjectTagOpensSubjectPage(t *testing.T) {
	lib := &fakeLibrary{
		book: &openlibrary.BookDetails{
			Key:      "/works/OL1W",
			Title:    "Emma",
			Authors:  []openlibrary.BookAuthor{authorRef("/authors/OL1A")},
			Subjects: []string{"fiction", "Classics"},
		},
		author: &openlibrary.AuthorDetails{Key: "/authors/OL1A", Name: "Jane Austen"},
		subject: &openlibrary.Subject{
			Name:  "Fiction",
			Works: []openlibrary.SubjectBook{{Key: "/works/OL2W", Title: "Persuasion"}},
		},
	}
	m := startApp(t, lib, navigation.Details("/works/OL1W", ""))
	require.Equal(t, navigation.KindDetails, m.Screen().Kind())

	// Focus starts on the author; the first tag is next.
	m = send(t, m, keyPress("right"))
	m = send(t, m, keyPress("enter"))

	assert.Equal(t, navigation.Subject("fiction"), m.History().Current())
	assert.Equal(t, navigation.KindSubject, m.Screen().Kind())
	assert.Equal(t, []string{
		"Book /works/OL1W",
		"Author /authors/OL1A",
		"Subject fiction",
	}, lib.Calls())
	assert.Contains(t, m.View(), "Persuasion")
}

func TestBackAndHome(t *testing.T) {
	lib := &fakeLibrary{}
	m := startApp(t, lib, navigation.Home())

	m = send(t, m, navigateMsg{view: navigation.Search("dune")})
	m = send(t, m, navigateMsg{view: navigation.Static(navigation.PageTerms)})
	require.Equal(t, 3, m.History().Len())

	m = send(t, m, keyPress("esc"))
	assert.Equal(t, navigation.Search("dune"), m.History().Current())
	assert.Equal(t, navigation.KindSearch, m.Screen().Kind())

	m = send(t, m, keyPress("g"))
	assert.Equal(t, 1, m.History().Len())
	assert.Equal(t, navigation.KindHome, m.Screen().Kind())

	m = send(t, m, keyPress("esc"))
	assert.Equal(t, 1, m.History().Len(), "back on home stays home")
}

func TestNumberKeysOpenStaticPages(t *testing.T) {
	m := startApp(t, &fakeLibrary{}, navigation.Home())

	m = send(t, m, keyPress("6"))
	assert.Equal(t, navigation.Static(navigation.PageDMCA), m.History().Current())
	assert.Contains(t, m.View(), navigation.PageDMCA.Title())
}

func TestSearchSubmitNavigates(t *testing.T) {
	lib := &fakeLibrary{search: map[int]*openlibrary.SearchPage{1: searchPage(1, "Dune")}}
	m := startApp(t, lib, navigation.Home())

	model, _ := m.Update(keyPress("/"))
	m = model.(AppModel)
	require.True(t, m.search.focused())

	// Typed keys go to the input, not the global bindings.
	model, _ = m.Update(keyPress("q"))
	m = model.(AppModel)
	assert.Equal(t, "q", m.search.input.Value())

	m.search.input.SetValue("")
	model, _ = m.Update(keyPress("d"))
	m = model.(AppModel)
	model, _ = m.Update(keyPress("u"))
	m = model.(AppModel)
	m = send(t, m, keyPress("enter"))

	assert.Equal(t, navigation.Search("du"), m.History().Current())
	assert.False(t, m.search.focused())
	assert.Contains(t, lib.Calls(), "Search du 1")
}

func TestSuggestionsDebounced(t *testing.T) {
	lib := &fakeLibrary{suggestions: []openlibrary.Suggestion{
		{Key: "/works/OL1W", Title: "Dune"},
		{Key: "/works/OL2W", Title: "Dune Messiah"},
	}}
	m := startApp(t, lib, navigation.Home())

	model, _ := m.Update(keyPress("/"))
	m = model.(AppModel)

	// Two quick keystrokes: only the second survives the debounce.
	model, first := m.Update(keyPress("dun"))
	m = model.(AppModel)
	model, second := m.Update(keyPress("e"))
	m = model.(AppModel)
	m = settle(t, m, tea.Batch(first, second))

	suggests := 0
	for _, c := range lib.Calls() {
		if strings.HasPrefix(c, "Suggest") {
			suggests++
			assert.Equal(t, "Suggest dune", c)
		}
	}
	assert.Equal(t, 1, suggests)
	require.Equal(t, autocomplete.Showing, m.search.ac.State())
	assert.Contains(t, m.View(), "Dune Messiah")

	m = send(t, m, keyPress("down"))
	m = send(t, m, keyPress("down"))
	m = send(t, m, keyPress("enter"))
	assert.Equal(t, navigation.Search("Dune Messiah"), m.History().Current())
	assert.Equal(t, "Dune Messiah", m.search.input.Value())
}

func TestStaleSuggestionsDropped(t *testing.T) {
	m := startApp(t, &fakeLibrary{}, navigation.Home())
	model, _ := m.Update(keyPress("/"))
	m = model.(AppModel)
	model, _ = m.Update(keyPress("dune"))
	m = model.(AppModel)

	gen := m.search.ac.Generation()
	m = send(t, m, suggestionsMsg{id: gen - 1, query: "dun", suggestions: []openlibrary.Suggestion{{Title: "Old"}}})
	assert.False(t, m.search.ac.Visible())
}

func TestEscapeClosesSuggestionsThenLeaves(t *testing.T) {
	lib := &fakeLibrary{suggestions: []openlibrary.Suggestion{{Key: "/works/OL1W", Title: "Dune"}}}
	m := startApp(t, lib, navigation.Home())
	model, _ := m.Update(keyPress("/"))
	m = model.(AppModel)
	model, cmd := m.Update(keyPress("dune"))
	m = settle(t, model.(AppModel), cmd)
	require.True(t, m.search.ac.Visible())

	m = send(t, m, keyPress("esc"))
	assert.False(t, m.search.ac.Visible())
	assert.True(t, m.search.focused())

	m = send(t, m, keyPress("esc"))
	assert.False(t, m.search.focused())
	assert.Equal(t, 1, m.History().Len(), "leaving the input does not navigate")
}

func TestStatusShownInFooter(t *testing.T) {
	m := startApp(t, &fakeLibrary{}, navigation.Home())
	m = send(t, m, statusMsg("Copied link"))
	assert.Equal(t, "Copied link", m.Status())
	assert.Contains(t, m.View(), "Copied link")

	m = send(t, m, keyPress("right"))
	assert.Empty(t, m.Status())
}

func TestStartAtSearchFillsInput(t *testing.T) {
	lib := &fakeLibrary{}
	m := startApp(t, lib, navigation.Search("foundation"))

	assert.Equal(t, "foundation", m.search.input.Value())
	assert.Equal(t, 2, m.History().Len())
	assert.Equal(t, []string{"Search foundation 1"}, lib.Calls())
}

func TestStartAtSearchSubmitsShownQuery(t *testing.T) {
	lib := &fakeLibrary{}
	m := startApp(t, lib, navigation.Search("foundation"))

	model, _ := m.Update(keyPress("/"))
	m = model.(AppModel)
	m = send(t, m, keyPress("enter"))

	assert.Equal(t, 3, m.History().Len())
	assert.Equal(t, navigation.Search("foundation"), m.History().Current())
	assert.Equal(t, []string{"Search foundation 1", "Search foundation 1"}, lib.Calls())
}

func TestBackToSearchSubmitsRestoredQuery(t *testing.T) {
	m := startApp(t, &fakeLibrary{}, navigation.Home())
	m = send(t, m, navigateMsg{view: navigation.Search("du")})
	m = send(t, m, navigateMsg{view: navigation.Search("duxy")})

	m = send(t, m, keyPress("esc"))
	require.Equal(t, navigation.Search("du"), m.History().Current())
	assert.Equal(t, "du", m.search.input.Value())
	assert.Equal(t, "du", m.search.ac.Query())

	model, _ := m.Update(keyPress("/"))
	m = model.(AppModel)
	m = send(t, m, keyPress("enter"))
	assert.Equal(t, navigation.Search("du"), m.History().Current())
}

func TestLeavingInputCancelsPendingSuggestions(t *testing.T) {
	lib := &fakeLibrary{suggestions: []openlibrary.Suggestion{{Key: "/works/OL1W", Title: "Dune"}}}
	m := startApp(t, lib, navigation.Home())
	model, _ := m.Update(keyPress("/"))
	m = model.(AppModel)
	model, tick := m.Update(keyPress("dune"))
	m = model.(AppModel)

	// Tab away before the debounce fires.
	model, _ = m.Update(keyPress("tab"))
	m = settle(t, model.(AppModel), tick)

	assert.False(t, m.search.focused())
	assert.False(t, m.search.ac.Visible())
	assert.Equal(t, autocomplete.Idle, m.search.ac.State())
	assert.NotContains(t, lib.Calls(), "Suggest dune")

	m = send(t, m, keyPress("6"))
	assert.Equal(t, navigation.Static(navigation.PageDMCA), m.History().Current())
	assert.False(t, m.search.ac.Visible())
}

func TestLeavingInputDropsInFlightSuggestions(t *testing.T) {
	lib := &fakeLibrary{suggestions: []openlibrary.Suggestion{{Key: "/works/OL1W", Title: "Dune"}}}
	m := startApp(t, lib, navigation.Home())
	model, _ := m.Update(keyPress("/"))
	m = model.(AppModel)
	model, _ = m.Update(keyPress("dune"))
	m = model.(AppModel)

	model, fetch := m.Update(debounceMsg{id: m.search.ac.Generation()})
	m = model.(AppModel)
	require.NotNil(t, fetch)

	model, _ = m.Update(keyPress("esc"))
	m = settle(t, model.(AppModel), fetch)

	assert.Contains(t, lib.Calls(), "Suggest dune")
	assert.False(t, m.search.focused())
	assert.False(t, m.search.ac.Visible())
}
