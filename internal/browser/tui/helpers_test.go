package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

// fakeLibrary serves canned data and records every call.
type fakeLibrary struct {
	mu    sync.Mutex
	calls []string

	search      map[int]*openlibrary.SearchPage
	searchErr   error
	suggestions []openlibrary.Suggestion
	book        *openlibrary.BookDetails
	author      *openlibrary.AuthorDetails
	authorPage  *openlibrary.AuthorPage
	subject     *openlibrary.Subject
	subjectPage *openlibrary.SubjectPage
	trending    []openlibrary.SearchBook
}

func (f *fakeLibrary) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeLibrary) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeLibrary) Search(_ context.Context, query string, page int) (*openlibrary.SearchPage, error) {
	f.record("Search %s %d", query, page)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if p, ok := f.search[page]; ok {
		return p, nil
	}
	return &openlibrary.SearchPage{Page: page}, nil
}

func (f *fakeLibrary) Suggest(_ context.Context, query string) ([]openlibrary.Suggestion, error) {
	f.record("Suggest %s", query)
	return f.suggestions, nil
}

func (f *fakeLibrary) Book(_ context.Context, key string) (*openlibrary.BookDetails, error) {
	f.record("Book %s", key)
	if f.book == nil {
		return nil, openlibrary.NewNotFoundError("Book not found", key)
	}
	return f.book, nil
}

func (f *fakeLibrary) Author(_ context.Context, key string) (*openlibrary.AuthorDetails, error) {
	f.record("Author %s", key)
	if f.author == nil {
		return nil, openlibrary.NewNotFoundError("Author not found", key)
	}
	return f.author, nil
}

func (f *fakeLibrary) AuthorPage(_ context.Context, key string) (*openlibrary.AuthorPage, error) {
	f.record("AuthorPage %s", key)
	if f.authorPage == nil {
		return nil, openlibrary.NewNotFoundError("Author not found", key)
	}
	return f.authorPage, nil
}

func (f *fakeLibrary) Subject(_ context.Context, name string) (*openlibrary.Subject, error) {
	f.record("Subject %s", name)
	if f.subject == nil {
		return &openlibrary.Subject{Name: name}, nil
	}
	return f.subject, nil
}

func (f *fakeLibrary) SubjectPage(_ context.Context, name string, page int) (*openlibrary.SubjectPage, error) {
	f.record("SubjectPage %s %d", name, page)
	if f.subjectPage == nil {
		return &openlibrary.SubjectPage{Subject: name, Page: page}, nil
	}
	return f.subjectPage, nil
}

func (f *fakeLibrary) Trending(context.Context) ([]openlibrary.SearchBook, error) {
	f.record("Trending")
	return f.trending, nil
}

func testEnv(lib Library) *env {
	return newEnv(Options{Library: lib, Zones: zone.New(), Timeout: time.Second})
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and flattens batches into the messages they produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// isAppMsg picks out the messages this package produces. Ticks from the
// spinner and cursor are dropped so the loop terminates.
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case navigateMsg, backMsg, homeMsg, scrollTopMsg, statusMsg,
		debounceMsg, suggestionsMsg,
		searchResultMsg, categoryResultMsg, trendingResultMsg,
		detailsResultMsg, authorResultMsg, subjectResultMsg:
		return true
	}
	return false
}

// settle feeds cmd's messages back into m until nothing is left.
func settle(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	pending := []tea.Cmd{cmd}
	for rounds := 0; len(pending) > 0; rounds++ {
		if rounds > 50 {
			t.Fatal("commands did not settle")
		}
		var next []tea.Cmd
		for _, c := range pending {
			for _, msg := range collect(c) {
				if !isAppMsg(msg) {
					continue
				}
				model, more := m.Update(msg)
				m = model.(AppModel)
				next = append(next, more)
			}
		}
		pending = next
	}
	return m
}

// send delivers one message and settles whatever it starts.
func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	model, cmd := m.Update(msg)
	return settle(t, model.(AppModel), cmd)
}

// startApp builds a sized model and runs its initial fetches.
func startApp(t *testing.T, lib *fakeLibrary, start navigation.View) AppModel {
	t.Helper()
	m := NewAppModel(Options{
		Library:   lib,
		Zones:     zone.New(),
		Timeout:   time.Second,
		Debounce:  10 * time.Millisecond,
		Start:     start,
		Clipboard: func(string) error { return nil },
	})
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = model.(AppModel)
	return settle(t, m, m.screen.Init())
}
