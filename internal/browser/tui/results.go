package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
	"github.com/muurk/mylibrarybook/internal/pagination"
)

const (
	searchErrorMessage = "Error fetching search results."
	searchEmptyMessage = "No results found."
)

// resultsScreen shows one page of search results for a query.
type resultsScreen struct {
	env   *env
	query string
	load  loadState
	grid  cardGrid
	pager pager
	width int
	keys  gridKeys
}

func newResultsScreen(e *env, query string) *resultsScreen {
	prefix := e.zones.NewPrefix()
	return &resultsScreen{
		env:   e,
		query: query,
		grid:  newCardGrid(prefix, nil),
		pager: newPager(prefix, pagination.SearchPageSize),
		keys:  newGridKeys(),
	}
}

func (s *resultsScreen) Kind() navigation.Kind { return navigation.KindSearch }

func (s *resultsScreen) Init() tea.Cmd {
	return s.fetch(1)
}

func (s *resultsScreen) fetch(page int) tea.Cmd {
	id := s.load.begin()
	s.grid = newCardGrid(s.grid.prefix, nil)
	lib, query := s.env.library, s.query
	return s.env.fetch("search", func(ctx context.Context) tea.Msg {
		result, err := lib.Search(ctx, query, page)
		return searchResultMsg{id: id, page: page, result: result, err: err}
	})
}

func (s *resultsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width

	case searchResultMsg:
		if !s.load.current(msg.id) {
			return s, nil
		}
		if msg.err != nil {
			s.load.fail(searchErrorMessage, msg.err, zap.String("query", s.query))
			return s, nil
		}
		s.load.done()
		s.grid = newCardGrid(s.grid.prefix, openlibrary.Cards(msg.result.Docs))
		s.pager.state.SetCount(msg.result.NumFound)
		if s.pager.state.Loaded(msg.page) {
			return s, scrollTop
		}
		return s, nil

	case tea.KeyMsg:
		if keyMatches(msg, s.keys.Reload) {
			return s, s.fetch(max(s.pager.state.Page, 1))
		}
		if s.load.status != statusLoaded {
			return s, nil
		}
		if page, ok := s.pager.request(msg, s.env); ok {
			return s, s.fetch(page)
		}
		var cmd tea.Cmd
		s.grid, cmd, _ = s.grid.handleKey(msg, s.width, s.keys)
		return s, cmd

	case tea.MouseMsg:
		if s.load.status != statusLoaded {
			return s, nil
		}
		if page, ok := s.pager.request(msg, s.env); ok {
			return s, s.fetch(page)
		}
		var cmd tea.Cmd
		s.grid, cmd = s.grid.handleMouse(msg, s.env)
		return s, cmd
	}
	return s, nil
}

func (s *resultsScreen) View(vc viewContext) rendered {
	f := newFrame()
	f.add(RenderTitle(fmt.Sprintf("Search Results for %q", s.query)))

	if body, ok := s.load.view(vc.spinner); ok {
		f.add(body)
		return f.result()
	}

	if s.grid.len() == 0 {
		f.add(RenderEmpty(searchEmptyMessage))
	} else {
		grid, top, bottom := s.grid.view(vc.width, s.env, true)
		f.addSelected(grid, top, bottom)
	}
	if p := s.pager.view(s.env); p != "" {
		f.add("")
		f.add(p)
	}
	return f.result()
}

func (s *resultsScreen) Keys() help.KeyMap {
	return screenHelp{s.keys.Open, s.pager.keys.Next, s.pager.keys.Prev, s.keys.Reload}
}
