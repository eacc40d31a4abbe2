package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

const authorErrorMessage = "Error loading author page."

// authorScreen shows an author's photo, name, bio and works.
type authorScreen struct {
	env       *env
	authorKey string
	width     int
	keys      gridKeys

	load    loadState
	details *openlibrary.AuthorDetails
	grid    cardGrid
}

func newAuthorScreen(e *env, authorKey string) *authorScreen {
	return &authorScreen{
		env:       e,
		authorKey: authorKey,
		keys:      newGridKeys(),
		grid:      newCardGrid(e.zones.NewPrefix(), nil),
	}
}

func (s *authorScreen) Kind() navigation.Kind { return navigation.KindAuthor }

func (s *authorScreen) Init() tea.Cmd {
	return s.fetch()
}

// fetch loads the author record and works together; the client runs
// both requests concurrently and fails if either does.
func (s *authorScreen) fetch() tea.Cmd {
	id := s.load.begin()
	s.details = nil
	s.grid = newCardGrid(s.grid.prefix, nil)
	lib, authorKey := s.env.library, s.authorKey
	return s.env.fetch("author", func(ctx context.Context) tea.Msg {
		page, err := lib.AuthorPage(ctx, authorKey)
		return authorResultMsg{id: id, page: page, err: err}
	})
}

func (s *authorScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width

	case authorResultMsg:
		if !s.load.current(msg.id) {
			return s, nil
		}
		if msg.err == nil && (msg.page == nil || msg.page.Details == nil) {
			msg.err = openlibrary.NewNotFoundError("Author not found", s.authorKey)
		}
		if msg.err != nil {
			s.load.fail(authorErrorMessage, msg.err, zap.String("key", s.authorKey))
			return s, nil
		}
		s.load.done()
		s.details = msg.page.Details
		s.grid = newCardGrid(s.grid.prefix, openlibrary.Cards(msg.page.Works))

	case tea.KeyMsg:
		if keyMatches(msg, s.keys.Reload) {
			return s, s.fetch()
		}
		if s.load.status != statusLoaded {
			return s, nil
		}
		var cmd tea.Cmd
		s.grid, cmd, _ = s.grid.handleKey(msg, s.width, s.keys)
		return s, cmd

	case tea.MouseMsg:
		if s.load.status != statusLoaded {
			return s, nil
		}
		var cmd tea.Cmd
		s.grid, cmd = s.grid.handleMouse(msg, s.env)
		return s, cmd
	}
	return s, nil
}

func (s *authorScreen) View(vc viewContext) rendered {
	f := newFrame()
	if body, ok := s.load.view(vc.spinner); ok {
		f.add(body)
		return f.result()
	}

	name := s.details.Name
	f.add(RenderTitle(name))
	if photo := s.env.links.AuthorPhoto(s.details.PhotoID(), openlibrary.CoverMedium); photo != "" {
		f.add(SubtitleStyle.Render("Photo: " + photo))
	}
	if bio := s.details.Bio.String(); bio != "" {
		f.add(lipgloss.NewStyle().Width(vc.width).Render(bio))
	}
	f.add("")
	f.add(HeadingStyle.Width(vc.width).Render("Works by " + name))

	if s.grid.len() == 0 {
		f.add(RenderEmpty(worksEmptyMessage))
		return f.result()
	}
	grid, top, bottom := s.grid.view(vc.width, s.env, true)
	f.addSelected(grid, top, bottom)
	return f.result()
}

func (s *authorScreen) Keys() help.KeyMap {
	return screenHelp{s.keys.Open, s.keys.Reload}
}
