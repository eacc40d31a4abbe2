package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

const subjectErrorMessage = "Error loading subject page."

// subjectScreen shows the unpaged works listing for a subject.
type subjectScreen struct {
	env     *env
	subject string
	width   int
	keys    gridKeys

	load loadState
	name string
	grid cardGrid
}

func newSubjectScreen(e *env, subject string) *subjectScreen {
	return &subjectScreen{
		env:     e,
		subject: subject,
		keys:    newGridKeys(),
		grid:    newCardGrid(e.zones.NewPrefix(), nil),
	}
}

func (s *subjectScreen) Kind() navigation.Kind { return navigation.KindSubject }

func (s *subjectScreen) Init() tea.Cmd {
	return s.fetch()
}

func (s *subjectScreen) fetch() tea.Cmd {
	id := s.load.begin()
	s.grid = newCardGrid(s.grid.prefix, nil)
	lib, subject := s.env.library, s.subject
	return s.env.fetch("subject", func(ctx context.Context) tea.Msg {
		result, err := lib.Subject(ctx, subject)
		return subjectResultMsg{id: id, subject: result, err: err}
	})
}

func (s *subjectScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width

	case subjectResultMsg:
		if !s.load.current(msg.id) {
			return s, nil
		}
		if msg.err != nil {
			s.load.fail(subjectErrorMessage, msg.err, zap.String("subject", s.subject))
			return s, nil
		}
		s.load.done()
		s.name = s.subject
		if msg.subject.Name != "" {
			s.name = msg.subject.Name
		}
		s.grid = newCardGrid(s.grid.prefix, openlibrary.Cards(msg.subject.Works))

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

func (s *subjectScreen) View(vc viewContext) rendered {
	f := newFrame()
	if body, ok := s.load.view(vc.spinner); ok {
		f.add(RenderTitle("Subject: " + s.subject))
		f.add(body)
		return f.result()
	}

	f.add(RenderTitle("Subject: " + s.name))
	if s.grid.len() == 0 {
		f.add(RenderEmpty(worksEmptyMessage))
		return f.result()
	}
	grid, top, bottom := s.grid.view(vc.width, s.env, true)
	f.addSelected(grid, top, bottom)
	return f.result()
}

func (s *subjectScreen) Keys() help.KeyMap {
	return screenHelp{s.keys.Open, s.keys.Reload}
}
