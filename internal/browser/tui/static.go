package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/content"
	"github.com/muurk/mylibrarybook/internal/logging"
	"github.com/muurk/mylibrarybook/internal/navigation"
)

// staticScreen renders one of the informational pages. It has nothing
// to fetch and is always loaded.
type staticScreen struct {
	env  *env
	page navigation.StaticPage
}

func newStaticScreen(e *env, page navigation.StaticPage) *staticScreen {
	return &staticScreen{env: e, page: page}
}

func (s *staticScreen) Kind() navigation.Kind { return navigation.KindStatic }

func (s *staticScreen) Init() tea.Cmd { return nil }

func (s *staticScreen) Update(tea.Msg) (Screen, tea.Cmd) { return s, nil }

func (s *staticScreen) View(vc viewContext) rendered {
	f := newFrame()
	f.add(RenderTitle(s.page.Title()))

	body, err := content.Render(s.page, vc.width)
	if err != nil {
		logging.Error("static page missing", zap.Stringer("page", s.page), zap.Error(err))
		f.add(RenderError("This page is unavailable."))
		return f.result()
	}
	f.add(body)
	return f.result()
}

func (s *staticScreen) Keys() help.KeyMap { return screenHelp{} }
