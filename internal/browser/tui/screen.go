package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/logging"
	"github.com/muurk/mylibrarybook/internal/navigation"
)

// Screen is one view of the browser. A screen is created fresh every time
// its view becomes current and fetches its own data from Init.
type Screen interface {
	Kind() navigation.Kind
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(vc viewContext) rendered
	Keys() help.KeyMap
}

// viewContext carries what a screen needs to render besides its state.
type viewContext struct {
	width   int
	spinner string
}

// rendered is a screen's content plus the rows of its selected item, so
// the app can keep the selection scrolled into view. cursor is -1 when
// nothing is selected.
type rendered struct {
	content   string
	cursor    int
	cursorEnd int
}

// frame accumulates screen content while counting rows.
type frame struct {
	b         strings.Builder
	rows      int
	cursor    int
	cursorEnd int
}

func newFrame() *frame {
	return &frame{cursor: -1, cursorEnd: -1}
}

// add appends a block followed by a newline.
func (f *frame) add(block string) {
	f.b.WriteString(block)
	f.b.WriteString("\n")
	f.rows += lipgloss.Height(block)
}

// addSelected appends a block and records selStart..selEnd, relative to
// the block, as the selected rows.
func (f *frame) addSelected(block string, selStart, selEnd int) {
	if selStart >= 0 {
		f.cursor = f.rows + selStart
		f.cursorEnd = f.rows + selEnd
	}
	f.add(block)
}

func (f *frame) result() rendered {
	return rendered{content: strings.TrimRight(f.b.String(), "\n"), cursor: f.cursor, cursorEnd: f.cursorEnd}
}

// newScreen builds the screen for v. Every kind has a screen; an unknown
// kind falls back to Home.
func newScreen(v navigation.View, e *env) Screen {
	switch v.Kind {
	case navigation.KindHome:
		return newHomeScreen(e)
	case navigation.KindSearch:
		return newResultsScreen(e, v.Query)
	case navigation.KindDetails:
		return newDetailsScreen(e, v.BookKey, v.IA)
	case navigation.KindAuthor:
		return newAuthorScreen(e, v.AuthorKey)
	case navigation.KindSubject:
		return newSubjectScreen(e, v.Subject)
	case navigation.KindStatic:
		return newStaticScreen(e, v.Page)
	default:
		logging.Warn("no screen for view, rendering home", zap.Stringer("kind", v.Kind))
		return newHomeScreen(e)
	}
}
