package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/logging"
	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

const (
	maxBreadcrumbs = 4
	wheelStep      = 3
)

// Options configures the browser.
type Options struct {
	Library       Library           // required
	Links         openlibrary.Links // zero value selects the public hosts
	Timeout       time.Duration     // per fetch; zero selects the client default
	Debounce      time.Duration     // autocomplete delay; zero selects the default
	StartCategory string            // home tab subject
	Start         navigation.View   // first view; zero value is Home
	Zones         *zone.Manager
	Clipboard     func(string) error
	Mouse         bool
}

// AppModel is the top-level coordinator. It owns the navigation history
// and the chrome around the current screen, and routes messages to the
// screen and the search form.
type AppModel struct {
	env     *env
	history *navigation.History
	screen  Screen
	search  searchForm

	viewport   viewport.Model
	lastCursor int
	spinner    spinner.Model
	help       help.Model
	keys       globalKeyMap

	width  int
	height int
	status string
	prefix string
}

// NewAppModel creates the browser model, positioned at opts.Start.
func NewAppModel(opts Options) AppModel {
	e := newEnv(opts)

	history := navigation.NewHistory()
	if opts.Start.Kind != navigation.KindHome {
		history.NavigateTo(opts.Start)
	}

	m := AppModel{
		env:        e,
		history:    history,
		screen:     newScreen(history.Current(), e),
		search:     newSearchForm(e, opts.Debounce),
		viewport:   viewport.New(0, 0),
		lastCursor: -1,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(SpinnerStyle)),
		help:       help.New(),
		keys:       newGlobalKeyMap(),
		prefix:     e.zones.NewPrefix(),
	}
	if v := history.Current(); v.Kind == navigation.KindSearch {
		m.search.setQuery(v.Query)
	}
	return m
}

// History returns the navigation history.
func (m AppModel) History() *navigation.History { return m.history }

// Screen returns the current screen.
func (m AppModel) Screen() Screen { return m.screen }

// Status returns the footer note, if any.
func (m AppModel) Status() string { return m.status }

// Init starts the first screen's fetches and the spinner.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.screen.Init(), m.spinner.Tick)
}

// Update handles all messages and routes them to the search form or the
// current screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.layout()
	return m, cmd
}

func (m AppModel) update(msg tea.Msg) (AppModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = ContentWidth(msg.Width)
		var cmd tea.Cmd
		m.screen, cmd = m.screen.Update(tea.WindowSizeMsg{Width: ContentWidth(msg.Width), Height: msg.Height})
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case navigateMsg:
		m.history.NavigateTo(msg.view)
		return m.show()

	case backMsg:
		if !m.history.Back() {
			return m, nil
		}
		return m.show()

	case homeMsg:
		m.history.ResetToHome()
		return m.show()

	case scrollTopMsg:
		m.viewport.GotoTop()
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case debounceMsg:
		return m, m.search.debounced(msg)

	case suggestionsMsg:
		m.search.resolved(msg)
		return m, nil
	}

	var screenCmd, inputCmd tea.Cmd
	m.screen, screenCmd = m.screen.Update(msg)
	m.search.input, inputCmd = m.search.input.Update(msg)
	return m, tea.Batch(screenCmd, inputCmd)
}

// show replaces the screen with one for the current view.
func (m AppModel) show() (AppModel, tea.Cmd) {
	v := m.history.Current()
	logging.Debug("showing view", zap.Stringer("view", v), zap.Int("depth", m.history.Len()))

	m.screen = newScreen(v, m.env)
	if m.width > 0 {
		m.screen, _ = m.screen.Update(tea.WindowSizeMsg{Width: ContentWidth(m.width), Height: m.height})
	}
	m.status = ""
	m.lastCursor = -1
	m.viewport.GotoTop()
	m.search.dismiss()
	if v.Kind == navigation.KindSearch {
		m.search.setQuery(v.Query)
	}
	return m, m.screen.Init()
}

func (m AppModel) updateKeys(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.status = ""

	if m.search.focused() {
		cmd, _ := m.search.updateKey(msg)
		return m, cmd
	}

	switch {
	case keyMatches(msg, m.keys.Quit):
		return m, tea.Quit
	case keyMatches(msg, m.keys.Search):
		return m, m.search.focus()
	case keyMatches(msg, m.keys.Back):
		return m, goBack
	case keyMatches(msg, m.keys.Home):
		return m, goHome
	case keyMatches(msg, m.keys.Pages):
		n, err := strconv.Atoi(msg.String())
		pages := navigation.StaticPages()
		if err != nil || n < 1 || n > len(pages) {
			return m, nil
		}
		return m, navigate(navigation.Static(pages[n-1]))
	case keyMatches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		return m, nil
	case keyMatches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		return m, nil
	case keyMatches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m AppModel) updateMouse(msg tea.MouseMsg) (AppModel, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.SetYOffset(m.viewport.YOffset - wheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.viewport.SetYOffset(m.viewport.YOffset + wheelStep)
		return m, nil
	}

	if cmd, handled := m.search.updateMouse(msg); handled {
		return m, cmd
	}

	if m.env.clicked(m.prefix+"brand", msg) {
		return m, goHome
	}
	for i, page := range navigation.StaticPages() {
		if m.env.clicked(m.footerZone(i), msg) {
			return m, navigate(navigation.Static(page))
		}
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m AppModel) footerZone(i int) string {
	return m.prefix + "footer-" + strconv.Itoa(i)
}

// layout sizes the viewport to the space the chrome leaves and refreshes
// its content, scrolling a newly selected item into view.
func (m *AppModel) layout() {
	if m.width == 0 {
		return
	}
	header, footer := m.chrome()
	m.viewport.Width = ContentWidth(m.width)
	m.viewport.Height = max(m.height-chromeHeight-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	r := m.screen.View(m.viewContext())
	m.viewport.SetContent(r.content)

	if r.cursor >= 0 && r.cursor != m.lastCursor {
		switch {
		case r.cursor < m.viewport.YOffset:
			m.viewport.SetYOffset(r.cursor)
		case r.cursorEnd >= m.viewport.YOffset+m.viewport.Height:
			m.viewport.SetYOffset(r.cursorEnd - m.viewport.Height + 1)
		}
	}
	m.lastCursor = r.cursor
}

func (m AppModel) viewContext() viewContext {
	return viewContext{width: ContentWidth(m.width), spinner: m.spinner.View()}
}

// chrome renders the header and footer around the screen.
func (m AppModel) chrome() (header, footer string) {
	inner := ContentWidth(m.width) - 2

	brand := m.env.mark(m.prefix+"brand", BrandStyle.Render("📚 "+AppName))
	crumbs := BreadcrumbStyle.Render(strings.Join(m.history.Breadcrumbs(maxBreadcrumbs), " › "))
	top := brand
	if gap := inner - lipgloss.Width(brand) - lipgloss.Width(crumbs); gap > 1 {
		top = brand + strings.Repeat(" ", gap) + crumbs
	}
	header = lipgloss.JoinVertical(lipgloss.Left, top, m.search.view(inner))

	pages := navigation.StaticPages()
	links := make([]string, 0, len(pages))
	for i, p := range pages {
		links = append(links, m.env.mark(m.footerZone(i), FooterLinkStyle.Render(fmt.Sprintf("%d %s", i+1, p.Label()))))
	}
	lines := []string{joinLinks(links, " | ")}
	if m.status != "" {
		lines = append(lines, StatusStyle.Render(m.status))
	}

	var keys help.KeyMap = appHelp{screen: m.screen.Keys(), global: m.keys}
	if m.search.focused() {
		keys = m.search.keys
	}
	lines = append(lines, m.help.View(keys))
	footer = lipgloss.JoinVertical(lipgloss.Left, lines...)
	return header, footer
}

// View renders the whole terminal.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.width < MinTerminalWidth {
		return fmt.Sprintf("Terminal too narrow (%d columns, need %d).", m.width, MinTerminalWidth)
	}

	header, footer := m.chrome()
	return m.env.zones.Scan(RenderApplicationContainer(header, m.viewport.View(), footer, m.width, m.height))
}

// Run starts the browser and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	logging.Info("starting browser", zap.Stringer("start", opts.Start), zap.Bool("mouse", opts.Mouse))
	if _, err := tea.NewProgram(NewAppModel(opts), programOpts...).Run(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
