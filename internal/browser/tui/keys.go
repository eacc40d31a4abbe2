package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}

// globalKeyMap holds the bindings active on every screen while the search
// input is not focused.
type globalKeyMap struct {
	Search   key.Binding
	Back     key.Binding
	Home     key.Binding
	Pages    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newGlobalKeyMap() globalKeyMap {
	return globalKeyMap{
		Search: key.NewBinding(
			key.WithKeys("/", "s"),
			key.WithHelp("/", "search"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "home"),
		),
		Pages: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "info pages"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// searchKeyMap holds the bindings active while typing in the search input.
type searchKeyMap struct {
	Submit key.Binding
	Up     key.Binding
	Down   key.Binding
	Cancel key.Binding
	Leave  key.Binding
}

func newSearchKeyMap() searchKeyMap {
	return searchKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Leave: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leave search"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Up, k.Down, k.Cancel, k.Leave}
}

// FullHelp returns keybindings for the expanded help view
func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// gridKeys are shared by every screen that shows book cards.
type gridKeys struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Open   key.Binding
	Reload key.Binding
}

func newGridKeys() gridKeys {
	return gridKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
	}
}

// pagerKeys page through paged screens.
type pagerKeys struct {
	Next key.Binding
	Prev key.Binding
}

func newPagerKeys() pagerKeys {
	return pagerKeys{
		Next: key.NewBinding(
			key.WithKeys("n", "]"),
			key.WithHelp("n", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "["),
			key.WithHelp("p", "prev page"),
		),
	}
}

// screenHelp is a help.KeyMap built from a fixed binding list.
type screenHelp []key.Binding

// ShortHelp returns keybindings to be shown in the mini help view
func (s screenHelp) ShortHelp() []key.Binding { return s }

// FullHelp returns keybindings for the expanded help view
func (s screenHelp) FullHelp() [][]key.Binding { return [][]key.Binding{s} }

// appHelp combines the current screen's bindings with the global ones.
type appHelp struct {
	screen help.KeyMap
	global globalKeyMap
}

// ShortHelp returns keybindings to be shown in the mini help view
func (a appHelp) ShortHelp() []key.Binding {
	out := append([]key.Binding{}, a.screen.ShortHelp()...)
	return append(out, a.global.Search, a.global.Back, a.global.Help, a.global.Quit)
}

// FullHelp returns keybindings for the expanded help view
func (a appHelp) FullHelp() [][]key.Binding {
	out := append([][]key.Binding{}, a.screen.FullHelp()...)
	return append(out,
		[]key.Binding{a.global.Search, a.global.Back, a.global.Home, a.global.Pages},
		[]key.Binding{a.global.PageUp, a.global.PageDown, a.global.Help, a.global.Quit},
	)
}
