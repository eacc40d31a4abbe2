package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/logging"
	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
	"github.com/muurk/mylibrarybook/internal/pagination"
)

const (
	categoryErrorMessage = "Could not load books for this category."
	trendingErrorMessage = "Could not load books."
	worksEmptyMessage    = "No works found."
	homeIntro            = "Explore curated collections or use the search bar to find a specific book."
	trendingTitle        = "Trending This Week"
)

// Category is one curated home tab.
type Category struct {
	Name    string
	Subject string
}

// Categories are the home tabs, in display order.
var Categories = []Category{
	{Name: "Science Fiction", Subject: "science_fiction"},
	{Name: "Fantasy", Subject: "fantasy"},
	{Name: "Romance", Subject: "romance"},
	{Name: "Mystery & Thriller", Subject: "mystery"},
	{Name: "History", Subject: "history"},
}

// categoryIndex returns the tab for subject, or 0.
func categoryIndex(subject string) int {
	for i, c := range Categories {
		if c.Subject == subject {
			return i
		}
	}
	return 0
}

type homeSection int

const (
	sectionCategory homeSection = iota
	sectionTrending
)

type homeKeyMap struct {
	grid    gridKeys
	NextTab key.Binding
	PrevTab key.Binding
}

// homeScreen shows the category tabs with a paged grid, and the trending
// strip below them.
type homeScreen struct {
	env    *env
	prefix string
	width  int
	keys   homeKeyMap

	tab     int
	catLoad loadState
	grid    cardGrid
	pager   pager

	trendLoad loadState
	strip     cardGrid

	section homeSection
}

func newHomeScreen(e *env) *homeScreen {
	prefix := e.zones.NewPrefix()
	tab := categoryIndex(e.startCategory)
	if e.startCategory != "" && Categories[tab].Subject != e.startCategory {
		logging.Debug("start category is not a home tab, using the first", zap.String("category", e.startCategory))
	}
	return &homeScreen{
		env:    e,
		prefix: prefix,
		tab:    tab,
		grid:   newCardGrid(prefix+"cat-", nil),
		pager:  newPager(prefix+"cat-", pagination.SubjectPageSize),
		strip:  newCardGrid(prefix+"trend-", nil),
		keys: homeKeyMap{
			grid: newGridKeys(),
			NextTab: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", "next category"),
			),
			PrevTab: key.NewBinding(
				key.WithKeys("shift+tab"),
				key.WithHelp("shift+tab", "prev category"),
			),
		},
	}
}

func (s *homeScreen) Kind() navigation.Kind { return navigation.KindHome }

// Category returns the active tab.
func (s *homeScreen) Category() Category { return Categories[s.tab] }

func (s *homeScreen) Init() tea.Cmd {
	return tea.Batch(s.fetchCategory(1), s.fetchTrending())
}

func (s *homeScreen) fetchCategory(page int) tea.Cmd {
	id := s.catLoad.begin()
	s.grid = newCardGrid(s.grid.prefix, nil)
	s.section = sectionCategory
	lib, subject := s.env.library, s.Category().Subject
	return s.env.fetch("category", func(ctx context.Context) tea.Msg {
		result, err := lib.SubjectPage(ctx, subject, page)
		return categoryResultMsg{id: id, page: page, result: result, err: err}
	})
}

func (s *homeScreen) fetchTrending() tea.Cmd {
	id := s.trendLoad.begin()
	s.strip = newCardGrid(s.strip.prefix, nil)
	lib := s.env.library
	return s.env.fetch("trending", func(ctx context.Context) tea.Msg {
		books, err := lib.Trending(ctx)
		return trendingResultMsg{id: id, books: books, err: err}
	})
}

// selectTab switches category. The new tab starts again at page 1.
func (s *homeScreen) selectTab(tab int) tea.Cmd {
	n := len(Categories)
	tab = ((tab % n) + n) % n
	if tab == s.tab {
		return nil
	}
	s.tab = tab
	s.pager = newPager(s.pager.prefix, pagination.SubjectPageSize)
	return s.fetchCategory(1)
}

func (s *homeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width

	case categoryResultMsg:
		if !s.catLoad.current(msg.id) {
			return s, nil
		}
		if msg.err != nil {
			s.catLoad.fail(categoryErrorMessage, msg.err, zap.String("category", s.Category().Subject))
			return s, nil
		}
		s.catLoad.done()
		s.grid = newCardGrid(s.grid.prefix, openlibrary.Cards(msg.result.Works))
		s.pager.state.SetCount(msg.result.WorkCount)
		if s.pager.state.Loaded(msg.page) {
			return s, scrollTop
		}
		return s, nil

	case trendingResultMsg:
		if !s.trendLoad.current(msg.id) {
			return s, nil
		}
		if msg.err != nil {
			s.trendLoad.fail(trendingErrorMessage, msg.err)
			return s, nil
		}
		s.trendLoad.done()
		s.strip = newCardGrid(s.strip.prefix, openlibrary.Cards(msg.books))
		return s, nil

	case tea.KeyMsg:
		return s.updateKeys(msg)

	case tea.MouseMsg:
		return s.updateMouse(msg)
	}
	return s, nil
}

func (s *homeScreen) updateKeys(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch {
	case keyMatches(msg, s.keys.NextTab):
		return s, s.selectTab(s.tab + 1)
	case keyMatches(msg, s.keys.PrevTab):
		return s, s.selectTab(s.tab - 1)
	case keyMatches(msg, s.keys.grid.Reload):
		if s.section == sectionTrending {
			return s, s.fetchTrending()
		}
		return s, s.fetchCategory(max(s.pager.state.Page, 1))
	}

	if s.section == sectionTrending {
		return s.updateStrip(msg)
	}

	if s.catLoad.status != statusLoaded {
		if keyMatches(msg, s.keys.grid.Down) && s.strip.len() > 0 {
			s.section = sectionTrending
		}
		return s, nil
	}
	if page, ok := s.pager.request(msg, s.env); ok {
		return s, s.fetchCategory(page)
	}

	grid, cmd, handled := s.grid.handleKey(msg, s.width, s.keys.grid)
	s.grid = grid
	if !handled && keyMatches(msg, s.keys.grid.Down) && s.strip.len() > 0 {
		s.section = sectionTrending
	}
	return s, cmd
}

func (s *homeScreen) updateStrip(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch {
	case keyMatches(msg, s.keys.grid.Up):
		s.section = sectionCategory
	case keyMatches(msg, s.keys.grid.Left):
		s.strip.move(-1)
	case keyMatches(msg, s.keys.grid.Right):
		s.strip.move(1)
	case keyMatches(msg, s.keys.grid.Open):
		return s, s.strip.open()
	}
	return s, nil
}

func (s *homeScreen) updateMouse(msg tea.MouseMsg) (Screen, tea.Cmd) {
	for i := range Categories {
		if s.env.clicked(s.tabZone(i), msg) {
			return s, s.selectTab(i)
		}
	}
	if page, ok := s.pager.request(msg, s.env); ok && s.catLoad.status == statusLoaded {
		return s, s.fetchCategory(page)
	}

	var cmd tea.Cmd
	if s.grid, cmd = s.grid.handleMouse(msg, s.env); cmd != nil {
		s.section = sectionCategory
		return s, cmd
	}
	if s.strip, cmd = s.strip.handleMouse(msg, s.env); cmd != nil {
		s.section = sectionTrending
	}
	return s, cmd
}

func (s *homeScreen) tabZone(i int) string {
	return s.prefix + "tab-" + strconv.Itoa(i)
}

func (s *homeScreen) View(vc viewContext) rendered {
	f := newFrame()
	f.add(SubtitleStyle.Render(homeIntro))
	f.add("")
	f.add(s.renderTabs())
	f.add("")

	if body, ok := s.catLoad.view(vc.spinner); ok {
		f.add(body)
	} else if s.grid.len() == 0 {
		f.add(RenderEmpty(worksEmptyMessage))
	} else {
		grid, top, bottom := s.grid.view(vc.width, s.env, s.section == sectionCategory)
		f.addSelected(grid, top, bottom)
		if p := s.pager.view(s.env); p != "" {
			f.add("")
			f.add(p)
		}
	}

	f.add("")
	f.add(HeadingStyle.Width(vc.width).Render(trendingTitle))
	if body, ok := s.trendLoad.view(vc.spinner); ok {
		f.add(body)
	} else if s.strip.len() == 0 {
		f.add(RenderEmpty(worksEmptyMessage))
	} else {
		strip := s.strip.stripView(vc.width, s.env, s.section == sectionTrending)
		if s.section == sectionTrending {
			f.addSelected(strip, 0, lipgloss.Height(strip)-1)
		} else {
			f.add(strip)
		}
	}
	return f.result()
}

func (s *homeScreen) renderTabs() string {
	tabs := make([]string, 0, len(Categories))
	for i, c := range Categories {
		style := TabStyle
		if i == s.tab {
			style = ActiveTabStyle
		}
		tabs = append(tabs, s.env.mark(s.tabZone(i), style.Render(c.Name)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (s *homeScreen) Keys() help.KeyMap {
	return screenHelp{s.keys.NextTab, s.keys.grid.Open, s.pager.keys.Next, s.pager.keys.Prev, s.keys.grid.Reload}
}
