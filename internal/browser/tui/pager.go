package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/mylibrarybook/internal/pagination"
)

// maxDots is the page count above which the pager shows "2/40" instead
// of one dot per page.
const maxDots = 12

// pager renders a pagination.State and turns keys and clicks into page
// requests. It never changes the state itself; the screen does that once
// the requested page has loaded.
type pager struct {
	state  pagination.State
	keys   pagerKeys
	prefix string
}

func newPager(prefix string, size int) pager {
	return pager{state: pagination.New(size), keys: newPagerKeys(), prefix: prefix}
}

// request returns the page a key or click asks for. ok is false when the
// message is not a pager action or the target equals the current page.
func (p pager) request(msg tea.Msg, e *env) (page int, ok bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case keyMatches(msg, p.keys.Next):
			return p.state.Next()
		case keyMatches(msg, p.keys.Prev):
			return p.state.Prev()
		}
	case tea.MouseMsg:
		switch {
		case e.clicked(p.prefix+"next", msg):
			return p.state.Next()
		case e.clicked(p.prefix+"prev", msg):
			return p.state.Prev()
		}
	}
	return 0, false
}

func (p pager) view(e *env) string {
	if !p.state.HasPages() {
		return ""
	}

	dots := paginator.New()
	dots.PerPage = 1
	dots.SetTotalPages(p.state.Total)
	dots.Page = max(p.state.Page-1, 0)
	dots.ActiveDot = lipgloss.NewStyle().Foreground(PrimaryColor).Render("•")
	dots.InactiveDot = lipgloss.NewStyle().Foreground(SubtleColor).Render("•")
	if p.state.Total > maxDots {
		dots.Type = paginator.Arabic
	} else {
		dots.Type = paginator.Dots
	}

	prev := FooterStyle.Render("‹ Prev")
	if p.state.Page > 1 {
		prev = e.mark(p.prefix+"prev", LinkStyle.Render("‹ Prev"))
	}
	next := FooterStyle.Render("Next ›")
	if p.state.Page < p.state.Total {
		next = e.mark(p.prefix+"next", LinkStyle.Render("Next ›"))
	}

	label := FooterStyle.Render(fmt.Sprintf("Page %d of %d", p.state.Page, p.state.Total))
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, "  ", dots.View(), "  ", label, "  ", next)
}
