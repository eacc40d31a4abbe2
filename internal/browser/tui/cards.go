package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

// cardGrid lays book cards out in rows that fit the screen width and
// tracks the selected card.
type cardGrid struct {
	cards  []openlibrary.Card
	cursor int
	prefix string // zone id prefix, unique per grid
}

func newCardGrid(prefix string, cards []openlibrary.Card) cardGrid {
	return cardGrid{cards: cards, prefix: prefix}
}

// columns returns how many cards fit across width.
func columns(width int) int {
	return max(1, (width+CardGap)/(CardWidth+CardGap))
}

func (g cardGrid) len() int { return len(g.cards) }

func (g cardGrid) selected() (openlibrary.Card, bool) {
	if g.cursor < 0 || g.cursor >= len(g.cards) {
		return openlibrary.Card{}, false
	}
	return g.cards[g.cursor], true
}

// move shifts the selection by delta. A move past either end is refused
// and reported as false.
func (g *cardGrid) move(delta int) bool {
	next := g.cursor + delta
	if next < 0 || next >= len(g.cards) {
		return false
	}
	g.cursor = next
	return true
}

// handleKey moves the selection or opens the selected card. handled is
// false when the key is not a grid key or the move ran off an edge, so
// the caller can hand focus elsewhere.
func (g cardGrid) handleKey(msg tea.KeyMsg, width int, k gridKeys) (cardGrid, tea.Cmd, bool) {
	cols := columns(width)
	switch {
	case keyMatches(msg, k.Left):
		return g, nil, g.move(-1)
	case keyMatches(msg, k.Right):
		return g, nil, g.move(1)
	case keyMatches(msg, k.Up):
		return g, nil, g.move(-cols)
	case keyMatches(msg, k.Down):
		ok := g.move(cols)
		if !ok && g.cursor/cols < (len(g.cards)-1)/cols {
			// Partial last row: land on its last card.
			g.cursor = len(g.cards) - 1
			ok = true
		}
		return g, nil, ok
	case keyMatches(msg, k.Open):
		return g, g.open(), true
	}
	return g, nil, false
}

// handleMouse selects and opens a clicked card.
func (g cardGrid) handleMouse(msg tea.MouseMsg, e *env) (cardGrid, tea.Cmd) {
	for i := range g.cards {
		if e.clicked(g.zoneID(i), msg) {
			g.cursor = i
			return g, g.open()
		}
	}
	return g, nil
}

func (g cardGrid) open() tea.Cmd {
	card, ok := g.selected()
	if !ok || card.Key == "" {
		return nil
	}
	return navigate(navigation.Details(card.Key, card.IA))
}

func (g cardGrid) zoneID(i int) string {
	return g.prefix + "card-" + strconv.Itoa(i)
}

// view renders the grid. selStart and selEnd are the rows of the selected
// card's row, or -1 when focused is false.
func (g cardGrid) view(width int, e *env, focused bool) (out string, selStart, selEnd int) {
	cols := columns(width)
	selStart, selEnd = -1, -1

	var rows []string
	rowTop := 0
	for start := 0; start < len(g.cards); start += cols {
		end := min(start+cols, len(g.cards))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", CardGap))
			}
			sel := focused && i == g.cursor
			cells = append(cells, e.mark(g.zoneID(i), renderCard(g.cards[i], sel)))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		h := lipgloss.Height(row)
		if focused && g.cursor >= start && g.cursor < end {
			selStart, selEnd = rowTop, rowTop+h-1
		}
		rows = append(rows, row)
		rowTop += h
	}
	return strings.Join(rows, "\n"), selStart, selEnd
}

// renderCard draws one card: title, authors, and the read badge when the
// book can be borrowed.
func renderCard(c openlibrary.Card, selected bool) string {
	inner := CardWidth - 4 // border and padding
	title := CardTitleStyle.Render(truncate(c.Title, inner))
	authors := CardAuthorStyle.Render(truncate(c.Authors, inner))

	badge := CardAuthorStyle.Render("no scan")
	if c.IA != "" {
		badge = ReadBadgeStyle.Render("Read Book")
	}
	if c.CoverID > 0 {
		badge += CardAuthorStyle.Render(fmt.Sprintf(" #%d", c.CoverID))
	}

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.Width(CardWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, authors, badge))
}

// truncate shortens s to width terminal cells, ending in "…".
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(strings.TrimSpace(s), width, "…")
}

// stripView renders only the row of cards holding the selection, as a
// horizontally scrolling strip. Zone ids stay absolute so clicks map back
// to the right card.
func (g cardGrid) stripView(width int, e *env, focused bool) string {
	if len(g.cards) == 0 {
		return ""
	}
	cols := columns(width)
	start := (max(g.cursor, 0) / cols) * cols
	end := min(start+cols, len(g.cards))

	cells := make([]string, 0, 2*(end-start))
	for i := start; i < end; i++ {
		if i > start {
			cells = append(cells, strings.Repeat(" ", CardGap))
		}
		cells = append(cells, e.mark(g.zoneID(i), renderCard(g.cards[i], focused && i == g.cursor)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	more := fmt.Sprintf("%d-%d of %d", start+1, end, len(g.cards))
	return row + "\n" + CardAuthorStyle.Render(more)
}
