package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/autocomplete"
	"github.com/muurk/mylibrarybook/internal/logging"
	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

const searchPlaceholder = "Search for books by title or author..."

// searchForm is the header search box with its suggestion dropdown. The
// autocomplete controller decides; the form turns its intents into
// ticks, fetches and navigation.
type searchForm struct {
	env    *env
	input  textinput.Model
	ac     *autocomplete.Controller
	keys   searchKeyMap
	prefix string
}

func newSearchForm(e *env, delay time.Duration) searchForm {
	input := textinput.New()
	input.Placeholder = searchPlaceholder
	input.Prompt = "⌕ "
	input.CharLimit = 200

	return searchForm{
		env:    e,
		input:  input,
		ac:     autocomplete.New(delay),
		keys:   newSearchKeyMap(),
		prefix: e.zones.NewPrefix(),
	}
}

func (f searchForm) focused() bool { return f.input.Focused() }

// focus gives the input the cursor and re-shows dismissed suggestions.
func (f *searchForm) focus() tea.Cmd {
	f.ac.Focus()
	return f.input.Focus()
}

// blur hides the dropdown and drops any pending lookup, keeping the typed
// text.
func (f *searchForm) blur() {
	f.ac.Blur()
	f.input.Blur()
}

// dismiss hides the dropdown without moving focus.
func (f *searchForm) dismiss() {
	f.ac.Blur()
}

// setQuery shows q in the input without triggering suggestions. Enter
// submits q until the user edits it.
func (f *searchForm) setQuery(q string) {
	f.input.SetValue(q)
	f.input.CursorEnd()
	f.ac.SetQuery(q)
}

// updateKey handles a key while the input is focused. leave is true when
// the user asked to move focus out of the form.
func (f *searchForm) updateKey(msg tea.KeyMsg) (cmd tea.Cmd, leave bool) {
	switch {
	case keyMatches(msg, f.keys.Submit):
		return f.apply(f.ac.Submit()), false
	case keyMatches(msg, f.keys.Down):
		f.ac.Down()
		return nil, false
	case keyMatches(msg, f.keys.Up):
		f.ac.Up()
		return nil, false
	case keyMatches(msg, f.keys.Cancel):
		if f.ac.Visible() {
			f.ac.Escape()
			return nil, false
		}
		f.blur()
		return nil, true
	case keyMatches(msg, f.keys.Leave):
		f.blur()
		return nil, true
	}

	before := f.input.Value()
	var inputCmd tea.Cmd
	f.input, inputCmd = f.input.Update(msg)
	if f.input.Value() == before {
		return inputCmd, false
	}
	return tea.Batch(inputCmd, f.apply(f.ac.Keystroke(f.input.Value()))), false
}

// apply turns a controller intent into a command.
func (f *searchForm) apply(intent autocomplete.Intent) tea.Cmd {
	switch in := intent.(type) {
	case autocomplete.Arm:
		id := in.ID
		return tea.Tick(in.Delay, func(time.Time) tea.Msg { return debounceMsg{id: id} })

	case autocomplete.Fetch:
		lib := f.env.library
		id, query := in.ID, in.Query
		return f.env.fetch("suggest", func(ctx context.Context) tea.Msg {
			suggestions, err := lib.Suggest(ctx, query)
			return suggestionsMsg{id: id, query: query, suggestions: suggestions, err: err}
		})

	case autocomplete.Submit:
		f.setQuery(in.Query)
		f.input.Blur()
		return navigate(navigation.Search(in.Query))
	}
	return nil
}

// debounced handles an expired debounce tick.
func (f *searchForm) debounced(msg debounceMsg) tea.Cmd {
	return f.apply(f.ac.DebounceFired(msg.id))
}

// resolved applies a suggestion response. Failures are logged, never shown.
func (f *searchForm) resolved(msg suggestionsMsg) {
	applied := f.ac.Resolve(msg.id, msg.query, msg.suggestions, msg.err)
	switch {
	case !applied:
		logging.Debug("dropped stale suggestions", zap.String("query", msg.query), zap.Uint64("id", msg.id))
	case msg.err != nil:
		logging.Warn("suggestion fetch failed", zap.String("query", msg.query), zap.Error(msg.err))
	}
}

// updateMouse handles hover and clicks on the form. It reports whether
// the event landed on the form.
func (f *searchForm) updateMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	if f.ac.Visible() {
		for i := range f.ac.Suggestions() {
			id := f.suggestionZone(i)
			if f.env.clicked(id, msg) {
				return f.apply(f.ac.Click(i)), true
			}
			if msg.Action == tea.MouseActionMotion && f.env.inBounds(id, msg) {
				f.ac.Hover(i)
				return nil, true
			}
		}
	}

	if f.env.clicked(f.prefix+"input", msg) {
		return f.focus(), true
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		// Any other click closes the dropdown.
		f.ac.ClickOutside()
	}
	return nil, false
}

func (f searchForm) suggestionZone(i int) string {
	return f.prefix + "sugg-" + strconv.Itoa(i)
}

// view renders the input box and, when visible, the suggestion list.
func (f searchForm) view(width int) string {
	style := BlurredInputStyle
	if f.focused() {
		style = FocusedInputStyle
	}
	f.input.Width = max(width-6, 10)
	box := f.env.mark(f.prefix+"input", style.Width(width-2).Render(f.input.View()))

	if !f.ac.Visible() {
		return box
	}

	lines := make([]string, 0, len(f.ac.Suggestions()))
	for i, s := range f.ac.Suggestions() {
		lines = append(lines, f.env.mark(f.suggestionZone(i), f.renderSuggestion(s, i == f.ac.Active(), width-2)))
	}
	dropdown := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderTop(false).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, box, dropdown)
}

// renderSuggestion draws one entry with the typed text emphasised in the
// title, followed by the authors.
func (f searchForm) renderSuggestion(s openlibrary.Suggestion, active bool, width int) string {
	card := s.Card()
	title := truncate(card.Title, max(width/2, 10))

	segments, err := autocomplete.Highlight(title, f.ac.Query())
	if err != nil {
		logging.Debug("suggestion highlight disabled", zap.Error(err))
	}
	var b strings.Builder
	for _, seg := range segments {
		if seg.Match {
			b.WriteString(MatchStyle.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}

	line := b.String()
	if rest := width - lipgloss.Width(line) - 6; rest > 4 {
		line += CardAuthorStyle.Render("  by " + truncate(card.Authors, rest))
	}
	style := SuggestionStyle
	if active {
		style = ActiveSuggestionStyle
	}
	return style.Width(width).Render(line)
}
