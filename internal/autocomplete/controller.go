package autocomplete

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

const (
	// DefaultDelay is how long typing must pause before suggestions are
	// fetched.
	DefaultDelay = 300 * time.Millisecond

	// MinQueryLength is the longest query that does not trigger suggestions.
	// A query must be strictly longer to be looked up.
	MinQueryLength = 2
)

// State is the phase of one input session.
type State int

const (
	// Idle means the query is too short or the last fetch failed.
	Idle State = iota
	// Pending means a debounce is armed or a fetch is in flight.
	Pending
	// Showing means suggestions are visible.
	Showing
	// Dismissed means suggestions exist but were hidden by the user.
	Dismissed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Showing:
		return "showing"
	case Dismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Intent is work the controller asks its host to perform. The controller
// owns no timers and does no I/O.
type Intent interface {
	intent()
}

// Arm asks the host to call DebounceFired(ID) after Delay.
type Arm struct {
	ID    uint64
	Query string
	Delay time.Duration
}

// Fetch asks the host to look up suggestions for Query and report back
// with Resolve(ID, Query, ...).
type Fetch struct {
	ID    uint64
	Query string
}

// Submit asks the host to run a search for Query.
type Submit struct {
	Query string
}

func (Arm) intent()    {}
func (Fetch) intent()  {}
func (Submit) intent() {}

// Controller is the suggestion list state machine behind the search box.
//
// Every keystroke bumps a generation counter. Arm, Fetch and Resolve carry
// the generation they were issued under, and anything older than the
// current generation is ignored, so only the latest keystroke's timer
// fires and only the latest query's response is applied.
type Controller struct {
	delay time.Duration

	query       string
	suggestions []openlibrary.Suggestion
	active      int
	state       State
	generation  uint64
}

// New returns an idle controller. A non-positive delay selects
// DefaultDelay.
func New(delay time.Duration) *Controller {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Controller{delay: delay, active: -1}
}

// Query returns the current input text.
func (c *Controller) Query() string { return c.query }

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Active returns the highlighted suggestion index, or -1.
func (c *Controller) Active() int { return c.active }

// Generation returns the current generation.
func (c *Controller) Generation() uint64 { return c.generation }

// Delay returns the debounce delay.
func (c *Controller) Delay() time.Duration { return c.delay }

// Suggestions returns the current suggestion list, visible or not.
func (c *Controller) Suggestions() []openlibrary.Suggestion { return c.suggestions }

// Visible reports whether the suggestion list should be drawn.
func (c *Controller) Visible() bool {
	return c.state == Showing && len(c.suggestions) > 0
}

// Keystroke records new input text.
func (c *Controller) Keystroke(text string) Intent {
	c.query = text
	c.generation++

	if !longEnough(text) {
		c.clear()
		c.state = Idle
		return nil
	}

	c.state = Pending
	return Arm{ID: c.generation, Query: text, Delay: c.delay}
}

// DebounceFired handles an expired debounce timer. Timers from older
// generations are ignored.
func (c *Controller) DebounceFired(id uint64) Intent {
	if id != c.generation || c.state != Pending {
		return nil
	}
	return Fetch{ID: id, Query: c.query}
}

// Resolve applies a suggestion response. It reports whether the response
// was applied; responses for an older generation or a different query are
// dropped.
func (c *Controller) Resolve(id uint64, query string, suggestions []openlibrary.Suggestion, err error) bool {
	if id != c.generation || query != c.query || c.state != Pending {
		return false
	}

	if err != nil {
		c.clear()
		c.state = Idle
		return true
	}

	c.suggestions = suggestions
	c.active = -1
	c.state = Showing
	return true
}

// Down moves the highlight forward, wrapping after the last entry.
func (c *Controller) Down() {
	if !c.Visible() {
		return
	}
	c.active = (c.active + 1) % len(c.suggestions)
}

// Up moves the highlight backward, wrapping before the first entry. With
// nothing highlighted it selects the last entry.
func (c *Controller) Up() {
	if !c.Visible() {
		return
	}
	n := len(c.suggestions)
	// -1 lands on the last entry, not n-2 as plain modular stepping would.
	if c.active <= 0 {
		c.active = n - 1
		return
	}
	c.active--
}

// Escape hides the list, keeping the query and suggestions.
func (c *Controller) Escape() {
	if c.state == Showing {
		c.state = Dismissed
	}
}

// ClickOutside hides the list like Escape.
func (c *Controller) ClickOutside() {
	c.Escape()
}

// Blur hides the list when the input loses focus. A pending lookup is
// abandoned so its result cannot open the list behind an unfocused input.
func (c *Controller) Blur() {
	switch c.state {
	case Pending:
		c.generation++
		c.clear()
		c.state = Idle
	case Showing:
		c.state = Dismissed
	}
}

// Focus re-shows hidden suggestions when the query still warrants them.
func (c *Controller) Focus() {
	if c.state == Dismissed && longEnough(c.query) && len(c.suggestions) > 0 {
		c.state = Showing
	}
}

// Hover highlights entry i.
func (c *Controller) Hover(i int) {
	if c.Visible() && i >= 0 && i < len(c.suggestions) {
		c.active = i
	}
}

// Submit resolves the search text: the highlighted title if there is one,
// else the typed text. Blank text submits nothing.
func (c *Controller) Submit() Intent {
	resolved := c.query
	if c.active >= 0 && c.active < len(c.suggestions) {
		resolved = c.suggestions[c.active].Title
	}
	resolved = strings.TrimSpace(resolved)
	if resolved == "" {
		return nil
	}

	c.query = resolved
	c.generation++
	c.clear()
	c.state = Idle
	return Submit{Query: resolved}
}

// Click submits entry i.
func (c *Controller) Click(i int) Intent {
	if i < 0 || i >= len(c.suggestions) {
		return nil
	}
	c.active = i
	return c.Submit()
}

// SetQuery replaces the query without looking anything up. Outstanding
// timers and fetches are invalidated.
func (c *Controller) SetQuery(text string) {
	c.query = text
	c.generation++
	c.clear()
	c.state = Idle
}

func (c *Controller) clear() {
	c.suggestions = nil
	c.active = -1
}

func longEnough(text string) bool {
	return utf8.RuneCountInString(text) > MinQueryLength
}
