// Package autocomplete implements the search box suggestion list as a pure
// state machine.
//
// The Controller never starts timers or issues requests. Each input method
// returns an Intent that the host (the Bubble Tea search form) carries
// out:
//
//	switch in := ctrl.Keystroke(input.Value()).(type) {
//	case autocomplete.Arm:
//	    return tea.Tick(in.Delay, func(time.Time) tea.Msg { return debounceMsg{in.ID} })
//	}
//
// When the tick arrives the host calls DebounceFired, which yields a Fetch;
// the fetch result goes back through Resolve. Each step carries the
// generation it was issued under, and anything older than the newest
// keystroke is dropped.
package autocomplete
