package navigation

// History is the ordered list of visited views. It is never empty: it
// starts as [Home] and Back never pops the last remaining entry. The
// current view is always the last element.
//
// A History is owned by a single controller; it is not safe for
// concurrent use.
type History struct {
	views []View
}

// NewHistory returns a history containing only Home.
func NewHistory() *History {
	return &History{views: []View{Home()}}
}

// NavigateTo pushes v and makes it current. v is not validated.
func (h *History) NavigateTo(v View) {
	h.ensure()
	h.views = append(h.views, v)
}

// Back pops the current view. It returns false, leaving the history
// untouched, when only one view remains.
func (h *History) Back() bool {
	h.ensure()
	if len(h.views) <= 1 {
		return false
	}
	h.views = h.views[:len(h.views)-1]
	return true
}

// ResetToHome discards everything and leaves [Home].
func (h *History) ResetToHome() {
	h.views = []View{Home()}
}

// Current returns the last view.
func (h *History) Current() View {
	h.ensure()
	return h.views[len(h.views)-1]
}

// Len returns the number of views, always at least 1.
func (h *History) Len() int {
	h.ensure()
	return len(h.views)
}

// CanGoBack reports whether Back would change anything.
func (h *History) CanGoBack() bool { return h.Len() > 1 }

// Views returns a copy of the history, oldest first.
func (h *History) Views() []View {
	h.ensure()
	out := make([]View, len(h.views))
	copy(out, h.views)
	return out
}

// Breadcrumbs returns labels for at most max trailing views. When views
// are elided the first crumb is "…".
func (h *History) Breadcrumbs(max int) []string {
	h.ensure()
	views := h.views
	var crumbs []string
	if max > 0 && len(views) > max {
		crumbs = append(crumbs, "…")
		views = views[len(views)-max:]
	}
	for _, v := range views {
		crumbs = append(crumbs, v.String())
	}
	return crumbs
}

// ensure repairs a zero-value History so the non-empty invariant holds.
func (h *History) ensure() {
	if len(h.views) == 0 {
		h.views = []View{Home()}
	}
}
