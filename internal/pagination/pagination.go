// Package pagination holds the page arithmetic shared by the paged
// screens and the API client.
package pagination

// Page sizes used by the Open Library endpoints this program pages over.
const (
	SearchPageSize  = 30
	SubjectPageSize = 18
)

// TotalPages returns ceil(count/size). Non-positive inputs yield 0.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Clamp bounds page to [1, total]. When total is 0 the result is 1.
func Clamp(page, total int) int {
	if total < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Offset returns the zero-based result offset for a 1-based page. Pages
// below 1 are treated as page 1 so the offset is never negative.
func Offset(page, size int) int {
	if page < 1 || size < 1 {
		return 0
	}
	return (page - 1) * size
}

// State tracks the current page of a paged screen.
type State struct {
	Page  int // 1-based; 0 until the first page loads
	Total int
	Size  int
}

// New returns a State for the given page size, positioned before the
// first load.
func New(size int) State {
	return State{Size: size}
}

// SetCount records the total result count reported by the server.
func (s *State) SetCount(count int) {
	s.Total = TotalPages(count, s.Size)
}

// Target clamps a requested page against the known total. It returns the
// page to fetch and whether that differs from the current page; callers
// skip the fetch when it does not.
func (s State) Target(page int) (int, bool) {
	p := Clamp(page, s.Total)
	return p, p != s.Page
}

// Next and Prev return the neighbouring page targets.
func (s State) Next() (int, bool) { return s.Target(s.Page + 1) }

func (s State) Prev() (int, bool) { return s.Target(s.Page - 1) }

// Loaded marks page as displayed. It reports whether the page changed
// from a previously displayed page, which is when a screen should scroll
// back to the top; the initial load reports false.
func (s *State) Loaded(page int) bool {
	changed := s.Page != 0 && s.Page != page
	s.Page = page
	return changed
}

// HasPages reports whether a pager should be shown at all.
func (s State) HasPages() bool { return s.Total > 1 }
