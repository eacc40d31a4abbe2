package autocomplete

import (
	"regexp"
	"strings"

	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

// Segment is a run of a title, emphasised when it matches the query.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits title into segments, marking every case-insensitive
// occurrence of the trimmed query. A blank query yields one plain segment.
// If no matcher can be built the error is MalformedInput and the segments
// are the plain title, so callers can render them either way.
func Highlight(title, query string) ([]Segment, error) {
	plain := []Segment{{Text: title}}

	query = strings.TrimSpace(query)
	if query == "" || title == "" {
		return plain, nil
	}

	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return plain, openlibrary.NewMalformedInputError("cannot highlight query "+query, err)
	}

	matches := re.FindAllStringIndex(title, -1)
	if len(matches) == 0 {
		return plain, nil
	}

	segments := make([]Segment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Text: title[last:m[0]]})
		}
		segments = append(segments, Segment{Text: title[m[0]:m[1]], Match: true})
		last = m[1]
	}
	if last < len(title) {
		segments = append(segments, Segment{Text: title[last:]})
	}
	return segments, nil
}
