package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type    ResultType // Success, failure, or warning
	Title   string     // e.g., "Config written"
	Details []Param    // Key-value details to display, in order
	Error   error      // Error (for failure results)
	Hints   []string   // Suggestions shown under a failure
	Width   int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box. Hints default to the
// ones ErrorHints derives from err.
func NewFailureResult(title string, err error, hints ...string) *Result {
	if len(hints) == 0 {
		hints = ErrorHints(err)
	}
	return &Result{
		Type:  ResultFailure,
		Title: title,
		Error: err,
		Hints: hints,
		Width: GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultWarning,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail adds a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := max(r.Width, MinWidth)

	switch r.Type {
	case ResultFailure:
		return ErrorBoxStyle(width).Render(r.renderFailure(width))
	case ResultWarning:
		title := WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, r.Title))
		return WarningBoxStyle(width).Render(r.renderDetails(title))
	default:
		title := SuccessTitleStyle.Render(fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title))
		return SuccessBoxStyle(width).Render(r.renderDetails(title))
	}
}

func (r *Result) renderDetails(title string) string {
	lines := []string{"", title, ""}
	for _, d := range r.Details {
		key := ResultKeyStyle.Render("   " + d.Key + ":")
		lines = append(lines, key+" "+ResultValueStyle.Render(d.Value))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (r *Result) renderFailure(width int) string {
	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title)),
		"",
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+shortMessage(r.Error)), "")
	}

	if len(r.Hints) > 0 {
		hintLines := []string{HintTitleStyle.Render("Things to try:"), ""}
		for _, hint := range r.Hints {
			hintLines = append(hintLines, HintItemStyle.Render("  • "+hint))
		}
		lines = append(lines, HintBoxStyle(width).Render(strings.Join(hintLines, "\n")), "")
	}

	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

// ErrorHints suggests what the user can do about err.
func ErrorHints(err error) []string {
	var libErr *openlibrary.LibraryError
	if !errors.As(err, &libErr) {
		return nil
	}

	switch libErr.Type {
	case openlibrary.ErrTypeNetwork:
		return []string{
			"Check your internet connection",
			"Confirm --base-url points at a reachable Open Library host",
		}
	case openlibrary.ErrTypeTimeout:
		return []string{
			"Open Library can be slow; try again in a moment",
			"Raise the limit with --timeout 30",
		}
	case openlibrary.ErrTypeHTTP:
		if libErr.StatusCode >= 500 {
			return []string{"Open Library is having trouble; try again later"}
		}
		return []string{"Run with --log-level debug to see the request"}
	case openlibrary.ErrTypeNotFound:
		return []string{"Check the key; works look like OL45883W and authors like OL34184A"}
	case openlibrary.ErrTypeParse:
		return []string{"The mirror at --base-url may not speak the Open Library API"}
	default:
		return nil
	}
}

func shortMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return openlibrary.ShortMessage(err)
}
