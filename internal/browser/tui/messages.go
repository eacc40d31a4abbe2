package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

// Navigation requests. Screens never touch the history; they return one
// of these and AppModel applies it.
type navigateMsg struct{ view navigation.View }
type backMsg struct{}
type homeMsg struct{}

// scrollTopMsg asks the app to scroll the screen back to the top.
type scrollTopMsg struct{}

// statusMsg shows a short note in the footer.
type statusMsg string

func navigate(v navigation.View) tea.Cmd {
	return func() tea.Msg { return navigateMsg{view: v} }
}

func goBack() tea.Msg { return backMsg{} }

func goHome() tea.Msg { return homeMsg{} }

func scrollTop() tea.Msg { return scrollTopMsg{} }

func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg(text) }
}

// Autocomplete messages
type debounceMsg struct{ id uint64 }

type suggestionsMsg struct {
	id          uint64
	query       string
	suggestions []openlibrary.Suggestion
	err         error
}

// Screen fetch results. id is the request id the fetch was issued with.
type searchResultMsg struct {
	id     uint64
	page   int
	result *openlibrary.SearchPage
	err    error
}

type categoryResultMsg struct {
	id     uint64
	page   int
	result *openlibrary.SubjectPage
	err    error
}

type trendingResultMsg struct {
	id    uint64
	books []openlibrary.SearchBook
	err   error
}

type detailsResultMsg struct {
	id     uint64
	book   *openlibrary.BookDetails
	author *openlibrary.AuthorDetails
	err    error
}

type authorResultMsg struct {
	id   uint64
	page *openlibrary.AuthorPage
	err  error
}

type subjectResultMsg struct {
	id      uint64
	subject *openlibrary.Subject
	err     error
}
