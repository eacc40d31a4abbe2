package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/logging"
	"github.com/muurk/mylibrarybook/internal/navigation"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

const (
	detailsErrorMessage = "Error loading book details."
	maxSubjectTags      = 10
)

type detailsKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Open   key.Binding
	Author key.Binding
	Copy   key.Binding
	Reload key.Binding
}

// detailsScreen shows one work: title, author link, read link,
// description and subject tags. The focusable links are the author
// (when known) followed by the subject tags.
type detailsScreen struct {
	env     *env
	bookKey string
	ia      string
	prefix  string
	keys    detailsKeyMap

	load   loadState
	book   *openlibrary.BookDetails
	author *openlibrary.AuthorDetails
	focus  int
}

func newDetailsScreen(e *env, bookKey, ia string) *detailsScreen {
	return &detailsScreen{
		env:     e,
		bookKey: bookKey,
		ia:      ia,
		prefix:  e.zones.NewPrefix(),
		keys: detailsKeyMap{
			Next: key.NewBinding(
				key.WithKeys("right", "l", "down", "j"),
				key.WithHelp("→", "next link"),
			),
			Prev: key.NewBinding(
				key.WithKeys("left", "h", "up", "k"),
				key.WithHelp("←", "prev link"),
			),
			Open: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "open"),
			),
			Author: key.NewBinding(
				key.WithKeys("a"),
				key.WithHelp("a", "author"),
			),
			Copy: key.NewBinding(
				key.WithKeys("y"),
				key.WithHelp("y", "copy read link"),
			),
			Reload: key.NewBinding(
				key.WithKeys("r"),
				key.WithHelp("r", "reload"),
			),
		},
	}
}

func (s *detailsScreen) Kind() navigation.Kind { return navigation.KindDetails }

func (s *detailsScreen) Init() tea.Cmd {
	return s.fetch()
}

// fetch loads the work, then its first author. Either failing fails the
// screen.
func (s *detailsScreen) fetch() tea.Cmd {
	id := s.load.begin()
	s.book, s.author, s.focus = nil, nil, 0
	lib, bookKey := s.env.library, s.bookKey
	return s.env.fetch("details", func(ctx context.Context) tea.Msg {
		book, err := lib.Book(ctx, bookKey)
		if err != nil {
			return detailsResultMsg{id: id, err: err}
		}
		var author *openlibrary.AuthorDetails
		if authorKey := book.FirstAuthorKey(); authorKey != "" {
			if author, err = lib.Author(ctx, authorKey); err != nil {
				return detailsResultMsg{id: id, err: err}
			}
		}
		return detailsResultMsg{id: id, book: book, author: author}
	})
}

func (s *detailsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailsResultMsg:
		if !s.load.current(msg.id) {
			return s, nil
		}
		if msg.err != nil {
			s.load.fail(detailsErrorMessage, msg.err, zap.String("key", s.bookKey))
			return s, nil
		}
		s.load.done()
		s.book, s.author = msg.book, msg.author
		return s, nil

	case tea.KeyMsg:
		if keyMatches(msg, s.keys.Reload) {
			return s, s.fetch()
		}
		if s.load.status != statusLoaded {
			return s, nil
		}
		n := len(s.links())
		switch {
		case keyMatches(msg, s.keys.Next) && n > 0:
			s.focus = (s.focus + 1) % n
		case keyMatches(msg, s.keys.Prev) && n > 0:
			s.focus = (s.focus - 1 + n) % n
		case keyMatches(msg, s.keys.Open):
			return s, s.activate(s.focus)
		case keyMatches(msg, s.keys.Author):
			return s, s.openAuthor()
		case keyMatches(msg, s.keys.Copy):
			return s, s.copyReadLink()
		}

	case tea.MouseMsg:
		if s.load.status != statusLoaded {
			return s, nil
		}
		if s.env.clicked(s.prefix+"read", msg) {
			return s, s.copyReadLink()
		}
		for i := range s.links() {
			if s.env.clicked(s.linkZone(i), msg) {
				s.focus = i
				return s, s.activate(i)
			}
		}
	}
	return s, nil
}

// detailsLink is one focusable element.
type detailsLink struct {
	label string
	view  navigation.View
}

func (s *detailsScreen) links() []detailsLink {
	if s.book == nil {
		return nil
	}
	var links []detailsLink
	if s.author != nil && s.book.FirstAuthorKey() != "" {
		links = append(links, detailsLink{label: s.authorName(), view: navigation.Author(s.book.FirstAuthorKey())})
	}
	for _, subject := range s.book.TopSubjects(maxSubjectTags) {
		links = append(links, detailsLink{label: subject, view: navigation.Subject(subject)})
	}
	return links
}

func (s *detailsScreen) activate(i int) tea.Cmd {
	links := s.links()
	if i < 0 || i >= len(links) {
		return nil
	}
	return navigate(links[i].view)
}

func (s *detailsScreen) openAuthor() tea.Cmd {
	if s.author == nil || s.book.FirstAuthorKey() == "" {
		return nil
	}
	return navigate(navigation.Author(s.book.FirstAuthorKey()))
}

// ReadLink returns the archive reader URL, or "" when the book has no scan.
func (s *detailsScreen) ReadLink() string {
	if s.book == nil {
		return ""
	}
	return s.env.links.Read(s.book.ReadIdentifier(s.ia))
}

func (s *detailsScreen) copyReadLink() tea.Cmd {
	link := s.ReadLink()
	if link == "" {
		return status("This book has no readable scan")
	}
	if err := s.env.copyText(link); err != nil {
		logging.Warn("copy to clipboard failed", zap.Error(err))
		return status("Could not copy: " + link)
	}
	return status("Copied " + link)
}

func (s *detailsScreen) authorName() string {
	if s.author == nil || strings.TrimSpace(s.author.Name) == "" {
		return openlibrary.UnknownAuthor
	}
	return s.author.Name
}

func (s *detailsScreen) linkZone(i int) string {
	return s.prefix + "link-" + strconv.Itoa(i)
}

func (s *detailsScreen) View(vc viewContext) rendered {
	f := newFrame()
	if body, ok := s.load.view(vc.spinner); ok {
		f.add(body)
		return f.result()
	}

	book := s.book
	f.add(RenderTitle(book.Title))

	next := 0
	render := func(label string, style, focused lipgloss.Style) string {
		i := next
		next++
		if i == s.focus {
			style = focused
		}
		return s.env.mark(s.linkZone(i), style.Render(label))
	}

	byline := "by " + openlibrary.UnknownAuthor
	authorLinked := s.author != nil && book.FirstAuthorKey() != ""
	if authorLinked {
		byline = "by " + render(s.authorName(), LinkStyle, FocusedLinkStyle)
	}
	if authorLinked && s.focus == 0 {
		f.addSelected(byline, 0, 0)
	} else {
		f.add(byline)
	}
	f.add("")

	if link := s.ReadLink(); link != "" {
		f.add(s.env.mark(s.prefix+"read", ReadBadgeStyle.Render("Read Book")) + " " + LinkStyle.Render(link))
		f.add("")
	}
	if id := book.CoverID(); id > 0 {
		f.add(SubtitleStyle.Render("Cover: " + s.env.links.Cover(id, openlibrary.CoverLarge)))
		f.add("")
	}

	f.add(lipgloss.NewStyle().Width(vc.width).Render(book.Description.OrDefault()))

	if subjects := book.TopSubjects(maxSubjectTags); len(subjects) > 0 {
		f.add("")
		tags := make([]string, 0, len(subjects))
		for _, subject := range subjects {
			tags = append(tags, render(subject, TagStyle, FocusedTagStyle))
		}
		block := flowTags(tags, vc.width)
		if s.focus >= next-len(subjects) && s.focus < next {
			f.addSelected(block, 0, lipgloss.Height(block)-1)
		} else {
			f.add(block)
		}
	}
	return f.result()
}

// flowTags lays tags out left to right, wrapping at width.
func flowTags(tags []string, width int) string {
	var lines []string
	var line string
	for _, tag := range tags {
		candidate := tag
		if line != "" {
			candidate = line + " " + tag
		}
		if line != "" && lipgloss.Width(candidate) > width {
			lines = append(lines, line)
			line = tag
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (s *detailsScreen) Keys() help.KeyMap {
	return screenHelp{s.keys.Next, s.keys.Open, s.keys.Author, s.keys.Copy, s.keys.Reload}
}
