package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/muurk/mylibrarybook/internal/logging"
	"github.com/muurk/mylibrarybook/internal/openlibrary"
)

// Library is the part of the Open Library client the screens use.
type Library interface {
	Search(ctx context.Context, query string, page int) (*openlibrary.SearchPage, error)
	Suggest(ctx context.Context, query string) ([]openlibrary.Suggestion, error)
	Book(ctx context.Context, key string) (*openlibrary.BookDetails, error)
	Author(ctx context.Context, key string) (*openlibrary.AuthorDetails, error)
	AuthorPage(ctx context.Context, key string) (*openlibrary.AuthorPage, error)
	Subject(ctx context.Context, name string) (*openlibrary.Subject, error)
	SubjectPage(ctx context.Context, name string, page int) (*openlibrary.SubjectPage, error)
	Trending(ctx context.Context) ([]openlibrary.SearchBook, error)
}

var _ Library = (*openlibrary.Client)(nil)

// env is what every screen shares: the data source and a few settings.
type env struct {
	library       Library
	links         openlibrary.Links
	timeout       time.Duration
	zones         *zone.Manager
	copyText      func(string) error
	startCategory string
}

func newEnv(opts Options) *env {
	e := &env{
		library:       opts.Library,
		links:         opts.Links,
		timeout:       opts.Timeout,
		zones:         opts.Zones,
		copyText:      opts.Clipboard,
		startCategory: opts.StartCategory,
	}
	if e.links == (openlibrary.Links{}) {
		e.links = openlibrary.DefaultLinks()
	}
	if e.timeout <= 0 {
		e.timeout = openlibrary.DefaultTimeout
	}
	if e.zones == nil {
		e.zones = zone.New()
	}
	if e.copyText == nil {
		e.copyText = clipboard.WriteAll
	}
	return e
}

// fetch runs fn as a command with a request-scoped context. The context
// carries the logr logger the client logs requests through.
func (e *env) fetch(name string, fn func(ctx context.Context) tea.Msg) tea.Cmd {
	timeout := e.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ctx = logging.WithLogger(ctx, logging.Logr().WithName(name))
		return fn(ctx)
	}
}

// mark wraps s in a mouse zone.
func (e *env) mark(id, s string) string {
	return e.zones.Mark(id, s)
}

// clicked reports whether msg is a left click inside zone id.
func (e *env) clicked(id string, msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	return e.inBounds(id, msg)
}

func (e *env) inBounds(id string, msg tea.MouseMsg) bool {
	info := e.zones.Get(id)
	return info != nil && !info.IsZero() && info.InBounds(msg)
}
