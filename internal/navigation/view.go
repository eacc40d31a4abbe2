package navigation

import (
	"fmt"
	"strings"
)

// Kind identifies which screen a View describes.
type Kind int

const (
	KindHome Kind = iota
	KindSearch
	KindDetails
	KindAuthor
	KindSubject
	KindStatic
)

// Kinds lists every view kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindHome, KindSearch, KindDetails, KindAuthor, KindSubject, KindStatic}
}

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindSearch:
		return "search"
	case KindDetails:
		return "details"
	case KindAuthor:
		return "author"
	case KindSubject:
		return "subject"
	case KindStatic:
		return "static"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// View is a view descriptor. Only the fields belonging to Kind are set;
// use the constructors below rather than building one by hand.
type View struct {
	Kind Kind

	Query     string     // KindSearch
	BookKey   string     // KindDetails, e.g. "/works/OL45804W"
	IA        string     // KindDetails, optional Internet Archive identifier
	AuthorKey string     // KindAuthor
	Subject   string     // KindSubject
	Page      StaticPage // KindStatic
}

// Home returns the home view.
func Home() View { return View{Kind: KindHome} }

// Search returns a search results view for query.
func Search(query string) View { return View{Kind: KindSearch, Query: query} }

// Details returns a book details view. ia may be empty.
func Details(bookKey, ia string) View {
	return View{Kind: KindDetails, BookKey: bookKey, IA: ia}
}

// Author returns an author page view.
func Author(authorKey string) View { return View{Kind: KindAuthor, AuthorKey: authorKey} }

// Subject returns a subject page view.
func Subject(name string) View { return View{Kind: KindSubject, Subject: name} }

// Static returns a static page view.
func Static(page StaticPage) View { return View{Kind: KindStatic, Page: page} }

// HasIA reports whether the view carries an Internet Archive identifier.
func (v View) HasIA() bool { return v.IA != "" }

// String returns a short label suitable for breadcrumbs.
func (v View) String() string {
	switch v.Kind {
	case KindHome:
		return "Home"
	case KindSearch:
		return fmt.Sprintf("Search %q", v.Query)
	case KindDetails:
		return "Book " + lastSegment(v.BookKey)
	case KindAuthor:
		return "Author " + lastSegment(v.AuthorKey)
	case KindSubject:
		return "Subject " + v.Subject
	case KindStatic:
		return v.Page.Label()
	default:
		return v.Kind.String()
	}
}

func lastSegment(key string) string {
	key = strings.TrimSuffix(key, "/")
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[i+1:]
	}
	return key
}

// StaticPage enumerates the fixed informational pages.
type StaticPage int

const (
	PageAbout StaticPage = iota
	PageContact
	PageForParents
	PagePrivacy
	PageTerms
	PageDMCA
)

var staticPages = []struct {
	slug  string
	title string
	label string
}{
	PageAbout:      {"about", "About Us", "About"},
	PageContact:    {"contact", "Contact Us", "Contact"},
	PageForParents: {"for-parents", "For Parents", "For Parents"},
	PagePrivacy:    {"privacy", "Privacy Policy", "Privacy Policy"},
	PageTerms:      {"terms", "Terms of Service", "Terms of Service"},
	PageDMCA:       {"dmca", "DMCA Notice", "DMCA"},
}

// StaticPages returns all static pages in footer order.
func StaticPages() []StaticPage {
	return []StaticPage{PageAbout, PageContact, PageForParents, PagePrivacy, PageTerms, PageDMCA}
}

func (p StaticPage) valid() bool { return p >= 0 && int(p) < len(staticPages) }

// Slug returns the page identifier, e.g. "for-parents".
func (p StaticPage) Slug() string {
	if !p.valid() {
		return ""
	}
	return staticPages[p].slug
}

// Title returns the page heading.
func (p StaticPage) Title() string {
	if !p.valid() {
		return ""
	}
	return staticPages[p].title
}

// Label returns the footer link text.
func (p StaticPage) Label() string {
	if !p.valid() {
		return fmt.Sprintf("StaticPage(%d)", int(p))
	}
	return staticPages[p].label
}

// String implements fmt.Stringer
func (p StaticPage) String() string { return p.Slug() }

// ParseStaticPage maps a slug back to its page.
func ParseStaticPage(slug string) (StaticPage, error) {
	want := strings.ToLower(strings.TrimSpace(slug))
	for _, p := range StaticPages() {
		if p.Slug() == want {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown page %q (expected one of: %s)", slug, strings.Join(pageSlugs(), ", "))
}

func pageSlugs() []string {
	slugs := make([]string, 0, len(staticPages))
	for _, p := range StaticPages() {
		slugs = append(slugs, p.Slug())
	}
	return slugs
}
