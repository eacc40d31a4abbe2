package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/muurk/mylibrarybook/internal/logging"
	"github.com/muurk/mylibrarybook/internal/pagination"
	"github.com/muurk/mylibrarybook/internal/urls"
	"github.com/muurk/mylibrarybook/internal/version"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 15 * time.Second

	// SuggestionLimit is how many autocomplete entries are requested
	SuggestionLimit = 7

	// SubjectLimit is the size of the unpaged subject listing
	SubjectLimit = 50

	// AuthorWorksLimit is how many works an author page lists
	AuthorWorksLimit = 30

	// TrendingLimit is how many trending works are requested
	TrendingLimit = 18
)

const (
	searchFields     = "key,title,author_name,cover_i,ia"
	suggestionFields = "key,title,author_name,cover_i"
)

// Client is an HTTP client for the Open Library REST API. It performs a
// single GET per call: there is no retry and no caching.
type Client struct {
	// BaseURL is the API root (e.g., "https://openlibrary.org")
	BaseURL string

	// UserAgent is sent with every request
	UserAgent string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// Links builds cover and read URLs for records returned by this client
	Links Links
}

// NewClient creates a client for the public Open Library API
func NewClient() *Client {
	return NewClientWithURL(urls.OpenLibrary)
}

// NewClientWithURL creates a client for the given API root
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  version.UserAgent(),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		Links:      DefaultLinks(),
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Search returns one page of results for query. Pages are 1-based; pages
// below 1 are treated as 1.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewMalformedInputError("search query is empty", nil)
	}
	page = max(page, 1)

	params := url.Values{}
	params.Set("q", query)
	params.Set("fields", searchFields)
	params.Set("limit", strconv.Itoa(pagination.SearchPageSize))
	params.Set("offset", strconv.Itoa(pagination.Offset(page, pagination.SearchPageSize)))

	var result SearchPage
	if err := c.get(ctx, "/search.json", params, &result); err != nil {
		return nil, err
	}
	result.Page = page
	if result.Docs == nil {
		result.Docs = []SearchBook{}
	}
	return &result, nil
}

// Suggest returns up to SuggestionLimit autocomplete entries for query.
func (c *Client) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewMalformedInputError("suggestion query is empty", nil)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("fields", suggestionFields)
	params.Set("limit", strconv.Itoa(SuggestionLimit))

	var result struct {
		Docs []Suggestion `json:"docs"`
	}
	if err := c.get(ctx, "/search.json", params, &result); err != nil {
		return nil, err
	}
	if result.Docs == nil {
		return []Suggestion{}, nil
	}
	return result.Docs, nil
}

// Book fetches a work record. key may be "/works/OL45804W", "works/OL45804W"
// or a bare "OL45804W".
func (c *Client) Book(ctx context.Context, key string) (*BookDetails, error) {
	path, err := WorkPath(key)
	if err != nil {
		return nil, err
	}

	var book BookDetails
	if err := c.get(ctx, path+".json", nil, &book); err != nil {
		if IsNotFound(err) {
			return nil, NewNotFoundError("Book not found", path)
		}
		return nil, err
	}
	if book.Title == "" {
		return nil, NewNotFoundError("Book not found", path)
	}
	if book.Key == "" {
		book.Key = path
	}
	return &book, nil
}

// Author fetches an author record. key may be "/authors/OL23919A" or a
// bare "OL23919A".
func (c *Client) Author(ctx context.Context, key string) (*AuthorDetails, error) {
	id, err := AuthorID(key)
	if err != nil {
		return nil, err
	}
	path := "/authors/" + id

	var author AuthorDetails
	if err := c.get(ctx, path+".json", nil, &author); err != nil {
		if IsNotFound(err) {
			return nil, NewNotFoundError("Author not found", path)
		}
		return nil, err
	}
	if author.Name == "" {
		return nil, NewNotFoundError("Author not found", path)
	}
	if author.Key == "" {
		author.Key = path
	}
	return &author, nil
}

// AuthorWorks lists up to AuthorWorksLimit works by the author.
func (c *Client) AuthorWorks(ctx context.Context, key string) ([]AuthorWork, error) {
	id, err := AuthorID(key)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(AuthorWorksLimit))

	var result struct {
		Entries []AuthorWork `json:"entries"`
	}
	if err := c.get(ctx, "/authors/"+id+"/works.json", params, &result); err != nil {
		return nil, err
	}
	if result.Entries == nil {
		return []AuthorWork{}, nil
	}
	return result.Entries, nil
}

// AuthorPage fetches the author record and works concurrently. Either
// failure fails the whole page and cancels the other request.
func (c *Client) AuthorPage(ctx context.Context, key string) (*AuthorPage, error) {
	g, gctx := errgroup.WithContext(ctx)

	var page AuthorPage
	g.Go(func() error {
		details, err := c.Author(gctx, key)
		page.Details = details
		return err
	})
	g.Go(func() error {
		works, err := c.AuthorWorks(gctx, key)
		page.Works = works
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}

// Subject returns the unpaged subject listing (SubjectLimit works).
func (c *Client) Subject(ctx context.Context, name string) (*Subject, error) {
	slug, err := SubjectSlug(name)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(SubjectLimit))

	var subject Subject
	if err := c.get(ctx, "/subjects/"+url.PathEscape(slug)+".json", params, &subject); err != nil {
		return nil, err
	}
	if subject.Name == "" {
		subject.Name = name
	}
	if subject.Works == nil {
		subject.Works = []SubjectBook{}
	}
	return &subject, nil
}

// SubjectPage returns one page of a subject listing. Pages are 1-based.
func (c *Client) SubjectPage(ctx context.Context, name string, page int) (*SubjectPage, error) {
	slug, err := SubjectSlug(name)
	if err != nil {
		return nil, err
	}
	page = max(page, 1)

	params := url.Values{}
	params.Set("limit", strconv.Itoa(pagination.SubjectPageSize))
	params.Set("offset", strconv.Itoa(pagination.Offset(page, pagination.SubjectPageSize)))

	var result SubjectPage
	if err := c.get(ctx, "/subjects/"+url.PathEscape(slug)+".json", params, &result); err != nil {
		return nil, err
	}
	result.Subject = slug
	result.Page = page
	if result.Works == nil {
		result.Works = []SubjectBook{}
	}
	return &result, nil
}

// Trending returns this week's trending works.
func (c *Client) Trending(ctx context.Context) ([]SearchBook, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(TrendingLimit))

	var result struct {
		Works []SearchBook `json:"works"`
	}
	if err := c.get(ctx, "/trending/weekly.json", params, &result); err != nil {
		return nil, err
	}
	if result.Works == nil {
		return []SearchBook{}, nil
	}
	return result.Works, nil
}

// get performs one GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	endpoint := c.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	log := logging.FromContext(ctx).WithValues("path", path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return NewMalformedInputError(fmt.Sprintf("invalid request URL %q", endpoint), err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	logging.LogHTTPRequest(http.MethodGet, endpoint)
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		libErr := NewNetworkError(path, err)
		logging.LogHTTPResponse(http.MethodGet, endpoint, 0, time.Since(start), libErr)
		return libErr
	}
	defer func() { _ = resp.Body.Close() }()

	log.V(1).Info("response", "status", resp.StatusCode, "elapsed", time.Since(start).String())

	switch {
	case resp.StatusCode == http.StatusNotFound:
		libErr := NewNotFoundError("not found", path)
		logging.LogHTTPResponse(http.MethodGet, endpoint, resp.StatusCode, time.Since(start), libErr)
		return libErr
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		libErr := NewHTTPError(resp.StatusCode, path)
		logging.LogHTTPResponse(http.MethodGet, endpoint, resp.StatusCode, time.Since(start), libErr)
		return libErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		libErr := NewParseError(path, err)
		logging.LogHTTPResponse(http.MethodGet, endpoint, resp.StatusCode, time.Since(start), libErr)
		return libErr
	}

	logging.LogHTTPResponse(http.MethodGet, endpoint, resp.StatusCode, time.Since(start), nil)
	return nil
}

// WorkPath normalises a work key to its API path ("/works/OL45804W").
func WorkPath(key string) (string, error) {
	key = strings.Trim(strings.TrimSpace(key), "/")
	if key == "" {
		return "", NewMalformedInputError("book key is empty", nil)
	}
	key = strings.TrimSuffix(key, ".json")
	if !strings.Contains(key, "/") {
		return "/works/" + key, nil
	}
	return "/" + key, nil
}

// AuthorID strips any "/authors/" prefix from an author key.
func AuthorID(key string) (string, error) {
	key = strings.Trim(strings.TrimSpace(key), "/")
	key = strings.TrimPrefix(key, "authors/")
	key = strings.TrimSuffix(key, ".json")
	if key == "" || strings.Contains(key, "/") {
		return "", NewMalformedInputError(fmt.Sprintf("invalid author key %q", key), nil)
	}
	return key, nil
}

var lower = cases.Lower(language.Und)

// SubjectSlug converts a display subject to its URL form: lower-cased,
// with spaces replaced by underscores ("Science Fiction" ->
// "science_fiction").
func SubjectSlug(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewMalformedInputError("subject name is empty", nil)
	}
	return strings.ReplaceAll(lower.String(name), " ", "_"), nil
}

var title = cases.Title(language.English)

// SubjectTitle turns a slug back into a display name ("science_fiction"
// -> "Science Fiction").
func SubjectTitle(slug string) string {
	return title.String(strings.ReplaceAll(slug, "_", " "))
}
