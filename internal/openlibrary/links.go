package openlibrary

import (
	"fmt"
	"strings"

	"github.com/muurk/mylibrarybook/internal/urls"
)

// CoverSize selects one of the three cover renditions.
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

// Links builds the non-API URLs that accompany records: cover images and
// the archive reader.
type Links struct {
	CoversURL  string
	ArchiveURL string
}

// DefaultLinks points at the public cover and archive hosts.
func DefaultLinks() Links {
	return Links{CoversURL: urls.Covers, ArchiveURL: urls.Archive}
}

// Cover returns the cover image URL for id, or "" when there is no cover.
func (l Links) Cover(id int, size CoverSize) string {
	if id <= 0 {
		return ""
	}
	switch size {
	case CoverSmall, CoverMedium, CoverLarge:
	default:
		size = CoverMedium
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", strings.TrimRight(l.CoversURL, "/"), id, size)
}

// AuthorPhoto returns the author photo URL for id, or "".
func (l Links) AuthorPhoto(id int, size CoverSize) string {
	if id <= 0 {
		return ""
	}
	return fmt.Sprintf("%s/a/id/%d-%s.jpg", strings.TrimRight(l.CoversURL, "/"), id, size)
}

// Read returns the two-page reader link for an archive identifier.
func (l Links) Read(ia string) string {
	ia = strings.TrimSpace(ia)
	if ia == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/mode/2up", strings.TrimRight(l.ArchiveURL, "/"), ia)
}

// Web returns the openlibrary.org page for a work or author key.
func Web(key string) string {
	if key == "" {
		return ""
	}
	if !strings.HasPrefix(key, "/") {
		key = "/" + key
	}
	return urls.OpenLibrary + key
}
