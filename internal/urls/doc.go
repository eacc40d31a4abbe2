// Package urls provides centralized constants for the external URLs used
// throughout the application.
//
// Usage:
//
//	import "github.com/muurk/mylibrarybook/internal/urls"
//
//	client := openlibrary.NewClientWithURL(urls.OpenLibrary)
package urls
