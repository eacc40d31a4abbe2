package urls

// External services the browser talks to. The API base can be overridden
// in the config file; the other hosts are only ever used to build links.

// OpenLibrary is the Open Library REST API root.
const OpenLibrary = "https://openlibrary.org"

// Covers is the cover image host. Images live at {Covers}/b/id/{id}-{S|M|L}.jpg.
const Covers = "https://covers.openlibrary.org"

// Archive is the Internet Archive item page root used for "read book"
// links: {Archive}/{identifier}/mode/2up.
const Archive = "https://archive.org/details"

// OpenLibraryDevelopers documents the API and its usage policy, linked
// from the CLI help and the About page.
const OpenLibraryDevelopers = "https://openlibrary.org/developers/api"

// Project is the home of this program.
const Project = "https://github.com/muurk/mylibrarybook"
