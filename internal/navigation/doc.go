// Package navigation models where the browser is.
//
// A View is a tagged descriptor naming one screen and the input it needs
// (a search query, a book key, a subject name, ...). A History is the
// stack of Views the user has visited; the browser renders whatever is on
// top. Keeping the whole stack rather than a single current screen lets
// Back restore the previous query or subject, not just the previous
// screen type.
//
//	h := navigation.NewHistory()        // [Home]
//	h.NavigateTo(navigation.Search("dune"))
//	h.NavigateTo(navigation.Details("/works/OL893415W", ""))
//	h.Back()                            // current is Search("dune") again
//	h.ResetToHome()                     // [Home]
package navigation
