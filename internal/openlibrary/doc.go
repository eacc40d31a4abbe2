// Package openlibrary is a thin client for the Open Library REST API.
//
// Each method issues one HTTP GET, decodes the JSON body into a typed
// record and returns it. There is no retry and no cache: a failed call
// returns a *LibraryError and the caller decides what to show.
//
// # Usage
//
//	client := openlibrary.NewClient()
//	client.SetTimeout(10 * time.Second)
//
//	page, err := client.Search(ctx, "dune", 1)
//	if err != nil {
//	    fmt.Println(openlibrary.ShortMessage(err))
//	    return
//	}
//	for _, card := range openlibrary.Cards(page.Docs) {
//	    fmt.Println(card.Summary())
//	}
//
// # Record Shapes
//
// Search documents, subject works and author works carry the same book in
// three different shapes. Card is the common presentational form; every
// shape implements Carder so lists can be converted with Cards.
//
// Free-text fields such as a work description or an author bio arrive
// either as a plain string or as {"type": "/type/text", "value": "..."}.
// Text decodes both.
//
// # Errors
//
// Errors are classified by ErrorType:
//
//   - ErrTypeNetwork, ErrTypeTimeout: the request did not complete
//   - ErrTypeHTTP: non-success status other than 404
//   - ErrTypeNotFound: 404, or a record with no title or name
//   - ErrTypeParse: the body was not the expected JSON
//   - ErrTypeMalformedInput: empty keys, queries or subjects
//
// An empty list is not an error.
package openlibrary
