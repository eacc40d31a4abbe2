// Package content holds the static informational pages (About, Contact,
// For Parents, Privacy, Terms, DMCA).
//
// Pages are authored as Markdown under pages/ and embedded in the binary.
// RenderMarkdown parses them with gomarkdown and walks the AST to produce
// lipgloss-styled terminal text wrapped to a given width. Only the
// elements the pages use are styled: level-3 headings, paragraphs, bullet
// lists and links.
package content
