package content

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"

	"github.com/muurk/mylibrarybook/internal/navigation"
)

//go:embed pages/*.md
var pages embed.FS

// MinWidth is the narrowest width pages are wrapped to.
const MinWidth = 20

// Styles controls how page elements are drawn.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Body    lipgloss.Style
	Link    lipgloss.Style
	Emph    lipgloss.Style
	Strong  lipgloss.Style
	Bullet  string
}

// DefaultStyles matches the browser palette.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#14B8A6")),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5E7EB")),
		Body:    lipgloss.NewStyle(),
		Link:    lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")).Underline(true),
		Emph:    lipgloss.NewStyle().Italic(true),
		Strong:  lipgloss.NewStyle().Bold(true),
		Bullet:  "•",
	}
}

// Source returns the Markdown for a page.
func Source(page navigation.StaticPage) ([]byte, error) {
	data, err := pages.ReadFile("pages/" + page.Slug() + ".md")
	if err != nil {
		return nil, fmt.Errorf("no content for page %q: %w", page.Slug(), err)
	}
	return data, nil
}

// Render returns the page body wrapped to width, without its title.
func Render(page navigation.StaticPage, width int) (string, error) {
	return RenderWithStyles(page, width, DefaultStyles())
}

// RenderWithStyles is Render with explicit styles.
func RenderWithStyles(page navigation.StaticPage, width int, styles Styles) (string, error) {
	src, err := Source(page)
	if err != nil {
		return "", err
	}
	return RenderMarkdown(src, width, styles), nil
}

// RenderPage returns the title, a rule and the body.
func RenderPage(page navigation.StaticPage, width int) (string, error) {
	styles := DefaultStyles()
	body, err := RenderWithStyles(page, width, styles)
	if err != nil {
		return "", err
	}
	width = max(width, MinWidth)
	title := styles.Title.Render(page.Title())
	rule := strings.Repeat("─", min(width, lipgloss.Width(page.Title())+4))
	return title + "\n" + rule + "\n\n" + body, nil
}

// RenderMarkdown renders the block elements the pages use: headings,
// paragraphs and lists. Unknown blocks are rendered as plain paragraphs.
func RenderMarkdown(src []byte, width int, styles Styles) string {
	width = max(width, MinWidth)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	doc := markdown.Parse(src, p)

	var blocks []string
	for _, node := range doc.GetChildren() {
		if block := renderBlock(node, width, styles); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func renderBlock(node ast.Node, width int, styles Styles) string {
	switch n := node.(type) {
	case *ast.Heading:
		return wrap(styles.Heading.Render(inline(n, styles)), width)
	case *ast.Paragraph:
		return wrap(styles.Body.Render(inline(n, styles)), width)
	case *ast.List:
		return renderList(n, width, styles)
	case *ast.HorizontalRule:
		return strings.Repeat("─", width)
	default:
		return wrap(inline(node, styles), width)
	}
}

func renderList(list *ast.List, width int, styles Styles) string {
	ordered := list.ListFlags&ast.ListTypeOrdered != 0

	var items []string
	for i, child := range list.GetChildren() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := styles.Bullet + " "
		if ordered {
			marker = fmt.Sprintf("%d. ", i+1)
		}
		indent := strings.Repeat(" ", lipgloss.Width(marker))

		text := wrap(inline(item, styles), width-len(indent))
		lines := strings.Split(text, "\n")
		for j := range lines {
			if j == 0 {
				lines[j] = marker + lines[j]
			} else {
				lines[j] = indent + lines[j]
			}
		}
		items = append(items, strings.Join(lines, "\n"))
	}
	return strings.Join(items, "\n")
}

// inline flattens the inline content under node to styled text.
func inline(node ast.Node, styles Styles) string {
	var b strings.Builder
	for _, child := range node.GetChildren() {
		switch n := child.(type) {
		case *ast.Text:
			b.Write(n.Literal)
		case *ast.Code:
			b.Write(n.Literal)
		case *ast.Softbreak:
			b.WriteString(" ")
		case *ast.Hardbreak:
			b.WriteString("\n")
		case *ast.Link:
			b.WriteString(styles.Link.Render(linkText(n, styles)))
		case *ast.Emph:
			b.WriteString(styles.Emph.Render(inline(n, styles)))
		case *ast.Strong:
			b.WriteString(styles.Strong.Render(inline(n, styles)))
		case *ast.Paragraph:
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(inline(n, styles))
		default:
			b.WriteString(inline(n, styles))
		}
	}
	return b.String()
}

// linkText is the link label, followed by the target when the label does
// not already show it.
func linkText(link *ast.Link, styles Styles) string {
	label := inline(link, styles)
	dest := strings.TrimPrefix(string(link.Destination), "mailto:")
	if dest == "" || (strings.Contains(dest, label) && len(dest)-len(label) <= len("https://")) {
		return label
	}
	return fmt.Sprintf("%s <%s>", label, dest)
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
