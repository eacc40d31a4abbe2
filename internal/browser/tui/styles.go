package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/mylibrarybook/internal/version"
)

// Application branding constants
const (
	AppName  = "my library book"
	SiteName = "openlibrary.org"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	MinContentWidth  = 20
	CardWidth        = 26 // Outer width of one book card, border included
	CardGap          = 2
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#14B8A6") // Teal, the brand color
	SecondaryColor = lipgloss.Color("#EA580C") // Orange, active tab
	AccentColor    = lipgloss.Color("#2563EB") // Blue, links and read buttons
	ErrorColor     = lipgloss.Color("#EF4444") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#14B8A6") // Teal (same as primary)
	HighlightColor = lipgloss.Color("#FACC15") // Yellow, matched text
	SelectedColor  = lipgloss.Color("236")     // Dark gray background
)

// Common styles
var (
	BrandStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Title style for screen headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	HeadingStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			BorderStyle(lipgloss.Border{Bottom: "─"}).
			BorderBottom(true).
			BorderForeground(SubtleColor)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(1, 2)

	EmptyTextStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 2)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	LinkStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Underline(true)

	FocusedLinkStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(AccentColor).
				Bold(true)

	// Tab styles
	TabStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	// Subject tag styles
	TagStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	FocusedTagStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(AccentColor).
			Padding(0, 1)

	// Card styles
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	SelectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(PrimaryColor).
				Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	CardAuthorStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ReadBadgeStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(AccentColor).
			Padding(0, 1)

	// Search form styles
	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(PrimaryColor)

	BlurredInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(SubtleColor)

	SuggestionStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	ActiveSuggestionStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Background(SelectedColor)

	MatchStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	FooterLinkStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	FooterStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	StatusStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Italic(true)
)

// RenderTitle renders a screen heading with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderError renders a fetch failure message
func RenderError(text string) string {
	return ErrorTextStyle.Render("✗ " + text)
}

// RenderEmpty renders an empty-result message
func RenderEmpty(text string) string {
	return EmptyTextStyle.Render(text)
}

// RenderApplicationContainer wraps every screen: the header (brand and
// search form) on top, the scrolled screen content, and the footer with
// the static page links and key help pinned to the bottom.
//
// Uses lipgloss.Place() to fill the entire terminal.
func RenderApplicationContainer(header, content, footer string, terminalWidth, terminalHeight int) string {
	inner := max(terminalWidth-4, MinContentWidth)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(inner).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Width(inner).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(inner)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(max(terminalWidth-2, MinContentWidth)).
		Height(max(terminalHeight-2, 1)).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// chromeHeight is the number of rows the container spends on borders:
// the outer frame plus the header and footer rules.
const chromeHeight = 4

// ContentWidth returns the usable width of the screen area inside the
// container. The header and footer lose two more columns to padding.
func ContentWidth(terminalWidth int) int {
	return max(terminalWidth-4, MinContentWidth)
}

// joinLinks joins rendered links with a dimmed separator.
func joinLinks(links []string, sep string) string {
	return strings.Join(links, FooterStyle.Render(sep))
}
