package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette shared by the lookup commands. It follows the browser: blue for
// titles and links, orange for anything that needs attention.
var (
	LinkColor    = lipgloss.Color("#2563EB") // Titles, borders, links
	AlertColor   = lipgloss.Color("#EA580C") // Warnings, confirmation prompts
	SuccessColor = lipgloss.Color("#16A34A")
	ErrorColor   = lipgloss.Color("#EF4444")
	MutedColor   = lipgloss.Color("#6B7280") // Labels, hints, command lines
	TextColor    = lipgloss.Color("#F3F4F6")
)

// Printed output is never narrower than MinWidth or wider than MaxWidth.
const (
	MinWidth = 60
	MaxWidth = 100
)

var (
	HeaderTitleStyle = lipgloss.NewStyle().Foreground(TextColor).Bold(true).PaddingLeft(2)

	// HeaderCommandStyle renders the equivalent command line under a title.
	HeaderCommandStyle = lipgloss.NewStyle().Foreground(MutedColor).PaddingLeft(2)

	HeaderParamKeyStyle   = lipgloss.NewStyle().Foreground(MutedColor).PaddingLeft(2)
	HeaderParamValueStyle = lipgloss.NewStyle().Foreground(TextColor)

	SuccessTitleStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	WarningTitleStyle = lipgloss.NewStyle().Foreground(AlertColor).Bold(true)
	ErrorTitleStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	ErrorMessageStyle = lipgloss.NewStyle().Foreground(ErrorColor)

	// Result boxes line their values up after a fixed key column.
	ResultKeyStyle   = lipgloss.NewStyle().Foreground(MutedColor).Width(15)
	ResultValueStyle = lipgloss.NewStyle().Foreground(TextColor)

	HintTitleStyle = lipgloss.NewStyle().Foreground(MutedColor).Bold(true)
	HintItemStyle  = lipgloss.NewStyle().Foreground(MutedColor)

	// SectionTitleStyle heads a block, e.g. an informational page.
	SectionTitleStyle = lipgloss.NewStyle().Foreground(LinkColor).Bold(true)
)

const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
)

// GetTerminalWidth returns the stdout width clamped to MinWidth..MaxWidth.
// Output that is not a terminal gets MinWidth.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinWidth
	}
	return min(max(width, MinWidth), MaxWidth)
}

func box(border lipgloss.Border, color lipgloss.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Width(width - 2)
}

// HeaderBorderStyle frames a command header.
func HeaderBorderStyle(width int) lipgloss.Style {
	return box(lipgloss.RoundedBorder(), LinkColor, width)
}

// BlockStyle frames result text such as a card list or a book record.
func BlockStyle(width int) lipgloss.Style {
	return box(lipgloss.RoundedBorder(), MutedColor, width).Padding(0, 1)
}

func SuccessBoxStyle(width int) lipgloss.Style {
	return box(lipgloss.DoubleBorder(), SuccessColor, width).Padding(0, 2)
}

func ErrorBoxStyle(width int) lipgloss.Style {
	return box(lipgloss.DoubleBorder(), ErrorColor, width).Padding(0, 2)
}

func WarningBoxStyle(width int) lipgloss.Style {
	return box(lipgloss.DoubleBorder(), AlertColor, width).Padding(0, 2)
}

// HintBoxStyle is the inset list of suggestions inside an error box.
func HintBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(max(width-12, 40)).
		Padding(0, 1).
		MarginLeft(3)
}

// RenderHorizontalDivider draws a rule of width copies of char.
func RenderHorizontalDivider(width int, char string) string {
	return lipgloss.NewStyle().
		Foreground(LinkColor).
		Render(strings.Repeat(char, max(width, 0)))
}
