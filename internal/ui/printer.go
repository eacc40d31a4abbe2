package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects how lookup commands print their results.
type Format string

const (
	FormatDetailed Format = "detailed" // Boxed header and full text
	FormatCompact  Format = "compact"  // One tab-separated line per item
	FormatJSON     Format = "json"     // Indented JSON of the decoded response
)

// Formats lists the accepted --format values.
var Formats = []Format{FormatDetailed, FormatCompact, FormatJSON}

// ParseFormat validates a --format value. Empty means detailed.
func ParseFormat(s string) (Format, error) {
	if strings.TrimSpace(s) == "" {
		return FormatDetailed, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (use detailed, compact or json)", s)
}

// Printer provides methods for printing UI components to a writer.
// Lookup commands print everything through one of these.
type Printer struct {
	out    io.Writer
	width  int
	format Format
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer, format Format) *Printer {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = FormatDetailed
	}
	return &Printer{
		out:    w,
		width:  GetTerminalWidth(),
		format: format,
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Format returns the output format this printer was built with.
func (p *Printer) Format() Format {
	return p.format
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a command header box. Only detailed output has headers.
func (p *Printer) PrintHeader(h *Header) {
	if p.format != FormatDetailed {
		return
	}
	p.Println(h.SetWidth(p.width).Render())
}

// PrintBlock prints pre-formatted text. Detailed output gets a titled
// border; compact output is printed as is.
func (p *Printer) PrintBlock(title, body string) {
	body = strings.TrimRight(body, "\n")
	if p.format != FormatDetailed {
		p.Println(body)
		return
	}
	if title != "" {
		body = SectionTitleStyle.Render(title) + "\n\n" + body
	}
	p.Println(BlockStyle(p.width).Render(body))
}

// PrintJSON writes v as indented JSON.
func (p *Printer) PrintJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details ...Param) {
	p.Println(NewWarningResult(title, details...).SetWidth(p.width).Render())
}

// PrintError prints an error result box with hints. Compact and JSON
// output get a single "error:" line so scripts can still parse stdout.
func (p *Printer) PrintError(title string, err error, hints ...string) {
	if p.format != FormatDetailed {
		p.Println("error: " + title + ": " + shortMessage(err))
		return
	}
	p.Println(NewFailureResult(title, err, hints...).SetWidth(p.width).Render())
}
