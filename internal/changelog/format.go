package changelog

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// defaultWidth is the wrap width used when FormatOptions.MaxWidth is unset.
const defaultWidth = 80

// CategoryStyle defines the color and icon for a changelog category.
type CategoryStyle struct {
	Color *color.Color
	Icon  string
}

// categoryStyles holds the terminal styling for each category.
var categoryStyles = [numCategories]CategoryStyle{
	Added:      {Color: color.New(color.FgGreen), Icon: "✓"},
	Changed:    {Color: color.New(color.FgBlue), Icon: "~"},
	Deprecated: {Color: color.New(color.FgRed), Icon: "⚠"},
	Removed:    {Color: color.New(color.FgRed), Icon: "✗"},
	Fixed:      {Color: color.New(color.FgYellow), Icon: "⚡"},
	Security:   {Color: color.New(color.FgMagenta), Icon: "🔒"},
}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and icons
	MaxWidth int  // Maximum line width (0 = defaultWidth)
}

// FormatEntries writes category buckets to w with terminal styling under the
// given title. Empty categories are skipped.
func FormatEntries(title string, entries *Entries, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	if err := writeTitle(title, w, opts); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, c := range entries.NonEmpty() {
		if err := writeCategorySection(c, entries.Lines(c), w, opts, width); err != nil {
			return fmt.Errorf("formatting %s: %w", c, err)
		}
	}
	return nil
}

// FormatRelease writes a short summary of a planned release.
func FormatRelease(r *Release, w io.Writer, opts FormatOptions) error {
	title := fmt.Sprintf("%s (%s)", r.Tag(), r.Date)
	if r.Previous != nil {
		title += " ← " + r.Previous.Tag()
	}
	return FormatEntries(title, &r.Entries, w, opts)
}

// writeTitle writes the version header line.
func writeTitle(title string, w io.Writer, opts FormatOptions) error {
	if opts.Plain {
		_, err := fmt.Fprintf(w, "## %s\n", title)
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(w, "## %s\n", bold(title))
	return err
}

// writeCategorySection writes a single category with its lines.
func writeCategorySection(c Category, lines []string, w io.Writer, opts FormatOptions, width int) error {
	style := categoryStyles[c]

	if err := writeCategoryHeader(c, style, w, opts); err != nil {
		return err
	}

	for _, line := range lines {
		if err := writeLine(line, style, w, opts, width); err != nil {
			return err
		}
	}
	return nil
}

// writeCategoryHeader writes the category header line.
func writeCategoryHeader(c Category, style CategoryStyle, w io.Writer, opts FormatOptions) error {
	if opts.Plain {
		_, err := fmt.Fprintf(w, "\n### %s\n", c)
		return err
	}

	colored := style.Color.SprintFunc()
	_, err := fmt.Fprintf(w, "\n%s %s\n", colored(style.Icon), colored(c.String()))
	return err
}

// writeLine writes one bucket line, re-indented and wrapped to the terminal.
func writeLine(line string, style CategoryStyle, w io.Writer, opts FormatOptions, width int) error {
	prefix := "  "
	text := strings.TrimRight(line, " \t\r")

	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, text)
		return err
	}

	wrapped := wrapText(text, width-len(prefix), prefix+"  ")
	colored := style.Color.SprintFunc()
	_, err := fmt.Fprintf(w, "%s%s\n", prefix, colored(wrapped))
	return err
}

// resolveWidth returns maxWidth, or defaultWidth when it is not positive.
// Callers that print to a terminal pass the detected terminal width.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	return defaultWidth
}

// wrapText wraps text to fit within maxWidth, using indent for continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		// Find the last space within maxWidth
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
