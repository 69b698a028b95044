package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLine is one line of a rendered line diff.
type DiffLine struct {
	Op   diffmatchpatch.Operation
	Text string
}

// LineDiff computes a line-level diff between before and after.
func LineDiff(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			out = append(out, DiffLine{Op: d.Type, Text: line})
		}
	}
	return out
}

// DiffStats counts inserted and deleted lines.
func DiffStats(lines []DiffLine) (added, removed int) {
	for _, l := range lines {
		switch l.Op {
		case diffmatchpatch.DiffInsert:
			added++
		case diffmatchpatch.DiffDelete:
			removed++
		}
	}
	return added, removed
}

// WriteLineDiff writes a colored unified-style diff of before and after to w,
// keeping context unchanged lines around each change. Longer unchanged runs are
// collapsed into a single "..." line.
func WriteLineDiff(w io.Writer, before, after string, context int) {
	lines := LineDiff(before, after)
	keep := contextMask(lines, context)

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	skipped := false
	for i, l := range lines {
		if !keep[i] {
			if !skipped {
				fmt.Fprintln(w, dim("  ..."))
				skipped = true
			}
			continue
		}
		skipped = false

		switch l.Op {
		case diffmatchpatch.DiffInsert:
			fmt.Fprintln(w, green("+ "+l.Text))
		case diffmatchpatch.DiffDelete:
			fmt.Fprintln(w, red("- "+l.Text))
		default:
			fmt.Fprintln(w, "  "+l.Text)
		}
	}
}

// contextMask marks every changed line plus up to context equal lines on
// either side of it.
func contextMask(lines []DiffLine, context int) []bool {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == diffmatchpatch.DiffEqual {
			continue
		}
		lo, hi := max(i-context, 0), min(i+context, len(lines)-1)
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}
	return keep
}

// splitLines splits text into lines without the trailing empty element left by
// a final newline.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
