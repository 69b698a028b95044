package changelog

import (
	"fmt"
	"strings"
)

// Issue is a structural problem found by Check.
type Issue struct {
	Line    int // 1-based, 0 when the issue is not tied to a line
	Message string
}

func (i Issue) String() string {
	if i.Line > 0 {
		return fmt.Sprintf("line %d: %s", i.Line, i.Message)
	}
	return i.Message
}

// Check inspects a document for problems that would make a release
// misbehave. It never fails; an empty result means the document is well formed.
func Check(doc string) []Issue {
	var issues []Issue
	issues = append(issues, checkPending(doc)...)
	issues = append(issues, checkHeaderLines(doc)...)
	issues = append(issues, checkOrdering(doc)...)
	return issues
}

func checkPending(doc string) []Issue {
	markers := pendingMarkerPattern.FindAllStringIndex(doc, -1)
	if len(markers) == 0 {
		return []Issue{{Message: "missing " + UnreleasedMarker + " section"}}
	}

	var issues []Issue
	for _, m := range markers[1:] {
		issues = append(issues, Issue{
			Line:    lineNumber(doc, m[0]),
			Message: "duplicate " + UnreleasedMarker + " section",
		})
	}

	start := markers[0][1]
	end := pendingBlockEnd(doc, start)
	firstLine := lineNumber(doc, start)
	seen := 0
	for i, line := range strings.Split(doc[start:end], "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.HasPrefix(line, "### ") {
			continue
		}
		if _, ok := categoryHeader(line); ok {
			seen++
			continue
		}
		issues = append(issues, Issue{
			Line:    firstLine + i,
			Message: fmt.Sprintf("unknown category %q in pending section", strings.TrimPrefix(line, "### ")),
		})
	}
	if seen == 0 {
		issues = append(issues, Issue{
			Line:    lineNumber(doc, markers[0][0]),
			Message: "pending section has no category subsections",
		})
	}
	return issues
}

// checkHeaderLines flags "## [" lines that are neither the pending marker nor
// a well-formed release header.
func checkHeaderLines(doc string) []Issue {
	var issues []Issue
	for i, line := range strings.Split(doc, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.HasPrefix(line, "## [") {
			continue
		}
		if pendingMarkerPattern.MatchString(line) || releaseHeaderPattern.MatchString(line) {
			continue
		}
		issues = append(issues, Issue{
			Line:    i + 1,
			Message: fmt.Sprintf("unrecognized release header %q (expected \"## [V1.2.3] - YYYY-MM-DD\")", line),
		})
	}
	return issues
}

// checkOrdering verifies release headers are in strictly descending order.
func checkOrdering(doc string) []Issue {
	var issues []Issue
	headers := ReleaseHeaders(doc)
	for i := 1; i < len(headers); i++ {
		prev, cur := headers[i-1], headers[i]
		switch {
		case CompareVersions(prev.Version, cur.Version) == 0:
			issues = append(issues, Issue{
				Line:    lineNumber(doc, cur.Offset),
				Message: fmt.Sprintf("duplicate release %s", cur.Tag()),
			})
		case !IsHigher(prev.Version, cur.Version):
			issues = append(issues, Issue{
				Line:    lineNumber(doc, cur.Offset),
				Message: fmt.Sprintf("release %s is listed after older release %s", cur.Tag(), prev.Tag()),
			})
		}
	}
	return issues
}

func lineNumber(doc string, offset int) int {
	return strings.Count(doc[:offset], "\n") + 1
}
