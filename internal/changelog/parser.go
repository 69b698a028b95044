package changelog

import (
	"strings"
)

// LatestRelease returns the first release header in the document.
// Headers are assumed to be in descending order, so the first one is the
// most recent release. ok is false when the document has no release yet.
func LatestRelease(doc string) (header ReleaseHeader, ok bool) {
	m := releaseHeaderPattern.FindStringSubmatchIndex(doc)
	if m == nil {
		return ReleaseHeader{}, false
	}
	return headerFromMatch(doc, m), true
}

// ReleaseHeaders returns every release header in document order.
func ReleaseHeaders(doc string) []ReleaseHeader {
	matches := releaseHeaderPattern.FindAllStringSubmatchIndex(doc, -1)
	headers := make([]ReleaseHeader, 0, len(matches))
	for _, m := range matches {
		headers = append(headers, headerFromMatch(doc, m))
	}
	return headers
}

func headerFromMatch(doc string, m []int) ReleaseHeader {
	return ReleaseHeader{
		Prefix:  doc[m[2]:m[3]],
		Version: doc[m[4]:m[5]],
		Date:    doc[m[6]:m[7]],
		Offset:  m[0],
	}
}

// ExtractPending locates the "## [Unreleased]" block and buckets its lines by
// category. The block runs up to the line before the next "## " header, or to
// the end of the document when the pending section is the last one.
func ExtractPending(doc string) (*PendingSection, error) {
	loc := pendingMarkerPattern.FindStringIndex(doc)
	if loc == nil {
		return nil, &StructureError{
			Message: "changelog has no " + UnreleasedMarker + " section",
		}
	}

	bodyStart := loc[1]
	end := pendingBlockEnd(doc, bodyStart)

	return &PendingSection{
		Start:   loc[0],
		End:     end,
		Entries: bucketLines(doc[bodyStart:end]),
	}, nil
}

// pendingBlockEnd returns the offset of the line ending preceding the next
// top-level header after from, or len(doc) if there is none.
func pendingBlockEnd(doc string, from int) int {
	next := nextSectionPattern.FindStringIndex(doc[from:])
	if next == nil {
		return len(doc)
	}
	end := from + next[0]
	if end > from && doc[end-1] == '\n' {
		end--
		if end > from && doc[end-1] == '\r' {
			end--
		}
	}
	return end
}

// bucketLines walks the pending body with a current-category cursor.
// Lines before the first recognized category header are dropped and the
// header lines themselves are never part of a bucket.
func bucketLines(body string) Entries {
	var buffers [numCategories]strings.Builder
	current := Category(-1)

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if c, ok := categoryHeader(line); ok {
			current = c
			continue
		}
		if current < 0 {
			continue
		}
		buffers[current].WriteString(line)
		buffers[current].WriteString("\n")
	}

	var entries Entries
	for i := range buffers {
		entries[i] = strings.TrimSpace(buffers[i].String())
	}
	return entries
}

// categoryHeader reports whether line is a "### <Category>" subsection header
// naming one of the fixed categories.
func categoryHeader(line string) (Category, bool) {
	m := categoryHeaderPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return ParseCategory(m[1])
}
