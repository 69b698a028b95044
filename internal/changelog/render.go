package changelog

import "strings"

// RenderResetSection returns an empty pending section: the marker line
// followed by every category header in standard order.
func RenderResetSection() string {
	var b strings.Builder
	b.WriteString(UnreleasedMarker + "\n")
	for _, c := range Categories() {
		b.WriteString("\n### " + c.String() + "\n")
	}
	return b.String()
}

// RenderReleaseSection returns a release section for tag and date. Unlike the
// reset section, categories without content are left out entirely.
func RenderReleaseSection(tag, date string, entries *Entries) string {
	var b strings.Builder
	b.WriteString(formatReleaseHeader(tag, date) + "\n")
	for _, c := range entries.NonEmpty() {
		b.WriteString("\n### " + c.String() + "\n\n")
		b.WriteString(entries.Get(c) + "\n")
	}
	return b.String()
}

// formatReleaseHeader formats the release header line.
func formatReleaseHeader(tag, date string) string {
	return "## [" + tag + "] - " + date
}

// lineEnding returns "\r\n" when the first line of doc ends with CRLF and
// "\n" otherwise.
func lineEnding(doc string) string {
	if i := strings.IndexByte(doc, '\n'); i > 0 && doc[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

// withLineEnding rewrites the LF line endings of rendered text to eol.
func withLineEnding(s, eol string) string {
	if eol == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", eol)
}

// splice replaces the pending block with the reset section and the new
// release, keeping everything before and after it byte for byte. release
// must already use the line ending of doc.
func splice(doc string, pending *PendingSection, release string) string {
	var b strings.Builder
	b.Grow(len(doc) + len(release) + 128)
	b.WriteString(doc[:pending.Start])
	b.WriteString(withLineEnding(RenderResetSection()+"\n", lineEnding(doc)))
	b.WriteString(release)
	b.WriteString(doc[pending.End:])
	return b.String()
}
