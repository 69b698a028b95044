package changelog

import (
	"strings"
)

// ListVersions returns the prefixed version of every release header, newest first.
func ListVersions(doc string) []string {
	headers := ReleaseHeaders(doc)
	versions := make([]string, len(headers))
	for i, h := range headers {
		versions[i] = h.Tag()
	}
	return versions
}

// FindRelease returns the release header for version. The lookup ignores the
// prefix, so "1.0.1", "v1.0.1" and "V1.0.1" all find "## [V1.0.1] - ...".
// Returns VersionNotFoundError if the version doesn't exist.
func FindRelease(doc, version string) (ReleaseHeader, error) {
	normalized := NormalizeVersion(version)
	for _, h := range ReleaseHeaders(doc) {
		if h.Version == normalized {
			return h, nil
		}
	}
	return ReleaseHeader{}, &VersionNotFoundError{
		Version:           version,
		AvailableVersions: ListVersions(doc),
	}
}

// Extract returns the body of the release section for version, without its
// header line and trimmed of surrounding blank lines. The special version
// "unreleased" returns the pending entries rendered as markdown.
func Extract(doc, version string) (string, error) {
	if strings.EqualFold(version, "unreleased") {
		pending, err := ExtractPending(doc)
		if err != nil {
			return "", err
		}
		return RenderEntries(&pending.Entries), nil
	}

	h, err := FindRelease(doc, version)
	if err != nil {
		return "", err
	}

	bodyStart := h.Offset + lineLength(doc[h.Offset:])
	end := pendingBlockEnd(doc, bodyStart)
	return strings.TrimSpace(doc[bodyStart:end]), nil
}

// RenderEntries renders the non-empty categories as markdown subsections
// without a release header, suitable for release notes.
func RenderEntries(entries *Entries) string {
	var parts []string
	for _, c := range entries.NonEmpty() {
		parts = append(parts, "### "+c.String()+"\n\n"+entries.Get(c))
	}
	return strings.Join(parts, "\n\n")
}

// lineLength returns the length of the first line of s, excluding its newline.
func lineLength(s string) int {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return i
	}
	return len(s)
}
