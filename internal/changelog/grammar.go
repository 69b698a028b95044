package changelog

import "regexp"

// UnreleasedMarker is the header line of the pending section.
const UnreleasedMarker = "## [Unreleased]"

// DefaultPrefix is the version prefix written into new release headers.
const DefaultPrefix = "V"

// The document grammar. These patterns are the only definition of what a
// release header, the pending marker, a section boundary and a category
// subsection look like.
var (
	// releaseHeaderPattern matches "## [V1.2.3] - 2024-02-14" with an optional
	// single-letter prefix. Groups: prefix, version, date.
	releaseHeaderPattern = regexp.MustCompile(`(?m)^## \[([A-Za-z]?)(\d+\.\d+\.\d+)\] - (\d{4}-\d{2}-\d{2})`)

	// pendingMarkerPattern matches the "## [Unreleased]" line, tolerating trailing
	// blanks and a carriage return.
	pendingMarkerPattern = regexp.MustCompile(`(?m)^## \[Unreleased\][ \t]*\r?$`)

	// nextSectionPattern matches the start of any top-level section line.
	nextSectionPattern = regexp.MustCompile(`(?m)^## `)

	// categoryHeaderPattern matches a "### Name" subsection line. The captured
	// name still has to be one of the fixed categories.
	categoryHeaderPattern = regexp.MustCompile(`^### (\S+)$`)

	// versionPattern validates a bare numeric triple.
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

	// datePattern validates a YYYY-MM-DD date.
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)
