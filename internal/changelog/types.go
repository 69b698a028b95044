package changelog

import "strings"

// Category is one of the fixed Keep a Changelog subsection names.
// The numeric order of the constants is the rendering order.
type Category int

const (
	Added Category = iota
	Changed
	Deprecated
	Removed
	Fixed
	Security

	numCategories = int(Security) + 1
)

var categoryNames = [numCategories]string{
	"Added",
	"Changed",
	"Deprecated",
	"Removed",
	"Fixed",
	"Security",
}

// String returns the subsection name as it appears in the document (e.g. "Added").
func (c Category) String() string {
	if c < 0 || int(c) >= numCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// Categories returns all categories in their standard rendering order.
func Categories() []Category {
	return []Category{Added, Changed, Deprecated, Removed, Fixed, Security}
}

// ParseCategory looks up a category by its exact, case-sensitive name.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

// Entries holds the accumulated text of each category bucket.
// Buckets are trimmed; an empty string means the category had no content.
type Entries [numCategories]string

// Get returns the bucket text for a category.
func (e *Entries) Get(c Category) string {
	return e[c]
}

// IsEmpty returns true if no category has content.
func (e *Entries) IsEmpty() bool {
	for _, text := range e {
		if text != "" {
			return false
		}
	}
	return true
}

// Lines returns the non-blank lines of a category bucket.
func (e *Entries) Lines(c Category) []string {
	var lines []string
	for _, line := range strings.Split(e[c], "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Count returns the number of bullet lines ("- " or "* ") across all categories.
func (e *Entries) Count() int {
	count := 0
	for _, c := range Categories() {
		for _, line := range e.Lines(c) {
			if isBullet(line) {
				count++
			}
		}
	}
	return count
}

// NonEmpty returns the categories with content, in rendering order.
func (e *Entries) NonEmpty() []Category {
	var cats []Category
	for _, c := range Categories() {
		if e[c] != "" {
			cats = append(cats, c)
		}
	}
	return cats
}

func isBullet(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ")
}

// ReleaseHeader is a parsed "## [<Prefix><Version>] - <Date>" line.
type ReleaseHeader struct {
	Prefix  string // optional single letter, e.g. "V"
	Version string // numeric triple without prefix, e.g. "1.0.1"
	Date    string // YYYY-MM-DD
	Offset  int    // byte offset of the header line in the document
}

// Tag returns the version as written in the header, prefix included.
func (h ReleaseHeader) Tag() string {
	return h.Prefix + h.Version
}

// PendingSection is the located "## [Unreleased]" block.
// Start and End are byte offsets into the document; doc[Start:End] is the
// marker line plus the block body, excluding the next top-level header.
type PendingSection struct {
	Start   int
	End     int
	Entries Entries
}

// Release is the outcome of planning a promotion.
type Release struct {
	Version  string         // numeric triple
	Prefix   string         // prefix used in the new header
	Date     string         // YYYY-MM-DD
	Previous *ReleaseHeader // most recent release before this one, nil if none
	Entries  Entries        // promoted pending content
	Section  string         // rendered release section
	Document string         // full rewritten document
}

// Tag returns the prefixed version, e.g. "V1.0.2".
func (r *Release) Tag() string {
	return r.Prefix + r.Version
}
