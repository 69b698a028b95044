package changelog

import (
	"strings"
	"time"
	"unicode"
)

// IsHigher reports whether version a is strictly greater than version b.
// Segments are compared left to right as integers; a missing segment counts
// as 0 and so does a segment that is not a plain number.
func IsHigher(a, b string) bool {
	return CompareVersions(a, b) > 0
}

// CompareVersions returns -1, 0 or 1 comparing a to b segment by segment.
// Segments are compared as arbitrarily long decimal numbers, so no segment
// overflows.
func CompareVersions(a, b string) int {
	as := versionSegments(a)
	bs := versionSegments(b)

	n := max(len(as), len(bs))
	for i := 0; i < n; i++ {
		if c := compareSegments(segmentAt(as, i), segmentAt(bs, i)); c != 0 {
			return c
		}
	}
	return 0
}

func versionSegments(v string) []string {
	parts := strings.Split(v, ".")
	segments := make([]string, len(parts))
	for i, p := range parts {
		segments[i] = coerceSegment(p)
	}
	return segments
}

// coerceSegment returns s without leading zeros, or "0" when s is empty,
// all zeros, or not made of digits only.
func coerceSegment(s string) string {
	for _, r := range s {
		if r < '0' || r > '9' {
			return "0"
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// compareSegments compares two canonical digit strings numerically: the
// longer one is larger, equal lengths compare lexically.
func compareSegments(x, y string) int {
	if len(x) != len(y) {
		if len(x) > len(y) {
			return 1
		}
		return -1
	}
	return strings.Compare(x, y)
}

func segmentAt(segments []string, i int) string {
	if i < len(segments) {
		return segments[i]
	}
	return "0"
}

// NormalizeVersion strips a single leading letter prefix and surrounding
// whitespace, so "V1.0.2", "v1.0.2" and "1.0.2" all normalize to "1.0.2".
func NormalizeVersion(version string) string {
	v := strings.TrimSpace(version)
	if len(v) > 1 && unicode.IsLetter(rune(v[0])) && v[1] >= '0' && v[1] <= '9' {
		return v[1:]
	}
	return v
}

// IsValidVersion reports whether version is a bare numeric triple like "1.0.2".
func IsValidVersion(version string) bool {
	return versionPattern.MatchString(version)
}

// IsValidDate reports whether date is a real calendar day written as
// YYYY-MM-DD.
func IsValidDate(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := time.Parse(dateLayout, date)
	return err == nil
}
