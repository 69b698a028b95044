package changelog

import (
	"errors"
	"fmt"
	"strings"
)

// ConflictReason distinguishes the two ways a target version can clash with history.
type ConflictReason int

const (
	// ConflictExists means the target is already the most recent release.
	ConflictExists ConflictReason = iota
	// ConflictNotHigher means the target sorts at or below the most recent release.
	ConflictNotHigher
)

// VersionConflictError is returned when the target version cannot follow the
// most recent release in the document.
type VersionConflictError struct {
	Version string // prefixed target, e.g. "V1.0.1"
	Latest  string // prefixed most recent release, e.g. "V1.0.1"
	Reason  ConflictReason
}

func (e *VersionConflictError) Error() string {
	if e.Reason == ConflictExists {
		return fmt.Sprintf("version %s is already in the changelog", e.Version)
	}
	return fmt.Sprintf("version %s is not higher than the latest release %s", e.Version, e.Latest)
}

// StructureError is returned when the document lacks a required section.
type StructureError struct {
	Message string
}

func (e *StructureError) Error() string {
	return e.Message
}

// VersionNotFoundError is returned when a requested release doesn't exist.
type VersionNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *VersionNotFoundError) Error() string {
	if len(e.AvailableVersions) == 0 {
		return fmt.Sprintf("version %q not found (no releases in changelog)", e.Version)
	}
	return fmt.Sprintf("version %q not found (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// IsVersionConflict returns true if the error is a VersionConflictError.
func IsVersionConflict(err error) bool {
	var ve *VersionConflictError
	return errors.As(err, &ve)
}

// IsStructureError returns true if the error is a StructureError.
func IsStructureError(err error) bool {
	var se *StructureError
	return errors.As(err, &se)
}
