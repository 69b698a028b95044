package project

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

// Bump parts accepted by Bump.
const (
	BumpMajor = "major"
	BumpMinor = "minor"
	BumpPatch = "patch"
)

var (
	// ErrInvalidVersion is returned when a version is not of the form x.y.z.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrInvalidBump is returned when the bump part is not major, minor or patch.
	ErrInvalidBump = errors.New("invalid bump part")
)

// Normalize strips a single leading letter prefix from raw and validates the
// remainder as a plain x.y.z version. Pre-release and build metadata are
// rejected because release headers cannot carry them.
func Normalize(raw string) (string, error) {
	v, err := parse(raw)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Bump increments part of latest and returns the new bare version.
// An empty latest is treated as 0.0.0, so the first release bumps from zero.
func Bump(latest, part string) (string, error) {
	current := semver.New(0, 0, 0, "", "")
	if latest != "" {
		v, err := parse(latest)
		if err != nil {
			return "", err
		}
		current = v
	}

	var next semver.Version
	switch part {
	case BumpMajor:
		next = current.IncMajor()
	case BumpMinor:
		next = current.IncMinor()
	case BumpPatch:
		next = current.IncPatch()
	default:
		return "", fmt.Errorf("%w: %q (expected major, minor or patch)", ErrInvalidBump, part)
	}
	return next.String(), nil
}

func parse(raw string) (*semver.Version, error) {
	bare := changelog.NormalizeVersion(raw)
	if !changelog.IsValidVersion(bare) {
		return nil, fmt.Errorf("%w: %q: expected x.y.z without pre-release or build metadata", ErrInvalidVersion, raw)
	}
	v, err := semver.StrictNewVersion(bare)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, raw, err)
	}
	return v, nil
}
