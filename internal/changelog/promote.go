package changelog

import "time"

// dateLayout is the YYYY-MM-DD layout used in release headers.
const dateLayout = "2006-01-02"

// Options controls how a release is stamped.
type Options struct {
	// Date overrides the release date (YYYY-MM-DD). Empty means today.
	Date string
	// Prefix is written before the version in the new header. Empty means
	// DefaultPrefix unless NoPrefix is set.
	Prefix string
	// NoPrefix writes the bare version into the header.
	NoPrefix bool
	// Now supplies the clock for the default date. Nil means time.Now.
	Now func() time.Time
}

func (o Options) prefix() string {
	if o.NoPrefix {
		return ""
	}
	if o.Prefix == "" {
		return DefaultPrefix
	}
	return o.Prefix
}

func (o Options) date() string {
	if o.Date != "" {
		return o.Date
	}
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	return now().Format(dateLayout)
}

// Promote moves the pending entries of doc into a new release for version and
// returns the rewritten document. See Plan for the checks performed.
func Promote(doc, version string, opts Options) (string, error) {
	release, err := Plan(doc, version, opts)
	if err != nil {
		return "", err
	}
	return release.Document, nil
}

// Plan validates version against the most recent release in doc and builds
// the promoted document without writing it anywhere.
//
// Checks run in order and the first failure is returned:
//  1. version is the most recent release already (VersionConflictError)
//  2. version is not higher than the most recent release (VersionConflictError)
//  3. the document has no pending section (StructureError)
func Plan(doc, version string, opts Options) (*Release, error) {
	version = NormalizeVersion(version)
	prefix := opts.prefix()

	var previous *ReleaseHeader
	if latest, ok := LatestRelease(doc); ok {
		previous = &latest
		if err := checkVersion(prefix+version, version, latest); err != nil {
			return nil, err
		}
	}

	pending, err := ExtractPending(doc)
	if err != nil {
		return nil, err
	}

	date := opts.date()
	section := withLineEnding(RenderReleaseSection(prefix+version, date, &pending.Entries), lineEnding(doc))

	return &Release{
		Version:  version,
		Prefix:   prefix,
		Date:     date,
		Previous: previous,
		Entries:  pending.Entries,
		Section:  section,
		Document: splice(doc, pending, section),
	}, nil
}

// checkVersion compares bare versions, so "1.0.1" also clashes with a header
// written as "[v1.0.1]".
func checkVersion(tag, version string, latest ReleaseHeader) error {
	if version == latest.Version {
		return &VersionConflictError{Version: tag, Latest: latest.Tag(), Reason: ConflictExists}
	}
	if !IsHigher(version, latest.Version) {
		return &VersionConflictError{Version: tag, Latest: latest.Tag(), Reason: ConflictNotHigher}
	}
	return nil
}
