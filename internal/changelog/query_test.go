package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiReleaseChangelog = `# Changelog

## [Unreleased]

### Fixed

- pending fix

## [V1.1.0] - 2024-03-01

### Added

- search

### Fixed

- login redirect

## [V1.0.0] - 2024-01-01

### Added

- initial release
`

func TestListVersions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"V1.1.0", "V1.0.0"}, ListVersions(multiReleaseChangelog))
	assert.Empty(t, ListVersions("## [Unreleased]\n"))
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		version string
		want    string
	}{
		"prefixed version": {
			version: "V1.1.0",
			want:    "### Added\n\n- search\n\n### Fixed\n\n- login redirect",
		},
		"bare version": {
			version: "1.1.0",
			want:    "### Added\n\n- search\n\n### Fixed\n\n- login redirect",
		},
		"last release runs to end": {
			version: "v1.0.0",
			want:    "### Added\n\n- initial release",
		},
		"unreleased": {
			version: "unreleased",
			want:    "### Fixed\n\n- pending fix",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := Extract(multiReleaseChangelog, tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_NotFound(t *testing.T) {
	t.Parallel()

	_, err := Extract(multiReleaseChangelog, "2.0.0")
	require.Error(t, err)

	var notFound *VersionNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"V1.1.0", "V1.0.0"}, notFound.AvailableVersions)
	assert.Contains(t, err.Error(), "V1.1.0, V1.0.0")
}

func TestExtract_UnreleasedWithoutMarker(t *testing.T) {
	t.Parallel()

	_, err := Extract("## [V1.0.0] - 2024-01-01\n", "unreleased")
	assert.True(t, IsStructureError(err))
}

func TestVersionNotFoundError_NoReleases(t *testing.T) {
	t.Parallel()

	err := &VersionNotFoundError{Version: "1.0.0"}
	assert.Contains(t, err.Error(), "no releases")
}
