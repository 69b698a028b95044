package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/git"
	"github.com/ariel-frischer/chlog/internal/history"
	"github.com/ariel-frischer/chlog/internal/testutil"
)

func TestRelease_ExplicitVersion(t *testing.T) {
	p := newTestProject(t)
	p.WriteChangelog(testutil.SampleChangelog)

	res := run(t, "release", "1.1.0", "--date", "2025-02-19")
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)

	want, err := changelog.Promote(testutil.SampleChangelog, "1.1.0", changelog.Options{Date: "2025-02-19"})
	require.NoError(t, err)
	assert.Equal(t, want, p.ReadFile("CHANGELOG.md"))
	assert.Contains(t, res.Stdout, "Released V1.1.0 (2025-02-19)")
	assert.Contains(t, res.Stdout, "previous: V1.0.1")
	assert.Contains(t, res.Stdout, "entries: 2")
}

func TestRelease_Failures(t *testing.T) {
	tests := map[string]struct {
		doc        string
		args       []string
		wantCode   int
		wantStderr string
	}{
		"version already released": {
			doc:        testutil.SampleChangelog,
			args:       []string{"release", "1.0.1"},
			wantCode:   ExitValidationFailed,
			wantStderr: "version V1.0.1 is already in the changelog",
		},
		"version not higher": {
			doc:        testutil.SampleChangelog,
			args:       []string{"release", "1.0.0"},
			wantCode:   ExitValidationFailed,
			wantStderr: "not higher than the latest release V1.0.1",
		},
		"missing unreleased section": {
			doc:        "# Changelog\n\n## [V1.0.1] - 2025-01-10\n\n### Fixed\n\n- Bug\n",
			args:       []string{"release", "1.0.2"},
			wantCode:   ExitValidationFailed,
			wantStderr: "has no ## [Unreleased] section",
		},
		"empty pending section": {
			doc:        testutil.EmptyPendingChangelog,
			args:       []string{"release", "1.0.2"},
			wantCode:   ExitValidationFailed,
			wantStderr: "nothing to release for V1.0.2",
		},
		"invalid version": {
			doc:        testutil.SampleChangelog,
			args:       []string{"release", "1.x"},
			wantCode:   ExitInvalidArguments,
			wantStderr: "invalid version \"1.x\"",
		},
		"version with bump": {
			doc:        testutil.SampleChangelog,
			args:       []string{"release", "2.0.0", "--bump", "major"},
			wantCode:   ExitInvalidArguments,
			wantStderr: "invalid flag combination",
		},
		"unknown bump level": {
			doc:        testutil.SampleChangelog,
			args:       []string{"release", "--bump", "huge"},
			wantCode:   ExitInvalidArguments,
			wantStderr: "invalid bump level \"huge\"",
		},
		"invalid date": {
			doc:        testutil.SampleChangelog,
			args:       []string{"release", "1.0.2", "--date", "19/02/2025"},
			wantCode:   ExitInvalidArguments,
			wantStderr: "invalid date",
		},
		"impossible calendar date": {
			doc:        testutil.SampleChangelog,
			args:       []string{"release", "1.0.2", "--date", "2025-13-45"},
			wantCode:   ExitInvalidArguments,
			wantStderr: "invalid date",
		},
		"invalid prefix": {
			doc:        testutil.SampleChangelog,
			args:       []string{"release", "1.0.2", "--prefix", "ver"},
			wantCode:   ExitInvalidArguments,
			wantStderr: "invalid version prefix",
		},
		"too many arguments": {
			doc:        testutil.SampleChangelog,
			args:       []string{"release", "1.0.2", "1.0.3"},
			wantCode:   ExitInvalidArguments,
			wantStderr: "accepts at most 1 arg(s)",
		},
		"unknown flag": {
			doc:        testutil.SampleChangelog,
			args:       []string{"release", "1.0.2", "--force"},
			wantCode:   ExitInvalidArguments,
			wantStderr: "unknown flag: --force",
		},
		"tag outside repository": {
			doc:        testutil.SampleChangelog,
			args:       []string{"release", "1.0.2", "--tag"},
			wantCode:   ExitMissingDependencies,
			wantStderr: "not a git repository",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := newTestProject(t)
			p.WriteChangelog(tt.doc)

			res := run(t, tt.args...)
			assert.Equal(t, tt.wantCode, res.Code)
			assert.Contains(t, res.Stderr, tt.wantStderr)
			assert.Equal(t, tt.doc, p.ReadFile("CHANGELOG.md"), "changelog must not change")
		})
	}
}

func TestRelease_MissingChangelog(t *testing.T) {
	newTestProject(t)

	res := run(t, "release", "1.0.0")
	assert.Equal(t, ExitMissingDependencies, res.Code)
	assert.Contains(t, res.Stderr, "changelog not found: CHANGELOG.md")
}

func TestRelease_Bump(t *testing.T) {
	tests := map[string]struct {
		level   string
		wantTag string
	}{
		"patch": {level: "patch", wantTag: "## [V1.0.2] - "},
		"minor": {level: "minor", wantTag: "## [V1.1.0] - "},
		"major": {level: "major", wantTag: "## [V2.0.0] - "},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := newTestProject(t)
			p.WriteChangelog(testutil.SampleChangelog)

			res := run(t, "release", "--bump", tt.level)
			require.Equal(t, ExitSuccess, res.Code, res.Stderr)
			assert.Contains(t, p.ReadFile("CHANGELOG.md"), tt.wantTag)
		})
	}
}

func TestRelease_VersionSources(t *testing.T) {
	tests := map[string]struct {
		source   string
		files    map[string]string
		wantCode int
		wantText string
	}{
		"package json": {
			source:   "package",
			files:    map[string]string{"package.json": `{"name": "app", "version": "1.2.0"}`},
			wantCode: ExitSuccess,
			wantText: "## [V1.2.0] - ",
		},
		"version file": {
			source:   "file",
			files:    map[string]string{"VERSION": "v1.3.0\n"},
			wantCode: ExitSuccess,
			wantText: "## [V1.3.0] - ",
		},
		"missing package json": {
			source:   "package",
			wantCode: ExitMissingDependencies,
		},
		"no source configured": {
			source:   "none",
			wantCode: ExitInvalidArguments,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := newTestProject(t)
			p.WriteChangelog(testutil.SampleChangelog)
			for file, content := range tt.files {
				p.WriteFile(file, content)
			}
			t.Setenv("CHLOG_VERSION_SOURCE", tt.source)

			res := run(t, "release")
			require.Equal(t, tt.wantCode, res.Code, res.Stderr)
			if tt.wantText != "" {
				assert.Contains(t, p.ReadFile("CHANGELOG.md"), tt.wantText)
			}
		})
	}
}

func TestRelease_DryRun(t *testing.T) {
	p := newTestProject(t)
	p.WriteChangelog(testutil.SampleChangelog)

	res := run(t, "release", "1.0.2", "--date", "2025-02-19", "--dry-run")
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)

	assert.Equal(t, testutil.SampleChangelog, p.ReadFile("CHANGELOG.md"))
	assert.Contains(t, res.Stdout, "Dry run, not writing: CHANGELOG.md")
	assert.Contains(t, res.Stdout, "## V1.0.2 (2025-02-19) ← V1.0.1\n")
	assert.Contains(t, res.Stdout, "### Added\n  - Export to CSV\n")
	assert.Contains(t, res.Stdout, "+ ## [V1.0.2] - 2025-02-19")
	assert.Contains(t, res.Stdout, "line(s) added")
}

func TestRelease_AllowEmpty(t *testing.T) {
	p := newTestProject(t)
	p.WriteChangelog(testutil.EmptyPendingChangelog)

	res := run(t, "release", "1.0.2", "--date", "2025-02-19", "--allow-empty")
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.Contains(t, p.ReadFile("CHANGELOG.md"), "## [V1.0.2] - 2025-02-19\n\n## [V1.0.1]")
}

func TestRelease_Prefix(t *testing.T) {
	tests := map[string]struct {
		args []string
		env  string
		want string
	}{
		"flag overrides default": {
			args: []string{"release", "1.0.2", "--date", "2025-02-19", "--prefix", "v"},
			want: "## [v1.0.2] - 2025-02-19",
		},
		"empty flag writes bare version": {
			args: []string{"release", "1.0.2", "--date", "2025-02-19", "--prefix="},
			want: "## [1.0.2] - 2025-02-19",
		},
		"config prefix": {
			args: []string{"release", "1.0.2", "--date", "2025-02-19"},
			env:  "R",
			want: "## [R1.0.2] - 2025-02-19",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := newTestProject(t)
			p.WriteChangelog(testutil.SampleChangelog)
			if tt.env != "" {
				t.Setenv("CHLOG_VERSION_PREFIX", tt.env)
			}

			res := run(t, tt.args...)
			require.Equal(t, ExitSuccess, res.Code, res.Stderr)
			assert.Contains(t, p.ReadFile("CHANGELOG.md"), tt.want)
		})
	}
}

func TestRelease_CreatesGitTag(t *testing.T) {
	p := newTestProject(t)
	p.WriteChangelog(testutil.SampleChangelog)
	p.InitGitRepo()

	res := run(t, "release", "1.0.2", "--tag")
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.Contains(t, res.Stdout, "git tag: V1.0.2")

	tags, err := git.ListTags(p.Dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"V1.0.2"}, tags)

	// Same tag again is refused before the file is touched.
	p.WriteChangelog(testutil.SampleChangelog)
	res = run(t, "release", "1.0.2", "--tag")
	assert.Equal(t, ExitValidationFailed, res.Code)
	assert.Contains(t, res.Stderr, "git tag V1.0.2 already exists")
	assert.Equal(t, testutil.SampleChangelog, p.ReadFile("CHANGELOG.md"))
}

func TestRelease_RecordsHistory(t *testing.T) {
	p := newTestProject(t)
	p.WriteChangelog(testutil.SampleChangelog)

	res := run(t, "release", "1.0.2", "--date", "2025-02-19")
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)

	res = run(t, "history")
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.Contains(t, res.Stdout, "V1.0.2")
	assert.Contains(t, res.Stdout, "2025-02-19")
	assert.Contains(t, res.Stdout, "V1.0.1")

	loaded, err := history.LoadHistory(os.Getenv("CHLOG_STATE_DIR"))
	require.NoError(t, err)
	require.Len(t, loaded.Entries, 1)
	assert.Equal(t, 2, loaded.Entries[0].Entries)
}

func TestRelease_HistoryFailureIsAWarning(t *testing.T) {
	p := newTestProject(t)
	p.WriteChangelog(testutil.SampleChangelog)
	p.WriteFile("state-file", "not a directory")
	t.Setenv("CHLOG_STATE_DIR", p.Path("state-file"))

	res := run(t, "release", "1.0.2", "--date", "2025-02-19")
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.Contains(t, res.Stderr, "Warning: failed to log history")
	assert.Contains(t, p.ReadFile("CHANGELOG.md"), "## [V1.0.2] - 2025-02-19")
}

func TestRelease_DebugLogsThroughCommandContext(t *testing.T) {
	p := newTestProject(t)
	p.WriteChangelog(testutil.SampleChangelog)

	res := run(t, "--debug", "release", "--bump", "minor", "--date", "2025-02-19")
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.Contains(t, res.Stderr, "bumped minor to 1.1.0")
	assert.Contains(t, res.Stderr, `msg="changelog rewritten" tag=V1.1.0`)

	res = run(t, "release", "1.2.0", "--date", "2025-02-20", "--allow-empty")
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assert.NotContains(t, res.Stderr, "changelog rewritten")
}
