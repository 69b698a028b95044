// Package testutil provides test utilities and fixtures for chlog tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// SampleChangelog is a two-release changelog with pending entries.
const SampleChangelog = `# Changelog

All notable changes to this project will be documented in this file.

## [Unreleased]

### Added

- Export to CSV

### Changed

### Deprecated

### Removed

### Fixed

- Crash on empty input

### Security

## [V1.0.1] - 2025-01-10

### Fixed

- Login redirect loop

## [V1.0.0] - 2024-12-01

### Added

- Initial release
`

// EmptyPendingChangelog has a pending section with only category headers.
const EmptyPendingChangelog = `# Changelog

## [Unreleased]

### Added

### Changed

### Deprecated

### Removed

### Fixed

### Security

## [V1.0.1] - 2025-01-10

### Fixed

- Login redirect loop
`

// Project is a temporary project directory for command tests.
type Project struct {
	t   *testing.T
	Dir string
}

// NewProject creates an empty project in a temp directory.
func NewProject(t *testing.T) *Project {
	t.Helper()
	return &Project{t: t, Dir: t.TempDir()}
}

// Path returns name joined to the project directory.
func (p *Project) Path(name string) string {
	return filepath.Join(p.Dir, name)
}

// WriteFile writes content to name inside the project, creating parents.
func (p *Project) WriteFile(name, content string) string {
	p.t.Helper()

	path := p.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		p.t.Fatalf("creating directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		p.t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// ReadFile returns the content of name inside the project.
func (p *Project) ReadFile(name string) string {
	p.t.Helper()

	data, err := os.ReadFile(p.Path(name))
	if err != nil {
		p.t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

// WriteChangelog writes content to CHANGELOG.md and returns its path.
func (p *Project) WriteChangelog(content string) string {
	p.t.Helper()
	return p.WriteFile("CHANGELOG.md", content)
}

// InitGitRepo turns the project into a git repository with every existing
// file committed, and returns the repository.
func (p *Project) InitGitRepo() *git.Repository {
	p.t.Helper()

	repo, err := git.PlainInit(p.Dir, false)
	if err != nil {
		p.t.Fatalf("initializing repository: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		p.t.Fatalf("getting worktree: %v", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		p.t.Fatalf("staging files: %v", err)
	}
	_, err = wt.Commit("initial commit", &git.CommitOptions{
		Author:            &object.Signature{Name: "Test User", Email: "test@test.com", When: time.Now()},
		AllowEmptyCommits: true,
	})
	if err != nil {
		p.t.Fatalf("committing: %v", err)
	}

	return repo
}
