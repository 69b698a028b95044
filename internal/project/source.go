package project

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ariel-frischer/chlog/internal/config"
	"github.com/ariel-frischer/chlog/internal/git"
)

var (
	// ErrNoVersionSource is returned when the source is "none".
	ErrNoVersionSource = errors.New("no version source configured")
	// ErrVersionNotFound is returned when a source holds no usable version.
	ErrVersionNotFound = errors.New("version not found")
	// ErrUnknownSource is returned for a source name that isn't recognized.
	ErrUnknownSource = errors.New("unknown version source")
)

// Resolver reads the current project version from one configured source.
type Resolver struct {
	// Dir is the project directory. Relative File paths are resolved against it.
	Dir string
	// Source is one of config.SourcePackage, SourceFile, SourceGit or SourceNone.
	Source string
	// File overrides the default file for the package and file sources.
	File string
}

// NewResolver builds a Resolver for dir from the loaded configuration.
func NewResolver(dir string, cfg *config.Configuration) *Resolver {
	return &Resolver{
		Dir:    dir,
		Source: cfg.VersionSource,
		File:   cfg.ResolvedVersionFile(),
	}
}

// Resolve returns the normalized bare version held by the source.
func (r *Resolver) Resolve() (string, error) {
	var (
		raw string
		err error
	)

	switch r.Source {
	case config.SourcePackage:
		raw, err = r.fromPackageJSON()
	case config.SourceFile:
		raw, err = r.fromVersionFile()
	case config.SourceGit:
		raw, err = r.fromGitTags()
	case config.SourceNone, "":
		return "", ErrNoVersionSource
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, r.Source)
	}
	if err != nil {
		return "", err
	}

	return Normalize(raw)
}

// Describe returns a short human description of where the version comes from.
func (r *Resolver) Describe() string {
	switch r.Source {
	case config.SourceGit:
		return "git tags"
	case config.SourceNone, "":
		return "none"
	default:
		return r.path(r.defaultFile())
	}
}

func (r *Resolver) fromPackageJSON() (string, error) {
	path := r.path("package.json")

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s does not exist", ErrVersionNotFound, path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	version := k.String("version")
	if version == "" {
		return "", fmt.Errorf("%w: %s has no \"version\" key", ErrVersionNotFound, path)
	}
	return version, nil
}

func (r *Resolver) fromVersionFile() (string, error) {
	path := r.path("VERSION")

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s does not exist", ErrVersionNotFound, path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return "", fmt.Errorf("%w: %s is empty", ErrVersionNotFound, path)
}

// fromGitTags returns the highest tag that parses as a plain x.y.z version
// after prefix stripping. Other tags are ignored.
func (r *Resolver) fromGitTags() (string, error) {
	if !git.IsGitRepository(r.Dir) {
		return "", fmt.Errorf("%w: %s is not inside a git repository", ErrVersionNotFound, r.Dir)
	}
	tags, err := git.ListTags(r.Dir)
	if err != nil {
		return "", err
	}

	var best *semver.Version
	for _, tag := range tags {
		v, err := parse(tag)
		if err != nil {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}

	if best == nil {
		return "", fmt.Errorf("%w: no semver tags in repository", ErrVersionNotFound)
	}
	return best.String(), nil
}

func (r *Resolver) defaultFile() string {
	if r.File != "" {
		return r.File
	}
	if r.Source == config.SourceFile {
		return "VERSION"
	}
	return "package.json"
}

// path resolves the configured file, or fallback when none is set, against Dir.
func (r *Resolver) path(fallback string) string {
	name := r.File
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) || r.Dir == "" {
		return name
	}
	return filepath.Join(r.Dir, name)
}
