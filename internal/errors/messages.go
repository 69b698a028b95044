package errors

import (
	"fmt"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

// Common error messages for the chlog CLI.
// These templates ensure consistent, actionable error messages.

// ChangelogNotFound creates an error for a missing changelog file.
func ChangelogNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("changelog not found: %s", path),
		"Pass the file explicitly: chlog --file path/to/CHANGELOG.md <command>",
		"Or set changelog_file in .chlog/config.yml",
	)
}

// MissingUnreleasedSection creates an error for a changelog without a pending section.
func MissingUnreleasedSection(path string, err error) *CLIError {
	return WrapWithMessage(err, Validation,
		fmt.Sprintf("cannot release from %s", path),
		"Add a \""+changelog.UnreleasedMarker+"\" section above the latest release",
		"Run 'chlog check' to list other structural problems",
	)
}

// VersionConflict creates an error for a version that cannot follow the latest release.
func VersionConflict(conflict *changelog.VersionConflictError) *CLIError {
	e := NewValidationError(conflict.Error(),
		fmt.Sprintf("Pass a version higher than %s", conflict.Latest),
		"Or let chlog compute one: chlog release --bump patch",
	)
	e.Err = conflict
	return e
}

// VersionRequired creates an error when no target version could be determined.
func VersionRequired() *CLIError {
	return NewArgumentErrorWithUsage(
		"no release version given",
		"chlog release <version> | chlog release --bump <major|minor|patch>",
		"Pass the version as an argument, e.g. chlog release 1.2.0",
		"Or configure a version source: version_source: package | file | git",
	)
}

// InvalidVersion creates an error for a version that is not a numeric triple.
func InvalidVersion(version string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid version %q (expected: X.Y.Z)", version),
		"chlog release <major.minor.patch>",
		"Versions have exactly three numeric parts, e.g. 1.4.0",
		"A single leading letter is accepted and stripped, e.g. V1.4.0",
	)
}

// InvalidDate creates an error for a malformed --date value.
func InvalidDate(date string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid date %q (expected: YYYY-MM-DD)", date),
		"Example: chlog release 1.2.0 --date 2025-02-19",
	)
}

// InvalidBump creates an error for an unknown --bump level.
func InvalidBump(level string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid bump level %q", level),
		"Valid levels: major, minor, patch",
	)
}

// VersionSourceFailed creates an error when the configured version source cannot be read.
func VersionSourceFailed(source string, err error) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		fmt.Sprintf("reading version from %s source", source),
		"Pass the version explicitly: chlog release <version>",
		"Or change version_source / version_file in .chlog/config.yml",
	)
}

// EmptyRelease creates an error when the pending section has nothing to release.
func EmptyRelease(tag string) *CLIError {
	return NewValidationError(
		fmt.Sprintf("nothing to release for %s: the %s section is empty", tag, changelog.UnreleasedMarker),
		"Add entries under the category headers first",
		"Or release anyway with: chlog release --allow-empty",
	)
}

// ConfigParseError creates an error for invalid config file format.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for YAML syntax errors",
		"Reset to defaults with: chlog config init --force",
	)
}

// InvalidFlagCombination creates an error for incompatible flag combinations.
func InvalidFlagCombination(flags string, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination: %s", flags),
		reason,
		"Use 'chlog <command> --help' to see valid options",
	)
}

// FileNotWritable creates an error when a file cannot be written.
func FileNotWritable(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("cannot write to file: %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure parent directory exists and is writable",
	)
}

// GitNotRepository creates an error when not in a git repository.
func GitNotRepository() *CLIError {
	return NewPrerequisiteError(
		"not a git repository",
		"Initialize with: git init",
		"Or drop --tag / create_tag to skip tagging",
	)
}

// CheckFailed creates an error summarizing structural issues.
func CheckFailed(path string, count int) *CLIError {
	return NewValidationError(
		fmt.Sprintf("%s has %d structural issue(s)", path, count),
		"Fix the lines listed above and run 'chlog check' again",
	)
}
