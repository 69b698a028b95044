// Package project resolves the version a release should be stamped with when
// none is passed on the command line. Versions come from package.json, a plain
// VERSION file, or the highest semver tag in the git repository, and can be
// bumped from the latest release in the changelog.
package project
