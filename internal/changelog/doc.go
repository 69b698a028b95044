// Package changelog implements release promotion for Keep a Changelog documents.
//
// This package implements:
//   - Version comparison over dot-separated numeric segments
//   - Locating the most recent "## [V1.2.3] - YYYY-MM-DD" release header
//   - Extracting the "## [Unreleased]" block and bucketing it by category
//   - Rebuilding the document with a new dated release and a reset pending section
//   - Release note extraction and structural checks for the CLI
//
// Every function in this package is pure: it operates on the document text it is
// given and never touches the file system. Reading and writing CHANGELOG.md is the
// caller's job.
package changelog
