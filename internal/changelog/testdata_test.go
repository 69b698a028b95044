package changelog

// sampleChangelog is a document with pending Added/Changed entries and a
// single prior release.
const sampleChangelog = `# Changelog

All notable changes to this project will be documented in this file.

## [Unreleased]

### Added

- add new user feature

### Changed

- change rendering engine

### Deprecated

### Removed

### Fixed

### Security

## [V1.0.1] - 2024-02-14

### Added

- initial release
`

// sampleChangelogPromoted is sampleChangelog released as 1.0.2 on 2025-02-19.
const sampleChangelogPromoted = `# Changelog

All notable changes to this project will be documented in this file.

## [Unreleased]

### Added

### Changed

### Deprecated

### Removed

### Fixed

### Security

## [V1.0.2] - 2025-02-19

### Added

- add new user feature

### Changed

- change rendering engine

## [V1.0.1] - 2024-02-14

### Added

- initial release
`

// emptyResetSection is the pending section written after every release.
const emptyResetSection = `## [Unreleased]

### Added

### Changed

### Deprecated

### Removed

### Fixed

### Security
`
