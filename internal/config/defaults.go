package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# chlog Configuration
# See 'chlog config keys' for all options

# Changelog settings
changelog_file: CHANGELOG.md          # Changelog to release from
version_prefix: V                     # Prefix in release headers ([V1.2.0]); empty for bare versions
allow_empty: false                    # Allow releasing an empty [Unreleased] section

# Version source for 'chlog release' without a version argument
version_source: package               # package | file | git | none
version_file: ""                      # Default: package.json (package) or VERSION (file)

# Git settings
create_tag: false                     # Create a lightweight tag <prefix><version> after release

# History settings
state_dir: ~/.chlog/state             # Directory for the release history file
max_history_entries: 100              # Max release history entries to retain

# Logging
log_level: warn                       # debug | info | warn | error
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog_file": "CHANGELOG.md",
		// version_source: "package" reads the version key of package.json, which is
		// where most projects using this changelog layout declare their version.
		"version_source": SourcePackage,
		"version_file":   "",
		"version_prefix": "V",
		"state_dir":      "~/.chlog/state",
		// max_history_entries: Oldest entries are pruned when this limit is exceeded.
		"max_history_entries": 100,
		"create_tag":          false,
		"allow_empty":         false,
		"log_level":           "warn",
	}
}
