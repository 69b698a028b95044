package cli

// Exit codes for the chlog CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitValidationFailed indicates the changelog or the requested release is invalid
	// (version conflict, missing [Unreleased] section, lint issues, empty release)
	ExitValidationFailed = 1

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = 3

	// ExitMissingDependencies indicates a required file or version source is missing
	ExitMissingDependencies = 4
)
