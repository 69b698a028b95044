// Package cli implements the chlog command tree.
package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
)

// Command groups shown in help output.
const (
	GroupRelease       = "release"
	GroupInspect       = "inspect"
	GroupConfiguration = "configuration"
)

var rootCmd = &cobra.Command{
	Use:   "chlog",
	Short: "Promote unreleased changelog entries into dated releases",
	Long: `chlog maintains a Keep a Changelog style CHANGELOG.md.

It moves the entries collected under "## [Unreleased]" into a new dated
release section, checks that the new version is higher than the latest
release, and resets [Unreleased] to empty category headers.

Source: https://github.com/ariel-frischer/chlog`,
	Example: `  # Release the pending entries as 1.2.0
  chlog release 1.2.0

  # Bump the latest release and preview the change
  chlog release --bump minor --dry-run

  # Show what is waiting to be released
  chlog pending

  # Print release notes for CI
  chlog extract 1.2.0`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRelease, Title: "Release Commands:"},
		&cobra.Group{ID: GroupInspect, Title: "Inspection Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration Commands:"},
	)

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to project config file (default: .chlog/config.yml)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Changelog file (overrides changelog_file)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(),
			fmt.Sprintf("Run 'chlog %s --help' for the list of flags", cmd.Name()))
	})
}

// Execute runs the root command. On failure the error has already been printed
// to stderr and the returned error is an *ExitError carrying the exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	return reportError(rootCmd.ErrOrStderr(), err)
}

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code int
}

// NewExitError returns an ExitError for code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// reportError prints err in the structured CLI format and returns the
// ExitError for it. Errors that are already an ExitError were reported by the
// command itself and pass through unchanged.
func reportError(w io.Writer, err error) *ExitError {
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr
	}

	cliErr := toCLIError(err)
	clierrors.FprintError(w, cliErr)
	return NewExitError(exitCodeFor(cliErr))
}

// toCLIError maps any error to a CLIError, attaching remediation for the
// core changelog errors.
func toCLIError(err error) *clierrors.CLIError {
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		return cliErr
	}

	var conflict *changelog.VersionConflictError
	if stderrors.As(err, &conflict) {
		return clierrors.VersionConflict(conflict)
	}
	if changelog.IsStructureError(err) {
		return clierrors.Wrap(err, clierrors.Validation, "Run 'chlog check' for details")
	}
	if strings.HasPrefix(err.Error(), "unknown command") {
		return clierrors.Wrap(err, clierrors.Argument, "Run 'chlog --help' for the list of commands")
	}
	return clierrors.Wrap(err, clierrors.Runtime)
}

// exitCodeFor maps an error category to the process exit code.
func exitCodeFor(err *clierrors.CLIError) int {
	switch err.Category {
	case clierrors.Argument, clierrors.Configuration:
		return ExitInvalidArguments
	case clierrors.Prerequisite:
		return ExitMissingDependencies
	default:
		return ExitValidationFailed
	}
}
