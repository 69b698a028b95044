package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

var extractCmd = &cobra.Command{
	Use:   "extract <version>",
	Short: "Extract release notes for a specific version",
	Long: `Extract release notes for a specific version in markdown format.

This command outputs the body of a release section without its header. The
output is written to stdout, which makes it suitable for CI/CD pipelines that
create GitHub releases from the changelog.

The version prefix is optional, and "unreleased" prints the pending entries.`,
	Example: `  chlog extract V1.0.1      # Extract notes for version 1.0.1
  chlog extract 1.0.1       # Same (prefix optional)
  chlog extract unreleased  # Extract unreleased changes`,
	GroupID: GroupInspect,
	Args:    exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, version string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	doc, err := readChangelog(s.ChangelogPath)
	if err != nil {
		return err
	}

	notes, err := changelog.Extract(doc, version)
	if err != nil {
		var notFound *changelog.VersionNotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Version %q not found.\n\n", version)
			fmt.Fprintf(cmd.ErrOrStderr(), "Available versions:\n")
			for _, v := range notFound.AvailableVersions {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", v)
			}
			return NewExitError(ExitInvalidArguments)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), notes)
	return nil
}
