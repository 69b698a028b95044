package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/logging"
	"github.com/ariel-frischer/chlog/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the changelog structure",
	Long: `Check the changelog for problems that would break a release:

  - missing or duplicated [Unreleased] section
  - unknown category headers in [Unreleased]
  - malformed release headers
  - releases out of descending version order

Exits with status 1 when issues are found.`,
	Example: `  chlog check
  chlog check --file docs/CHANGELOG.md`,
	GroupID: GroupInspect,
	Args:    exactArgs(0),
	RunE:    runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	doc, err := readChangelog(s.ChangelogPath)
	if err != nil {
		return err
	}

	issues := changelog.Check(doc)
	logging.FromContext(cmd.Context()).WithField("issues", len(issues)).Debug("check finished")
	if len(issues) == 0 {
		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s is well formed", s.ChangelogPath))
		return nil
	}

	for _, issue := range issues {
		output.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("%s: %s", s.ChangelogPath, issue))
	}
	fmt.Fprintln(cmd.ErrOrStderr())
	return clierrors.CheckFailed(s.ChangelogPath, len(issues))
}
