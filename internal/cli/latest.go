package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the latest released version",
	Long: `Print the version of the most recent release header.

The bare version is printed by default; use --prefix to print it as written
in the header (e.g. V1.0.1).`,
	Example: `  chlog latest            # 1.0.1
  chlog latest --prefix   # V1.0.1`,
	GroupID: GroupInspect,
	Args:    exactArgs(0),
	RunE:    runLatest,
}

func init() {
	rootCmd.AddCommand(latestCmd)
	latestCmd.Flags().Bool("prefix", false, "Include the version prefix")
}

func runLatest(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	withPrefix, _ := cmd.Flags().GetBool("prefix")

	doc, err := readChangelog(s.ChangelogPath)
	if err != nil {
		return err
	}

	latest, ok := changelog.LatestRelease(doc)
	if !ok {
		return clierrors.NewValidationError(
			fmt.Sprintf("%s has no releases yet", s.ChangelogPath),
			"Create the first release with: chlog release 0.1.0",
		)
	}

	if withPrefix {
		fmt.Fprintln(cmd.OutOrStdout(), latest.Tag())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), latest.Version)
	}
	return nil
}
