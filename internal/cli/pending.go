package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/output"
)

var pendingCmd = &cobra.Command{
	Use:     "pending",
	Aliases: []string{"unreleased"},
	Short:   "Show entries waiting in [Unreleased]",
	Long: `Show the entries collected under "## [Unreleased]", grouped by category.

Empty categories are skipped. Use --plain for uncolored markdown-like output.`,
	Example: `  chlog pending
  chlog unreleased --plain`,
	GroupID: GroupInspect,
	Args:    exactArgs(0),
	RunE:    runPending,
}

func init() {
	rootCmd.AddCommand(pendingCmd)
	pendingCmd.Flags().Bool("plain", false, "Plain text output (no colors/icons)")
}

func runPending(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	plain, _ := cmd.Flags().GetBool("plain")

	doc, err := readChangelog(s.ChangelogPath)
	if err != nil {
		return err
	}

	pending, err := changelog.ExtractPending(doc)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Validation,
			"Add a \""+changelog.UnreleasedMarker+"\" section above the latest release")
	}

	out := cmd.OutOrStdout()
	if pending.Entries.IsEmpty() {
		fmt.Fprintln(out, "No unreleased entries.")
		return nil
	}

	title := "Unreleased"
	if latest, ok := changelog.LatestRelease(doc); ok {
		title += " (since " + latest.Tag() + ")"
	}
	if err := changelog.FormatEntries(title, &pending.Entries, out, changelog.FormatOptions{
		Plain:    plain,
		MaxWidth: output.GetTerminalWidth(),
	}); err != nil {
		return fmt.Errorf("formatting entries: %w", err)
	}
	fmt.Fprintf(out, "\n%d entr%s pending\n", pending.Entries.Count(), plural(pending.Entries.Count(), "y", "ies"))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
