package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View releases performed by chlog",
	Long: `View a log of the releases chlog has written, newest first, with the
release tag, date, previous release, entry count and changelog file.

The log lives in state_dir and keeps at most max_history_entries entries.`,
	Example: `  chlog history
  chlog history -n 5
  chlog history --clear`,
	GroupID: GroupConfiguration,
	Args:    exactArgs(0),
	RunE:    runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 0, "Limit to last N entries (most recent)")
	historyCmd.Flags().Bool("clear", false, "Clear all history")
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	clearFlag, _ := cmd.Flags().GetBool("clear")
	limit, _ := cmd.Flags().GetInt("limit")

	if limit < 0 {
		return clierrors.NewArgumentError(fmt.Sprintf("limit must be positive, got %d", limit))
	}

	stateDir := s.Config.StateDir
	if clearFlag {
		if err := history.ClearHistory(stateDir); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	}

	histFile, err := history.LoadHistory(stateDir)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	entries := histFile.Latest(limit)
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history available.")
		return nil
	}

	displayEntries(cmd, entries)
	return nil
}

// displayEntries formats and displays history entries.
func displayEntries(cmd *cobra.Command, entries []history.HistoryEntry) {
	out := cmd.OutOrStdout()

	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for _, entry := range entries {
		timestamp := entry.Timestamp.Format("2006-01-02 15:04:05")

		previous := "-"
		if entry.Previous != "" {
			previous = entry.Previous
		}

		line := fmt.Sprintf("%s  %-10s %s  %s %-10s %s entries  %s",
			dim(timestamp),
			green(entry.Tag),
			entry.Date,
			dim("after"),
			previous,
			strconv.Itoa(entry.Entries),
			cyan(entry.File),
		)
		if entry.GitTagged {
			line += "  " + dim("[tagged]")
		}
		fmt.Fprintln(out, line)
	}
}
