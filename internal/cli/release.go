package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/git"
	"github.com/ariel-frischer/chlog/internal/history"
	"github.com/ariel-frischer/chlog/internal/logging"
	"github.com/ariel-frischer/chlog/internal/output"
	"github.com/ariel-frischer/chlog/internal/project"
)

// dryRunContext is the number of unchanged lines shown around each change.
const dryRunContext = 2

var releaseCmd = &cobra.Command{
	Use:   "release [version]",
	Short: "Promote [Unreleased] entries into a new dated release",
	Long: `Promote the entries under "## [Unreleased]" into a new release section.

The new section is inserted directly below a freshly reset [Unreleased]
section holding empty category headers. Only categories with content are
written to the release.

The version comes from, in order:
  1. the version argument
  2. --bump, applied to the latest release in the changelog
  3. the configured version_source (package.json, VERSION file or git tags)

The release is refused when the version is not higher than the latest
release, or when the changelog has no [Unreleased] section.`,
	Example: `  # Release 1.2.0 dated today
  chlog release 1.2.0

  # Release with an explicit date and no version prefix
  chlog release 1.2.0 --date 2025-02-19 --prefix ""

  # Bump the patch level of the latest release
  chlog release --bump patch

  # Preview the rewrite without touching the file
  chlog release 1.2.0 --dry-run

  # Release and create a git tag at HEAD
  chlog release 1.2.0 --tag`,
	GroupID: GroupRelease,
	Args:    maxArgs(1),
	RunE:    runRelease,
}

func init() {
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().String("date", "", "Release date as YYYY-MM-DD (default: today)")
	releaseCmd.Flags().String("prefix", "", "Version prefix for the header, a single letter or empty (default: version_prefix)")
	releaseCmd.Flags().String("bump", "", "Bump the latest release: major, minor or patch")
	releaseCmd.Flags().Bool("dry-run", false, "Show the changes without writing the file")
	releaseCmd.Flags().Bool("tag", false, "Create a lightweight git tag <prefix><version> at HEAD")
	releaseCmd.Flags().Bool("allow-empty", false, "Release even when [Unreleased] has no entries")
}

// releaseRequest holds the validated release flags.
type releaseRequest struct {
	Version    string
	Bump       string
	Options    changelog.Options
	DryRun     bool
	CreateTag  bool
	AllowEmpty bool
}

func runRelease(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	req, err := parseReleaseFlags(cmd, args, s)
	if err != nil {
		return err
	}

	doc, err := readChangelog(s.ChangelogPath)
	if err != nil {
		return err
	}

	logger := logging.FromContext(cmd.Context())
	version, err := resolveReleaseVersion(logger, doc, req, s)
	if err != nil {
		return err
	}

	release, err := changelog.Plan(doc, version, req.Options)
	if err != nil {
		return planError(s.ChangelogPath, err)
	}

	if release.Entries.IsEmpty() && !req.AllowEmpty {
		return clierrors.EmptyRelease(release.Tag())
	}

	out := cmd.OutOrStdout()
	if req.DryRun {
		output.PrintDryRunHeader(out, s.ChangelogPath)
		err := changelog.FormatRelease(release, out, changelog.FormatOptions{
			Plain:    color.NoColor,
			MaxWidth: output.GetTerminalWidth(),
		})
		if err != nil {
			return fmt.Errorf("formatting release: %w", err)
		}
		fmt.Fprintln(out)
		output.WriteLineDiff(out, doc, release.Document, dryRunContext)
		added, removed := output.DiffStats(output.LineDiff(doc, release.Document))
		fmt.Fprintf(out, "\n%d line(s) added, %d removed\n", added, removed)
		return nil
	}

	repoDir := filepath.Dir(s.ChangelogPath)
	if req.CreateTag {
		if err := checkTagAvailable(repoDir, release.Tag()); err != nil {
			return err
		}
	}

	if err := writeChangelog(s.ChangelogPath, release.Document); err != nil {
		return err
	}
	logger.WithField("tag", release.Tag()).Info("changelog rewritten")

	if req.CreateTag {
		if err := git.CreateTag(repoDir, release.Tag()); err != nil {
			return fmt.Errorf("changelog was written but tagging failed: %w", err)
		}
	}

	writer := history.NewWriter(s.Config.StateDir, s.Config.MaxHistoryEntries)
	writer.Warnings = cmd.ErrOrStderr()
	writer.LogRelease(release, s.ChangelogPath, req.CreateTag)

	printReleaseSummary(cmd, release, req.CreateTag)
	return nil
}

// parseReleaseFlags validates the flags and merges them with configuration.
// Flags win over config values only when they were set explicitly.
func parseReleaseFlags(cmd *cobra.Command, args []string, s *settings) (*releaseRequest, error) {
	flags := cmd.Flags()
	date, _ := flags.GetString("date")
	bump, _ := flags.GetString("bump")
	dryRun, _ := flags.GetBool("dry-run")

	req := &releaseRequest{
		Bump:       bump,
		DryRun:     dryRun,
		CreateTag:  s.Config.CreateTag,
		AllowEmpty: s.Config.AllowEmpty,
	}
	if len(args) == 1 {
		req.Version = args[0]
	}
	if flags.Changed("tag") {
		req.CreateTag, _ = flags.GetBool("tag")
	}
	if flags.Changed("allow-empty") {
		req.AllowEmpty, _ = flags.GetBool("allow-empty")
	}

	if req.Version != "" && bump != "" {
		return nil, clierrors.InvalidFlagCombination("version argument with --bump",
			"Pass either an explicit version or --bump, not both")
	}
	if bump != "" && !slices.Contains([]string{project.BumpMajor, project.BumpMinor, project.BumpPatch}, bump) {
		return nil, clierrors.InvalidBump(bump)
	}
	if date != "" && !changelog.IsValidDate(date) {
		return nil, clierrors.InvalidDate(date)
	}

	prefix := s.Config.VersionPrefix
	if flags.Changed("prefix") {
		prefix, _ = flags.GetString("prefix")
	}
	if !validPrefix(prefix) {
		return nil, clierrors.NewArgumentError(
			fmt.Sprintf("invalid version prefix %q", prefix),
			"The prefix is a single letter such as V, or empty for bare versions",
		)
	}

	req.Options = changelog.Options{
		Date:     date,
		Prefix:   prefix,
		NoPrefix: prefix == "",
	}
	return req, nil
}

// resolveReleaseVersion picks the version from the argument, --bump or the
// configured version source, in that order.
func resolveReleaseVersion(logger *logrus.Logger, doc string, req *releaseRequest, s *settings) (string, error) {
	if req.Version != "" {
		version, err := project.Normalize(req.Version)
		if err != nil {
			return "", clierrors.InvalidVersion(req.Version)
		}
		return version, nil
	}

	if req.Bump != "" {
		latest := ""
		if header, ok := changelog.LatestRelease(doc); ok {
			latest = header.Version
		}
		version, err := project.Bump(latest, req.Bump)
		if err != nil {
			return "", clierrors.InvalidBump(req.Bump)
		}
		logger.WithField("from", latest).Debugf("bumped %s to %s", req.Bump, version)
		return version, nil
	}

	resolver := project.NewResolver(filepath.Dir(s.ChangelogPath), s.Config)
	version, err := resolver.Resolve()
	if err != nil {
		if errors.Is(err, project.ErrNoVersionSource) {
			return "", clierrors.VersionRequired()
		}
		return "", clierrors.VersionSourceFailed(resolver.Describe(), err)
	}
	logger.WithField("source", resolver.Describe()).Debugf("resolved version %s", version)
	return version, nil
}

// planError converts core planning failures into CLI errors.
func planError(path string, err error) error {
	var conflict *changelog.VersionConflictError
	if errors.As(err, &conflict) {
		return clierrors.VersionConflict(conflict)
	}
	if changelog.IsStructureError(err) {
		return clierrors.MissingUnreleasedSection(path, err)
	}
	return fmt.Errorf("planning release: %w", err)
}

// checkTagAvailable fails before anything is written when the tag cannot be created.
func checkTagAvailable(dir, tag string) error {
	root, err := git.GetRepositoryRoot(dir)
	if err != nil {
		return clierrors.GitNotRepository()
	}
	tags, err := git.ListTags(root)
	if err != nil {
		return fmt.Errorf("listing tags: %w", err)
	}
	if slices.Contains(tags, tag) {
		return clierrors.NewValidationError(
			fmt.Sprintf("git tag %s already exists", tag),
			"Release a higher version",
			"Or drop --tag to only update the changelog",
		)
	}
	return nil
}

func printReleaseSummary(cmd *cobra.Command, release *changelog.Release, tagged bool) {
	out := cmd.OutOrStdout()
	output.PrintSuccess(out, fmt.Sprintf("Released %s (%s)", release.Tag(), release.Date))
	if release.Previous != nil {
		output.PrintDetail(out, "previous", release.Previous.Tag())
	}
	output.PrintDetail(out, "entries", strconv.Itoa(release.Entries.Count()))
	if tagged {
		output.PrintDetail(out, "git tag", release.Tag())
	}
}

func validPrefix(prefix string) bool {
	if prefix == "" {
		return true
	}
	if len(prefix) != 1 {
		return false
	}
	c := prefix[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
