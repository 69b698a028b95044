package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ariel-frischer/chlog/internal/testutil"
)

// result is the outcome of one CLI invocation.
type result struct {
	Stdout string
	Stderr string
	Code   int
}

// newTestProject creates a project directory, makes it the working directory,
// and isolates user config and history state from the real home directory.
func newTestProject(t *testing.T) *testutil.Project {
	t.Helper()

	p := testutil.NewProject(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("CHLOG_STATE_DIR", filepath.Join(home, "state"))
	t.Chdir(p.Dir)
	return p
}

// run executes the root command with args and returns captured output and
// the exit code Execute would produce.
func run(t *testing.T, args ...string) result {
	t.Helper()

	color.NoColor = true
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	code := ExitSuccess
	if err := Execute(); err != nil {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("Execute returned %T, want *ExitError: %v", err, err)
		}
		code = exitErr.Code
	}

	return result{Stdout: stdout.String(), Stderr: stderr.String(), Code: code}
}

// resetFlags restores every flag in the command tree to its default so runs
// don't leak flag values into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
