package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one commit in a temp directory.
func initRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "CHANGELOG.md"), []byte("# Changelog\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("CHANGELOG.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@test.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestIsGitRepository(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		setup func(t *testing.T) string
		want  bool
	}{
		"repository root": {
			setup: initRepo,
			want:  true,
		},
		"nested directory": {
			setup: func(t *testing.T) string {
				dir := filepath.Join(initRepo(t), "docs", "notes")
				require.NoError(t, os.MkdirAll(dir, 0o755))
				return dir
			},
			want: true,
		},
		"plain directory": {
			setup: func(t *testing.T) string { return t.TempDir() },
			want:  false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsGitRepository(tt.setup(t)))
		})
	}
}

func TestGetRepositoryRoot(t *testing.T) {
	t.Parallel()

	root := initRepo(t)
	nested := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := GetRepositoryRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	_, err = GetRepositoryRoot(t.TempDir())
	assert.Error(t, err)
}

func TestCreateTagAndListTags(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)

	tags, err := ListTags(dir)
	require.NoError(t, err)
	assert.Empty(t, tags)

	require.NoError(t, CreateTag(dir, "V1.0.1"))
	require.NoError(t, CreateTag(dir, "V1.0.0"))

	tags, err = ListTags(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"V1.0.0", "V1.0.1"}, tags)

	err = CreateTag(dir, "V1.0.1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTagExists))
}

func TestCreateTag_NotGitRepo(t *testing.T) {
	t.Parallel()

	err := CreateTag(t.TempDir(), "V1.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening repository")
}

func TestSetDebugLogger(t *testing.T) {
	var lines []string
	SetDebugLogger(func(format string, args ...any) {
		lines = append(lines, format)
	})
	t.Cleanup(func() { SetDebugLogger(nil) })

	IsGitRepository(t.TempDir())
	assert.NotEmpty(t, lines)
}
