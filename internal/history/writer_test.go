package history

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

func TestHistoryWriter_LogEntry(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		setupStore  func(t *testing.T, stateDir string)
		maxEntries  int
		wantEntries int
	}{
		"log entry to empty history": {
			setupStore:  func(t *testing.T, stateDir string) {},
			maxEntries:  100,
			wantEntries: 1,
		},
		"log entry to existing history": {
			setupStore: func(t *testing.T, stateDir string) {
				history := &HistoryFile{
					Entries: []HistoryEntry{
						{ID: "existing", Timestamp: time.Now(), Tag: "V1.0.0", Version: "1.0.0"},
					},
				}
				require.NoError(t, SaveHistory(stateDir, history))
			},
			maxEntries:  100,
			wantEntries: 2,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stateDir := t.TempDir()
			tc.setupStore(t, stateDir)

			writer := NewWriter(stateDir, tc.maxEntries)
			writer.LogEntry(HistoryEntry{Tag: "V1.0.1", Version: "1.0.1", Date: "2025-02-19"})

			history, err := LoadHistory(stateDir)
			require.NoError(t, err)
			require.Len(t, history.Entries, tc.wantEntries)

			last := history.Entries[len(history.Entries)-1]
			assert.NotEmpty(t, last.ID, "ID is assigned")
			assert.False(t, last.Timestamp.IsZero(), "timestamp is assigned")
		})
	}
}

func TestHistoryWriter_Pruning(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		existingEntries int
		maxEntries      int
		wantEntries     int
		wantOldest      string
	}{
		"no pruning needed": {
			existingEntries: 5,
			maxEntries:      10,
			wantEntries:     6,
			wantOldest:      "1.0.0",
		},
		"prune oldest when max exceeded": {
			existingEntries: 10,
			maxEntries:      10,
			wantEntries:     10,
			wantOldest:      "1.0.1",
		},
		"prune multiple when well over max": {
			existingEntries: 12,
			maxEntries:      10,
			wantEntries:     10,
			wantOldest:      "1.0.3",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stateDir := t.TempDir()

			entries := make([]HistoryEntry, tc.existingEntries)
			for i := 0; i < tc.existingEntries; i++ {
				entries[i] = HistoryEntry{
					ID:        fmt.Sprintf("id-%d", i),
					Timestamp: time.Now().Add(time.Duration(i) * time.Minute),
					Version:   fmt.Sprintf("1.0.%d", i),
				}
			}
			require.NoError(t, SaveHistory(stateDir, &HistoryFile{Entries: entries}))

			writer := NewWriter(stateDir, tc.maxEntries)
			writer.LogEntry(HistoryEntry{Version: "2.0.0"})

			loaded, err := LoadHistory(stateDir)
			require.NoError(t, err)
			assert.Len(t, loaded.Entries, tc.wantEntries)
			assert.Equal(t, tc.wantOldest, loaded.Entries[0].Version)
			assert.Equal(t, "2.0.0", loaded.Entries[len(loaded.Entries)-1].Version)
		})
	}
}

func TestHistoryWriter_LogRelease(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()
	writer := NewWriter(stateDir, 100)

	release, err := changelog.Plan(
		"# Changelog\n\n## [Unreleased]\n\n### Added\n\n- one\n- two\n\n## [V1.0.1] - 2025-01-01\n",
		"1.0.2",
		changelog.Options{Date: "2025-02-19"},
	)
	require.NoError(t, err)

	writer.LogRelease(release, "CHANGELOG.md", true)

	history, err := LoadHistory(stateDir)
	require.NoError(t, err)
	require.Len(t, history.Entries, 1)

	entry := history.Entries[0]
	assert.Equal(t, "V1.0.2", entry.Tag)
	assert.Equal(t, "1.0.2", entry.Version)
	assert.Equal(t, "2025-02-19", entry.Date)
	assert.Equal(t, "V1.0.1", entry.Previous)
	assert.Equal(t, "CHANGELOG.md", entry.File)
	assert.Equal(t, 2, entry.Entries)
	assert.True(t, entry.GitTagged)
}

func TestHistoryWriter_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()
	writer := NewWriter(stateDir, 100)

	var wg sync.WaitGroup
	numWriters := 10
	entriesPerWriter := 5

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(writerID int) {
			defer wg.Done()
			for j := 0; j < entriesPerWriter; j++ {
				writer.LogEntry(HistoryEntry{Version: fmt.Sprintf("%d.%d.0", writerID, j)})
			}
		}(i)
	}

	wg.Wait()

	history, err := LoadHistory(stateDir)
	require.NoError(t, err)
	assert.Len(t, history.Entries, numWriters*entriesPerWriter)
}

func TestHistoryWriter_NonFatalErrors(t *testing.T) {
	t.Parallel()

	// A regular file where the state directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "state")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	var warnings bytes.Buffer
	writer := NewWriter(filepath.Join(blocker, "nested"), 100)
	writer.Warnings = &warnings

	writer.LogEntry(HistoryEntry{Version: "1.0.0"})

	assert.Contains(t, warnings.String(), "failed to log history")
}

func TestNewWriter(t *testing.T) {
	t.Parallel()

	writer := NewWriter("/test/path", 100)

	assert.Equal(t, "/test/path", writer.StateDir)
	assert.Equal(t, 100, writer.MaxEntries)
	assert.Equal(t, os.Stderr, writer.Warnings)
}

func TestHistoryWriter_ZeroMaxEntries(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()

	// Zero max entries means unlimited
	writer := NewWriter(stateDir, 0)

	for i := 0; i < 5; i++ {
		writer.LogEntry(HistoryEntry{Version: fmt.Sprintf("1.%d.0", i)})
	}

	history, err := LoadHistory(stateDir)
	require.NoError(t, err)
	assert.Len(t, history.Entries, 5)
}
