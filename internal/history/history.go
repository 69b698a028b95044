// Package history keeps a YAML log of the releases chlog has performed, stored
// in the configured state directory.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// HistoryFileName is the file inside the state directory holding the log.
const HistoryFileName = "release-history.yaml"

// HistoryFile is the on-disk layout of the release log.
type HistoryFile struct {
	Entries []HistoryEntry `yaml:"entries"`
}

// HistoryEntry records one promoted release.
type HistoryEntry struct {
	ID        string    `yaml:"id"`
	Timestamp time.Time `yaml:"timestamp"`
	// Tag is the header label written to the changelog, e.g. "V1.0.2".
	Tag     string `yaml:"tag"`
	Version string `yaml:"version"`
	Date    string `yaml:"date"`
	// Previous is the tag of the release that was latest before this one.
	Previous string `yaml:"previous,omitempty"`
	File     string `yaml:"file"`
	// Entries is the number of bullet lines promoted.
	Entries   int  `yaml:"entries"`
	GitTagged bool `yaml:"git_tagged,omitempty"`
}

// HistoryPath returns the path of the history file in stateDir.
func HistoryPath(stateDir string) string {
	return filepath.Join(stateDir, HistoryFileName)
}

// LoadHistory reads the release log from stateDir.
// A missing file yields an empty log.
func LoadHistory(stateDir string) (*HistoryFile, error) {
	data, err := os.ReadFile(HistoryPath(stateDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &HistoryFile{}, nil
		}
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var history HistoryFile
	if err := yaml.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("parsing history file: %w", err)
	}
	return &history, nil
}

// SaveHistory writes the release log to stateDir, creating the directory if
// needed. The file is written to a temp file and renamed into place.
func SaveHistory(stateDir string, history *HistoryFile) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := yaml.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	path := HistoryPath(stateDir)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing history file: %w", err)
	}
	return nil
}

// ClearHistory removes the release log. A missing file is not an error.
func ClearHistory(stateDir string) error {
	if err := os.Remove(HistoryPath(stateDir)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing history file: %w", err)
	}
	return nil
}

// Latest returns the last n entries, newest first. n <= 0 returns all.
func (h *HistoryFile) Latest(n int) []HistoryEntry {
	count := len(h.Entries)
	if n > 0 && n < count {
		count = n
	}
	out := make([]HistoryEntry, 0, count)
	for i := len(h.Entries) - 1; i >= 0 && len(out) < count; i-- {
		out = append(out, h.Entries[i])
	}
	return out
}
