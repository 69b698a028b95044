package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/config"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/git"
	"github.com/ariel-frischer/chlog/internal/logging"
)

// settings is the resolved runtime state shared by the commands. The logger
// travels on the command context; read it with logging.FromContext.
type settings struct {
	Config        *config.Configuration
	ChangelogPath string
}

// loadSettings loads configuration, applies the global flags on top of it,
// and wires the logger into the command context and the git package.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	filePath, _ := cmd.Flags().GetString("file")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(configPath)
	if err != nil {
		path := configPath
		if path == "" {
			path = config.ProjectConfigPath()
		}
		return nil, clierrors.ConfigParseError(path, err)
	}

	level := cfg.LogLevel
	if debug {
		level = logrus.DebugLevel.String()
	}
	logger := logging.New(level, cmd.ErrOrStderr())
	git.SetDebugLogger(logger.Debugf)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	path := cfg.ChangelogFile
	if filePath != "" {
		path = filePath
	}
	logger.WithFields(logrus.Fields{
		"changelog":      path,
		"version_source": cfg.VersionSource,
	}).Debug("settings loaded")

	return &settings{Config: cfg, ChangelogPath: path}, nil
}

// readChangelog reads the changelog at path.
func readChangelog(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", clierrors.ChangelogNotFound(path)
		}
		return "", fmt.Errorf("reading changelog: %w", err)
	}
	return string(data), nil
}

// writeChangelog replaces the changelog at path, keeping its file mode.
func writeChangelog(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return clierrors.FileNotWritable(path, err)
	}
	return nil
}
