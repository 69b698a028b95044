// Package config provides hierarchical configuration management for chlog using koanf.
// Configuration is loaded with priority: environment variables > project config (.chlog/config.yml)
// > user config (~/.config/chlog/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "CHLOG_"

// Version sources understood by the release command.
const (
	SourcePackage = "package"
	SourceFile    = "file"
	SourceGit     = "git"
	SourceNone    = "none"
)

// Configuration represents the chlog CLI tool configuration
type Configuration struct {
	// ChangelogFile is the changelog to operate on, relative to the working directory.
	ChangelogFile string `koanf:"changelog_file" yaml:"changelog_file" validate:"required"`

	// VersionSource selects where 'chlog release' reads the version when none is given:
	// "package" (package.json), "file" (VERSION), "git" (highest semver tag) or "none".
	VersionSource string `koanf:"version_source" yaml:"version_source" validate:"oneof=package file git none"`

	// VersionFile overrides the file read by the package and file sources.
	// Empty means package.json for "package" and VERSION for "file".
	VersionFile string `koanf:"version_file" yaml:"version_file"`

	// VersionPrefix is written before the version in release headers (e.g. "V" gives [V1.2.0]).
	// Empty writes bare versions.
	VersionPrefix string `koanf:"version_prefix" yaml:"version_prefix" validate:"omitempty,alpha,max=1"`

	StateDir          string `koanf:"state_dir" yaml:"state_dir"`
	MaxHistoryEntries int    `koanf:"max_history_entries" yaml:"max_history_entries" validate:"min=0"`

	// CreateTag creates a lightweight git tag for every release.
	CreateTag bool `koanf:"create_tag" yaml:"create_tag"`
	// AllowEmpty permits releasing when the pending section has no entries.
	AllowEmpty bool `koanf:"allow_empty" yaml:"allow_empty"`

	LogLevel string `koanf:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .chlog/config.yml)
	ProjectConfigPath string
	// UserConfigPath overrides the user config path (default: ~/.config/chlog/config.yml)
	UserConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k, opts.UserConfigPath); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config if present.
func loadUserConfig(k *koanf.Koanf, customPath string) error {
	path := customPath
	if path == "" {
		path, _ = UserConfigPath()
	}
	if !fileExists(path) {
		return nil
	}
	if err := loadYAMLConfig(k, path, "user"); err != nil {
		return fmt.Errorf("loading user YAML config: %w", err)
	}
	return nil
}

// loadProjectConfig loads the project-level YAML config. An explicit path
// that doesn't exist is an error; the default path is optional.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := ProjectConfigPath()
	if customPath != "" {
		if !fileExists(customPath) {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		path = customPath
	}
	if !fileExists(path) {
		return nil
	}
	if err := loadYAMLConfig(k, path, "project"); err != nil {
		return fmt.Errorf("loading project YAML config: %w", err)
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals, validates, and applies final transformations
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.StateDir = expandHomePath(cfg.StateDir)

	return &cfg, nil
}

// ResolvedVersionFile returns the file read by the configured version source.
func (c *Configuration) ResolvedVersionFile() string {
	if c.VersionFile != "" {
		return c.VersionFile
	}
	switch c.VersionSource {
	case SourcePackage:
		return "package.json"
	case SourceFile:
		return "VERSION"
	default:
		return ""
	}
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: CHLOG_MAX_HISTORY_ENTRIES -> max_history_entries
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
