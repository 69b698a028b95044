package config

import "sort"

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeInt
	TypeString
	TypeEnum
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ConfigKeySchema defines a known configuration key with its expected type.
type ConfigKeySchema struct {
	Path          string          // Key name as written in config.yml
	Type          ConfigValueType // Expected value type
	AllowedValues []string        // Valid values for enum types (empty for non-enums)
	Description   string          // Human-readable description for help text
}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	"changelog_file": {
		Path:        "changelog_file",
		Type:        TypeString,
		Description: "Changelog file to operate on",
	},
	"version_source": {
		Path:          "version_source",
		Type:          TypeEnum,
		AllowedValues: []string{SourcePackage, SourceFile, SourceGit, SourceNone},
		Description:   "Where 'release' reads the version when none is given",
	},
	"version_file": {
		Path:        "version_file",
		Type:        TypeString,
		Description: "File read by the package and file version sources",
	},
	"version_prefix": {
		Path:        "version_prefix",
		Type:        TypeString,
		Description: "Single letter written before versions in release headers",
	},
	"state_dir": {
		Path:        "state_dir",
		Type:        TypeString,
		Description: "Directory for the release history file",
	},
	"max_history_entries": {
		Path:        "max_history_entries",
		Type:        TypeInt,
		Description: "Maximum number of release history entries to retain",
	},
	"create_tag": {
		Path:        "create_tag",
		Type:        TypeBool,
		Description: "Create a lightweight git tag for each release",
	},
	"allow_empty": {
		Path:        "allow_empty",
		Type:        TypeBool,
		Description: "Allow releasing an empty [Unreleased] section",
	},
	"log_level": {
		Path:          "log_level",
		Type:          TypeEnum,
		AllowedValues: []string{"debug", "info", "warn", "error"},
		Description:   "Diagnostic log level",
	},
}

// SortedKeys returns the known key names in alphabetical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(KnownKeys))
	for k := range KnownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ErrUnknownKey is returned when trying to access an unknown configuration key.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown configuration key: " + e.Key
}

// GetKeySchema returns the schema for a known configuration key.
// Returns ErrUnknownKey if the key is not in the registry.
func GetKeySchema(path string) (ConfigKeySchema, error) {
	schema, ok := KnownKeys[path]
	if !ok {
		return ConfigKeySchema{}, ErrUnknownKey{Key: path}
	}
	return schema, nil
}
