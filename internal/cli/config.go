package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/chlog/internal/config"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chlog configuration",
	Long: `Manage chlog configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (CHLOG_*)
  2. Project config (.chlog/config.yml, or --config)
  3. User config (~/.config/chlog/config.yml)
  4. Built-in defaults`,
	Example: `  # Show the effective configuration
  chlog config show

  # Create a project config with commented defaults
  chlog config init

  # List every configuration key
  chlog config keys`,
	GroupID: GroupConfiguration,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration as YAML",
	Args:  exactArgs(0),
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with commented defaults",
	Long: `Create a config file with every option and its default value.

By default the project config (.chlog/config.yml) is created. Use --user to
create the user config instead. Existing files are left unchanged unless
--force is given.`,
	Args: exactArgs(0),
	RunE: runConfigInit,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys [key...]",
	Short: "List configuration keys",
	Long: `List configuration keys with their type, description and default.

With no arguments every key is listed. Naming keys limits the output to
those keys and fails on a key chlog does not know.`,
	Example: `  chlog config keys
  chlog config keys version_source create_tag`,
	RunE: runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd, configKeysCmd)

	configInitCmd.Flags().Bool("user", false, "Create the user-level config instead of the project config")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(s.Config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	user, _ := cmd.Flags().GetBool("user")
	force, _ := cmd.Flags().GetBool("force")

	path := config.ProjectConfigPath()
	if user {
		userPath, err := config.UserConfigPath()
		if err != nil {
			return clierrors.NewConfigError(
				fmt.Sprintf("cannot locate user config directory: %v", err),
				"Set XDG_CONFIG_HOME or HOME",
			)
		}
		path = userPath
	}

	out := cmd.OutOrStdout()
	if _, err := os.Stat(path); err == nil && !force {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintf(out, "%s %s already exists (use --force to overwrite)\n", yellow("⚠"), path)
		return nil
	}

	template := []byte(config.GetDefaultConfigTemplate())
	if err := config.ValidateYAMLSyntaxFromBytes(template, path); err != nil {
		return fmt.Errorf("built-in config template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return clierrors.FileNotWritable(path, err)
	}
	if err := os.WriteFile(path, template, 0o644); err != nil {
		return clierrors.FileNotWritable(path, err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s Created %s\n", green("✓"), path)
	return nil
}

func runConfigKeys(cmd *cobra.Command, args []string) error {
	keys := args
	if len(keys) == 0 {
		keys = config.SortedKeys()
	}

	schemas := make([]config.ConfigKeySchema, 0, len(keys))
	for _, key := range keys {
		schema, err := config.GetKeySchema(key)
		if err != nil {
			return clierrors.NewArgumentError(err.Error(),
				"Run 'chlog config keys' for the list of keys")
		}
		schemas = append(schemas, schema)
	}

	out := cmd.OutOrStdout()
	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	defaults := config.GetDefaults()
	for _, schema := range schemas {
		key := schema.Path
		typ := schema.Type.String()
		if len(schema.AllowedValues) > 0 {
			typ = strings.Join(schema.AllowedValues, "|")
		}
		fmt.Fprintf(out, "%s %s\n    %s %s\n",
			cyan(key), dim("("+typ+")"),
			schema.Description, dim(fmt.Sprintf("[default: %v]", defaults[key])))
	}
	return nil
}
