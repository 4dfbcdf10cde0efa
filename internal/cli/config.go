package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/autoreadme/pkg/errors"
	"github.com/matzehuels/autoreadme/pkg/readme"
)

const configFileName = "config.toml"

// Config holds user preferences read from config.toml. Command-line flags
// take precedence over these values.
type Config struct {
	// Template is the README layout used when none is chosen interactively.
	Template string `toml:"template"`
	// Badges is the default answer to the badge prompt.
	Badges bool `toml:"badges"`
	// Banner shows the title banner before generating.
	Banner bool `toml:"banner"`
	// History enables the persistent run log.
	History bool `toml:"history"`
	// HistoryDir overrides the run log location (default ~/.autoreadme).
	HistoryDir string `toml:"history_dir"`
	// PatchGitignore adds the run log directory to the project's .gitignore.
	PatchGitignore bool `toml:"patch_gitignore"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Template:       string(readme.Basic),
		Badges:         true,
		Banner:         true,
		History:        true,
		PatchGitignore: true,
	}
}

// LoadConfig reads the TOML file at path on top of DefaultConfig.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if _, err := readme.ParseKind(cfg.Template); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// configPath returns the config file using XDG standard (~/.config/autoreadme/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFileName), nil
}

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect autoreadme configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				p, err := configPath()
				if err != nil {
					return fmt.Errorf("get config path: %w", err)
				}
				path = p
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(c.config)
		},
	})

	return cmd
}
