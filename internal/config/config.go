// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"clistart/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the framework name, used for the config directory and
	// the environment variable prefix.
	AppName = "clistart"
	// ConfigFileName is the name of the config file without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// Config holds the host-level settings.
type Config struct {
	// LogLevel is the default level when no option overrides it.
	LogLevel string `mapstructure:"log_level"`
	// NoUpdateNotifier suppresses the update notification check.
	NoUpdateNotifier bool `mapstructure:"no_update_notifier"`
}

// DefaultConfig returns the settings used when nothing else is set.
func DefaultConfig() *Config {
	return &Config{LogLevel: "info"}
}

// ConfigDir returns the clistart configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the host configuration. A missing config file is not an
// error; defaults plus environment apply. filePath, when non-empty,
// names an explicit config file that must exist.
func Load(filePath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("no_update_notifier", defaults.NoUpdateNotifier)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case filePath != "":
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(filePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check the file for TOML syntax errors").
				Wrap(err).
				BuildError()
		}
	default:
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		path := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(path).
					WithSuggestion("Check the file for TOML syntax errors").
					WithSuggestion("Remove the file to fall back to defaults").
					Wrap(err).
					BuildError()
			}
		}
		// No config file found: defaults plus environment apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &cfg, nil
}
