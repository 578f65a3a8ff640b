// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads cardinput settings from defaults, yaml files,
// CARDINPUT_* environment variables and command line flags using Viper, and
// writes them back with go-yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "cardinput"

// Config is the application configuration.
type Config struct {
	Language string `mapstructure:"language" yaml:"language"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// LogFile receives log output while the TUI owns the terminal.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
	Theme   Theme  `mapstructure:"theme" yaml:"theme"`
	Form    Form   `mapstructure:"form" yaml:"form"`
}

// Theme holds lipgloss color strings (ANSI numbers or hex).
type Theme struct {
	BorderNormal string `mapstructure:"border_normal" yaml:"border_normal"`
	BorderError  string `mapstructure:"border_error" yaml:"border_error"`
	Focused      string `mapstructure:"focused" yaml:"focused"`
}

type Form struct {
	// AutoAdvance moves focus on once a card number is complete.
	AutoAdvance bool `mapstructure:"auto_advance" yaml:"auto_advance"`
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"language":            "en",
		"log_level":           "info",
		"log_file":            "",
		"theme.border_normal": "250",
		"theme.border_error":  "196",
		"theme.focused":       "205",
		"form.auto_advance":   true,
	}
}

// flagKeys maps config keys to the flag names that override them.
var flagKeys = map[string]string{
	"language":  "lang",
	"log_level": "log-level",
	"log_file":  "log-file",
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Cardinput")
		default:
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig builds a T from defaults, the first config file found, the
// environment and the flags of cmd, in increasing precedence. A missing
// config file is not an error unless configFile names one explicitly.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	if configFile != nil && *configFile != "" {
		if _, err := os.Stat(*configFile); err != nil {
			return c, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, name := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// WriteConfigFile stores c as yaml in the user (or system) config location.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
