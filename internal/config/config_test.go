// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	cfg "github.com/toeirei/cardinput/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	// Force user config dir and working dir into tmp.
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Language != "en" || c.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Theme.BorderError != "196" || !c.Form.AutoAdvance {
		t.Fatalf("unexpected nested defaults: %+v", c)
	}
}

func TestLoadConfig_FileEnvAndFlags(t *testing.T) {
	tmp := isolate(t)

	path := filepath.Join(tmp, "custom.yaml")
	data := []byte("language: de\ntheme:\n  border_error: \"#ff0000\"\nform:\n  auto_advance: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("CARDINPUT_LOG_LEVEL", "debug")

	cmd := &cobra.Command{}
	cmd.Flags().String("lang", "en", "")
	if err := cmd.Flags().Set("lang", "en"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	c, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Language != "en" {
		t.Fatalf("flag should win over file, got %q", c.Language)
	}
	if c.LogLevel != "debug" {
		t.Fatalf("env should set log level, got %q", c.LogLevel)
	}
	if c.Theme.BorderError != "#ff0000" || c.Theme.BorderNormal != "250" {
		t.Fatalf("unexpected theme: %+v", c.Theme)
	}
	if c.Form.AutoAdvance {
		t.Fatalf("file should disable auto advance")
	}
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	tmp := isolate(t)
	missing := filepath.Join(tmp, "nope.yaml")
	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &missing); err == nil {
		t.Fatalf("expected error for explicit missing config file")
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "de", LogLevel: "warn"}
	c.Theme.Focused = "81"
	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Language != "de" || got.LogLevel != "warn" || got.Theme.Focused != "81" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
