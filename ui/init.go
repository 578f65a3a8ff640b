// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package ui

import (
	"os"

	"github.com/toeirei/cardinput/internal/config"
	"github.com/toeirei/cardinput/internal/i18n"
	"github.com/toeirei/cardinput/internal/logging"
)

// InitializeDefaults applies the language and log level of cfg. Both CLI and
// TUI call it before showing anything. An empty language means English.
func InitializeDefaults(cfg config.Config) error {
	if cfg.Language != "" {
		if err := i18n.Check(cfg.Language); err != nil {
			return err
		}
	}
	i18n.SetLang(cfg.Language)
	if cfg.LogLevel == "" {
		return nil
	}
	return logging.SetLevel(cfg.LogLevel)
}

// RedirectLogs moves log output away from the terminal while the TUI owns
// it: into cfg.LogFile when one is configured, otherwise nowhere. The
// returned func restores stderr.
func RedirectLogs(cfg config.Config) (func(), error) {
	if cfg.LogFile != "" {
		return logging.ToFile(cfg.LogFile)
	}
	logging.Discard()
	return func() { logging.SetOutput(os.Stderr) }, nil
}
