// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/cardinput/internal/config"
	forminput "github.com/toeirei/cardinput/ui/tui/models/helpers/form/input"
	"github.com/toeirei/cardinput/ui/tui/models/views/root"
)

// OptionsFromConfig maps the loaded configuration onto the form options.
// Empty colors keep the defaults.
func OptionsFromConfig(cfg config.Config) root.Options {
	opts := root.DefaultOptions()
	opts.AutoAdvance = cfg.Form.AutoAdvance
	opts.Theme = themeFromConfig(cfg.Theme)
	return opts
}

func themeFromConfig(t config.Theme) forminput.Theme {
	theme := forminput.DefaultTheme
	if t.BorderNormal != "" {
		theme.BorderNormal = lipgloss.Color(t.BorderNormal)
	}
	if t.BorderError != "" {
		theme.BorderError = lipgloss.Color(t.BorderError)
	}
	if t.Focused != "" {
		theme.Focused = lipgloss.Color(t.Focused)
	}
	return theme
}
