// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/cardinput/ui/tui/models/views/root"
)

// Run shows the card form until it is submitted or left. Leaving the form
// returns root.ErrCancelled.
func Run(opts root.Options, programOpts ...tea.ProgramOption) (*root.CardDetails, error) {
	final, err := tea.NewProgram(
		root.New(opts),
		append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)...,
	).Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(*root.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", final)
	}
	return m.Result()
}
