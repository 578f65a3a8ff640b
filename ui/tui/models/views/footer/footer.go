// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Package footer renders the bottom of the card form: a status line and the
// key help of the focused input.
package footer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/cardinput/ui/tui/models/components/keyhelp"
	"github.com/toeirei/cardinput/ui/tui/util"
)

type Model struct {
	size   util.Size
	help   *keyhelp.Model
	status string
	style  lipgloss.Style
}

func New() *Model {
	return &Model{help: keyhelp.New()}
}

func (m *Model) Update(msg tea.Msg) {
	m.size.Update(msg)
	m.help.Update(msg)
}

// SetStatus shows s above the key help. style colors it.
func (m *Model) SetStatus(s string, style lipgloss.Style) {
	m.status, m.style = s, style
}

func (m Model) Status() string { return m.status }

func (m Model) Expanded() bool { return m.help.Expanded }

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

func (m Model) View() string {
	hPos := lipgloss.Left
	if m.help.Expanded {
		hPos = lipgloss.Center
	}

	body := m.help.View()
	if m.status != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, m.style.Render(m.status), body)
	}

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true)
	if m.size.Width <= 0 {
		return style.Render(body)
	}
	return style.Render(lipgloss.PlaceHorizontal(m.size.Width, hPos, body))
}
