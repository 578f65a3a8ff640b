// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/cardinput/ui/tui/util"
)

// Model renders the key map most recently announced by the focused input.
type Model struct {
	KeyMap   help.KeyMap
	Expanded bool

	size util.Size
	help help.Model
}

func New() *Model {
	return &Model{
		help: help.New(),
	}
}

func (m *Model) Update(msg tea.Msg) {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return
	}
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.KeyMap = msg.KeyMap
	}
}

func (m Model) View() string {
	if m.KeyMap == nil {
		return ""
	}
	if m.Expanded {
		return FullHelpView(m.help, m.KeyMap.FullHelp())
	}
	return ShortHelpView(m.help, m.KeyMap.ShortHelp())
}

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}
