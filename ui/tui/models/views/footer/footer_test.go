// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/cardinput/ui/tui/util"
)

type keys struct{ quit key.Binding }

func (k keys) ShortHelp() []key.Binding  { return []key.Binding{k.quit} }
func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.quit}} }

func TestFooter_ShowsAnnouncedKeysAndStatus(t *testing.T) {
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: keys{
		quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}})

	view := m.View()
	if !strings.Contains(view, "quit") {
		t.Fatalf("expected key help in footer, got %q", view)
	}

	m.SetStatus("Cancelled", lipgloss.NewStyle())
	if !strings.Contains(m.View(), "Cancelled") {
		t.Fatalf("expected status in footer")
	}
	if m.Status() != "Cancelled" {
		t.Fatalf("unexpected status %q", m.Status())
	}
}

func TestFooter_ToggleExpanded(t *testing.T) {
	m := New()
	if m.Expanded() {
		t.Fatalf("footer should start collapsed")
	}
	m.ToggleExpanded()
	if !m.Expanded() {
		t.Fatalf("expected expanded help")
	}
}
