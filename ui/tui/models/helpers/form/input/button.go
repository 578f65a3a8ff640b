// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/cardinput/ui/tui/models/helpers/form"
	"github.com/toeirei/cardinput/ui/tui/util"
)

type Button struct {
	Label    string
	Disabled bool
	KeyMap   ButtonKeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

type ButtonKeyMap struct {
	Click key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

func NewButton(label string, theme Theme) *Button {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())
	return &Button{
		Label: label,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", strings.ToLower(label)),
			),
		},
		DisabledStyle: base.
			BorderForeground(theme.Subtle).
			Foreground(theme.Subtle).
			Faint(true),
		BlurredStyle: base.
			BorderForeground(theme.Subtle).
			Foreground(theme.Subtle),
		FocusedStyle: base.
			BorderForeground(theme.Focused).
			Foreground(theme.Focused).
			Bold(true),
	}
}

func (b *Button) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	b.focused = true
	return util.AnnounceKeyMapCmd(baseKeyMap, b.KeyMap)
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.Disabled && key.Matches(msg, b.KeyMap.Click) {
		return nil, form.ActionSubmit
	}
	return nil, form.ActionNone
}

func (b *Button) View(width int) string {
	style := b.BlurredStyle
	if b.Disabled {
		style = b.DisabledStyle
	} else if b.focused {
		style = b.FocusedStyle
	}
	return style.MaxWidth(max(width-2, 1)).Render(b.Label)
}

// not needed
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var _ form.FormInput = (*Button)(nil)
