// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Package windowtitle keeps the terminal title in sync with the focused
// form field.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set asks the handler to show title after the base title.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}

type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

func NewHandler(base, delimiter string) *TitleHandler {
	return &TitleHandler{Base: base, Delimiter: delimiter}
}

// Title is the full title as it is currently shown.
func (t TitleHandler) Title() string {
	if t.current == "" {
		return t.Base
	}
	return t.Base + t.Delimiter + t.current
}

func (t TitleHandler) Init() tea.Cmd {
	return tea.SetWindowTitle(t.Title())
}

// Handle consumes title messages and reports whether msg was one.
func (t *TitleHandler) Handle(msg tea.Msg) (tea.Cmd, bool) {
	title, ok := msg.(titleMsg)
	if !ok {
		return nil, false
	}
	if t.current == string(title) {
		return nil, true
	}
	t.current = string(title)
	return tea.SetWindowTitle(t.Title()), true
}
