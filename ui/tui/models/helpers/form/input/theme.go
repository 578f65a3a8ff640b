// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/cardinput/internal/cardfield"
)

// Theme holds the colors inputs draw their borders and labels with.
type Theme struct {
	BorderNormal lipgloss.Color
	BorderError  lipgloss.Color
	Focused      lipgloss.Color
	Subtle       lipgloss.Color
}

var DefaultTheme = Theme{
	BorderNormal: lipgloss.Color("250"),
	BorderError:  lipgloss.Color("196"),
	Focused:      lipgloss.Color("205"),
	Subtle:       lipgloss.Color("240"),
}

// border picks the border color for a validation state. Errors win over
// focus so an invalid field stays red while it is edited.
func (th Theme) border(state cardfield.BorderState, focused bool) lipgloss.Color {
	switch {
	case state == cardfield.BorderError:
		return th.BorderError
	case focused:
		return th.Focused
	default:
		return th.BorderNormal
	}
}

func (th Theme) box(state cardfield.BorderState, focused bool, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.border(state, focused)).
		Padding(0, 1).
		Width(max(width-2, 1))
}

func (th Theme) label(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(th.Focused).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(th.Subtle)
}
