// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key bindings announced by the focused input.
//
// The views replace help.Model.ShortHelpView and FullHelpView, which drop
// the ellipsis when the last item overflows and count separators of
// disabled bindings.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders enabled bindings on one line, cut with an ellipsis
// at m.Width. A width of zero means unlimited.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var items []string
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		item := m.Styles.ShortKey.Inline(true).Render(kb.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc)
		if len(items) > 0 {
			item = separator + item
		}
		items = append(items, item)
	}

	return strings.Join(fit(items, m.Width, ellipsis(m)), "")
}

// FullHelpView renders one column per group of enabled bindings, cut with
// an ellipsis at m.Width. A width of zero means unlimited.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		if !slices.ContainsFunc(group, func(b key.Binding) bool { return b.Enabled() }) {
			continue
		}

		var keys, descriptions []string
		for _, binding := range group {
			if binding.Enabled() {
				keys = append(keys, binding.Help().Key)
				descriptions = append(descriptions, binding.Help().Desc)
			}
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(cols, m.Width, ellipsis(m))...)
}

func ellipsis(m help.Model) string {
	return " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
}

// fit keeps the leading parts that fit into width. When parts are dropped
// the tail is appended, if it fits.
func fit(parts []string, width int, tail string) []string {
	if width <= 0 {
		return parts
	}

	tailLen := lipgloss.Width(tail)
	var used int
	for i, part := range parts {
		n := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+n <= width) || (!last && used+n+tailLen <= width) {
			used += n
			continue
		}
		out := slices.Clone(parts[:i])
		if used+tailLen <= width {
			out = append(out, tail)
		}
		return out
	}
	return parts
}
