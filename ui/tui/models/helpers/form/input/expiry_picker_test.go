// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/cardinput/internal/cardfield"
	"github.com/toeirei/cardinput/ui/tui/models/helpers/form"
)

func newTestPicker(year int, opts ...ExpiryPickerOpt) *ExpiryPicker {
	clock := func() time.Time { return time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC) }
	return NewExpiryPicker("Expiry", "MM/YYYY", append([]ExpiryPickerOpt{WithPickerClock(clock)}, opts...)...)
}

func TestExpiryPicker_NavigatesColumns(t *testing.T) {
	var reported []string
	p := newTestPicker(2026, WithPickerOnChange(func(kind cardfield.Kind, value string) {
		assert.Equal(t, cardfield.ExpirationDate, kind)
		reported = append(reported, value)
	}))
	p.Focus(nil)

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "02/26", p.Get())
	assert.Equal(t, "02/2026", p.Field().Text())

	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "02/28", p.Get())

	p.Update(tea.KeyMsg{Type: tea.KeyLeft})
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "12/28", p.Get())

	assert.Equal(t, []string{"02/26", "02/27", "02/28", "01/28", "12/28"}, reported)
}

func TestExpiryPicker_YearWraps(t *testing.T) {
	p := newTestPicker(2026)
	p.Focus(nil)

	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "01/46", p.Get())
}

func TestExpiryPicker_DoneAndCancel(t *testing.T) {
	p := newTestPicker(2026)
	p.Focus(nil)

	_, action := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, form.ActionNext, action)
	_, action = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, form.ActionCancel, action)
}

func TestExpiryPicker_IgnoresKeysBeforeFocus(t *testing.T) {
	p := newTestPicker(2026)

	_, action := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, form.ActionNone, action)
	assert.Equal(t, "", p.Get())
}

func TestExpiryPicker_SetPresetsRows(t *testing.T) {
	p := newTestPicker(2026)
	p.Set("07/2031")
	require.Equal(t, "07/31", p.Get())

	p.Focus(nil)
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "08/31", p.Get())

	p.Set("01/20")
	assert.Equal(t, "08/31", p.Get())
}

func TestExpiryPicker_NewSessionPerFocus(t *testing.T) {
	year := 2026
	p := NewExpiryPicker("Expiry", "", WithPickerClock(func() time.Time {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}))
	p.Focus(nil)
	p.Blur()

	year = 2027
	p.Focus(nil)
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "02/27", p.Get())
}

func TestExpiryPicker_ResetAndView(t *testing.T) {
	p := newTestPicker(2026)
	assert.Contains(t, p.View(30), "MM/YYYY")

	p.Set("03/27")
	assert.Contains(t, p.View(30), "03/2027")

	p.Reset()
	assert.Equal(t, "", p.Get())
}
