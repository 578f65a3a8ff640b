// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) }
	return opts
}

func newFocused(t *testing.T, opts Options) *Model {
	t.Helper()
	m := New(opts)
	m.Init()
	require.Equal(t, "number", m.form.ActiveID())
	return m
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestModel_CardNumberAutoAdvances(t *testing.T) {
	m := newFocused(t, fixedOptions())

	typeText(m, "4111111111111111")

	assert.Equal(t, "4111 1111 1111 1111", m.number.Field().Text())
	assert.Equal(t, "holder", m.form.ActiveID())
}

func TestModel_NoAutoAdvanceWhenDisabled(t *testing.T) {
	opts := fixedOptions()
	opts.AutoAdvance = false
	m := newFocused(t, opts)

	typeText(m, "4111111111111111")

	assert.Equal(t, "number", m.form.ActiveID())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "holder", m.form.ActiveID())
}

func TestModel_HolderAcceptsQuestionMark(t *testing.T) {
	m := newFocused(t, fixedOptions())
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "holder", m.form.ActiveID())

	typeText(m, "Jo?")

	assert.Equal(t, "Jo?", m.holder.Field().Text())
	assert.False(t, m.footer.Expanded())
}

func TestModel_HelpToggle(t *testing.T) {
	m := newFocused(t, fixedOptions())

	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.footer.Expanded())
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.False(t, m.footer.Expanded())
}

func TestModel_ExitCancels(t *testing.T) {
	m := newFocused(t, fixedOptions())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	_, err := m.Result()
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Contains(t, m.View(), "Cancelled")
}

func TestModel_Prefill(t *testing.T) {
	opts := fixedOptions()
	opts.Initial = &CardDetails{
		Number:       "4111111111111111",
		Holder:       "Jane Doe",
		Expiry:       "12/30",
		SecurityCode: "123",
	}
	m := New(opts)

	details, err := m.form.Get()
	require.NoError(t, err)
	assert.Equal(t, "4111 1111 1111 1111", details.Number)
	assert.Equal(t, "Jane Doe", details.Holder)
	assert.Equal(t, "12/30", details.Expiry)
	assert.Equal(t, "123", details.SecurityCode)
	assert.Equal(t, "12/2030", m.expiry.Field().Text())
}

func TestModel_SubmitStoresResult(t *testing.T) {
	opts := fixedOptions()
	opts.Initial = &CardDetails{Number: "4111111111111111", Holder: "Jane Doe", Expiry: "12/30", SecurityCode: "123"}
	m := New(opts)

	details, err := m.form.Get()
	require.NoError(t, err)
	_, cmd := m.Update(submittedMsg{details: details})
	require.NotNil(t, cmd)

	result, err := m.Result()
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "4111 1111 1111 1111", result.Number)
	assert.True(t, strings.Contains(m.View(), "**** 1111"), m.View())
}

func TestModel_SubmitMarksInvalidCode(t *testing.T) {
	opts := fixedOptions()
	opts.Initial = &CardDetails{Number: "4111 1111", SecurityCode: "12a"}
	m := New(opts)

	details, err := m.form.Get()
	require.NoError(t, err)
	m.Update(submittedMsg{details: details})

	result, err := m.Result()
	require.NoError(t, err)
	assert.False(t, result.Valid)
}
