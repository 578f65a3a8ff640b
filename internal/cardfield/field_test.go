// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

package cardfield

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	values   []string
	advances int
}

func (r *recorder) opts() []Option {
	return []Option{
		WithOnTextChanged(func(v string) { r.values = append(r.values, v) }),
		WithOnAdvanceRequested(func() { r.advances++ }),
	}
}

func TestField_TypingCardNumber(t *testing.T) {
	var rec recorder
	f := New(CardNumber, rec.opts()...)

	typed := ""
	for _, r := range "4111111111111111" {
		typed = f.Text() + string(r)
		f.Input(typed)
	}

	assert.Equal(t, "4111 1111 1111 1111", f.Text())
	assert.Equal(t, "4111 1111 1111 1111", f.Value())
	assert.True(t, f.Valid())
	assert.Len(t, rec.values, 16)
	assert.Equal(t, "4111 1", rec.values[4])
	assert.Equal(t, 1, rec.advances, "advance only once the number is complete")
}

func TestField_WriteBackOnlyWhenChanged(t *testing.T) {
	var widget string
	writes := 0
	var f *Field
	f = New(CardNumber, WithWriteBack(func(text string) {
		writes++
		widget = text
		// the widget fires a change event for programmatic writes
		f.Input(widget)
	}))

	f.Input("4111")
	assert.Zero(t, writes, "nothing to rewrite")

	f.Input("41111")
	assert.Equal(t, 1, writes)
	assert.Equal(t, "4111 1", widget)

	f.Input("4111 1")
	assert.Equal(t, 1, writes, "already formatted text is not written again")
}

func TestField_ReentrantInputNotifiesOnce(t *testing.T) {
	var rec recorder
	var f *Field
	opts := append(rec.opts(), WithWriteBack(func(text string) { f.Input(text) }))
	f = New(CardNumber, opts...)

	f.Input("12345")
	assert.Equal(t, []string{"1234 5"}, rec.values)
}

func TestField_ReentrantInputSeesFormattedState(t *testing.T) {
	var f *Field
	var inner Result
	f = New(CardNumber, WithWriteBack(func(text string) {
		inner = f.Input(text)
		assert.Equal(t, "4111 1", f.Text())
		assert.Equal(t, "4111 1", f.Value())
	}))

	f.Input("41111")
	assert.Equal(t, "4111 1", inner.Display)
	assert.Equal(t, "4111 1", inner.Reported)
	assert.True(t, inner.Valid)
}

func TestField_SecurityCodeValidity(t *testing.T) {
	var rec recorder
	f := New(SecurityCode, rec.opts()...)

	f.Input("123")
	assert.True(t, f.Valid())
	assert.Equal(t, BorderNormal, f.Border())

	f.Input("12345")
	assert.False(t, f.Valid())
	assert.Equal(t, BorderError, f.Border())
	assert.Equal(t, "12345", f.Text())
	assert.Zero(t, rec.advances)
}

func TestField_SetTextRunsFormatter(t *testing.T) {
	var rec recorder
	f := New(CardNumber, rec.opts()...)

	res := f.SetText("4111111111111111")
	assert.Equal(t, "4111 1111 1111 1111", res.Display)
	assert.Equal(t, []string{"4111 1111 1111 1111"}, rec.values)
	assert.Equal(t, 1, rec.advances)
}

func TestField_DoneRequestsAdvance(t *testing.T) {
	var rec recorder
	f := New(CardHolder, rec.opts()...)
	f.Input("Jane")
	f.Done()
	assert.Equal(t, 1, rec.advances)
}

func TestField_Placeholder(t *testing.T) {
	f := New(CardHolder, WithPlaceholder("Name on card"))
	assert.Equal(t, "Name on card", f.Placeholder())
	assert.Empty(t, New(CardHolder).Placeholder())
}

func TestField_SelectExpiry(t *testing.T) {
	var rec recorder
	now := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)
	f := New(ExpirationDate, append(rec.opts(), WithClock(func() time.Time { return now }))...)

	sel, err := f.SelectExpiry(3, 5)
	require.NoError(t, err)
	assert.Equal(t, "04/2031", sel.Display())
	assert.Equal(t, "04/2031", f.Text())
	assert.Equal(t, "04/31", f.Value())
	assert.Equal(t, []string{"04/31"}, rec.values)
	assert.True(t, f.Valid())

	_, err = f.SelectExpiry(12, 0)
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.Equal(t, "04/2031", f.Text(), "failed selection leaves the field alone")
}

func TestField_PickerSessionPinsYears(t *testing.T) {
	now := time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC)
	f := New(ExpirationDate, WithClock(func() time.Time { return now }))

	p, err := f.OpenPicker()
	require.NoError(t, err)
	now = now.Add(time.Hour)

	same, err := f.Picker()
	require.NoError(t, err)
	assert.Same(t, p, same)
	assert.Equal(t, "2026", same.Years()[0])

	reopened, err := f.OpenPicker()
	require.NoError(t, err)
	assert.Equal(t, "2027", reopened.Years()[0])
}

func TestField_PickerOnlyForExpiration(t *testing.T) {
	f := New(CardNumber)
	_, err := f.OpenPicker()
	assert.ErrorIs(t, err, ErrNoPicker)
	_, err = f.SelectExpiry(0, 0)
	assert.ErrorIs(t, err, ErrNoPicker)
}

func TestField_Reset(t *testing.T) {
	widget := "x"
	f := New(SecurityCode, WithWriteBack(func(text string) { widget = text }))
	f.Input("12a")
	require.False(t, f.Valid())

	f.Reset()
	assert.Empty(t, f.Text())
	assert.Empty(t, f.Value())
	assert.True(t, f.Valid())
	assert.Empty(t, widget)
}

func TestField_Masked(t *testing.T) {
	f := New(CardNumber)
	f.Input("4111111111111234")
	assert.Equal(t, "**** 1234", f.Masked())

	f.Input("41")
	assert.Equal(t, "41", f.Masked())

	h := New(CardHolder)
	h.Input("Jane")
	assert.Equal(t, "Jane", h.Masked())
}

func TestField_KindIsFixed(t *testing.T) {
	f := New(SecurityCode)
	assert.Equal(t, SecurityCode, f.Kind())
	assert.Equal(t, ConfigFor(SecurityCode), f.Config())
}
