// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

package cardfield

import (
	"errors"
	"time"

	"github.com/toeirei/cardinput/internal/logging"
)

var ErrNoPicker = errors.New("field has no expiry picker")

// Field owns the state of one input control: its kind, the current text and
// the validity flag. A host feeds it text-change events and receives
// notifications through the callbacks. A Field is not safe for concurrent
// use; it belongs to the UI loop that created it.
type Field struct {
	config      Config
	text        string
	reported    string
	valid       bool
	placeholder string

	onTextChanged func(value string)
	onAdvance     func()
	writeBack     func(text string)
	now           func() time.Time

	picker     *Picker
	formatting bool
}

type Option = func(f *Field)

func WithOnTextChanged(fn func(value string)) Option {
	return func(f *Field) {
		f.onTextChanged = fn
	}
}

func WithOnAdvanceRequested(fn func()) Option {
	return func(f *Field) {
		f.onAdvance = fn
	}
}

func WithPlaceholder(placeholder string) Option {
	return func(f *Field) {
		f.placeholder = placeholder
	}
}

// WithWriteBack registers the function that puts formatted text back into
// the widget. It is only called when formatting changed what the widget
// holds.
func WithWriteBack(fn func(text string)) Option {
	return func(f *Field) {
		f.writeBack = fn
	}
}

// WithClock sets the time source used when a picker is opened.
func WithClock(now func() time.Time) Option {
	return func(f *Field) {
		f.now = now
	}
}

// New creates a field of the given kind. The kind and its Config are fixed
// for the lifetime of the field.
func New(kind Kind, opts ...Option) *Field {
	f := &Field{
		config:        ConfigFor(kind),
		valid:         true,
		onTextChanged: func(string) {},
		onAdvance:     func() {},
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Field) Kind() Kind          { return f.config.Kind }
func (f *Field) Config() Config      { return f.config }
func (f *Field) Text() string        { return f.text }
func (f *Field) Value() string       { return f.reported }
func (f *Field) Valid() bool         { return f.valid }
func (f *Field) Placeholder() string { return f.placeholder }

// Border is the current validation signal.
func (f *Field) Border() BorderState {
	return Border(f.config.Kind, f.text)
}

// Input handles one text-change event carrying the widget's raw text.
func (f *Field) Input(raw string) Result {
	if f.formatting {
		// Re-entered from writeBack: the widget now holds our own output.
		return f.current()
	}
	f.formatting = true
	defer func() { f.formatting = false }()

	res := Format(f.config.Kind, f.text, raw)
	f.text = res.Display
	f.reported = res.Reported
	f.valid = res.Valid
	if res.Display != raw && f.writeBack != nil {
		f.writeBack(res.Display)
	}

	f.onTextChanged(res.Reported)
	if res.EndInput {
		logging.Debugf("%s complete, requesting advance", f.config.Kind)
		f.onAdvance()
	}
	return res
}

// SetText is a programmatic write; it runs the same formatting pass as
// typing does.
func (f *Field) SetText(text string) Result {
	return f.Input(text)
}

// Done handles the user pressing return or the done button.
func (f *Field) Done() {
	f.onAdvance()
}

// Reset clears the field without notifying the host.
func (f *Field) Reset() {
	f.text, f.reported, f.valid = "", "", true
	f.picker = nil
	if f.writeBack != nil {
		f.writeBack("")
	}
}

// OpenPicker starts a new picker presentation for an ExpirationDate field.
// The year list is computed now and kept until the next OpenPicker call.
func (f *Field) OpenPicker() (*Picker, error) {
	if f.config.Keyboard != KeyboardPicker {
		return nil, ErrNoPicker
	}
	f.picker = NewPicker(f.now())
	return f.picker, nil
}

// Picker returns the open picker, opening one if needed.
func (f *Field) Picker() (*Picker, error) {
	if f.picker != nil {
		return f.picker, nil
	}
	return f.OpenPicker()
}

// SelectExpiry applies a picker selection: the field shows "MM/YYYY" and the
// host is told "MM/YY".
func (f *Field) SelectExpiry(monthIndex, yearIndex int) (Selection, error) {
	p, err := f.Picker()
	if err != nil {
		return Selection{}, err
	}
	sel, err := p.Select(monthIndex, yearIndex)
	if err != nil {
		return Selection{}, err
	}

	display := sel.Display()
	changed := display != f.text
	f.text = display
	f.reported = sel.Reported()
	f.valid = true
	if changed && f.writeBack != nil {
		f.writeBack(display)
	}
	f.onTextChanged(f.reported)
	return sel, nil
}

// Masked returns the card number with all but the last four digits hidden.
// Other kinds return their text unchanged.
func (f *Field) Masked() string {
	if f.config.Kind != CardNumber {
		return f.text
	}
	digits := []rune(Digits(f.text))
	if len(digits) <= cardNumberGroup {
		return string(digits)
	}
	return "**** " + string(digits[len(digits)-cardNumberGroup:])
}

func (f *Field) current() Result {
	return Result{
		Display:  f.text,
		Reported: f.reported,
		Valid:    f.valid,
		EndInput: shouldEndInput(f.config.Kind, f.text),
	}
}
