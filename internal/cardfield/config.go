// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

package cardfield

// Keyboard is the input mode a widget should offer for a kind.
type Keyboard int

const (
	KeyboardText Keyboard = iota
	KeyboardNumeric
	KeyboardPicker
)

// ReturnKey is the hint for what the return key does.
type ReturnKey int

const (
	ReturnNext ReturnKey = iota
	ReturnDone
)

// Config is the input-mode metadata for one kind. It is resolved once when a
// Field is created and never changes afterwards.
type Config struct {
	Kind      Kind
	Keyboard  Keyboard
	ReturnKey ReturnKey
	// MaxLength is the widget character limit; 0 means unlimited.
	MaxLength   int
	Autocorrect bool
}

// ConfigFor returns the fixed configuration for kind.
func ConfigFor(kind Kind) Config {
	switch kind {
	case CardNumber:
		return Config{Kind: kind, Keyboard: KeyboardNumeric, ReturnKey: ReturnNext, MaxLength: cardNumberDisplayLen}
	case ExpirationDate:
		return Config{Kind: kind, Keyboard: KeyboardPicker, ReturnKey: ReturnNext, MaxLength: len("01/2006")}
	case SecurityCode:
		return Config{Kind: kind, Keyboard: KeyboardNumeric, ReturnKey: ReturnDone, MaxLength: securityCodeMaxLen}
	default:
		return Config{Kind: CardHolder, Keyboard: KeyboardText, ReturnKey: ReturnNext}
	}
}

// Numeric reports whether the widget should only accept digits.
func (c Config) Numeric() bool { return c.Keyboard == KeyboardNumeric }
