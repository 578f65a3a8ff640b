// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

package cardfield

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	cardNumberDigits     = 16
	cardNumberGroup      = 4
	cardNumberDisplayLen = cardNumberDigits + cardNumberDigits/cardNumberGroup - 1
	securityCodeMaxLen   = 4
)

// Result is the outcome of one formatting pass.
type Result struct {
	// Display is the text the field shows.
	Display string
	// Reported is the value handed to the host's text-changed callback.
	Reported string
	Valid    bool
	// EndInput signals that the field is full and focus may move on.
	EndInput bool
	// Changed is true when Display differs from the previous text.
	Changed bool
}

// Format runs one formatting pass for kind. previous is the text shown
// before the edit and input the text after it, possibly still carrying
// separators from an earlier pass. Any input is accepted.
func Format(kind Kind, previous, input string) Result {
	var res Result

	switch kind {
	case CardNumber:
		res.Display = groupCardNumber(input)
		res.Reported = res.Display
	default:
		res.Display = input
		res.Reported = input
	}

	res.Valid = Valid(kind, res.Display)
	res.Changed = res.Display != previous
	res.EndInput = shouldEndInput(kind, res.Display)
	return res
}

// groupCardNumber drops spaces, keeps the first 16 characters and puts a
// single space after every fourth one that is followed by more.
func groupCardNumber(input string) string {
	raw := []rune(strings.ReplaceAll(input, " ", ""))
	if len(raw) > cardNumberDigits {
		raw = raw[:cardNumberDigits]
	}

	var b strings.Builder
	b.Grow(cardNumberDisplayLen)
	for i, r := range raw {
		if i > 0 && i%cardNumberGroup == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func shouldEndInput(kind Kind, display string) bool {
	if display == "" {
		return false
	}
	switch kind {
	case CardNumber:
		return utf8.RuneCountInString(display) >= cardNumberDisplayLen
	default:
		// SecurityCode never auto-advances.
		return false
	}
}

// Valid reports whether text, with all whitespace removed, satisfies the
// predicate of kind. An empty value is valid so untouched fields are not
// flagged.
func Valid(kind Kind, text string) bool {
	s := stripWhitespace(text)
	switch kind {
	case CardNumber:
		return digitsOnly(s)
	case SecurityCode:
		return digitsOnly(s) && utf8.RuneCountInString(s) <= securityCodeMaxLen
	default:
		return true
	}
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Digits returns only the ASCII digits of s.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
