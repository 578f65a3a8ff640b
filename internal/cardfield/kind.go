// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

package cardfield

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the semantic role of one input field.
type Kind int

const (
	CardNumber Kind = iota
	CardHolder
	ExpirationDate
	SecurityCode
)

var ErrUnknownKind = errors.New("unknown field kind")

var kindNames = [...]string{
	CardNumber:     "card-number",
	CardHolder:     "card-holder",
	ExpirationDate: "expiration-date",
	SecurityCode:   "security-code",
}

// Kinds returns all kinds in form order.
func Kinds() []Kind {
	return []Kind{CardNumber, CardHolder, ExpirationDate, SecurityCode}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the names returned by Kind.String, case-insensitively.
// Underscores are accepted in place of dashes so config keys work too.
func ParseKind(name string) (Kind, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, s := range kindNames {
		if s == n {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
