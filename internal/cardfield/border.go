// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

package cardfield

// BorderState is the visual validation signal of a field.
type BorderState int

const (
	BorderNormal BorderState = iota
	BorderError
)

func (b BorderState) String() string {
	if b == BorderError {
		return "error"
	}
	return "normal"
}

// Border derives the border signal from the displayed text alone.
func Border(kind Kind, display string) BorderState {
	if Valid(kind, display) {
		return BorderNormal
	}
	return BorderError
}
