// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package util

// Wrap returns i moved into [0,n) by wrapping around; n must be positive.
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}
