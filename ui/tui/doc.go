// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the card form in the terminal. Presentation and input
// handling live here; formatting and validation are provided by
// internal/cardfield.
package tui
