// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui contains the top-level UI wiring and initialization for Cardinput.
//
// This package exposes the initialization helpers used by the application to
// start the different user interfaces (CLI, TUI).
package ui
