// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cardfield implements the headless part of a credit card input
// field: per-kind formatting and validation, the expiration month/year
// picker, and a Field controller that owns the field state and notifies its
// host through callbacks. UI toolkits (see ui/tui) drive a Field and render
// whatever it reports.
package cardfield
