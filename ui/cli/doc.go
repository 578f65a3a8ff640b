// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Cardinput using Cobra.
// It wires configuration, language and logging, and provides commands that
// delegate to internal/cardfield and the TUI. CLI code should remain thin.
package cli
