// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Cardinput.
//
// Usage:
//
//	go run . [flags]
//	./cardinput [flags]
//
// This launches the card form. See --help for the other commands.
package main

import (
	"os"

	"github.com/toeirei/cardinput/internal/logging"
	"github.com/toeirei/cardinput/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("cardinput: %v", err)
		os.Exit(1)
	}
}
