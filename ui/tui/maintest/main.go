// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// maintest runs the card form with default settings and no config files,
// e.g. `go run ./ui/tui/maintest de`.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/toeirei/cardinput/internal/config"
	"github.com/toeirei/cardinput/ui"
	tui "github.com/toeirei/cardinput/ui/tui"
	"github.com/toeirei/cardinput/ui/tui/models/views/root"
)

func main() {
	cfg := config.Config{Language: "en", LogFile: "maintest.log", LogLevel: "debug"}
	if len(os.Args) > 1 {
		cfg.Language = os.Args[1]
	}
	if err := ui.InitializeDefaults(cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	restore, err := ui.RedirectLogs(cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer restore()

	details, err := tui.Run(root.DefaultOptions())
	if errors.Is(err, root.ErrCancelled) {
		return
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("%+v\n", *details)
}
