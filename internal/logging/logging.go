// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// SetLevel sets the minimum level by name ("debug", "info", "warn", "error").
func SetLevel(name string) error {
	lvl, err := clog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetDebug is a shorthand for switching between debug and info.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
	} else {
		L.SetLevel(clog.InfoLevel)
	}
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// ToFile sends log output to path, appending. The TUI uses this so log lines
// do not land on the alternate screen. The returned func restores stderr and
// closes the file.
func ToFile(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	L.SetOutput(f)
	return func() {
		L.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

// Discard silences all output until SetOutput is called again.
func Discard() {
	L.SetOutput(io.Discard)
}
