// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer swaps L with a buffer-backed logger and
// checks every helper writes its formatted message.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	defer func() { L = prev }()

	if err := SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	Infof("quiet")
	Warnf("loud")
	if strings.Contains(buf.String(), "quiet") {
		t.Fatalf("info line written at warn level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("warn line missing: %s", buf.String())
	}

	if err := SetLevel("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestToFile(t *testing.T) {
	prev := L
	L = clog.New(os.Stderr)
	defer func() { L = prev }()

	path := filepath.Join(t.TempDir(), "cardinput.log")
	restore, err := ToFile(path)
	if err != nil {
		t.Fatalf("ToFile: %v", err)
	}
	Infof("to file %d", 7)
	restore()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "to file 7") {
		t.Fatalf("log file missing line: %q", data)
	}
}
