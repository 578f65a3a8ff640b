// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/cardinput/internal/config"
	"github.com/toeirei/cardinput/internal/i18n"
	"github.com/toeirei/cardinput/internal/logging"
)

func TestInitializeDefaults(t *testing.T) {
	defer i18n.Init("en")
	defer func() { _ = logging.SetLevel("info") }()

	cfg := config.Config{Language: "de", LogLevel: "debug"}
	require.NoError(t, InitializeDefaults(cfg))
	assert.Equal(t, "de", i18n.GetLang())

	cfg.LogLevel = "loud"
	assert.Error(t, InitializeDefaults(cfg))
}

func TestInitializeDefaults_UnknownLanguage(t *testing.T) {
	defer i18n.Init("en")
	i18n.Init("en")

	err := InitializeDefaults(config.Config{Language: "xx"})
	assert.ErrorIs(t, err, i18n.ErrUnknownLanguage)
	assert.Equal(t, "en", i18n.GetLang())

	require.NoError(t, InitializeDefaults(config.Config{}))
}

func TestRedirectLogs_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardinput.log")

	restore, err := RedirectLogs(config.Config{LogFile: path})
	require.NoError(t, err)
	logging.Warnf("while the form is open")
	restore()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "while the form is open")
}

func TestRedirectLogs_Discard(t *testing.T) {
	restore, err := RedirectLogs(config.Config{})
	require.NoError(t, err)
	restore()
}
