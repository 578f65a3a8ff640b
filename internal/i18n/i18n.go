// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides localized labels, placeholders and help text for the
// card form. Formatting of the entered values is never localized.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var ErrUnknownLanguage = errors.New("unknown language")

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// Init loads all embedded locales and selects lang. Unknown languages fall
// back to English.
func Init(l string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile(path.Join("locales", f.Name()))
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	lang = l
	localizer = i18n.NewLocalizer(bundle, l, language.English.String())
}

// SetLang changes the active language.
func SetLang(l string) {
	Init(l)
}

// GetLang returns the language passed to the last Init.
func GetLang() string {
	return lang
}

// GetAvailableLocales maps each embedded locale tag to its display name in
// its own language.
func GetAvailableLocales() map[string]string {
	if bundle == nil {
		Init("en")
	}
	out := make(map[string]string)
	for _, tag := range bundle.LanguageTags() {
		out[tag.String()] = display.Self.Name(tag)
	}
	return out
}

// Check returns ErrUnknownLanguage unless l names an embedded locale.
func Check(l string) error {
	if _, ok := GetAvailableLocales()[l]; !ok {
		return fmt.Errorf("%w %q, available: %s", ErrUnknownLanguage, l, strings.Join(Locales(), ", "))
	}
	return nil
}

// Locales returns the available locale tags sorted.
func Locales() []string {
	av := GetAvailableLocales()
	tags := make([]string, 0, len(av))
	for t := range av {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// T translates messageID. A single map argument is used as template data;
// other arguments are applied fmt-style to the translated text. Unknown IDs
// are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
