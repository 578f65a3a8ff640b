// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks for missing or orphaned translation keys. It scans the
// Go sources for i18n.T("...") calls and compares them against the yaml
// locale files.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found key.
type Location struct {
	Filepath string
	Line     int
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

var keyCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// Report collects the findings of one run.
type Report struct {
	// Undefined keys are used in code but absent from the primary locale.
	Undefined map[string][]Location
	// Orphaned keys are in the primary locale but never used.
	Orphaned []string
	// Missing maps a secondary locale file to the primary keys it lacks.
	Missing map[string][]string
}

func (r Report) Failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	report, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(2)
	}
	printReport(report)
	if report.Failed() {
		os.Exit(1)
	}
}

func lint(root, locales, primary string) (Report, error) {
	report := Report{Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return report, fmt.Errorf("scan sources: %w", err)
	}
	primaryKeys, err := loadKeysFromLocale(filepath.Join(locales, primary))
	if err != nil {
		return report, fmt.Errorf("load %s: %w", primary, err)
	}

	report.Undefined = map[string][]Location{}
	for key, locs := range used {
		if _, ok := primaryKeys[key]; !ok {
			report.Undefined[key] = locs
		}
	}
	for key := range primaryKeys {
		if _, ok := used[key]; !ok {
			report.Orphaned = append(report.Orphaned, key)
		}
	}
	sort.Strings(report.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report, err
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report, fmt.Errorf("load %s: %w", file, err)
		}
		var missing []string
		for key := range primaryKeys {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			report.Missing[filepath.Base(file)] = missing
		}
	}
	return report, nil
}

func printReport(r Report) {
	fmt.Println("--- Keys used in code but not defined ---")
	keys := make([]string, 0, len(r.Undefined))
	for key := range r.Undefined {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		loc := r.Undefined[key][0]
		fmt.Printf("  - %s (%s:%d)\n", key, loc.Filepath, loc.Line)
	}

	fmt.Println("--- Keys missing from other locales ---")
	files := make([]string, 0, len(r.Missing))
	for file := range r.Missing {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		for _, key := range r.Missing[file] {
			fmt.Printf("  - %s: %s\n", file, key)
		}
	}

	fmt.Println("--- Orphaned keys ---")
	for _, key := range r.Orphaned {
		fmt.Printf("  - %s\n", key)
	}

	if r.Failed() {
		fmt.Println("found issues that need to be addressed")
	} else {
		fmt.Println("all translation files are consistent")
	}
}

// findUsedKeys scans non-test .go files for i18n.T("key") calls.
func findUsedKeys(root string) (map[string][]Location, error) {
	keys := make(map[string][]Location)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			for _, match := range keyCallRe.FindAllStringSubmatch(line, -1) {
				keys[match[1]] = append(keys[match[1]], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})

	return keys, err
}

// loadKeysFromLocale reads a yaml file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts nested maps into dot separated keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	case []any:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
