// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time, e.g.
//
//	go build -ldflags "-X github.com/toeirei/cardinput/buildvars.Version=1.2.3"
//
// They are empty for local or development builds.
package buildvars

var (
	Version string
	Commit  string
	Date    string
)

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}
