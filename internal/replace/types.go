// SPDX-License-Identifier: GPL-3.0-or-later

package replace

import (
	"errors"
	"strings"

	"github.com/robgonnella/go-bumpytrack/internal/version"
)

// Placeholder is substituted with a version inside search templates
const Placeholder = "{version}"

// ErrFileNotAccessible returned when a target file is missing or cannot be
// opened for both reading and writing
var ErrFileNotAccessible = errors.New("file not found or not accessible")

// ErrNoSubstitutionMade returned when the search string does not occur in
// the target file
var ErrNoSubstitutionMade = errors.New("nothing to replace")

// FileReplace describes where and how to substitute a version in one file
type FileReplace struct {
	Path           string `toml:"path" yaml:"path"`
	SearchTemplate string `toml:"search_template" yaml:"search_template"`
}

// Template returns the search template, defaulting to the bare placeholder
func (f FileReplace) Template() string {
	if f.SearchTemplate == "" {
		return Placeholder
	}

	return f.SearchTemplate
}

// Render substitutes v into the search template
func (f FileReplace) Render(v version.Version) string {
	return strings.ReplaceAll(f.Template(), Placeholder, v.String())
}

// Change describes a substitution that was, or would be, applied to a file
type Change struct {
	Path        string
	Search      string
	Replace     string
	Occurrences int
}
