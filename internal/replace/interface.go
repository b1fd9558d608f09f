// SPDX-License-Identifier: GPL-3.0-or-later

package replace

import "github.com/robgonnella/go-bumpytrack/internal/version"

//go:generate mockgen -destination=../mock/replace/replace.go -package=mock_replace . FileReplacer

// FileReplacer rewrites a version string inside a single file
type FileReplacer interface {
	// Replace rewrites the file described by spec
	Replace(spec FileReplace, current, next version.Version) (*Change, error)
	// Preview performs every check Replace does without writing
	Preview(spec FileReplace, current, next version.Version) (*Change, error)
}
