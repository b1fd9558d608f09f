// SPDX-License-Identifier: GPL-3.0-or-later

package vcs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCommandFailed matches every *CommandError
var ErrCommandFailed = errors.New("version control command failed")

// ErrTagNotFound returned when deleting a tag that does not exist
var ErrTagNotFound = errors.New("tag does not exist")

// CommandError carries the combined output of a failed command
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf(
		"failed to execute '%s': %s. Output was:\n\n%s\n",
		strings.Join(e.Args, " "),
		e.Err,
		e.Output,
	)
}

// Unwrap returns the underlying exec error
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}
