// SPDX-License-Identifier: GPL-3.0-or-later

package vcs

//go:generate mockgen -destination=../mock/vcs/vcs.go -package=mock_vcs . VersionControl

// VersionControl interface representing a version control system
type VersionControl interface {
	// CommitAll unstages everything, stages exactly paths and commits
	CommitAll(paths []string, message string) error
	// Tag creates a lightweight tag at the current commit
	Tag(name string) error
	// DeleteTag deletes a tag, returning ErrTagNotFound if it does not exist
	DeleteTag(name string) error
	// ResetHardToPrevious drops the most recent commit and its changes
	ResetHardToPrevious() error
	// LastCommitMessage returns the full message of the most recent commit
	LastCommitMessage() (string, error)
}
