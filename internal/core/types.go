// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"errors"

	"github.com/robgonnella/go-bumpytrack/internal/config"
	"github.com/robgonnella/go-bumpytrack/internal/replace"
	"github.com/robgonnella/go-bumpytrack/internal/version"
)

// ErrMissingCurrentVersion returned when neither an override nor the
// config provides the current version
var ErrMissingCurrentVersion = errors.New("no way to obtain current version")

// ErrMissingNewVersion returned when neither an explicit version nor a
// part to increment was given
var ErrMissingNewVersion = errors.New("no way to obtain a new version")

// ErrNotLatestBump returned by undo when the most recent commit is not the
// bump being undone
var ErrNotLatestBump = errors.New("last commit is not the bump being undone")

// BumpRequest input for a bump transaction
type BumpRequest struct {
	Config         *config.Config
	CurrentVersion string
	NewVersion     string
	Part           version.Part
	GitCommit      *bool
	GitTag         *bool
	DryRun         bool
}

// BumpResult describes a completed bump
type BumpResult struct {
	Current   version.Version
	New       version.Version
	Changes   []*replace.Change
	Committed bool
	Tag       string
	DryRun    bool
}

// UndoRequest input for an undo transaction
type UndoRequest struct {
	Config         *config.Config
	CurrentVersion string
}

// UndoResult describes the outcome of each best-effort undo step
type UndoResult struct {
	Version        version.Version
	Tag            string
	CommitReverted bool
	TagDeleted     bool
	TagMissing     bool
	Warnings       []error
}
