// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"errors"
	"fmt"

	"github.com/robgonnella/go-bumpytrack/internal/vcs"
)

// Undo reverts the most recent bump commit and deletes its tag. Nothing is
// touched unless the last commit is the bump to the current version. After
// that check passes, reset and tag deletion are both attempted and their
// failures are reported as warnings.
func (c *Core) Undo(req UndoRequest) (*UndoResult, error) {
	conf := configOrEmpty(req.Config)

	current, err := resolveCurrent(req.CurrentVersion, conf)

	if err != nil {
		return nil, err
	}

	c.log.Info().Msgf("Undoing bump to version '%s'", current)

	message, err := c.vc.LastCommitMessage()

	if err != nil {
		return nil, fmt.Errorf("%w: unable to read last commit: %w", ErrNotLatestBump, err)
	}

	if !IsBumpCommit(message, current) {
		return nil, fmt.Errorf(
			"%w: last commit %q is not a bump to '%s'",
			ErrNotLatestBump,
			message,
			current,
		)
	}

	result := &UndoResult{
		Version:  current,
		Tag:      TagName(current),
		Warnings: []error{},
	}

	c.log.Info().Msg("Reverting bump commit")

	if err := c.vc.ResetHardToPrevious(); err != nil {
		c.log.Warn().Err(err).Msg("Failed to revert bump commit, continuing with tag cleanup")
		result.Warnings = append(result.Warnings, err)
	} else {
		result.CommitReverted = true
	}

	c.log.Info().Str("tag", result.Tag).Msg("Deleting version tag")

	err = c.vc.DeleteTag(result.Tag)

	switch {
	case err == nil:
		result.TagDeleted = true
	case errors.Is(err, vcs.ErrTagNotFound):
		result.TagMissing = true
		c.log.Warn().Str("tag", result.Tag).Msg("Tag did not exist")
	default:
		c.log.Warn().Err(err).Msg("Failed to delete tag")
		result.Warnings = append(result.Warnings, err)
	}

	return result, nil
}
