// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"fmt"

	"github.com/robgonnella/go-bumpytrack/internal/config"
	"github.com/robgonnella/go-bumpytrack/internal/replace"
	"github.com/robgonnella/go-bumpytrack/internal/util"
	"github.com/robgonnella/go-bumpytrack/internal/version"
)

// Bump resolves versions, rewrites every configured file and the config
// file itself, then optionally commits and tags. Any failure aborts the
// remaining steps. Files rewritten before a failure are left as they are.
func (c *Core) Bump(req BumpRequest) (*BumpResult, error) {
	conf := configOrEmpty(req.Config)

	current, err := resolveCurrent(req.CurrentVersion, conf)

	if err != nil {
		return nil, err
	}

	c.log.Info().Msgf("Current version: '%s'", current)

	next, err := resolveNew(req, current)

	if err != nil {
		return nil, err
	}

	c.log.Info().Msgf("New version: '%s'", next)

	if next.Compare(current) <= 0 {
		c.log.Warn().Msgf(
			"New version '%s' is not greater than current version '%s'",
			next,
			current,
		)
	}

	result := &BumpResult{
		Current: current,
		New:     next,
		Changes: []*replace.Change{},
		DryRun:  req.DryRun,
	}

	c.log.Info().Msg("Replacing version string in files")

	modified := []string{}

	for _, spec := range fileReplaces(conf) {
		change, err := c.substitute(spec, current, next, req.DryRun)

		if err != nil {
			return nil, err
		}

		result.Changes = append(result.Changes, change)
		modified = util.AppendUnique(modified, spec.Path)
	}

	if req.DryRun {
		c.log.Info().Msg("Dry run complete, no files were modified")
		return result, nil
	}

	if config.Resolve(req.GitCommit, conf.GitCommit) {
		c.log.Info().Msg("Committing changes to git")

		if err := c.vc.CommitAll(modified, CommitMessage(current, next)); err != nil {
			return nil, err
		}

		result.Committed = true
	}

	if config.Resolve(req.GitTag, conf.GitTag) {
		tag := TagName(next)

		c.log.Info().Str("tag", tag).Msg("Adding version tag to git")

		if err := c.vc.Tag(tag); err != nil {
			return nil, err
		}

		result.Tag = tag
	}

	return result, nil
}

func (c *Core) substitute(
	spec replace.FileReplace,
	current,
	next version.Version,
	dryRun bool,
) (*replace.Change, error) {
	if dryRun {
		return c.replacer.Preview(spec, current, next)
	}

	return c.replacer.Replace(spec, current, next)
}

func resolveNew(req BumpRequest, current version.Version) (version.Version, error) {
	if req.NewVersion != "" {
		next, err := version.Parse(req.NewVersion)

		if err != nil {
			return version.Version{}, fmt.Errorf("failed parsing new version: %w", err)
		}

		return next, nil
	}

	if req.Part != "" {
		return version.Increment(current, req.Part)
	}

	return version.Version{}, ErrMissingNewVersion
}

// configured files first, the config file itself last
func fileReplaces(conf *config.Config) []replace.FileReplace {
	specs := append([]replace.FileReplace{}, conf.FileReplaces...)

	if conf.Path != "" {
		specs = append(specs, conf.SelfReplace())
	}

	return specs
}
