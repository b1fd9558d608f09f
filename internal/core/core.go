// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"fmt"
	"strings"

	"github.com/robgonnella/go-bumpytrack/internal/config"
	"github.com/robgonnella/go-bumpytrack/internal/logger"
	"github.com/robgonnella/go-bumpytrack/internal/replace"
	"github.com/robgonnella/go-bumpytrack/internal/vcs"
	"github.com/robgonnella/go-bumpytrack/internal/version"
)

// CommitPrefix starts every bump commit message
const CommitPrefix = "Bumping version: "

const commitSeparator = " → "

// Core implements the Runner interface
type Core struct {
	vc       vcs.VersionControl
	replacer replace.FileReplacer
	log      logger.Logger
}

// New returns a new instance of Core
func New(vc vcs.VersionControl, replacer replace.FileReplacer, log logger.Logger) *Core {
	return &Core{
		vc:       vc,
		replacer: replacer,
		log:      log,
	}
}

// CommitMessage returns the commit message recorded for a bump
func CommitMessage(current, next version.Version) string {
	return CommitPrefix + current.String() + commitSeparator + next.String()
}

// TagName returns the tag recorded for a version
func TagName(v version.Version) string {
	return "v" + v.String()
}

// IsBumpCommit reports whether message records a bump to v
func IsBumpCommit(message string, v version.Version) bool {
	message = strings.TrimSpace(message)

	return strings.HasPrefix(message, CommitPrefix) &&
		strings.HasSuffix(message, commitSeparator+v.String())
}

func configOrEmpty(conf *config.Config) *config.Config {
	if conf == nil {
		return &config.Config{}
	}

	return conf
}

func resolveCurrent(override string, conf *config.Config) (version.Version, error) {
	raw := override

	if raw == "" {
		raw = conf.CurrentVersion
	}

	if raw == "" {
		return version.Version{}, ErrMissingCurrentVersion
	}

	current, err := version.Parse(raw)

	if err != nil {
		return version.Version{}, fmt.Errorf("failed parsing current version: %w", err)
	}

	return current, nil
}
