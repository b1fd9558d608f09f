// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/robgonnella/go-bumpytrack/internal/replace"
)

// ErrLoad returned when a config file cannot be read or decoded
var ErrLoad = errors.New("failed to load config file")

// Format of a config file on disk
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Paths searched, in order, when no config path is given
var defaultPaths = []string{"pyproject.toml", ".bumpytrack.yml", ".bumpytrack.yaml"}

// Config the decoded bumpytrack configuration
type Config struct {
	Path           string                `toml:"-" yaml:"-"`
	Format         Format                `toml:"-" yaml:"-"`
	CurrentVersion string                `toml:"current_version" yaml:"current_version"`
	FileReplaces   []replace.FileReplace `toml:"file_replaces" yaml:"file_replaces"`
	GitCommit      *bool                 `toml:"git_commit" yaml:"git_commit"`
	GitTag         *bool                 `toml:"git_tag" yaml:"git_tag"`
}

// pyproject.toml keeps tool settings under [tool.<name>]
type pyproject struct {
	Tool struct {
		Bumpytrack Config `toml:"bumpytrack"`
	} `toml:"tool"`
}

// DefaultPath returns the first existing default config file, falling
// back to pyproject.toml
func DefaultPath() string {
	for _, p := range defaultPaths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}

	return defaultPaths[0]
}

// FormatOf infers the config format from a file extension
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return YAML
	default:
		return TOML
	}
}

// Load reads and decodes the config file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("%w at '%s': %s", ErrLoad, path, err)
	}

	format := FormatOf(path)

	var conf Config

	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &conf)
	default:
		var doc pyproject
		err = toml.Unmarshal(data, &doc)
		conf = doc.Tool.Bumpytrack
	}

	if err != nil {
		return nil, fmt.Errorf("%w at '%s': %s", ErrLoad, path, err)
	}

	for i, fr := range conf.FileReplaces {
		if fr.Path == "" {
			return nil, fmt.Errorf(
				"%w at '%s': file_replaces entry %d is missing a path",
				ErrLoad,
				path,
				i,
			)
		}
	}

	conf.Path = path
	conf.Format = format

	if err := conf.checkSelfReplaceable(data); err != nil {
		return nil, err
	}

	return &conf, nil
}

// the config file is rewritten by a literal search, so current_version must
// appear exactly as the self replace template renders it (unquoted in YAML)
func (c *Config) checkSelfReplaceable(data []byte) error {
	if c.CurrentVersion == "" {
		return nil
	}

	search := strings.ReplaceAll(
		c.SelfReplace().Template(),
		replace.Placeholder,
		c.CurrentVersion,
	)

	if !strings.Contains(string(data), search) {
		return fmt.Errorf(
			"%w at '%s': current_version must be written as '%s'",
			ErrLoad,
			c.Path,
			search,
		)
	}

	return nil
}

// SelfReplace returns the implicit replace spec for the config file itself
func (c *Config) SelfReplace() replace.FileReplace {
	template := `current_version = "{version}"`

	if c.Format == YAML {
		template = "current_version: {version}"
	}

	return replace.FileReplace{Path: c.Path, SearchTemplate: template}
}

// Resolve merges an explicit toggle with its configured default
func Resolve(explicit, configured *bool) bool {
	if explicit != nil {
		return *explicit
	}

	if configured != nil {
		return *configured
	}

	return false
}
