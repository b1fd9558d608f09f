// SPDX-License-Identifier: GPL-3.0-or-later

package replace

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/robgonnella/go-bumpytrack/internal/logger"
	"github.com/robgonnella/go-bumpytrack/internal/version"
)

// Engine implements the FileReplacer interface using literal substring
// replacement on the local filesystem
type Engine struct {
	log logger.Logger
}

// NewEngine returns a new instance of Engine
func NewEngine(log logger.Logger) *Engine {
	return &Engine{log: log}
}

// Replace implements the Replace interface method
func (e *Engine) Replace(spec FileReplace, current, next version.Version) (*Change, error) {
	change, contents, mode, err := e.plan(spec, current, next)

	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(spec.Path, contents, mode); err != nil {
		return nil, fmt.Errorf("%w: '%s': %s", ErrFileNotAccessible, spec.Path, err)
	}

	return change, nil
}

// Preview implements the Preview interface method
func (e *Engine) Preview(spec FileReplace, current, next version.Version) (*Change, error) {
	change, _, _, err := e.plan(spec, current, next)
	return change, err
}

func (e *Engine) plan(
	spec FileReplace,
	current,
	next version.Version,
) (*Change, []byte, os.FileMode, error) {
	e.log.Debug().Msgf("Replacing version string in '%s'", spec.Path)

	search := spec.Render(current)
	replace := spec.Render(next)

	e.log.Debug().Msgf("Searching '%s' and replacing for '%s'", search, replace)

	original, mode, err := readWritable(spec.Path)

	if err != nil {
		return nil, nil, 0, err
	}

	occurrences := bytes.Count(original, []byte(search))
	updated := bytes.ReplaceAll(original, []byte(search), []byte(replace))

	if bytes.Equal(original, updated) {
		return nil, nil, 0, fmt.Errorf(
			"%w in file '%s': this looks like a misconfiguration or an "+
				"inconsistent version in config file",
			ErrNoSubstitutionMade,
			spec.Path,
		)
	}

	change := &Change{
		Path:        spec.Path,
		Search:      search,
		Replace:     replace,
		Occurrences: occurrences,
	}

	return change, updated, mode, nil
}

// a target must be both readable and writable
func readWritable(path string) ([]byte, os.FileMode, error) {
	info, err := os.Stat(path)

	if err != nil {
		return nil, 0, fmt.Errorf("%w: '%s'", ErrFileNotAccessible, path)
	}

	if info.IsDir() {
		return nil, 0, fmt.Errorf("%w: '%s' is a directory", ErrFileNotAccessible, path)
	}

	file, err := os.OpenFile(path, os.O_RDWR, 0)

	if err != nil {
		return nil, 0, fmt.Errorf("%w: '%s'", ErrFileNotAccessible, path)
	}

	defer file.Close()

	contents, err := io.ReadAll(file)

	if err != nil {
		return nil, 0, fmt.Errorf("%w: '%s': %s", ErrFileNotAccessible, path, err)
	}

	return contents, info.Mode().Perm(), nil
}
