// SPDX-License-Identifier: GPL-3.0-or-later

package vcs

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Option configures a Git instance
type Option = func(g *Git)

// WithDir runs every git command inside dir
func WithDir(dir string) Option {
	return func(g *Git) {
		g.dir = dir
	}
}

// WithBinary sets the git executable to use
func WithBinary(binary string) Option {
	return func(g *Git) {
		if binary != "" {
			g.binary = binary
		}
	}
}

// Git implementation of the VersionControl interface using git
type Git struct {
	binary string
	dir    string
}

// NewGit returns a new instance of Git
func NewGit(options ...Option) *Git {
	g := &Git{binary: "git"}

	for _, o := range options {
		o(g)
	}

	return g
}

// IsAvailable returns an error if the git executable cannot be run
func (g *Git) IsAvailable() error {
	if _, err := g.run("--version"); err != nil {
		return errors.New("git is not available on the system")
	}

	return nil
}

// CommitAll implements the CommitAll method using git
func (g *Git) CommitAll(paths []string, message string) error {
	if _, err := g.run("reset", "--quiet", "HEAD"); err != nil {
		return err
	}

	addArgs := append([]string{"add", "--"}, paths...)

	if _, err := g.run(addArgs...); err != nil {
		return err
	}

	_, err := g.run("commit", "-m", message)

	return err
}

// Tag implements the Tag method using git
func (g *Git) Tag(name string) error {
	_, err := g.run("tag", name)
	return err
}

// DeleteTag implements the DeleteTag method using git
func (g *Git) DeleteTag(name string) error {
	if _, err := g.run("rev-parse", "--quiet", "--verify", "refs/tags/"+name); err != nil {
		// --quiet --verify exits 1 only when the ref does not resolve
		if exitCode(err) == 1 {
			return fmt.Errorf("%w: %s", ErrTagNotFound, name)
		}

		return err
	}

	_, err := g.run("tag", "-d", name)

	return err
}

// ResetHardToPrevious implements the ResetHardToPrevious method using git
func (g *Git) ResetHardToPrevious() error {
	_, err := g.run("reset", "--hard", "HEAD~1")
	return err
}

// LastCommitMessage implements the LastCommitMessage method using git
func (g *Git) LastCommitMessage() (string, error) {
	out, err := g.run("log", "-1", "--pretty=%B")

	if err != nil {
		return "", err
	}

	return strings.TrimRight(out, "\n"), nil
}

// exitCode returns the exit status of a failed command or -1 when it never ran
func exitCode(err error) int {
	var exitErr *exec.ExitError

	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}

func (g *Git) run(args ...string) (string, error) {
	cmd := exec.Command(g.binary, args...)
	cmd.Dir = g.dir

	out, err := cmd.CombinedOutput()

	if err != nil {
		return "", &CommandError{
			Args:   append([]string{g.binary}, args...),
			Output: string(out),
			Err:    err,
		}
	}

	return string(out), nil
}
