// SPDX-License-Identifier: GPL-3.0-or-later

package core_test

import (
	"errors"
	"testing"

	"github.com/robgonnella/go-bumpytrack/internal/config"
	"github.com/robgonnella/go-bumpytrack/internal/core"
	"github.com/robgonnella/go-bumpytrack/internal/logger"
	mock_replace "github.com/robgonnella/go-bumpytrack/internal/mock/replace"
	mock_vcs "github.com/robgonnella/go-bumpytrack/internal/mock/vcs"
	"github.com/robgonnella/go-bumpytrack/internal/replace"
	"github.com/robgonnella/go-bumpytrack/internal/vcs"
	"github.com/robgonnella/go-bumpytrack/internal/version"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool {
	return &b
}

func testConfig() *config.Config {
	return &config.Config{
		Path:           "pyproject.toml",
		Format:         config.TOML,
		CurrentVersion: "1.2.3",
		FileReplaces: []replace.FileReplace{
			{Path: "setup.py", SearchTemplate: `version="{version}"`},
			{Path: "VERSION"},
		},
		GitCommit: boolPtr(true),
		GitTag:    boolPtr(true),
	}
}

func changeFor(spec replace.FileReplace, current, next version.Version) *replace.Change {
	return &replace.Change{
		Path:        spec.Path,
		Search:      spec.Render(current),
		Replace:     spec.Render(next),
		Occurrences: 1,
	}
}

func TestBump(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	current := version.Version{Major: 1, Minor: 2, Patch: 3}

	t.Run("returns error when current version cannot be obtained", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		conf := testConfig()
		conf.CurrentVersion = ""

		c := core.New(mockVc, mockFr, logger.NewNop())

		result, err := c.Bump(core.BumpRequest{Config: conf, Part: version.Patch})

		assert.ErrorIs(st, err, core.ErrMissingCurrentVersion)
		assert.Nil(st, result)
	})

	t.Run("returns error for malformed current version", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		c := core.New(mockVc, mockFr, logger.NewNop())

		_, err := c.Bump(core.BumpRequest{
			Config:         testConfig(),
			CurrentVersion: "1.2",
			Part:           version.Patch,
		})

		assert.ErrorIs(st, err, version.ErrMalformedVersion)
	})

	t.Run("rejects current version with leading zeros", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		conf := testConfig()
		conf.CurrentVersion = "01.2.3"

		c := core.New(mockVc, mockFr, logger.NewNop())

		_, err := c.Bump(core.BumpRequest{Config: conf, Part: version.Patch})

		assert.ErrorIs(st, err, version.ErrMalformedVersion)
	})

		t.Run("returns error when new version cannot be obtained", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		c := core.New(mockVc, mockFr, logger.NewNop())

		_, err := c.Bump(core.BumpRequest{Config: testConfig()})

		assert.ErrorIs(st, err, core.ErrMissingNewVersion)
	})

	t.Run("returns error for malformed new version", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		c := core.New(mockVc, mockFr, logger.NewNop())

		_, err := c.Bump(core.BumpRequest{Config: testConfig(), NewVersion: "two"})

		assert.ErrorIs(st, err, version.ErrMalformedVersion)
	})

	t.Run("returns error for unknown part", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		c := core.New(mockVc, mockFr, logger.NewNop())

		_, err := c.Bump(core.BumpRequest{Config: testConfig(), Part: version.Part("tiny")})

		assert.ErrorIs(st, err, version.ErrUnknownVersionPart)
	})

	t.Run("replaces files in order then commits and tags", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		conf := testConfig()
		next := version.Version{Major: 1, Minor: 3, Patch: 0}
		self := conf.SelfReplace()

		gomock.InOrder(
			mockFr.EXPECT().Replace(conf.FileReplaces[0], current, next).
				Return(changeFor(conf.FileReplaces[0], current, next), nil),
			mockFr.EXPECT().Replace(conf.FileReplaces[1], current, next).
				Return(changeFor(conf.FileReplaces[1], current, next), nil),
			mockFr.EXPECT().Replace(self, current, next).
				Return(changeFor(self, current, next), nil),
			mockVc.EXPECT().CommitAll(
				[]string{"setup.py", "VERSION", "pyproject.toml"},
				"Bumping version: 1.2.3 → 1.3.0",
			).Return(nil),
			mockVc.EXPECT().Tag("v1.3.0").Return(nil),
		)

		c := core.New(mockVc, mockFr, logger.NewNop())

		result, err := c.Bump(core.BumpRequest{Config: conf, Part: version.Minor})

		assert.NoError(st, err)
		assert.Equal(st, current, result.Current)
		assert.Equal(st, next, result.New)
		assert.Equal(st, 3, len(result.Changes))
		assert.True(st, result.Committed)
		assert.Equal(st, "v1.3.0", result.Tag)
		assert.False(st, result.DryRun)
	})

	t.Run("explicit new version takes precedence over part", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		conf := testConfig()
		conf.FileReplaces = nil
		next := version.Version{Major: 5, Minor: 0, Patch: 0}

		mockFr.EXPECT().Replace(conf.SelfReplace(), current, next).
			Return(changeFor(conf.SelfReplace(), current, next), nil)

		c := core.New(mockVc, mockFr, logger.NewNop())

		result, err := c.Bump(core.BumpRequest{
			Config:     conf,
			NewVersion: "5.0.0",
			Part:       version.Patch,
			GitCommit:  boolPtr(false),
			GitTag:     boolPtr(false),
		})

		assert.NoError(st, err)
		assert.Equal(st, next, result.New)
		assert.False(st, result.Committed)
		assert.Empty(st, result.Tag)
	})

	t.Run("current version override takes precedence over config", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		conf := testConfig()
		conf.FileReplaces = nil
		conf.GitCommit = nil
		conf.GitTag = nil

		overridden := version.Version{Major: 2, Minor: 0, Patch: 0}
		next := version.Version{Major: 2, Minor: 0, Patch: 1}

		mockFr.EXPECT().Replace(conf.SelfReplace(), overridden, next).
			Return(changeFor(conf.SelfReplace(), overridden, next), nil)

		c := core.New(mockVc, mockFr, logger.NewNop())

		result, err := c.Bump(core.BumpRequest{
			Config:         conf,
			CurrentVersion: "2.0.0",
			Part:           version.Patch,
		})

		assert.NoError(st, err)
		assert.Equal(st, overridden, result.Current)
		assert.False(st, result.Committed)
	})

	t.Run("explicit flags override configured defaults", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		conf := testConfig()
		conf.FileReplaces = nil
		conf.GitCommit = boolPtr(false)
		conf.GitTag = boolPtr(true)

		next := version.Version{Major: 1, Minor: 2, Patch: 4}

		mockFr.EXPECT().Replace(conf.SelfReplace(), current, next).
			Return(changeFor(conf.SelfReplace(), current, next), nil)
		mockVc.EXPECT().CommitAll([]string{"pyproject.toml"}, "Bumping version: 1.2.3 → 1.2.4").
			Return(nil)

		c := core.New(mockVc, mockFr, logger.NewNop())

		result, err := c.Bump(core.BumpRequest{
			Config:    conf,
			Part:      version.Patch,
			GitCommit: boolPtr(true),
			GitTag:    boolPtr(false),
		})

		assert.NoError(st, err)
		assert.True(st, result.Committed)
		assert.Empty(st, result.Tag)
	})

	t.Run("commits each modified path once", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		conf := testConfig()
		conf.GitTag = boolPtr(false)
		conf.FileReplaces = []replace.FileReplace{
			{Path: "README.md", SearchTemplate: "badge/{version}"},
			{Path: "README.md", SearchTemplate: "Version {version}"},
		}

		next := version.Version{Major: 1, Minor: 2, Patch: 4}

		mockFr.EXPECT().Replace(gomock.Any(), current, next).
			Return(&replace.Change{Occurrences: 1}, nil).
			Times(3)
		mockVc.EXPECT().CommitAll([]string{"README.md", "pyproject.toml"}, gomock.Any()).
			Return(nil)

		c := core.New(mockVc, mockFr, logger.NewNop())

		result, err := c.Bump(core.BumpRequest{Config: conf, Part: version.Patch})

		assert.NoError(st, err)
		assert.Equal(st, 3, len(result.Changes))
	})

	t.Run("dry run previews without writing or touching git", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		conf := testConfig()
		next := version.Version{Major: 2, Minor: 0, Patch: 0}

		mockFr.EXPECT().Preview(gomock.Any(), current, next).
			Return(&replace.Change{Occurrences: 1}, nil).
			Times(3)

		c := core.New(mockVc, mockFr, logger.NewNop())

		result, err := c.Bump(core.BumpRequest{
			Config: conf,
			Part:   version.Major,
			DryRun: true,
		})

		assert.NoError(st, err)
		assert.True(st, result.DryRun)
		assert.False(st, result.Committed)
		assert.Empty(st, result.Tag)
	})

	t.Run("aborts on first failed substitution", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		conf := testConfig()
		next := version.Version{Major: 1, Minor: 2, Patch: 4}

		mockFr.EXPECT().Replace(conf.FileReplaces[0], current, next).
			Return(nil, replace.ErrNoSubstitutionMade)

		c := core.New(mockVc, mockFr, logger.NewNop())

		result, err := c.Bump(core.BumpRequest{Config: conf, Part: version.Patch})

		assert.ErrorIs(st, err, replace.ErrNoSubstitutionMade)
		assert.Nil(st, result)
	})

	t.Run("does not tag when commit fails", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		conf := testConfig()
		conf.FileReplaces = nil

		commitErr := &vcs.CommandError{
			Args:   []string{"commit"},
			Output: "nothing to commit",
			Err:    errors.New("exit status 1"),
		}

		mockFr.EXPECT().Replace(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&replace.Change{Occurrences: 1}, nil)
		mockVc.EXPECT().CommitAll(gomock.Any(), gomock.Any()).Return(commitErr)

		c := core.New(mockVc, mockFr, logger.NewNop())

		_, err := c.Bump(core.BumpRequest{Config: conf, Part: version.Patch})

		assert.ErrorIs(st, err, vcs.ErrCommandFailed)
	})

	t.Run("proceeds with a downgrade", func(st *testing.T) {
		mockVc := mock_vcs.NewMockVersionControl(ctrl)
		mockFr := mock_replace.NewMockFileReplacer(ctrl)

		conf := testConfig()
		conf.FileReplaces = nil
		conf.GitCommit = nil
		conf.GitTag = nil

		next := version.Version{Major: 1, Minor: 0, Patch: 0}

		mockFr.EXPECT().Replace(conf.SelfReplace(), current, next).
			Return(changeFor(conf.SelfReplace(), current, next), nil)

		c := core.New(mockVc, mockFr, logger.NewNop())

		result, err := c.Bump(core.BumpRequest{Config: conf, NewVersion: "1.0.0"})

		assert.NoError(st, err)
		assert.Equal(st, next, result.New)
	})
}

func TestCommitMessage(t *testing.T) {
	t.Run("formats bump commit message", func(st *testing.T) {
		msg := core.CommitMessage(
			version.Version{Major: 1, Minor: 2, Patch: 3},
			version.Version{Major: 1, Minor: 2, Patch: 4},
		)

		assert.Equal(st, "Bumping version: 1.2.3 → 1.2.4", msg)
	})

	t.Run("formats tag name", func(st *testing.T) {
		assert.Equal(st, "v0.1.0", core.TagName(version.Version{Minor: 1}))
	})

	t.Run("recognizes bump commits", func(st *testing.T) {
		v := version.Version{Major: 1, Minor: 2, Patch: 3}

		assert.True(st, core.IsBumpCommit("Bumping version: 1.2.2 → 1.2.3", v))
		assert.True(st, core.IsBumpCommit("Bumping version: 1.2.2 → 1.2.3\n", v))
		assert.False(st, core.IsBumpCommit("Bumping version: 1.2.2 → 11.2.3", v))
		assert.False(st, core.IsBumpCommit("Bumping version: 1.2.3 → 1.2.4", v))
		assert.False(st, core.IsBumpCommit("unrelated change for 1.2.3", v))
	})
}
