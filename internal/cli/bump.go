// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"

	"github.com/robgonnella/go-bumpytrack/internal/config"
	"github.com/robgonnella/go-bumpytrack/internal/core"
	"github.com/robgonnella/go-bumpytrack/internal/logger"
	"github.com/robgonnella/go-bumpytrack/internal/version"
)

func newBump(runner core.Runner, log logger.Logger, configPath *string) *cobra.Command {
	var currentVersion string
	var newVersion string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "bump [major|minor|patch|<version>]",
		Short: "Bumps the version in all configured files",
		Long: `Bumps the current version by incrementing the given part or by
setting an explicit version, rewrites every configured file and optionally
records the bump as a git commit and tag`,
		Args: cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(*configPath)

			if err != nil {
				return err
			}

			log.Debug().Str("path", conf.Path).Msg("loaded config")

			gitCommit, err := toggle(cmd, "git-commit", "no-git-commit")

			if err != nil {
				return err
			}

			gitTag, err := toggle(cmd, "git-tag", "no-git-tag")

			if err != nil {
				return err
			}

			req := core.BumpRequest{
				Config:         conf,
				CurrentVersion: currentVersion,
				NewVersion:     newVersion,
				GitCommit:      gitCommit,
				GitTag:         gitTag,
				DryRun:         dryRun,
			}

			if len(args) == 1 {
				if err := applyTarget(&req, args[0]); err != nil {
					return err
				}
			}

			result, err := runner.Bump(req)

			if err != nil {
				return err
			}

			printBumpResult(cmd.OutOrStdout(), result)

			return nil
		},
	}

	cmd.Flags().StringVar(&currentVersion, "current-version", "", "override the current version from the config file")
	cmd.Flags().StringVar(&newVersion, "new-version", "", "set an explicit new version instead of incrementing a part")
	cmd.Flags().Bool("git-commit", false, "commit the bumped files")
	cmd.Flags().Bool("no-git-commit", false, "do not commit the bumped files")
	cmd.Flags().Bool("git-tag", false, "tag the bump commit")
	cmd.Flags().Bool("no-git-tag", false, "do not tag the bump commit")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would change without writing files or touching git")

	cmd.MarkFlagsMutuallyExclusive("git-commit", "no-git-commit")
	cmd.MarkFlagsMutuallyExclusive("git-tag", "no-git-tag")

	return cmd
}

// applyTarget interprets the positional argument as an explicit version
// when it parses as one, otherwise as a part
func applyTarget(req *core.BumpRequest, arg string) error {
	if _, err := version.Parse(arg); err == nil {
		if req.NewVersion == "" {
			req.NewVersion = arg
		}

		return nil
	}

	part, err := version.ParsePart(arg)

	if err != nil {
		return err
	}

	req.Part = part

	return nil
}

func printBumpResult(out io.Writer, result *core.BumpResult) {
	var changeTable = table.NewWriter()
	changeTable.SetOutputMirror(out)
	changeTable.AppendHeader(table.Row{"FILE", "SEARCH", "REPLACE", "OCCURRENCES"})

	for _, c := range result.Changes {
		changeTable.AppendRow(table.Row{c.Path, c.Search, c.Replace, c.Occurrences})
	}

	changeTable.Render()

	switch {
	case result.DryRun:
		fmt.Fprintf(out, "dry run: %s → %s (no files written)\n", result.Current, result.New)
	case result.Tag != "":
		fmt.Fprintf(out, "bumped %s → %s (committed, tagged %s)\n", result.Current, result.New, result.Tag)
	case result.Committed:
		fmt.Fprintf(out, "bumped %s → %s (committed)\n", result.Current, result.New)
	default:
		fmt.Fprintf(out, "bumped %s → %s\n", result.Current, result.New)
	}
}
