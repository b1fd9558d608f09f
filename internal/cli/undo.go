// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"

	"github.com/robgonnella/go-bumpytrack/internal/config"
	"github.com/robgonnella/go-bumpytrack/internal/core"
	"github.com/robgonnella/go-bumpytrack/internal/logger"
)

func newUndo(runner core.Runner, log logger.Logger, configPath *string) *cobra.Command {
	var currentVersion string

	cmd := &cobra.Command{
		Use:     "undo",
		Aliases: []string{"git-undo"},
		Short:   "Reverts the most recent bump commit and deletes its tag",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(*configPath)

			if err != nil {
				return err
			}

			log.Debug().Str("path", conf.Path).Msg("loaded config")

			result, err := runner.Undo(core.UndoRequest{
				Config:         conf,
				CurrentVersion: currentVersion,
			})

			if err != nil {
				return err
			}

			printUndoResult(cmd.OutOrStdout(), result)

			return nil
		},
	}

	cmd.Flags().StringVar(&currentVersion, "current-version", "", "override the current version from the config file")

	return cmd
}

func printUndoResult(out io.Writer, result *core.UndoResult) {
	commitStatus := "failed"

	if result.CommitReverted {
		commitStatus = "reverted"
	}

	tagStatus := "failed"

	switch {
	case result.TagDeleted:
		tagStatus = "deleted"
	case result.TagMissing:
		tagStatus = "did not exist"
	}

	var undoTable = table.NewWriter()
	undoTable.SetOutputMirror(out)
	undoTable.AppendHeader(table.Row{"VERSION", "COMMIT", "TAG", "TAG STATUS"})
	undoTable.AppendRow(table.Row{result.Version.String(), commitStatus, result.Tag, tagStatus})
	undoTable.Render()
}
