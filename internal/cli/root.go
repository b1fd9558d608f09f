// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/robgonnella/go-bumpytrack/internal/config"
	"github.com/robgonnella/go-bumpytrack/internal/core"
	"github.com/robgonnella/go-bumpytrack/internal/info"
	"github.com/robgonnella/go-bumpytrack/internal/logger"
)

// Root builds the bumpytrack command tree around runner
func Root(runner core.Runner, log logger.Logger) (*cobra.Command, error) {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:           "bumpytrack",
		Short:         "Bump versions and track them in git",
		Long:          `CLI to bump semantic versions in files and record the bump as a git commit and tag`,
		Version:       info.VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetVerbose(verbose)
		},
	}

	cmd.SetVersionTemplate("bumpytrack {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config-path", config.DefaultPath(), "path to the config file (pyproject.toml or .bumpytrack.yml)")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	cmd.AddCommand(newBump(runner, log, &configPath))
	cmd.AddCommand(newUndo(runner, log, &configPath))
	cmd.AddCommand(newVersion(log))

	return cmd, nil
}

// toggle returns nil when neither flag of an on/off pair was given so the
// configured default applies. --no-x=false is treated as not given.
func toggle(cmd *cobra.Command, on, off string) (*bool, error) {
	flags := cmd.Flags()

	if flags.Changed(on) {
		v, err := flags.GetBool(on)

		if err != nil {
			return nil, err
		}

		return &v, nil
	}

	if flags.Changed(off) {
		v, err := flags.GetBool(off)

		if err != nil || !v {
			return nil, err
		}

		disabled := false

		return &disabled, nil
	}

	return nil, nil
}
