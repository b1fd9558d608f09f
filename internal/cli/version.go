// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/robgonnella/go-bumpytrack/internal/info"
	"github.com/robgonnella/go-bumpytrack/internal/logger"
)

func newVersion(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints version",
		Run: func(cmd *cobra.Command, args []string) {
			log.Info().Msgf("bumpytrack: %s", info.VERSION)
		},
	}
}
