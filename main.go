// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/robgonnella/go-bumpytrack/internal/cli"
	"github.com/robgonnella/go-bumpytrack/internal/core"
	"github.com/robgonnella/go-bumpytrack/internal/logger"
	"github.com/robgonnella/go-bumpytrack/internal/replace"
	"github.com/robgonnella/go-bumpytrack/internal/vcs"
)

func main() {
	log := logger.New(os.Stderr)

	runner := core.New(vcs.NewGit(), replace.NewEngine(log), log)

	cmd, err := cli.Root(runner, log)

	if err != nil {
		abort(log, err, "failed to initialize cli")
	}

	if err := cmd.Execute(); err != nil {
		abort(log, err, "command encountered an error")
	}
}

func abort(log logger.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	fmt.Fprintln(os.Stderr, "Aborting!")
	os.Exit(1)
}
