package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zhuweiyou/rawmem/internal/logging"
)

type rootOptions struct {
	logLevel  string
	logPretty bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "rawmem",
		Short:        "Scan and patch memory-mapped files with AOB patterns",
		SilenceUsage: true,
	}

	defaults := logging.DefaultConfig()
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", defaults.Level, "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.logPretty, "log-pretty", defaults.Pretty, "human-readable log output")

	cmd.AddCommand(
		newScanCmd(opts),
		newPatchCmd(opts),
		newHexCmd(),
	)
	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command, component string) zerolog.Logger {
	return logging.NewWithComponent(logging.Config{
		Level:  o.logLevel,
		Pretty: o.logPretty,
		Output: cmd.ErrOrStderr(),
	}, component)
}
