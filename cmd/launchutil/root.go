package main

import (
	"os"

	"github.com/animalet/launchutil/logger"
	"github.com/animalet/launchutil/pkg/console"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	debug         bool
	noColor       bool
	quietPatterns []string
	filter        *console.Filter
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "launchutil",
		Short:         "Helpers for network launch tooling",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.setupLogging(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.filter != nil {
				opts.filter.Release()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored log output")
	flags.StringArrayVar(&opts.quietPatterns, "quiet-pattern", nil, "Drop log lines containing this text (repeatable)")

	cmd.AddCommand(
		newConfigCmd(),
		newNamespaceCmd(),
		newCredsCmd(),
		newReadCmd(),
		newWaitCmd(),
		newMinutesCmd(),
	)
	return cmd
}

func (o *rootOptions) setupLogging(cmd *cobra.Command) {
	level := logger.INFO
	if o.debug {
		level = logger.DEBUG
	}
	out := cmd.ErrOrStderr()
	color := !o.noColor && out == os.Stderr
	logger.Setup(out, level, color)

	if len(o.quietPatterns) > 0 {
		o.filter = console.NewFilter(logger.ConsoleWriter(out, color), o.quietPatterns)
		log.Logger = o.filter.Wrap(log.Logger)
	}
}
