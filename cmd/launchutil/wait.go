package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/animalet/launchutil/pkg/timeutil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newWaitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wait <duration>",
		Short: "Sleep for a duration such as 30s or 2m",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.ParseDuration(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid duration %q", args[0])
			}
			log.Debug().Dur("duration", d).Msg("Waiting")
			return timeutil.Sleep(cmd.Context(), d)
		},
	}
}

func newMinutesCmd() *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "minutes [--] <offset>",
		Short: "Print the current UTC minute shifted by offset (modulo 59)",
		Long: `Prints the current UTC minute shifted by offset, wrapping modulo 59.

A negative offset must follow -- or be passed with --offset, otherwise it is
read as a flag:

  launchutil minutes -- -5
  launchutil minutes --offset -5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := offset
			switch {
			case len(args) == 1 && cmd.Flags().Changed("offset"):
				return errors.New("give the offset as an argument or with --offset, not both")
			case len(args) == 1:
				var err error
				if n, err = strconv.Atoi(args[0]); err != nil {
					return errors.Wrapf(err, "invalid offset %q", args[0])
				}
			case !cmd.Flags().Changed("offset"):
				return errors.New("an offset is required")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), timeutil.AddMinutes(n, time.Time{}))
			return err
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Minutes to add, may be negative")
	return cmd
}
