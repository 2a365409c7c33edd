package commands

import (
	"fmt"
	"strconv"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/util"
	"github.com/urfave/cli/v2"
)

const AtFlagName = "at"

// NewRangeCommand prints an inclusive integer range, or the element at a wrapped index of it.
func NewRangeCommand(opts *Options) *cli.Command {
	return &cli.Command{
		Name:      "range",
		Usage:     "Print an inclusive range of integers",
		ArgsUsage: "START END",
		Description: `Prints the integers from START to END, both included. The range descends
when START is greater than END. With --at, prints only the element at that index;
indexes wrap around in both directions.

Example:
  go-utils range --at -1 1 5`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  AtFlagName,
				Usage: "Print the element at this index, wrapping around the range.",
			},
		},
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if err := expectArgs(args, 2, 2); err != nil { //nolint:mnd
				return err
			}

			bounds := make([]int, len(args))

			for i, arg := range args {
				num, err := strconv.Atoi(arg)
				if err != nil {
					return errors.Errorf("invalid bound %q: %w", arg, err)
				}

				bounds[i] = num
			}

			nums := util.Range(bounds[0], bounds[1])
			opts.Logger.Debugf("Range %d..%d has %d elements", bounds[0], bounds[1], len(nums))

			if !c.IsSet(AtFlagName) {
				return writeJSON(c.App.Writer, nums)
			}

			index, err := strconv.Atoi(c.String(AtFlagName))
			if err != nil {
				return errors.Errorf("invalid index %q: %w", c.String(AtFlagName), err)
			}

			_, err = fmt.Fprintln(c.App.Writer, util.LoopAround(nums, index))

			return err
		},
	}
}
