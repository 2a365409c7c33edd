package commands

import (
	"fmt"

	"github.com/gruntwork-io/go-utils/pkg/deepequal"
	"github.com/urfave/cli/v2"
)

const ExitCodeFlagName = "exit-code"

// NewEqualCommand compares two JSON values structurally.
func NewEqualCommand(opts *Options) *cli.Command {
	return &cli.Command{
		Name:      "equal",
		Usage:     "Deep compare two JSON values",
		ArgsUsage: "A B",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  ExitCodeFlagName,
				Usage: "Exit with code 1 when the values differ.",
			},
		},
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if err := expectArgs(args, 2, 2); err != nil { //nolint:mnd
				return err
			}

			vals, err := parseValues(args)
			if err != nil {
				return err
			}

			equal := deepequal.Equal(vals[0], vals[1])

			if _, err := fmt.Fprintln(c.App.Writer, equal); err != nil {
				return err
			}

			if !equal && c.Bool(ExitCodeFlagName) {
				opts.Logger.Debugf("Values differ")

				return cli.Exit("", 1)
			}

			return nil
		},
	}
}
