package commands

import (
	"fmt"

	"github.com/gruntwork-io/go-utils/pkg/kind"
	"github.com/urfave/cli/v2"
)

const (
	FullFlagName       = "full"
	SimplifiedFlagName = "simplified"
)

// NewKindCommand prints the kind of each JSON argument, one per line.
func NewKindCommand(opts *Options) *cli.Command {
	return &cli.Command{
		Name:      "kind",
		Usage:     "Classify JSON values",
		ArgsUsage: "VALUE...",
		Description: `Prints the kind of every argument. Arguments are JSON; the bare word
"undefined" stands for a missing value.

Example:
  go-utils kind --simplified '[1,2]' '{"a":1}' undefined`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    FullFlagName,
				Aliases: []string{"f"},
				Usage:   "Print the full class tag, e.g. [object Array].",
			},
			&cli.BoolFlag{
				Name:    SimplifiedFlagName,
				Aliases: []string{"s"},
				Usage:   "Collapse kinds into array, object and primitives.",
			},
		},
		Action: func(c *cli.Context) error {
			vals, err := parseValues(c.Args().Slice())
			if err != nil {
				return err
			}

			var kindOpts []kind.Option

			if c.Bool(FullFlagName) {
				kindOpts = append(kindOpts, kind.WithFullClass())
			}

			if c.Bool(SimplifiedFlagName) {
				kindOpts = append(kindOpts, kind.Simplified())
			}

			for _, val := range vals {
				if _, err := fmt.Fprintln(c.App.Writer, kind.Classify(val, kindOpts...)); err != nil {
					return err
				}
			}

			opts.Logger.Debugf("Classified %d values", len(vals))

			return nil
		},
	}
}
