package commands

import (
	"github.com/gruntwork-io/go-utils/pkg/cloner"
	"github.com/urfave/cli/v2"
)

const FullCopyFlagName = "full-copy"

// NewCloneCommand deep clones a JSON value and prints the copy.
func NewCloneCommand(opts *Options) *cli.Command {
	return &cli.Command{
		Name:      "clone",
		Usage:     "Deep clone a JSON value",
		ArgsUsage: "VALUE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  FullCopyFlagName,
				Usage: "Copy everything, maps and dates included, instead of arrays and objects only.",
			},
		},
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if err := expectArgs(args, 1, 1); err != nil {
				return err
			}

			val, err := parseValue(args[0])
			if err != nil {
				return err
			}

			var cloneOpts []cloner.Option

			if c.Bool(FullCopyFlagName) {
				cloneOpts = append(cloneOpts, cloner.WithPredicates(cloner.CloneDate, cloner.CloneMap, cloner.CloneAny))
			}

			cloned := cloner.CloneValue(val, cloneOpts...)
			opts.Logger.Debugf("Cloned a %T value", cloned)

			return writeJSON(c.App.Writer, cloned)
		},
	}
}
