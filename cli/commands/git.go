package commands

import (
	"fmt"

	"github.com/gruntwork-io/go-utils/pkg/command"
	"github.com/gruntwork-io/go-utils/pkg/git"
	"github.com/urfave/cli/v2"
)

const DirFlagName = "dir"

// NewGitCommand runs a git subcommand and prints its trimmed output.
func NewGitCommand(opts *Options) *cli.Command {
	return &cli.Command{
		Name:      "git",
		Usage:     "Run a git subcommand",
		ArgsUsage: "SUBCOMMAND [ARGS...]",
		Description: `Arguments are split with shell quoting rules when given as a single string.

Example:
  go-utils git "log -1 --format='%h %s'"
  go-utils git version`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  DirFlagName,
				Usage: "Working directory of the repository.",
			},
		},
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if len(args) == 1 {
				split, err := command.SplitArgs(args[0])
				if err != nil {
					return err
				}

				args = split
			}

			if err := expectArgs(args, 1, len(args)); err != nil {
				return err
			}

			repo := git.New(command.WithDir(c.String(DirFlagName)), command.WithLogger(opts.Logger))

			if _, err := repo.Verify(c.Context); err != nil {
				return err
			}

			if args[0] == "version" && len(args) == 1 {
				ver, err := repo.Version(c.Context)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(c.App.Writer, ver.String())

				return err
			}

			out, err := repo.Run(c.Context, args[0], args[1:])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.App.Writer, out)

			return err
		},
	}
}
