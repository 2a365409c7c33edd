// Package cli assembles the go-utils command line application.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/gruntwork-io/go-utils/cli/commands"
	"github.com/gruntwork-io/go-utils/pkg/log"
	"github.com/urfave/cli/v2"
)

const (
	AppName = "go-utils"

	LogLevelFlagName = "log-level"
	BaseURLFlagName  = "base-url"
	TokenFlagName    = "token"

	LogLevelEnvName = "GO_UTILS_LOG_LEVEL"
	LogJSONEnvName  = "GO_UTILS_LOG_JSON"
	BaseURLEnvName  = "GO_UTILS_BASE_URL"
	TokenEnvName    = commands.TokenEnvName
)

// App is the CLI app.
type App struct {
	*cli.App
	opts *commands.Options
}

// NewApp creates the app with its commands writing to stdout and logging to stderr.
func NewApp(logger log.Logger) *App {
	return NewAppWithWriters(logger, os.Stdout, os.Stderr)
}

// NewAppWithWriters creates the app with explicit output destinations.
func NewAppWithWriters(logger log.Logger, writer, errWriter io.Writer) *App {
	opts := &commands.Options{Logger: logger}

	app := &cli.App{
		Name:                 AppName,
		Usage:                "Classify, compare and clone values, and a handful of everyday helpers",
		Writer:               writer,
		ErrWriter:            errWriter,
		EnableBashCompletion: true,
		HideVersion:          true,
		ExitErrHandler:       func(*cli.Context, error) {},
		Flags:                globalFlags(opts),
		Before: func(c *cli.Context) error {
			return opts.Logger.SetLevel(c.String(LogLevelFlagName))
		},
		Commands: []*cli.Command{
			commands.NewKindCommand(opts),
			commands.NewEqualCommand(opts),
			commands.NewCloneCommand(opts),
			commands.NewRangeCommand(opts),
			commands.NewCookieCommand(opts),
			commands.NewHTTPErrorCommand(opts),
			commands.NewFetchCommand(opts),
			commands.NewGitCommand(opts),
		},
	}

	return &App{App: app, opts: opts}
}

// RunContext runs the app, making the logger available to every command through ctx.
func (app *App) RunContext(ctx context.Context, args []string) error {
	ctx = log.ContextWithLogger(ctx, app.opts.Logger)

	return app.App.RunContext(ctx, args)
}

func globalFlags(opts *commands.Options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    LogLevelFlagName,
			EnvVars: []string{LogLevelEnvName},
			Usage:   "Sets the logging level: " + log.AllLevels.String() + ".",
			Value:   log.InfoLevel.String(),
		},
		&cli.StringFlag{
			Name:        BaseURLFlagName,
			EnvVars:     []string{BaseURLEnvName},
			Usage:       "Base URL that fetch resolves relative paths against.",
			Destination: &opts.BaseURL,
		},
		&cli.StringFlag{
			Name:        TokenFlagName,
			Usage:       "Bearer token sent by fetch. Defaults to $" + TokenEnvName + ".",
			Destination: &opts.Token,
		},
	}
}
