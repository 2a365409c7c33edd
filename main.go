package main

import (
	"context"
	"os"

	"github.com/gruntwork-io/go-utils/cli"
	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/env"
	"github.com/gruntwork-io/go-utils/pkg/log"
	urfavecli "github.com/urfave/cli/v2"
)

// The main entrypoint for go-utils
func main() {
	logOpts := []log.Option{log.WithOutput(os.Stderr)}
	if env.GetBoolEnv(cli.LogJSONEnvName, false) {
		logOpts = append(logOpts, log.WithJSONFormat())
	}

	logger := log.New(logOpts...)

	// Apply the level from the environment right away so that early failures are logged at it.
	if level := env.GetStringEnv(cli.LogLevelEnvName, ""); level != "" {
		if err := logger.SetLevel(level); err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
	}

	defer errors.Recover(checkForErrorsAndExit(logger))

	app := cli.NewApp(logger)
	err := app.RunContext(context.Background(), os.Args)

	checkForErrorsAndExit(logger)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		exitCode := 1

		var exitCoder urfavecli.ExitCoder
		if errors.As(err, &exitCoder) {
			exitCode = exitCoder.ExitCode()
		}

		if msg := err.Error(); msg != "" {
			logger.Error(msg)
		}

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(exitCode)
	}
}
