package commands

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/env"
	"github.com/gruntwork-io/go-utils/pkg/fetcher"
	"github.com/urfave/cli/v2"
)

const (
	MethodFlagName  = "method"
	ParamFlagName   = "param"
	HeaderFlagName  = "header"
	AuthFlagName    = "auth"
	RetriesFlagName = "retries"

	retryInterval = time.Second
)

// NewFetchCommand sends a JSON request and prints the response body.
func NewFetchCommand(opts *Options) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Send a JSON HTTP request",
		ArgsUsage: "PATH",
		Description: `PATH is resolved against --base-url. The response body is printed as is;
non-2xx responses fail with the status and the body.

Example:
  go-utils --base-url https://api.example.com/v1/ fetch --param page=2 users`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    MethodFlagName,
				Aliases: []string{"X"},
				Usage:   "HTTP method.",
				Value:   http.MethodGet,
			},
			&cli.StringFlag{
				Name:    DataFlagName,
				Aliases: []string{"d"},
				Usage:   "JSON request body.",
			},
			&cli.StringSliceFlag{
				Name:  ParamFlagName,
				Usage: "Query parameter as key=value. May be repeated.",
			},
			&cli.BoolFlag{
				Name:  AuthFlagName,
				Usage: "Fail unless a token is given with --token or $" + TokenEnvName + ".",
			},
			&cli.IntFlag{
				Name:  RetriesFlagName,
				Usage: "Retries after network errors and 5xx responses. Defaults to $" + RetriesEnvName + ".",
				Value: env.GetIntEnv(RetriesEnvName, 0),
			},
			&cli.StringSliceFlag{
				Name:    HeaderFlagName,
				Aliases: []string{"H"},
				Usage:   "Request header as key=value. May be repeated.",
			},
		},
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if err := expectArgs(args, 1, 1); err != nil {
				return err
			}

			token, err := resolveToken(opts.Token, c.Bool(AuthFlagName))
			if err != nil {
				return err
			}

			client, err := fetcher.New(fetcher.Config{
				BaseURL:       opts.BaseURL,
				Token:         token,
				Logger:        opts.Logger,
				MaxRetries:    c.Int(RetriesFlagName),
				RetryInterval: retryInterval,
			})
			if err != nil {
				return err
			}

			var body any

			if c.IsSet(DataFlagName) {
				if body, err = parseValue(c.String(DataFlagName)); err != nil {
					return err
				}
			}

			params, err := parsePairs(c.StringSlice(ParamFlagName))
			if err != nil {
				return err
			}

			headers, err := parsePairs(c.StringSlice(HeaderFlagName))
			if err != nil {
				return err
			}

			reqOpts := []fetcher.RequestOption{fetcher.WithParameters(params)}
			for key, val := range headers {
				reqOpts = append(reqOpts, fetcher.WithHeader(key, fmt.Sprint(val)))
			}

			resp, err := client.Do(c.Context, strings.ToUpper(c.String(MethodFlagName)), args[0], body, reqOpts...)
			if err != nil {
				var respErr *fetcher.ResponseError
				if errors.As(err, &respErr) && respErr.Body != "" {
					opts.Logger.Debugf("Response body: %s", respErr.Body)
				}

				return err
			}

			_, err = fmt.Fprintln(c.App.Writer, string(resp.Body))

			return err
		},
	}
}

// resolveToken prefers the flag over the environment. With auth required a missing token is an error.
func resolveToken(flagToken string, required bool) (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}

	if required {
		return env.GetSafeEnv(TokenEnvName)
	}

	return env.GetStringEnv(TokenEnvName, ""), nil
}

func parsePairs(pairs []string) (map[string]any, error) {
	parsed := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("expected key=value, got %q", pair)
		}

		parsed[key] = val
	}

	return parsed, nil
}
