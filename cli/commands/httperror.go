package commands

import (
	"strconv"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/httperror"
	"github.com/urfave/cli/v2"
)

const DataFlagName = "data"

type httpErrorView struct {
	Data       any    `json:"data,omitempty"`
	Name       string `json:"name"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

// NewHTTPErrorCommand describes the error value for a status code or status name.
func NewHTTPErrorCommand(opts *Options) *cli.Command {
	return &cli.Command{
		Name:      "http-error",
		Usage:     "Describe the error for an HTTP status",
		ArgsUsage: "STATUS [MESSAGE]",
		Description: `STATUS is either a numeric code (404) or a PascalCase status name (NotFound).

Example:
  go-utils http-error --data '{"id":42}' NotFound "user does not exist"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  DataFlagName,
				Usage: "JSON data attached to the error.",
			},
		},
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if err := expectArgs(args, 1, 2); err != nil { //nolint:mnd
				return err
			}

			statusCode, err := parseStatus(args[0])
			if err != nil {
				return err
			}

			var errOpts []httperror.Option

			if c.IsSet(DataFlagName) {
				data, err := parseValue(c.String(DataFlagName))
				if err != nil {
					return err
				}

				errOpts = append(errOpts, httperror.WithData(data))
			}

			var message string
			if len(args) > 1 {
				message = args[1]
			}

			httpErr := httperror.New(statusCode, message, errOpts...)
			opts.Logger.Debugf("Built %s for status %d", httpErr.Name(), statusCode)

			return writeJSON(c.App.Writer, httpErrorView{
				Data:       httpErr.Data,
				Name:       httpErr.Name(),
				Message:    httpErr.Message,
				Error:      httpErr.Error(),
				StatusCode: httpErr.StatusCode,
			})
		},
	}
}

func parseStatus(arg string) (int, error) {
	if statusCode, err := strconv.Atoi(arg); err == nil {
		return statusCode, nil
	}

	if statusCode, ok := httperror.ByName(arg); ok {
		return statusCode, nil
	}

	return 0, errors.Errorf("unknown HTTP status %q", arg)
}
