package commands

import (
	"fmt"
	"time"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/cookie"
	"github.com/urfave/cli/v2"
)

const (
	MultipleFlagName = "multiple"

	DomainFlagName   = "domain"
	PathFlagName     = "path"
	ExpiresFlagName  = "expires"
	MaxAgeFlagName   = "max-age"
	SecureFlagName   = "secure"
	HTTPOnlyFlagName = "http-only"
	SameSiteFlagName = "same-site"
	PrefixFlagName   = "prefix"
	EncodeFlagName   = "encode"
)

// NewCookieCommand groups the Set-Cookie parse and format subcommands.
func NewCookieCommand(opts *Options) *cli.Command {
	return &cli.Command{
		Name:  "cookie",
		Usage: "Parse and format Set-Cookie headers",
		Subcommands: []*cli.Command{
			newCookieParseCommand(opts),
			newCookieFormatCommand(opts),
		},
	}
}

func newCookieParseCommand(opts *Options) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a Set-Cookie header into JSON",
		ArgsUsage: "HEADER",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    MultipleFlagName,
				Aliases: []string{"m"},
				Usage:   "Parse a Cookie header holding several name=value pairs.",
			},
		},
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if err := expectArgs(args, 1, 1); err != nil {
				return err
			}

			if c.Bool(MultipleFlagName) {
				cookies, err := cookie.ParseCookies(args[0])
				if err != nil {
					return err
				}

				opts.Logger.Debugf("Parsed %d cookies", len(cookies))

				return writeJSON(c.App.Writer, cookies)
			}

			parsed, err := cookie.ParseSetCookie(args[0])
			if err != nil {
				return err
			}

			return writeJSON(c.App.Writer, parsed)
		},
	}
}

func newCookieFormatCommand(opts *Options) *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "Format a Set-Cookie header",
		ArgsUsage: "NAME VALUE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: DomainFlagName, Usage: "Domain attribute."},
			&cli.StringFlag{Name: PathFlagName, Usage: "Path attribute."},
			&cli.TimestampFlag{Name: ExpiresFlagName, Layout: time.RFC3339, Usage: "Expires attribute, RFC 3339."},
			&cli.IntFlag{Name: MaxAgeFlagName, Usage: "Max-Age attribute in seconds."},
			&cli.BoolFlag{Name: SecureFlagName, Usage: "Secure attribute."},
			&cli.BoolFlag{Name: HTTPOnlyFlagName, Usage: "HttpOnly attribute."},
			&cli.StringFlag{Name: SameSiteFlagName, Usage: "SameSite attribute: Strict, Lax or None."},
			&cli.StringFlag{Name: PrefixFlagName, Usage: "Name prefix: __Secure- or __Host-."},
			&cli.BoolFlag{Name: EncodeFlagName, Usage: "URL encode the value."},
		},
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if err := expectArgs(args, 2, 2); err != nil { //nolint:mnd
				return err
			}

			ck := cookie.New(args[0], args[1])
			ck.Domain = c.String(DomainFlagName)
			ck.Path = c.String(PathFlagName)
			ck.MaxAge = c.Int(MaxAgeFlagName)
			ck.Secure = c.Bool(SecureFlagName)
			ck.HTTPOnly = c.Bool(HTTPOnlyFlagName)
			ck.EncodeValue = c.Bool(EncodeFlagName)

			if expires := c.Timestamp(ExpiresFlagName); expires != nil {
				ck.Expires = *expires
			}

			if sameSite := c.String(SameSiteFlagName); sameSite != "" {
				parsed, err := cookie.ParseSameSite(sameSite)
				if err != nil {
					return err
				}

				ck.SameSite = parsed
			}

			switch prefix := cookie.Prefix(c.String(PrefixFlagName)); prefix {
			case "", cookie.PrefixSecure, cookie.PrefixHost:
				ck.Prefix = prefix
			default:
				return errors.Errorf("invalid cookie prefix %q", prefix)
			}

			opts.Logger.Debugf("Formatting cookie %s", ck.Key())

			_, err := fmt.Fprintln(c.App.Writer, ck.String())

			return err
		},
	}
}
