package cookie

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gruntwork-io/go-utils/internal/errors"
)

var (
	ErrInvalidCookie    = errors.New("cookie string is not valid")
	ErrInvalidAttribute = errors.New("attribute is not a valid key")
	ErrInvalidSameSite  = errors.New("SameSite attribute value is not allowed")
	ErrInvalidExpires   = errors.New("Expires attribute is not a valid date")
	ErrInvalidMaxAge    = errors.New("Max-Age attribute is not a number")
)

var sameSiteValues = []SameSite{SameSiteStrict, SameSiteLax, SameSiteNone}

// ParseSetCookie parses a Set-Cookie header value, e.g.
//
//	__Secure-id=abc; Expires=Sun, 14 Jun 2020 11:01:58 GMT; Max-Age=10; Domain=example.com; Path=/; SameSite=Strict; Secure; HttpOnly
func ParseSetCookie(str string) (*Cookie, error) {
	parts := strings.Split(str, ";")

	name, value, _ := strings.Cut(parts[0], "=")
	name, value = strings.TrimSpace(name), strings.TrimSpace(value)

	if name == "" {
		return nil, errors.Errorf("%w: %q", ErrInvalidCookie, str)
	}

	cookie := New(name, value)

	for _, prefix := range []Prefix{PrefixHost, PrefixSecure} {
		if strings.HasPrefix(name, string(prefix)) {
			cookie.Prefix = prefix
			cookie.Name = strings.TrimPrefix(name, string(prefix))

			break
		}
	}

	for _, part := range parts[1:] {
		if err := cookie.setAttribute(part); err != nil {
			return nil, err
		}
	}

	return cookie, nil
}

// ParseCookies parses a Cookie header value such as `a=1; b=2` into one cookie per pair.
// Every pair is parsed, and all the errors are returned together.
func ParseCookies(str string) ([]*Cookie, error) {
	var (
		cookies []*Cookie
		errs    *errors.MultiError
	)

	for _, pair := range strings.Split(str, ";") {
		cookie, err := ParseSetCookie(pair)
		if err != nil {
			errs = errs.Append(err)
			continue
		}

		cookies = append(cookies, cookie)
	}

	return cookies, errs.ErrorOrNil()
}

func (cookie *Cookie) setAttribute(part string) error {
	key, val, _ := strings.Cut(part, "=")
	key, val = strings.TrimSpace(key), strings.TrimSpace(val)

	switch strings.ToLower(key) {
	case "expires":
		expires, err := http.ParseTime(val)
		if err != nil {
			return errors.Errorf("%w: %q", ErrInvalidExpires, val)
		}

		cookie.Expires = expires
	case "max-age":
		maxAge, err := strconv.Atoi(val)
		if err != nil {
			return errors.Errorf("%w: %q", ErrInvalidMaxAge, val)
		}

		cookie.MaxAge = maxAge
	case "domain":
		cookie.Domain = val
	case "path":
		cookie.Path = val
	case "samesite":
		sameSite, err := ParseSameSite(val)
		if err != nil {
			return err
		}

		cookie.SameSite = sameSite
	case "secure":
		cookie.Secure = true
	case "httponly":
		cookie.HTTPOnly = true
	default:
		return errors.Errorf("%w: %q", ErrInvalidAttribute, key)
	}

	return nil
}

// ParseSameSite matches a SameSite value case insensitively.
func ParseSameSite(val string) (SameSite, error) {
	for _, sameSite := range sameSiteValues {
		if strings.EqualFold(string(sameSite), val) {
			return sameSite, nil
		}
	}

	return "", errors.Errorf("%w: %q", ErrInvalidSameSite, val)
}
