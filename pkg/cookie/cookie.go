// Package cookie formats and parses Set-Cookie header values.
//
// See https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Set-Cookie for the attributes.
package cookie

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SameSite controls whether a cookie is sent with cross-site requests.
type SameSite string

const (
	SameSiteStrict SameSite = "Strict"
	SameSiteLax    SameSite = "Lax"
	SameSiteNone   SameSite = "None"
)

// Prefix is a cookie name prefix that browsers give special meaning to.
type Prefix string

const (
	// PrefixSecure cookies must be set with the secure flag from a secure page (HTTPS).
	PrefixSecure Prefix = "__Secure-"
	// PrefixHost cookies must be secure, must not have a domain specified, and the path must be /.
	PrefixHost Prefix = "__Host-"
)

// Cookie is a single Set-Cookie value.
type Cookie struct {
	Expires  time.Time `json:"expires,omitzero"`
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain,omitempty"`
	Path     string    `json:"path,omitempty"`
	SameSite SameSite  `json:"sameSite,omitempty"`
	Prefix   Prefix    `json:"prefix,omitempty"`
	MaxAge   int       `json:"maxAge,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HTTPOnly bool      `json:"httpOnly,omitempty"`
	// EncodeValue URL encodes the value when the cookie is formatted.
	EncodeValue bool `json:"encodeValue,omitempty"`
}

// New returns a cookie with the given name and value.
func New(name, value string) *Cookie {
	return &Cookie{Name: name, Value: value}
}

// Key returns the cookie name including its prefix.
func (cookie *Cookie) Key() string {
	return string(cookie.Prefix) + cookie.Name
}

// EncodedValue returns the value as it is written to the header.
func (cookie *Cookie) EncodedValue() string {
	if cookie.EncodeValue {
		return encodeURIComponent(cookie.Value)
	}

	return cookie.Value
}

// String formats the cookie as a Set-Cookie header value. Attributes with zero values are omitted.
func (cookie *Cookie) String() string {
	parts := []string{cookie.Key() + "=" + cookie.EncodedValue()}

	if !cookie.Expires.IsZero() {
		parts = append(parts, "Expires="+cookie.Expires.UTC().Format(http.TimeFormat))
	}

	if cookie.MaxAge != 0 {
		parts = append(parts, "Max-Age="+strconv.Itoa(cookie.MaxAge))
	}

	if cookie.Domain != "" {
		parts = append(parts, "Domain="+cookie.Domain)
	}

	if cookie.Path != "" {
		parts = append(parts, "Path="+cookie.Path)
	}

	if cookie.SameSite != "" {
		parts = append(parts, "SameSite="+string(cookie.SameSite))
	}

	if cookie.Secure {
		parts = append(parts, "Secure")
	}

	if cookie.HTTPOnly {
		parts = append(parts, "HttpOnly")
	}

	return strings.Join(parts, "; ")
}

// encodeURIComponent escapes everything except the characters that JavaScript's encodeURIComponent leaves alone.
func encodeURIComponent(str string) string {
	escaped := url.QueryEscape(str)
	escaped = strings.ReplaceAll(escaped, "+", "%20")

	for _, keep := range []string{"!", "'", "(", ")", "*"} {
		escaped = strings.ReplaceAll(escaped, url.QueryEscape(keep), keep)
	}

	return escaped
}
