package fetcher

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/mitchellh/mapstructure"
)

// Response is a successful response with its body already read.
type Response struct {
	Header     http.Header
	Body       []byte
	StatusCode int
}

// Decode unmarshals the JSON body into target.
func (resp *Response) Decode(target any) error {
	if err := json.Unmarshal(resp.Body, target); err != nil {
		return errors.New(err)
	}

	return nil
}

// JSON returns the body decoded into generic values, or nil if the body is empty.
func (resp *Response) JSON() (any, error) {
	if len(resp.Body) == 0 {
		return nil, nil
	}

	var out any
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}

// ResponseError is returned for responses with a non-2xx status code.
type ResponseError struct {
	Header http.Header
	// BodyJSON is the body decoded into generic values, or nil if it is not JSON.
	BodyJSON   any
	Status     string
	URL        string
	Body       string
	StatusCode int
}

func newResponseError(resp *http.Response, reqURL *url.URL, body []byte) *ResponseError {
	respErr := &ResponseError{
		Header:     resp.Header,
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		URL:        reqURL.Redacted(),
		Body:       string(body),
	}

	var bodyJSON any
	if err := json.Unmarshal(body, &bodyJSON); err == nil {
		respErr.BodyJSON = bodyJSON
	}

	return respErr
}

func (err *ResponseError) Error() string {
	return err.URL + " returned " + err.Status
}

// Decode decodes the JSON body into target, matching the `json` tags of struct fields.
func (err *ResponseError) Decode(target any) error {
	if err.BodyJSON == nil {
		return errors.Errorf("response body of %s is not JSON", err.URL)
	}

	decoder, decodeErr := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if decodeErr != nil {
		return errors.New(decodeErr)
	}

	if decodeErr := decoder.Decode(err.BodyJSON); decodeErr != nil {
		return errors.New(decodeErr)
	}

	return nil
}
