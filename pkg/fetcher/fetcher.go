// Package fetcher is a small JSON HTTP client.
//
// All settings, such as the base URL and the token, live in the Config given to New,
// so several clients with different settings can be used side by side.
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"time"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/log"
	"github.com/gruntwork-io/go-utils/util"
	"github.com/hashicorp/go-cleanhttp"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"

	mimeJSON = "application/json"
)

// Config holds the settings of a Client.
type Config struct {
	// HTTPClient defaults to a cleanhttp client.
	HTTPClient *http.Client
	// Logger defaults to a discarding logger.
	Logger log.Logger
	// BaseURL is used to resolve relative request paths.
	BaseURL string
	// Token is sent as a bearer token when it is not empty.
	Token string
	// MaxRetries is how many more times a request is sent after a network error or a 5xx response.
	MaxRetries int
	// RetryInterval is the pause between attempts.
	RetryInterval time.Duration
}

// Client sends requests and decodes JSON responses.
type Client struct {
	httpClient    *http.Client
	logger        log.Logger
	baseURL       *url.URL
	token         string
	maxRetries    int
	retryInterval time.Duration
}

// New returns a client for the given config.
func New(cfg Config) (*Client, error) {
	client := &Client{
		httpClient:    cfg.HTTPClient,
		logger:        cfg.Logger,
		token:         cfg.Token,
		maxRetries:    max(cfg.MaxRetries, 0),
		retryInterval: cfg.RetryInterval,
	}

	if client.httpClient == nil {
		client.httpClient = cleanhttp.DefaultClient()
	}

	if client.logger == nil {
		client.logger = log.Discard()
	}

	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, errors.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
		}

		client.baseURL = baseURL
	}

	return client, nil
}

// RequestOption customizes a single request.
type RequestOption func(*request)

type request struct {
	header     http.Header
	parameters map[string]any
}

// WithParameters appends the given query parameters. Parameters with zero values are skipped.
func WithParameters(parameters map[string]any) RequestOption {
	return func(req *request) {
		for key, val := range parameters {
			req.parameters[key] = val
		}
	}
}

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(req *request) {
		req.header.Set(key, value)
	}
}

func (client *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return client.Do(ctx, http.MethodGet, path, nil, opts...)
}

func (client *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return client.Do(ctx, http.MethodPost, path, body, opts...)
}

func (client *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return client.Do(ctx, http.MethodPut, path, body, opts...)
}

func (client *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return client.Do(ctx, http.MethodPatch, path, body, opts...)
}

func (client *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return client.Do(ctx, http.MethodDelete, path, nil, opts...)
}

// Do sends a request and returns the response, or a *ResponseError if the status code is not 2xx.
// A body that is not an io.Reader, a []byte or a string is encoded as JSON.
// Network errors and 5xx responses are retried as configured; other failures are returned right away.
func (client *Client) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	req := &request{
		header:     make(http.Header),
		parameters: make(map[string]any),
	}

	for _, opt := range opts {
		opt(req)
	}

	reqURL, err := client.resolveURL(path, req.parameters)
	if err != nil {
		return nil, err
	}

	data, isJSON, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	req.header.Set(HeaderAccept, mimeJSON)

	if isJSON {
		req.header.Set(HeaderContentType, mimeJSON)
	}

	if client.token != "" && req.header.Get(HeaderAuthorization) == "" {
		req.header.Set(HeaderAuthorization, "Bearer "+client.token)
	}

	var resp *Response

	description := method + " " + reqURL.Redacted()

	err = util.DoWithRetry(ctx, description, client.maxRetries, client.retryInterval, client.logger, func(ctx context.Context) error {
		var sendErr error

		resp, sendErr = client.send(ctx, method, reqURL, req.header, data)

		return sendErr
	})
	if err != nil {
		var fatalErr util.FatalError
		if errors.As(err, &fatalErr) {
			return nil, fatalErr.Underlying
		}

		var exceededErr util.MaxRetriesExceeded
		if client.maxRetries == 0 && errors.As(err, &exceededErr) {
			return nil, exceededErr.Err
		}

		return nil, err
	}

	return resp, nil
}

func (client *Client) send(ctx context.Context, method string, reqURL *url.URL, header http.Header, data []byte) (*Response, error) {
	var reader io.Reader
	if data != nil {
		reader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, util.FatalError{Underlying: errors.New(err)}
	}

	httpReq.Header = header.Clone()

	resp, err := client.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.New(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New(err)
	}

	client.logger.Debugf("%s %s returned %s", method, reqURL.Redacted(), resp.Status)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respErr := errors.New(newResponseError(resp, reqURL, respBody))

		if resp.StatusCode < http.StatusInternalServerError {
			return nil, util.FatalError{Underlying: respErr}
		}

		return nil, respErr
	}

	return &Response{
		Header:     resp.Header,
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}

func (client *Client) resolveURL(path string, parameters map[string]any) (*url.URL, error) {
	reqURL, err := url.Parse(path)
	if err != nil {
		return nil, errors.Errorf("invalid request path %q: %w", path, err)
	}

	if client.baseURL != nil {
		reqURL = client.baseURL.ResolveReference(reqURL)
	}

	query := reqURL.Query()

	for key, val := range parameters {
		if key == "" || val == nil || reflect.ValueOf(val).IsZero() {
			continue
		}

		query.Add(key, fmt.Sprint(val))
	}

	reqURL.RawQuery = query.Encode()

	return reqURL, nil
}

func encodeBody(body any) ([]byte, bool, error) {
	switch body := body.(type) {
	case nil:
		return nil, false, nil
	case io.Reader:
		data, err := io.ReadAll(body)
		if err != nil {
			return nil, false, errors.New(err)
		}

		return data, false, nil
	case []byte:
		return body, false, nil
	case string:
		return []byte(body), false, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, false, errors.New(err)
	}

	return data, true, nil
}
