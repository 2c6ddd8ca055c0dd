// Package http provides the low-level HTTP transport: request execution,
// authentication headers, transport-level retries, and classification of
// API error bodies.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

const contentTypeJSONAPI = "application/vnd.api+json"

// TokenSource supplies the session token for outgoing requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Request describes one API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// Response is the raw result of an API call that was not classified as an
// error.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes API requests against a base URL.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *retryablehttp.Client
	logger     nano.Logger
	userAgent  string
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets a logger for request tracing.
func WithLogger(logger nano.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables logging of request and response bodies.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = agent
	}
}

// WithRetryConfig tunes the transport-level retry policy for transient
// network failures and 5xx responses.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates an HTTP client for the given API base URL. Transport
// retries default to off; authentication retries are handled a layer up.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 0
	httpClient.Logger = nil
	// Hand back the final response when retries run out, so 5xx bodies
	// reach the error classifier instead of vanishing into a transport
	// error.
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
		httpClient: httpClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request. Responses that carry an API error, either by
// status code or by error keys in the body, come back as a non-nil error;
// everything else is returned raw for the caller to decode.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		bodyBytes []byte
		err       error
	)

	if req.Body != nil {
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", contentTypeJSONAPI)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", contentTypeJSONAPI)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	if c.tokens != nil {
		// The API wants the bare token, with no Bearer prefix.
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		if token != "" {
			httpReq.Header.Set("Authorization", token)
		}
	}

	c.logRequest(req, fullURL, bodyBytes)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logResponse(req, httpResp.StatusCode, respBody)

	err = ClassifyResponse(httpResp.StatusCode, respBody)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch executes a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete executes a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// ClassifyResponse decides whether a response is an API error. Two status
// codes map to fixed errors before the body is looked at, because the API
// serves HTML error pages for them. After that the body's top-level keys
// decide: an "error" or "errors" key is an error document no matter what
// the status code says.
func ClassifyResponse(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusInternalServerError:
		return &nano.SimpleAPIError{StatusCode: statusCode, Message: "Internal Server Error"}
	case http.StatusNotFound:
		return &nano.SimpleAPIError{StatusCode: statusCode, Message: "Page Not Found"}
	}

	var keys map[string]json.RawMessage
	if json.Unmarshal(body, &keys) != nil {
		return nil
	}

	if raw, ok := keys["error"]; ok {
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nano.WrapDecode(err)
		}

		return &nano.SimpleAPIError{StatusCode: statusCode, Message: msg}
	}

	if raw, ok := keys["errors"]; ok {
		var entries []nano.APIError

		err := json.Unmarshal(raw, &entries)
		if err != nil {
			return nano.PrependDecodePath("errors", err)
		}

		return &nano.ErrorList{Errors: entries}
	}

	return nil
}

// DecodeResponse decodes a response body strictly into out, shaping
// failures into path-carrying decode errors. Bodies are rejected when
// they carry keys outside out's schema.
func DecodeResponse(resp *Response, out interface{}) error {
	if out == nil || len(resp.Body) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(resp.Body))
	dec.DisallowUnknownFields()

	err := dec.Decode(out)
	if err != nil {
		return nano.WrapDecode(err)
	}

	return nil
}

func (c *Client) logRequest(req *Request, fullURL string, body []byte) {
	if c.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
	}

	if c.debug && len(body) > 0 {
		fields["body"] = string(body)
	}

	c.logger.Debug("api request", fields)
}

func (c *Client) logResponse(req *Request, statusCode int, body []byte) {
	if c.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
		"status": statusCode,
	}

	if c.debug && len(body) > 0 {
		fields["body"] = string(body)
	}

	c.logger.Debug("api response", fields)
}
