// Package client implements the nano.Client interface: the session state
// machine, the re-login retry policy, and the typed endpoint operations.
package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/wrimolabs/nanowrimo/internal/http"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://api.nanowrimo.org"

// Client is the concrete nano.Client.
type Client struct {
	config  *nano.Config
	session *session
	http    *internalhttp.Client
}

// Interface compliance check.
var _ nano.Client = (*Client)(nil)

// New creates a client from the config. No request is made; a
// credentialed client signs in lazily, on Login or on the first 401.
func New(config *nano.Config) (*Client, error) {
	if config == nil {
		return nil, nano.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	sess := newSession(config.Username, config.Password)
	if config.Token != "" {
		sess.setToken(config.Token)
	}

	opts := []internalhttp.Option{}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return &Client{
		config:  config,
		session: sess,
		http:    internalhttp.NewClient(baseURL, sess, opts...),
	}, nil
}

// Do executes one API call with the re-login policy: when a request is
// rejected with 401 while a token is held, the client signs in again and
// resends the request exactly once. Anonymous clients and second 401s
// propagate the error unchanged.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	resp, err := c.doOnce(ctx, method, path, query, body)

	if nano.IsUnauthorized(err) && c.session.loggedIn() {
		loginErr := c.Login(ctx)
		if loginErr != nil {
			return loginErr
		}

		resp, err = c.doOnce(ctx, method, path, query, body)
	}

	if err != nil {
		return err
	}

	return internalhttp.DecodeResponse(resp, out)
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body any) (*internalhttp.Response, error) {
	return c.http.Do(ctx, &internalhttp.Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	})
}

// Login signs in with the configured credentials and stores the returned
// token. It bypasses the retry policy; a failed login is final.
func (c *Client) Login(ctx context.Context) error {
	if !c.session.hasCredentials() {
		return nano.ErrNoCredentials
	}

	body := map[string]string{
		"identifier": c.session.username,
		"password":   c.session.password,
	}

	resp, err := c.http.Post(ctx, "users/sign_in", body)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	var login nano.LoginResponse

	err = internalhttp.DecodeResponse(resp, &login)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	c.session.setToken(login.AuthToken)

	return nil
}

// Logout ends the session server-side and drops the token. The token is
// dropped even when the API call fails, so the client always comes back
// logged out.
func (c *Client) Logout(ctx context.Context) error {
	defer c.session.clearToken()

	_, err := c.http.Post(ctx, "users/logout", nil)
	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

// IsLoggedIn reports whether a session token is held.
func (c *Client) IsLoggedIn() bool {
	return c.session.loggedIn()
}

// SessionToken returns the current session token, for callers that
// persist sessions across runs. Empty when logged out.
func (c *Client) SessionToken() string {
	token, _ := c.session.Token(context.Background())

	return token
}
