// Package nanoclient provides the main entry point for creating NaNoWriMo
// API clients.
package nanoclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/wrimolabs/nanowrimo/internal/client"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

// New creates an API client from the config. Credentials are optional;
// without them the client is anonymous and every authenticated endpoint
// fails with the API's own 401.
func New(config *nano.Config) (nano.Client, error) {
	if config == nil {
		return nil, nano.ErrConfigRequired
	}

	if config.BaseURL != "" {
		baseURL := strings.TrimSuffix(config.BaseURL, "/")
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}

		config.BaseURL = baseURL
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewAnonymous creates a client with no credentials, for the public
// endpoints.
func NewAnonymous() (nano.Client, error) {
	return New(&nano.Config{})
}

// NewWithPassword creates a client with credentials. The client signs in
// lazily; use NewWithLogin to verify the credentials up front.
func NewWithPassword(username, password string) (nano.Client, error) {
	return New(&nano.Config{Username: username, Password: password})
}

// NewWithLogin creates a client with credentials and signs in
// immediately, so bad credentials surface here rather than on the first
// authenticated call.
func NewWithLogin(ctx context.Context, username, password string) (nano.Client, error) {
	apiClient, err := NewWithPassword(username, password)
	if err != nil {
		return nil, err
	}

	err = apiClient.Login(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	return apiClient, nil
}
