package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrimolabs/nanowrimo/internal/client"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

func newTestClient(t *testing.T, handler http.Handler, config *nano.Config) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config.BaseURL = server.URL

	apiClient, err := client.New(config)
	require.NoError(t, err)

	return apiClient
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config rejected", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, nano.ErrConfigRequired)
	})

	t.Run("saved token counts as logged in", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&nano.Config{Token: "saved"})
		require.NoError(t, err)
		assert.True(t, apiClient.IsLoggedIn())
		assert.Equal(t, "saved", apiClient.SessionToken())
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("stores the token", func(t *testing.T) {
		t.Parallel()

		handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.Equal(t, "/users/sign_in", request.URL.Path)
			require.Equal(t, http.MethodPost, request.Method)

			var body map[string]string

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "wrimo", body["identifier"])
			assert.Equal(t, "hunter2", body["password"])

			_, _ = writer.Write([]byte(`{"auth_token": "tok-1"}`))
		})

		apiClient := newTestClient(t, handler, &nano.Config{Username: "wrimo", Password: "hunter2"})

		require.NoError(t, apiClient.Login(context.Background()))
		assert.True(t, apiClient.IsLoggedIn())
		assert.Equal(t, "tok-1", apiClient.SessionToken())
	})

	t.Run("anonymous client cannot log in", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&nano.Config{})
		require.NoError(t, err)

		require.ErrorIs(t, apiClient.Login(context.Background()), nano.ErrNoCredentials)
	})

	t.Run("bad credentials surface the API error", func(t *testing.T) {
		t.Parallel()

		handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"error": "Invalid credentials"}`))
		})

		apiClient := newTestClient(t, handler, &nano.Config{Username: "wrimo", Password: "wrong"})

		err := apiClient.Login(context.Background())
		require.Error(t, err)
		assert.True(t, nano.IsUnauthorized(err))
		assert.False(t, apiClient.IsLoggedIn())
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("clears the token", func(t *testing.T) {
		t.Parallel()

		handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.Equal(t, "/users/logout", request.URL.Path)
			writer.WriteHeader(http.StatusOK)
		})

		apiClient := newTestClient(t, handler, &nano.Config{Token: "tok"})

		require.NoError(t, apiClient.Logout(context.Background()))
		assert.False(t, apiClient.IsLoggedIn())
	})

	t.Run("clears the token even when the API call fails", func(t *testing.T) {
		t.Parallel()

		handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		})

		apiClient := newTestClient(t, handler, &nano.Config{Token: "tok"})

		require.Error(t, apiClient.Logout(context.Background()))
		assert.False(t, apiClient.IsLoggedIn())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestReloginRetry(t *testing.T) {
	t.Parallel()

	t.Run("one relogin then resend", func(t *testing.T) {
		t.Parallel()

		var logins atomic.Int32

		handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			switch request.URL.Path {
			case "/users/sign_in":
				logins.Add(1)
				_, _ = writer.Write([]byte(`{"auth_token": "fresh"}`))
			case "/notifications":
				if request.Header.Get("Authorization") == "stale" {
					writer.WriteHeader(http.StatusUnauthorized)
					_, _ = writer.Write([]byte(`{"error": "Session expired"}`))

					return
				}

				assert.Equal(t, "fresh", request.Header.Get("Authorization"))
				_, _ = writer.Write([]byte(`{"data": []}`))
			default:
				t.Errorf("unexpected path %s", request.URL.Path)
			}
		})

		apiClient := newTestClient(t, handler, &nano.Config{
			Username: "wrimo",
			Password: "hunter2",
			Token:    "stale",
		})

		resp, err := apiClient.Notifications(context.Background())
		require.NoError(t, err)
		assert.Empty(t, resp.Data)
		assert.Equal(t, int32(1), logins.Load())
		assert.Equal(t, "fresh", apiClient.SessionToken())
	})

	t.Run("second 401 propagates", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path == "/users/sign_in" {
				_, _ = writer.Write([]byte(`{"auth_token": "fresh"}`))

				return
			}

			attempts.Add(1)
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"error": "Nope"}`))
		})

		apiClient := newTestClient(t, handler, &nano.Config{
			Username: "wrimo",
			Password: "hunter2",
			Token:    "stale",
		})

		_, err := apiClient.Notifications(context.Background())
		require.Error(t, err)
		assert.True(t, nano.IsUnauthorized(err))
		// exactly two attempts: the original and the single resend
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("anonymous 401 is final", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"error": "Sign in first"}`))
		})

		apiClient := newTestClient(t, handler, &nano.Config{})

		_, err := apiClient.Notifications(context.Background())
		require.Error(t, err)
		assert.True(t, nano.IsUnauthorized(err))
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("failed relogin propagates the login error", func(t *testing.T) {
		t.Parallel()

		handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path == "/users/sign_in" {
				writer.WriteHeader(http.StatusInternalServerError)

				return
			}

			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"error": "Session expired"}`))
		})

		apiClient := newTestClient(t, handler, &nano.Config{
			Username: "wrimo",
			Password: "hunter2",
			Token:    "stale",
		})

		_, err := apiClient.Notifications(context.Background())
		require.Error(t, err)
	})
}
