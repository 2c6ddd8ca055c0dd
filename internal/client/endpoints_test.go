package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

func TestFundometer(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/fundometer", request.URL.Path)
		_, _ = writer.Write([]byte(`{"goal": 50000, "raised": "1234.56", "donorCount": 78}`))
	})

	apiClient := newTestClient(t, handler, &nano.Config{})

	fund, err := apiClient.Fundometer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(50000), fund.Goal)
	assert.InDelta(t, 1234.56, float64(fund.Raised), 0.001)
	assert.Equal(t, uint64(78), fund.DonorCount)
}

func TestSearchUsers(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/search", request.URL.Path)
		require.Equal(t, "wrimo", request.URL.Query().Get("q"))
		_, _ = writer.Write([]byte(`{"data": [{"id": "7", "type": "users", "attributes": {"name": "wrimo-one"}}]}`))
	})

	apiClient := newTestClient(t, handler, &nano.Config{})

	resp, err := apiClient.SearchUsers(context.Background(), "wrimo")
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, nano.ID(7), resp.Data[0].ID)
	assert.Equal(t, "wrimo-one", resp.Data[0].Data.Name)
}

func TestGetID(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/badges/3", request.URL.Path)
		_, _ = writer.Write([]byte(`{"data": {"id": "3", "type": "badges", "attributes": {
			"active": true, "adheres-to": "user", "awarded": "Congrats!",
			"awarded-description": "You wrote every day", "badge-type": "word count",
			"description": "Awarded for a daily streak",
			"generic-description": "Write daily", "list-order": 1, "suborder": null,
			"title": "Daily Streak", "unawarded": "Keep going", "winner": false
		}}}`))
	})

	apiClient := newTestClient(t, handler, &nano.Config{})

	resp, err := apiClient.GetID(context.Background(), nano.KindBadge, 3, nil)
	require.NoError(t, err)

	badge, err := nano.ObjectAs[*nano.BadgeObject](resp.Data)
	require.NoError(t, err)
	assert.Equal(t, nano.ID(3), badge.ID)
	assert.Equal(t, "Daily Streak", badge.Data.Title)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestAddProjectSession(t *testing.T) {
	t.Parallel()

	t.Run("requires a session", func(t *testing.T) {
		t.Parallel()

		handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		})

		apiClient := newTestClient(t, handler, &nano.Config{})

		_, err := apiClient.AddProjectSession(context.Background(), 1, 2, nano.ProjectSessionData{})
		require.ErrorIs(t, err, nano.ErrNoCredentials)
	})

	t.Run("posts the session without an id", func(t *testing.T) {
		t.Parallel()

		handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.Equal(t, "/project-sessions", request.URL.Path)
			require.Equal(t, http.MethodPost, request.Method)

			raw, err := io.ReadAll(request.Body)
			require.NoError(t, err)

			var doc struct {
				Data map[string]json.RawMessage `json:"data"`
			}

			require.NoError(t, json.Unmarshal(raw, &doc))

			_, hasID := doc.Data["id"]
			assert.False(t, hasID, "submitted sessions must not carry an id")

			var objType string

			require.NoError(t, json.Unmarshal(doc.Data["type"], &objType))
			assert.Equal(t, "project-sessions", objType)

			var rels map[string]struct {
				Data nano.ObjectRef `json:"data"`
			}

			require.NoError(t, json.Unmarshal(doc.Data["relationships"], &rels))
			require.Contains(t, rels, "project")
			require.Contains(t, rels, "project-challenge")
			assert.Equal(t, nano.ID(11), rels["project"].Data.ID)
			assert.Equal(t, nano.ID(22), rels["project-challenge"].Data.ID)

			var attrs struct {
				Count    int64  `json:"count"`
				UnitType string `json:"unit-type"`
			}

			require.NoError(t, json.Unmarshal(doc.Data["attributes"], &attrs))
			assert.Equal(t, int64(1667), attrs.Count)

			_, _ = writer.Write([]byte(`{"data": {"id": "99", "type": "project-sessions", "attributes": {
				"count": 1667, "unit-type": 0
			}}}`))
		})

		apiClient := newTestClient(t, handler, &nano.Config{Token: "tok"})

		resp, err := apiClient.AddProjectSession(context.Background(), 11, 22, nano.ProjectSessionData{
			Count:    1667,
			UnitType: nano.UnitWords,
		})
		require.NoError(t, err)
		assert.Equal(t, nano.ID(99), resp.Data.ID)
		assert.Equal(t, int64(1667), resp.Data.Data.Count)
	})
}

func TestRelatedCardinality(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/users/1/genres":
			_, _ = writer.Write([]byte(`{"data": []}`))
		case "/projects/4/user":
			_, _ = writer.Write([]byte(`{"data": {"id": "1", "type": "users", "attributes": {"name": "wrimo"}}}`))
		default:
			t.Errorf("unexpected path %s", request.URL.Path)
		}
	})

	apiClient := newTestClient(t, handler, &nano.Config{})

	collectionLink := nano.RelationLink{Related: "users/1/genres"}
	singleLink := nano.RelationLink{Related: "projects/4/user"}

	t.Run("collection link fetches all", func(t *testing.T) {
		t.Parallel()

		resp, err := apiClient.GetAllRelated(context.Background(), collectionLink)
		require.NoError(t, err)
		assert.Empty(t, resp.Data)
	})

	t.Run("single link fetches one", func(t *testing.T) {
		t.Parallel()

		resp, err := apiClient.GetUniqueRelated(context.Background(), singleLink)
		require.NoError(t, err)
		assert.Equal(t, nano.KindUser, resp.Data.Kind())
	})

	t.Run("mismatched cardinality is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := apiClient.GetAllRelated(context.Background(), singleLink)
		require.ErrorIs(t, err, nano.ErrWrongCardinality)

		_, err = apiClient.GetUniqueRelated(context.Background(), collectionLink)
		require.ErrorIs(t, err, nano.ErrWrongCardinality)
	})
}
