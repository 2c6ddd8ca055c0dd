package nano_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

const projectJSON = `{
	"id": "123",
	"type": "projects",
	"attributes": {
		"created-at": "2025-10-01T12:00:00Z",
		"privacy": 2,
		"slug": "my-novel",
		"status": "In Progress",
		"title": "My Novel",
		"unit-type": 0,
		"user-id": 42,
		"writing-type": 0
	}
}`

func TestObjectDecode(t *testing.T) {
	t.Parallel()

	t.Run("typed decode", func(t *testing.T) {
		t.Parallel()

		var project nano.ProjectObject

		require.NoError(t, json.Unmarshal([]byte(projectJSON), &project))
		assert.Equal(t, nano.ID(123), project.GetID())
		assert.Equal(t, "My Novel", project.Data.Title)
		assert.Equal(t, nano.ProjectInProgress, project.Data.Status)
		assert.Equal(t, nano.PrivacyAnyone, project.Data.Privacy)
		assert.Equal(t, uint64(42), project.Data.UserID)
	})

	t.Run("kind mismatch", func(t *testing.T) {
		t.Parallel()

		var user nano.UserObject

		err := json.Unmarshal([]byte(projectJSON), &user)
		require.ErrorIs(t, err, nano.ErrKindMismatch)
	})

	t.Run("missing type rejected", func(t *testing.T) {
		t.Parallel()

		var badge nano.BadgeObject

		err := json.Unmarshal([]byte(`{"id": "5"}`), &badge)
		require.ErrorIs(t, err, nano.ErrMissingKey)

		var decodeErr *nano.DecodeError

		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "type", decodeErr.Path)
	})

	t.Run("unknown attribute rejected on strict kinds", func(t *testing.T) {
		t.Parallel()

		var project nano.ProjectObject

		withExtra := `{
			"id": "1",
			"type": "projects",
			"attributes": {"title": "x", "status": "Drafted", "surprise": true}
		}`

		err := json.Unmarshal([]byte(withExtra), &project)
		require.Error(t, err)

		var decodeErr *nano.DecodeError

		require.ErrorAs(t, err, &decodeErr)
		assert.Contains(t, decodeErr.Path, "attributes")
	})

	t.Run("unknown attribute tolerated on lenient kinds", func(t *testing.T) {
		t.Parallel()

		var user nano.UserObject

		profile := `{
			"id": "42",
			"type": "users",
			"attributes": {"name": "wrimo", "slug": "wrimo", "surprise": true}
		}`

		require.NoError(t, json.Unmarshal([]byte(profile), &user))
		assert.Equal(t, "wrimo", user.Data.Name)
	})
}

func TestUserFlattenedGroups(t *testing.T) {
	t.Parallel()

	profile := `{
		"id": "42",
		"type": "users",
		"attributes": {
			"name": "wrimo",
			"slug": "wrimo",
			"time-zone": "America/New_York",
			"email-newsletter": true,
			"email-blog-posts": false,
			"privacy-view-profile": 2,
			"privacy-view-search": 1,
			"stats-projects": 3,
			"stats-projects-enabled": true,
			"stats-word-count": 50000
		}
	}`

	var user nano.UserObject

	require.NoError(t, json.Unmarshal([]byte(profile), &user))

	require.NotNil(t, user.Data.EmailSettings)
	assert.True(t, user.Data.EmailSettings.Newsletter)
	assert.False(t, user.Data.EmailSettings.BlogPosts)

	require.NotNil(t, user.Data.PrivacySettings)
	assert.Equal(t, nano.PrivacyAnyone, user.Data.PrivacySettings.ViewProfile)
	assert.Equal(t, nano.PrivacyBuddies, user.Data.PrivacySettings.ViewSearch)

	require.NotNil(t, user.Data.Stats)
	assert.Equal(t, uint64(50000), user.Data.Stats.WordCount)

	// notification-* keys were absent, so the group stays nil
	assert.Nil(t, user.Data.NotificationSettings)

	t.Run("groups flatten back on encode", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(user.Data)
		require.NoError(t, err)

		var keys map[string]json.RawMessage

		require.NoError(t, json.Unmarshal(data, &keys))
		assert.Contains(t, keys, "email-newsletter")
		assert.Contains(t, keys, "stats-word-count")
		assert.NotContains(t, keys, "notification-new-badges")
	})
}

func TestObjectEncode(t *testing.T) {
	t.Parallel()

	t.Run("zero id omitted", func(t *testing.T) {
		t.Parallel()

		session := nano.ProjectSessionObject{
			Data: nano.ProjectSessionData{Count: 1667},
		}

		data, err := json.Marshal(session)
		require.NoError(t, err)

		var keys map[string]json.RawMessage

		require.NoError(t, json.Unmarshal(data, &keys))
		assert.NotContains(t, keys, "id")
		assert.JSONEq(t, `"project-sessions"`, string(keys["type"]))
	})

	t.Run("nonzero id stringified", func(t *testing.T) {
		t.Parallel()

		badge := nano.BadgeObject{ObjectCommon: nano.ObjectCommon{ID: 7}}

		data, err := json.Marshal(badge)
		require.NoError(t, err)

		var keys map[string]json.RawMessage

		require.NoError(t, json.Unmarshal(data, &keys))
		assert.JSONEq(t, `"7"`, string(keys["id"]))
	})
}

func TestAnyObject(t *testing.T) {
	t.Parallel()

	t.Run("dispatches on type", func(t *testing.T) {
		t.Parallel()

		var obj nano.AnyObject

		require.NoError(t, json.Unmarshal([]byte(projectJSON), &obj))
		assert.Equal(t, nano.KindProject, obj.Kind())

		project, err := nano.ObjectAs[*nano.ProjectObject](obj.Object)
		require.NoError(t, err)
		assert.Equal(t, "My Novel", project.Data.Title)
	})

	t.Run("wrong assertion reports mismatch", func(t *testing.T) {
		t.Parallel()

		var obj nano.AnyObject

		require.NoError(t, json.Unmarshal([]byte(projectJSON), &obj))

		_, err := nano.ObjectAs[*nano.UserObject](obj.Object)
		require.ErrorIs(t, err, nano.ErrKindMismatch)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		t.Parallel()

		var obj nano.AnyObject

		err := json.Unmarshal([]byte(`{"id":"1","type":"widgets"}`), &obj)
		require.ErrorIs(t, err, nano.ErrUnknownKind)
	})

	t.Run("missing type rejected", func(t *testing.T) {
		t.Parallel()

		var obj nano.AnyObject

		err := json.Unmarshal([]byte(`{"id": "5"}`), &obj)
		require.ErrorIs(t, err, nano.ErrMissingKey)
		assert.Nil(t, obj.Object)
	})
}
