package nano_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

func TestIntegerEnums(t *testing.T) {
	t.Parallel()

	t.Run("privacy setting round trip", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(nano.PrivacyBuddies)
		require.NoError(t, err)
		assert.Equal(t, `1`, string(data))

		var privacy nano.PrivacySetting

		require.NoError(t, json.Unmarshal(data, &privacy))
		assert.Equal(t, nano.PrivacyBuddies, privacy)
	})

	t.Run("out of range rejected", func(t *testing.T) {
		t.Parallel()

		var privacy nano.PrivacySetting

		require.ErrorIs(t, json.Unmarshal([]byte(`7`), &privacy), nano.ErrInvalidEnumValue)

		var writing nano.WritingType

		require.ErrorIs(t, json.Unmarshal([]byte(`8`), &writing), nano.ErrInvalidEnumValue)
	})

	t.Run("string value rejected", func(t *testing.T) {
		t.Parallel()

		var event nano.EventType

		require.ErrorIs(t, json.Unmarshal([]byte(`"camp"`), &event), nano.ErrInvalidEnumValue)
	})

	t.Run("writing type other round trips", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(nano.WritingOther)
		require.NoError(t, err)

		var writing nano.WritingType

		require.NoError(t, json.Unmarshal(data, &writing))
		assert.Equal(t, nano.WritingOther, writing)
	})

	t.Run("feeling starts at one", func(t *testing.T) {
		t.Parallel()

		var feeling nano.Feeling

		require.ErrorIs(t, json.Unmarshal([]byte(`0`), &feeling), nano.ErrInvalidEnumValue)
		require.NoError(t, json.Unmarshal([]byte(`5`), &feeling))
		assert.Equal(t, nano.FeelingGreat, feeling)
	})

	t.Run("invitation status accepts negative", func(t *testing.T) {
		t.Parallel()

		var status nano.InvitationStatus

		require.NoError(t, json.Unmarshal([]byte(`-2`), &status))
		assert.Equal(t, nano.InvitationBlocked, status)

		require.ErrorIs(t, json.Unmarshal([]byte(`-1`), &status), nano.ErrInvalidEnumValue)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestStringEnums(t *testing.T) {
	t.Parallel()

	t.Run("project status case folds", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			in   string
			want nano.ProjectStatus
		}{
			{`"In Progress"`, nano.ProjectInProgress},
			{`"in progress"`, nano.ProjectInProgress},
			{`"InProgress"`, nano.ProjectInProgress},
			{`"PREPPING"`, nano.ProjectPrepping},
			{`"Completed"`, nano.ProjectCompleted},
		}

		for _, test := range tests {
			var status nano.ProjectStatus

			require.NoError(t, json.Unmarshal([]byte(test.in), &status), test.in)
			assert.Equal(t, test.want, status, test.in)
		}
	})

	t.Run("project status canonical encode", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(nano.ProjectInProgress)
		require.NoError(t, err)
		assert.Equal(t, `"In Progress"`, string(data))
	})

	t.Run("action type matched exactly", func(t *testing.T) {
		t.Parallel()

		var action nano.ActionType

		require.NoError(t, json.Unmarshal([]byte(`"NANOMESSAGES"`), &action))
		assert.Equal(t, nano.ActionNanoMessages, action)

		require.ErrorIs(t, json.Unmarshal([]byte(`"nanomessages"`), &action), nano.ErrInvalidEnumValue)
	})

	t.Run("content type keeps odd capitalization", func(t *testing.T) {
		t.Parallel()

		var content nano.ContentType

		require.NoError(t, json.Unmarshal([]byte(`"General content"`), &content))
		assert.Equal(t, nano.ContentGeneral, content)

		require.ErrorIs(t, json.Unmarshal([]byte(`"general content"`), &content), nano.ErrInvalidEnumValue)
	})

	t.Run("adheres-to empty string is a variant", func(t *testing.T) {
		t.Parallel()

		var adheres nano.AdheresTo

		require.NoError(t, json.Unmarshal([]byte(`""`), &adheres))
		assert.Equal(t, nano.AdheresToUnknown, adheres)

		data, err := json.Marshal(nano.AdheresToProjectChallenge)
		require.NoError(t, err)
		assert.Equal(t, `"project_challenge"`, string(data))
	})

	t.Run("unknown value rejected", func(t *testing.T) {
		t.Parallel()

		var group nano.GroupType

		require.ErrorIs(t, json.Unmarshal([]byte(`"cabal"`), &group), nano.ErrInvalidEnumValue)
	})
}

func TestOpenEnums(t *testing.T) {
	t.Parallel()

	t.Run("where keeps unnamed values", func(t *testing.T) {
		t.Parallel()

		var where nano.Where

		require.NoError(t, json.Unmarshal([]byte(`42`), &where))
		assert.False(t, where.Known())

		data, err := json.Marshal(where)
		require.NoError(t, err)
		assert.Equal(t, `42`, string(data))
	})

	t.Run("how keeps unnamed values", func(t *testing.T) {
		t.Parallel()

		var how nano.How

		require.NoError(t, json.Unmarshal([]byte(`9000`), &how))
		assert.False(t, how.Known())
		assert.Equal(t, nano.How(9000), how)
	})

	t.Run("named values known", func(t *testing.T) {
		t.Parallel()

		assert.True(t, nano.WhereLibrary.Known())
		assert.True(t, nano.HowLaptop.Known())
	})
}
