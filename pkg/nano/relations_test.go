package nano_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

func TestRelationInfoDecode(t *testing.T) {
	t.Parallel()

	t.Run("partitions refs and links", func(t *testing.T) {
		t.Parallel()

		wire := `{
			"user": {"data": {"id": "42", "type": "users"}},
			"genres": {
				"data": [{"id": "1", "type": "genres"}, {"id": "2", "type": "genres"}],
				"links": {"self": "/projects/9/relationships/genres", "related": "/projects/9/genres"}
			},
			"challenges": {"links": {"self": "/projects/9/relationships/challenges", "related": "/projects/9/challenges"}}
		}`

		var rel nano.RelationInfo

		require.NoError(t, json.Unmarshal([]byte(wire), &rel))

		require.Len(t, rel.Included[nano.KindUser], 1)
		assert.Equal(t, nano.Ref(nano.KindUser, 42), rel.Included[nano.KindUser][0])
		assert.Len(t, rel.Included[nano.KindGenre], 2)

		assert.NotContains(t, rel.Included, nano.KindChallenge)
		assert.Equal(t, "/projects/9/challenges", rel.Relations[nano.KindChallenge].Related)
		assert.Equal(t, "/projects/9/genres", rel.Relations[nano.KindGenre].Related)
	})

	t.Run("unknown relation key fails with path", func(t *testing.T) {
		t.Parallel()

		var rel nano.RelationInfo

		err := json.Unmarshal([]byte(`{"gizmos": {"data": []}}`), &rel)
		require.ErrorIs(t, err, nano.ErrUnknownKind)

		var decodeErr *nano.DecodeError

		require.ErrorAs(t, err, &decodeErr)
		assert.Contains(t, decodeErr.Path, "gizmos")
	})

	t.Run("null data treated as absent", func(t *testing.T) {
		t.Parallel()

		var rel nano.RelationInfo

		require.NoError(t, json.Unmarshal([]byte(`{"user": {"data": null}}`), &rel))
		assert.Empty(t, rel.Included)
	})
}

func TestRelationInfoEncode(t *testing.T) {
	t.Parallel()

	rel := nano.RelationInfo{
		Included: map[nano.Kind][]nano.ObjectRef{
			nano.KindProject:          {nano.Ref(nano.KindProject, 9)},
			nano.KindProjectChallenge: {nano.Ref(nano.KindProjectChallenge, 11)},
			nano.KindGenre:            {nano.Ref(nano.KindGenre, 1), nano.Ref(nano.KindGenre, 2)},
		},
	}

	data, err := json.Marshal(rel)
	require.NoError(t, err)

	var keys map[string]json.RawMessage

	require.NoError(t, json.Unmarshal(data, &keys))

	// single refs go out under the unique name with one data object
	assert.Contains(t, keys, "project")
	assert.Contains(t, keys, "project-challenge")

	// multi refs go out under the plural name with an array
	require.Contains(t, keys, "genres")

	var genres struct {
		Data []nano.ObjectRef `json:"data"`
	}

	require.NoError(t, json.Unmarshal(keys["genres"], &genres))
	assert.Len(t, genres.Data, 2)
}

func TestLinkInfo(t *testing.T) {
	t.Parallel()

	var links nano.LinkInfo

	require.NoError(t, json.Unmarshal([]byte(`{"self": "/users/42", "spotlight": "/users/42/spotlight"}`), &links))
	assert.Equal(t, "/users/42", links.Self)
	assert.Equal(t, "/users/42/spotlight", links.Others["spotlight"])

	data, err := json.Marshal(links)
	require.NoError(t, err)
	assert.JSONEq(t, `{"self": "/users/42", "spotlight": "/users/42/spotlight"}`, string(data))
}
