package nano_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

func TestKindNames(t *testing.T) {
	t.Parallel()

	t.Run("every kind resolves back from both names", func(t *testing.T) {
		t.Parallel()

		for _, kind := range nano.Kinds() {
			fromPlural, err := nano.KindFromName(kind.Name())
			require.NoError(t, err)
			assert.Equal(t, kind, fromPlural)

			fromUnique, err := nano.KindFromName(kind.UniqueName())
			require.NoError(t, err)
			assert.Equal(t, kind, fromUnique)
		}
	})

	t.Run("names are distinct across kinds", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]nano.Kind)
		for _, kind := range nano.Kinds() {
			for _, name := range []string{kind.Name(), kind.UniqueName()} {
				other, dup := seen[name]
				assert.False(t, dup && other != kind, "name %q used by %s and %s", name, other, kind)
				seen[name] = kind
			}
		}
	})

	t.Run("unknown name fails", func(t *testing.T) {
		t.Parallel()

		_, err := nano.KindFromName("gremlins")
		require.ErrorIs(t, err, nano.ErrUnknownKind)
	})

	t.Run("irregular spellings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "nanomessages", nano.KindNanoMessage.Name())
		assert.Equal(t, "stopwatches", nano.KindStopWatch.Name())
		assert.Equal(t, "stopwatch", nano.KindStopWatch.UniqueName())
		assert.Equal(t, "daily-aggregates", nano.KindDailyAggregate.Name())
	})
}

func TestKindJSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(nano.KindProjectChallenge)
		require.NoError(t, err)
		assert.JSONEq(t, `"project-challenges"`, string(data))

		var kind nano.Kind

		require.NoError(t, json.Unmarshal(data, &kind))
		assert.Equal(t, nano.KindProjectChallenge, kind)
	})

	t.Run("unique name accepted on decode", func(t *testing.T) {
		t.Parallel()

		var kind nano.Kind

		require.NoError(t, json.Unmarshal([]byte(`"project-challenge"`), &kind))
		assert.Equal(t, nano.KindProjectChallenge, kind)
	})

	t.Run("unknown name rejected", func(t *testing.T) {
		t.Parallel()

		var kind nano.Kind

		err := json.Unmarshal([]byte(`"widgets"`), &kind)
		require.ErrorIs(t, err, nano.ErrUnknownKind)
	})
}
