package nano_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

func TestID(t *testing.T) {
	t.Parallel()

	t.Run("round trip as string", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(nano.ID(42))
		require.NoError(t, err)
		assert.Equal(t, `"42"`, string(data))

		var id nano.ID

		require.NoError(t, json.Unmarshal(data, &id))
		assert.Equal(t, nano.ID(42), id)
	})

	t.Run("bare number rejected", func(t *testing.T) {
		t.Parallel()

		var id nano.ID

		require.Error(t, json.Unmarshal([]byte(`42`), &id))
	})

	t.Run("non-numeric string rejected", func(t *testing.T) {
		t.Parallel()

		var id nano.ID

		require.Error(t, json.Unmarshal([]byte(`"forty-two"`), &id))
	})
}

func TestOptID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want nano.OptID
	}{
		{"valid", `"90210"`, nano.OptID{Value: 90210, Valid: true}},
		{"null", `null`, nano.OptID{}},
		{"garbage string", `"K1A 0B1"`, nano.OptID{}},
		{"bare number", `90210`, nano.OptID{}},
		{"object", `{"a":1}`, nano.OptID{}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var got nano.OptID

			require.NoError(t, json.Unmarshal([]byte(test.in), &got))
			assert.Equal(t, test.want, got)
		})
	}

	t.Run("absent marshals null", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(nano.OptID{})
		require.NoError(t, err)
		assert.Equal(t, `null`, string(data))
	})
}

func TestMinutes(t *testing.T) {
	t.Parallel()

	var mins nano.Minutes

	require.NoError(t, json.Unmarshal([]byte(`25`), &mins))
	assert.Equal(t, 25*time.Minute, mins.Duration())

	data, err := json.Marshal(nano.Minutes(90 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `90`, string(data))
}

func TestDate(t *testing.T) {
	t.Parallel()

	var date nano.Date

	require.NoError(t, json.Unmarshal([]byte(`"2025-11-01"`), &date))
	assert.Equal(t, nano.NewDate(2025, time.November, 1), date)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2025-11-01"`, string(data))

	require.Error(t, json.Unmarshal([]byte(`"November 1st"`), &date))
}

func TestStringFloat(t *testing.T) {
	t.Parallel()

	var raised nano.StringFloat

	require.NoError(t, json.Unmarshal([]byte(`"1234.56"`), &raised))
	assert.InDelta(t, 1234.56, float64(raised), 0.001)

	require.Error(t, json.Unmarshal([]byte(`1234.56`), &raised))
}

func TestImageURL(t *testing.T) {
	t.Parallel()

	var img nano.ImageURL

	require.NoError(t, json.Unmarshal([]byte(`{"src":"https://cdn.example.com/mug.png"}`), &img))
	assert.Equal(t, nano.ImageURL("https://cdn.example.com/mug.png"), img)

	data, err := json.Marshal(img)
	require.NoError(t, err)
	assert.Equal(t, `"https://cdn.example.com/mug.png"`, string(data))
}
