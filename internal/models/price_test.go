// internal/models/price_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Price
		want string
	}{
		{"fixed", FixedPrice(500), "500"},
		{"fixed with pence", FixedPrice(499.5), "499.5"},
		{"enquire", EnquirePrice(), `"Enquire"`},
		{"unset", Price{}, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			var back Price
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.in, back)
		})
	}
}

func TestPriceUnmarshalLenientInputs(t *testing.T) {
	var p Price

	// Case-insensitive sentinel.
	require.NoError(t, json.Unmarshal([]byte(`"enquire"`), &p))
	assert.Equal(t, PriceEnquire, p.Kind)

	// Historical records carry amounts as strings.
	require.NoError(t, json.Unmarshal([]byte(`"650"`), &p))
	assert.Equal(t, FixedPrice(650), p)

	// Empty string means unset.
	require.NoError(t, json.Unmarshal([]byte(`""`), &p))
	assert.False(t, p.IsSet())

	// Garbage and non-positive amounts are rejected.
	assert.Error(t, json.Unmarshal([]byte(`"about 500"`), &p))
	assert.Error(t, json.Unmarshal([]byte(`0`), &p))
	assert.Error(t, json.Unmarshal([]byte(`-10`), &p))
}

func TestPriceDatabaseRoundTrip(t *testing.T) {
	for _, in := range []Price{FixedPrice(500), FixedPrice(1250.75), EnquirePrice(), {}} {
		v, err := in.Value()
		require.NoError(t, err)

		var back Price
		require.NoError(t, back.Scan(v))
		assert.Equal(t, in, back)
	}

	// Drivers may hand back bytes or numbers.
	var p Price
	require.NoError(t, p.Scan([]byte("Enquire")))
	assert.Equal(t, PriceEnquire, p.Kind)
	require.NoError(t, p.Scan(float64(500)))
	assert.Equal(t, FixedPrice(500), p)
	require.NoError(t, p.Scan(nil))
	assert.False(t, p.IsSet())
}

func TestPriceDisplay(t *testing.T) {
	assert.Equal(t, "£500", FixedPrice(500).Display("£"))
	assert.Equal(t, "£499.5", FixedPrice(499.5).Display("£"))
	assert.Equal(t, "Enquire", EnquirePrice().Display("£"))
	assert.Equal(t, "", Price{}.Display("£"))
}
