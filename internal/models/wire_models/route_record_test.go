package wire_models

import (
	"encoding/json"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCamelAndSnakeAreEquivalent(t *testing.T) {
	camel := `{"title":"Day 1","latStart":10.77,"lngStart":106.70,"latEnd":16.05,"lngEnd":108.20,"index":2}`
	snake := `{"title":"Day 1","lat_start":10.77,"lng_start":106.70,"lat_end":16.05,"lng_end":108.20,"index":2}`

	var a, b RouteRecord
	require.NoError(t, json.Unmarshal([]byte(camel), &a))
	require.NoError(t, json.Unmarshal([]byte(snake), &b))

	assert.Equal(t, a.Normalize(), b.Normalize())
}

func TestNormalizePrefersCamelCase(t *testing.T) {
	raw := `{"latStart":10.77,"lat_start":21.02,"lngStart":106.70,"lng_start":105.85,"latEnd":16.05,"lngEnd":108.20}`

	var r RouteRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	route := r.Normalize()
	assert.Equal(t, 10.77, route.LatStart)
	assert.Equal(t, 106.70, route.LngStart)
}

func TestNormalizeInvalidCoordinateBecomesSentinel(t *testing.T) {
	raw := `{"latStart":95.0,"lngStart":106.70,"latEnd":16.05,"lngEnd":-200.0}`

	var r RouteRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	route := r.Normalize()
	assert.Equal(t, 0.0, route.LatStart, "out-of-range latitude stored as sentinel")
	assert.Equal(t, 106.70, route.LngStart)
	assert.Equal(t, 16.05, route.LatEnd)
	assert.Equal(t, 0.0, route.LngEnd, "out-of-range longitude stored as sentinel")
	assert.False(t, route.HasValidCoordinates())
}

func TestNormalizeIndexCoercion(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"number", `{"index":3}`, 3},
		{"numeric string", `{"index":"4"}`, 4},
		{"absent", `{}`, 0},
		{"garbage", `{"index":"first"}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r RouteRecord
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &r))
			assert.Equal(t, tc.want, r.Normalize().Index)
		})
	}
}

func TestNormalizeDetails(t *testing.T) {
	var r RouteRecord
	require.NoError(t, json.Unmarshal([]byte(`{"details":["check in","street food"]}`), &r))
	assert.Equal(t, pq.StringArray{"check in", "street food"}, r.Normalize().Details)

	var malformed RouteRecord
	require.NoError(t, json.Unmarshal([]byte(`{"details":["ok",42]}`), &malformed))
	assert.Empty(t, malformed.Normalize().Details, "mixed-type details degrade to empty")

	var scalar RouteRecord
	require.NoError(t, json.Unmarshal([]byte(`{"details":"not a list"}`), &scalar))
	assert.Empty(t, scalar.Normalize().Details)
}

func TestNormalizeNeverPopulatesCosts(t *testing.T) {
	var r RouteRecord
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &r))
	assert.Empty(t, r.Normalize().Costs)
}
