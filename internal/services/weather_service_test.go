package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "wander/pkg/memcache"
	"wander/pkg/utils"
)

func newWeatherServiceForTest(upstream string) *WeatherService {
	return &WeatherService{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: upstream,
		cache:   mem.NewWeatherCache(),
	}
}

func TestGetCurrentWeatherRejectsInvalidCoordinates(t *testing.T) {
	svc := newWeatherServiceForTest("http://unused")

	_, err := svc.GetCurrentWeather(context.Background(), 0, 108.2)
	assert.ErrorIs(t, err, utils.ErrInvalidCoordinates)

	_, err = svc.GetCurrentWeather(context.Background(), 91, 108.2)
	assert.ErrorIs(t, err, utils.ErrInvalidCoordinates)
}

func TestGetCurrentWeatherCachesByRoundedCoordinates(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"latitude": 16.05,
			"longitude": 108.21,
			"current_weather": {"temperature": 31.4, "windspeed": 12.5, "weathercode": 2}
		}`))
	}))
	defer upstream.Close()

	svc := newWeatherServiceForTest(upstream.URL)

	first, err := svc.GetCurrentWeather(context.Background(), 16.0471, 108.2062)
	require.NoError(t, err)
	assert.Equal(t, 31.4, first.TemperatureC)
	assert.Equal(t, "Partly cloudy", first.Description)

	// Sub-hundredth jitter in the request coordinates hits the same entry.
	second, err := svc.GetCurrentWeather(context.Background(), 16.0489, 108.2055)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestGetCurrentWeatherUpstreamErrorIsUnavailable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	svc := newWeatherServiceForTest(upstream.URL)

	_, err := svc.GetCurrentWeather(context.Background(), 16.0471, 108.2062)
	assert.ErrorIs(t, err, utils.ErrWeatherUnavailable)
}

func TestDescribeWeatherCode(t *testing.T) {
	assert.Equal(t, "Clear sky", describeWeatherCode(0))
	assert.Equal(t, "Rain", describeWeatherCode(63))
	assert.Equal(t, "Thunderstorm", describeWeatherCode(95))
	assert.Equal(t, "Unknown", describeWeatherCode(120))
}
