package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wander/internal/models/response_models"
	mem "wander/pkg/memcache"
	"wander/pkg/utils"
)

const (
	openMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"
	weatherCacheTTL  = 10 * time.Minute
)

type WeatherServiceInterface interface {
	GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*response_models.WeatherResponse, error)
}

type WeatherService struct {
	client  *http.Client
	baseURL string
	cache   mem.WeatherCache
}

func NewWeatherService(cache mem.WeatherCache) WeatherServiceInterface {
	return &WeatherService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: openMeteoBaseURL,
		cache:   cache,
	}
}

// openMeteoResponse mirrors the slice of the Open-Meteo payload we care about.
type openMeteoResponse struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

func (w *WeatherService) GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*response_models.WeatherResponse, error) {
	if !utils.IsValidCoordinate(latitude, longitude) {
		return nil, utils.ErrInvalidCoordinates
	}

	// Round to two decimals (~1km) so nearby lookups share a cache entry.
	key := fmt.Sprintf("%.2f:%.2f", latitude, longitude)
	if cached, ok := w.cache.Get(key); ok {
		if snapshot, ok := cached.(*response_models.WeatherResponse); ok {
			return snapshot, nil
		}
	}

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", latitude))
	query.Set("longitude", fmt.Sprintf("%.4f", longitude))
	query.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, utils.ErrWeatherUnavailable
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, utils.ErrWeatherUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.ErrWeatherUnavailable
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, utils.ErrWeatherUnavailable
	}

	out := &response_models.WeatherResponse{
		Latitude:     payload.Latitude,
		Longitude:    payload.Longitude,
		TemperatureC: payload.CurrentWeather.Temperature,
		WindSpeedKmh: payload.CurrentWeather.WindSpeed,
		WeatherCode:  payload.CurrentWeather.WeatherCode,
		Description:  describeWeatherCode(payload.CurrentWeather.WeatherCode),
		FetchedAt:    utils.FormatRFC3339VN(time.Now()),
	}

	w.cache.Set(key, out, weatherCacheTTL)
	return out, nil
}

// describeWeatherCode maps WMO weather interpretation codes to short labels.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "Clear sky"
	case code <= 3:
		return "Partly cloudy"
	case code <= 48:
		return "Fog"
	case code <= 57:
		return "Drizzle"
	case code <= 67:
		return "Rain"
	case code <= 77:
		return "Snow"
	case code <= 82:
		return "Rain showers"
	case code <= 86:
		return "Snow showers"
	case code <= 99:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}
