package response_models

type WeatherResponse struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	TemperatureC float64 `json:"temperature_c"`
	WindSpeedKmh float64 `json:"wind_speed_kmh"`
	WeatherCode  int     `json:"weather_code"`
	Description  string  `json:"description"`
	FetchedAt    string  `json:"fetched_at"` // RFC3339
}
