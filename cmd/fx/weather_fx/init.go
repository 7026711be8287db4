package weather_fx

import (
	"go.uber.org/fx"
	"wander/internal/services"
	mem "wander/pkg/memcache"
)

var Module = fx.Provide(provideWeatherService)

func provideWeatherService(cache mem.WeatherCache) services.WeatherServiceInterface {
	return services.NewWeatherService(cache)
}
