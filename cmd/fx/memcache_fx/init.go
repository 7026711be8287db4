package memcache_fx

import (
	"go.uber.org/fx"
	mem "wander/pkg/memcache"
)

var Module = fx.Provide(
	provideResetTokenStore,
	provideWeatherCache)

func provideResetTokenStore() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func provideWeatherCache() mem.WeatherCache {
	return mem.NewWeatherCache()
}
