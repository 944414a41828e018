package weather_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/services"
	"wayfare/pkg/config"
)

var Module = fx.Provide(
	provideWeatherService)

func provideWeatherService(cfg *config.Config) services.WeatherServiceInterface {
	return services.NewOpenWeatherClient(cfg)
}
