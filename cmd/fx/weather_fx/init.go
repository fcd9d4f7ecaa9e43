package weather_fx

import (
	"os"
	"time"

	"go.uber.org/fx"

	"voyagemind/internal/api/controllers"
	"voyagemind/internal/services"
)

var Module = fx.Provide(
	ProvideWeatherService,
	ProvideWeatherController,
)

func ProvideWeatherService() services.WeatherServiceInterface {
	config := services.DefaultWeatherConfig()

	// Override points for tests and self-hosted mirrors.
	if url := os.Getenv("OPEN_METEO_URL"); url != "" {
		config.OpenMeteoURL = url
	}
	if url := os.Getenv("GEOCODING_URL"); url != "" {
		config.GeocodingURL = url
	}
	if url := os.Getenv("WTTR_URL"); url != "" {
		config.WttrURL = url
	}
	if timeout := os.Getenv("WEATHER_TIMEOUT"); timeout != "" {
		if parsed, err := time.ParseDuration(timeout); err == nil {
			config.Timeout = parsed
		}
	}

	return services.NewWeatherService(config)
}

func ProvideWeatherController(weatherService services.WeatherServiceInterface) *controllers.WeatherController {
	return controllers.NewWeatherController(weatherService)
}
