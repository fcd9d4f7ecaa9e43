package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"voyagemind/internal/models/response_models"
	"voyagemind/pkg/utils"
)

type WeatherServiceInterface interface {
	// GetForecast never fails: total provider failure degrades to a
	// synthetic placeholder with Mock set.
	GetForecast(ctx context.Context, location, startDate, endDate string) *response_models.WeatherForecast
}

type WeatherConfig struct {
	OpenMeteoURL string
	GeocodingURL string
	WttrURL      string
	Timeout      time.Duration
}

func DefaultWeatherConfig() WeatherConfig {
	return WeatherConfig{
		OpenMeteoURL: "https://api.open-meteo.com/v1/forecast",
		GeocodingURL: "https://geocoding-api.open-meteo.com/v1/search",
		WttrURL:      "https://wttr.in",
		Timeout:      5 * time.Second,
	}
}

type WeatherService struct {
	config WeatherConfig
	client *http.Client
}

func NewWeatherService(config WeatherConfig) WeatherServiceInterface {
	return &WeatherService{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Known city coordinates, checked before hitting the geocoding API.
var cityCoordinates = map[string]response_models.Coordinates{
	"goa":         {Lat: 15.2993, Lon: 74.1240},
	"kerala":      {Lat: 10.8505, Lon: 76.2711},
	"jaipur":      {Lat: 26.9124, Lon: 75.7873},
	"manali":      {Lat: 32.2396, Lon: 77.1887},
	"udaipur":     {Lat: 24.5854, Lon: 73.7125},
	"varanasi":    {Lat: 25.3176, Lon: 82.9739},
	"agra":        {Lat: 27.1767, Lon: 78.0081},
	"ladakh":      {Lat: 34.1526, Lon: 77.5771},
	"paris":       {Lat: 48.8566, Lon: 2.3522},
	"tokyo":       {Lat: 35.6762, Lon: 139.6503},
	"new york":    {Lat: 40.7128, Lon: -74.0060},
	"dubai":       {Lat: 25.2048, Lon: 55.2708},
	"singapore":   {Lat: 1.3521, Lon: 103.8198},
	"bali":        {Lat: -8.3405, Lon: 115.0920},
	"london":      {Lat: 51.5074, Lon: -0.1278},
	"maldives":    {Lat: 3.2028, Lon: 73.2207},
	"chennai":     {Lat: 13.0827, Lon: 80.2707},
	"hyderabad":   {Lat: 17.3850, Lon: 78.4867},
	"ooty":        {Lat: 11.4102, Lon: 76.6950},
	"coorg":       {Lat: 12.3375, Lon: 75.8069},
	"munnar":      {Lat: 10.0889, Lon: 77.0595},
	"kodaikanal":  {Lat: 10.2381, Lon: 77.4892},
	"shimla":      {Lat: 31.1048, Lon: 77.1734},
	"darjeeling":  {Lat: 27.0410, Lon: 88.2663},
	"greenland":   {Lat: 64.1814, Lon: -51.6941},
	"iceland":     {Lat: 64.9631, Lon: -19.0208},
	"antarctica":  {Lat: -75.2509, Lon: -0.0713},
	"switzerland": {Lat: 46.8182, Lon: 8.2275},
	"new zealand": {Lat: -40.9006, Lon: 174.8860},
}

func (s *WeatherService) GetForecast(ctx context.Context, location, startDate, endDate string) *response_models.WeatherForecast {
	forecast, err := s.fetchOpenMeteo(ctx, location)
	if err == nil {
		return forecast
	}
	log.Printf("Primary weather provider failed for %q, trying wttr.in: %v", location, err)

	forecast, err = s.fetchWttrIn(ctx, location)
	if err == nil {
		return forecast
	}
	log.Printf("All weather providers failed for %q, using placeholder: %v", location, err)

	return &response_models.WeatherForecast{
		Location: location,
		Forecast: []response_models.DailyWeather{},
		Alerts:   []response_models.WeatherAlert{},
		Summary:  "Forecast unavailable (Offline)",
		Mock:     true,
	}
}

type geocodingResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type openMeteoResponse struct {
	Daily struct {
		Time        []string  `json:"time"`
		WeatherCode []int     `json:"weather_code"`
		TempMax     []float64 `json:"temperature_2m_max"`
		TempMin     []float64 `json:"temperature_2m_min"`
		RainSum     []float64 `json:"rain_sum"`
	} `json:"daily"`
}

func (s *WeatherService) fetchOpenMeteo(ctx context.Context, location string) (*response_models.WeatherForecast, error) {
	coords, ok := cityCoordinates[strings.ToLower(location)]
	if !ok {
		resolved, err := s.geocode(ctx, location)
		if err != nil {
			return nil, err
		}
		coords = resolved
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coords.Lat, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(coords.Lon, 'f', 4, 64))
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,rain_sum")
	params.Set("timezone", "auto")
	params.Set("forecast_days", "14")

	var parsed openMeteoResponse
	if err := s.getJSON(ctx, s.config.OpenMeteoURL+"?"+params.Encode(), &parsed); err != nil {
		return nil, err
	}

	daily := parsed.Daily
	var days []response_models.DailyWeather
	for i := range daily.Time {
		if i >= len(daily.WeatherCode) || i >= len(daily.TempMax) || i >= len(daily.TempMin) || i >= len(daily.RainSum) {
			break
		}
		days = append(days, response_models.DailyWeather{
			Date:      daily.Time[i],
			TempHigh:  int(math.Round(daily.TempMax[i])),
			TempLow:   int(math.Round(daily.TempMin[i])),
			Condition: conditionFromCode(daily.WeatherCode[i]),
			RainMM:    daily.RainSum[i],
		})
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("open-meteo returned no daily data")
	}
	if len(days) > 7 {
		days = days[:7]
	}

	alerts := deriveAlerts(days)
	return &response_models.WeatherForecast{
		Location:    location,
		Coordinates: &coords,
		Forecast:    days,
		Alerts:      alerts,
		Summary:     summarizeForecast(days),
	}, nil
}

func (s *WeatherService) geocode(ctx context.Context, location string) (response_models.Coordinates, error) {
	params := url.Values{}
	params.Set("name", location)
	params.Set("count", "1")

	var parsed geocodingResponse
	if err := s.getJSON(ctx, s.config.GeocodingURL+"?"+params.Encode(), &parsed); err != nil {
		return response_models.Coordinates{}, err
	}
	if len(parsed.Results) == 0 {
		return response_models.Coordinates{}, utils.ErrLocationNotFound
	}

	return response_models.Coordinates{
		Lat: parsed.Results[0].Latitude,
		Lon: parsed.Results[0].Longitude,
	}, nil
}

type wttrResponse struct {
	Weather []struct {
		Date     string `json:"date"`
		MaxTempC string `json:"maxtempC"`
		MinTempC string `json:"mintempC"`
		Hourly   []struct {
			PrecipMM    string `json:"precipMM"`
			WeatherDesc []struct {
				Value string `json:"value"`
			} `json:"weatherDesc"`
		} `json:"hourly"`
	} `json:"weather"`
}

func (s *WeatherService) fetchWttrIn(ctx context.Context, location string) (*response_models.WeatherForecast, error) {
	endpoint := fmt.Sprintf("%s/%s?format=j1", strings.TrimRight(s.config.WttrURL, "/"), url.PathEscape(location))

	var parsed wttrResponse
	if err := s.getJSON(ctx, endpoint, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Weather) == 0 {
		return nil, fmt.Errorf("wttr.in returned no weather data")
	}

	var days []response_models.DailyWeather
	for _, day := range parsed.Weather {
		high, _ := strconv.Atoi(day.MaxTempC)
		low, _ := strconv.Atoi(day.MinTempC)

		condition := "Cloudy"
		if len(day.Hourly) > 4 && len(day.Hourly[4].WeatherDesc) > 0 {
			condition = day.Hourly[4].WeatherDesc[0].Value // midday reading
		}
		rain := 0.0
		if len(day.Hourly) > 0 {
			rain, _ = strconv.ParseFloat(day.Hourly[0].PrecipMM, 64)
		}

		days = append(days, response_models.DailyWeather{
			Date:      day.Date,
			TempHigh:  high,
			TempLow:   low,
			Condition: condition,
			RainMM:    rain,
		})
	}
	if len(days) > 7 {
		days = days[:7]
	}

	return &response_models.WeatherForecast{
		Location: location,
		Forecast: days,
		Alerts:   deriveAlerts(days),
		Summary:  summarizeForecast(days),
	}, nil
}

func (s *WeatherService) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// conditionFromCode maps WMO weather codes to coarse labels.
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code >= 1 && code <= 3:
		return "Partly Cloudy"
	case code == 45 || code == 48:
		return "Foggy"
	case code >= 51 && code <= 55:
		return "Drizzle"
	case code >= 61 && code <= 65:
		return "Rainy"
	case code >= 71 && code <= 77:
		return "Snowy"
	case code >= 80 && code <= 82:
		return "Showers"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Cloudy"
	}
}

func deriveAlerts(days []response_models.DailyWeather) []response_models.WeatherAlert {
	alerts := []response_models.WeatherAlert{}
	for i, day := range days {
		if day.RainMM > 10 {
			alerts = append(alerts, response_models.WeatherAlert{
				Day:     i + 1,
				Date:    day.Date,
				Type:    "RAIN",
				Message: fmt.Sprintf("Heavy rain expected (%.0fmm) - consider indoor plans", day.RainMM),
			})
		}
		if day.TempHigh > 35 {
			alerts = append(alerts, response_models.WeatherAlert{
				Day:     i + 1,
				Date:    day.Date,
				Type:    "HEAT",
				Message: fmt.Sprintf("High heat (%d°C) - stay hydrated", day.TempHigh),
			})
		}
	}
	return alerts
}

func summarizeForecast(days []response_models.DailyWeather) string {
	if len(days) == 0 {
		return "Weather data unavailable"
	}

	sum := 0.0
	counts := make(map[string]int)
	for _, day := range days {
		sum += float64(day.TempHigh+day.TempLow) / 2
		counts[day.Condition]++
	}
	avgTemp := int(math.Round(sum / float64(len(days))))

	mainCondition := days[0].Condition
	best := 0
	for _, day := range days {
		if counts[day.Condition] > best {
			best = counts[day.Condition]
			mainCondition = day.Condition
		}
	}

	return fmt.Sprintf("Avg %d°C, mostly %s", avgTemp, strings.ToLower(mainCondition))
}
