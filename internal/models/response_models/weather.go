package response_models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type DailyWeather struct {
	Date      string  `json:"date"`
	TempHigh  int     `json:"tempHigh"`
	TempLow   int     `json:"tempLow"`
	Condition string  `json:"condition"`
	RainMM    float64 `json:"rainMm"`
}

type WeatherAlert struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`
	Type    string `json:"type"` // RAIN or HEAT
	Message string `json:"message"`
}

// WeatherForecast is fetched fresh per request. Mock marks a synthetic
// placeholder returned when every provider failed; consumers must not treat
// its temperatures as authoritative.
type WeatherForecast struct {
	Location    string         `json:"location"`
	Coordinates *Coordinates   `json:"coordinates,omitempty"`
	Forecast    []DailyWeather `json:"forecast"`
	Alerts      []WeatherAlert `json:"alerts"`
	Summary     string         `json:"summary"`
	Mock        bool           `json:"mock,omitempty"`
}
