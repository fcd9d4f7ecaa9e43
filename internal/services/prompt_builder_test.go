package services

import (
	"strings"
	"testing"

	"voyagemind/internal/models/request_models"
	"voyagemind/internal/models/response_models"
)

func tripRequest() request_models.GenerateItineraryRequest {
	return request_models.GenerateItineraryRequest{
		Destination: request_models.Destination{Name: "Jaipur"},
		StartDate:   "2025-03-01",
		EndDate:     "2025-03-04",
		Logistics: &request_models.Logistics{
			Travelers: 3,
			Transport: "public",
			Departure: "Mumbai",
			Budget:    &request_models.Budget{Amount: 45000, Style: "Standard"},
		},
		Interests:     []string{"history", "food"},
		Availability:  &request_models.Availability{Start: "08:00", End: "20:00"},
		Accommodation: "budget_friendly",
	}
}

func TestTripDuration(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
		wantErr    bool
	}{
		{"2025-03-01", "2025-03-04", 3, false},
		{"2025-01-10", "2025-01-12", 2, false},
		{"2025-03-01", "2025-03-01", 1, false},
		{"2025-03-04", "2025-03-01", 0, true},
		{"not-a-date", "2025-03-01", 0, true},
	}

	for _, tc := range cases {
		got, err := TripDuration(tc.start, tc.end)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s..%s: expected error", tc.start, tc.end)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s..%s: unexpected error: %v", tc.start, tc.end, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s..%s: got %d days, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestBuildItineraryPrompt_CoreInputs(t *testing.T) {
	prompt := BuildItineraryPrompt(tripRequest(), 3, &response_models.WeatherForecast{
		Summary:  "Avg 28°C, mostly clear",
		Forecast: []response_models.DailyWeather{{Date: "2025-03-01", RainMM: 0}},
	})

	for _, want := range []string{
		"3-day itinerary for Jaipur",
		"Travelers: 3",
		"₹45000",
		"Departing From: Mumbai",
		"history, food",
		"08:00 to 20:00",
		"best value for money",
		"minimumCost",
		"exactly 3 time-blocked activities: one morning, one afternoon, one evening",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// The cost formula must be stated so the model can compute the floor.
	if !strings.Contains(prompt, "transport floor per traveler × travelers") {
		t.Error("prompt missing minimum-cost formula")
	}
	if !strings.Contains(prompt, "domestic tier") || !strings.Contains(prompt, "international tier") {
		t.Error("prompt missing domestic/international tiering")
	}
}

func TestBuildItineraryPrompt_RainClause(t *testing.T) {
	forecast := &response_models.WeatherForecast{
		Forecast: []response_models.DailyWeather{
			{Date: "2025-03-01", RainMM: 0.5},
			{Date: "2025-03-02", RainMM: 6.0},
			{Date: "2025-03-03", RainMM: 1.0},
		},
	}

	prompt := BuildItineraryPrompt(tripRequest(), 3, forecast)

	if !strings.Contains(prompt, "IMPORTANT WEATHER ADJUSTMENT") {
		t.Error("expected weather adjustment clause for rainy forecast")
	}
	if !strings.Contains(prompt, "2025-03-02") {
		t.Error("rainy date not listed")
	}
	if strings.Contains(prompt, "2025-03-01,") {
		t.Error("dry day listed as rainy")
	}
}

func TestBuildItineraryPrompt_NoRainClauseBelowThreshold(t *testing.T) {
	forecast := &response_models.WeatherForecast{
		Summary:  "Avg 30°C, mostly clear",
		Forecast: []response_models.DailyWeather{{Date: "2025-03-01", RainMM: 1.9}},
	}

	prompt := BuildItineraryPrompt(tripRequest(), 3, forecast)

	if strings.Contains(prompt, "IMPORTANT WEATHER ADJUSTMENT") {
		t.Error("2mm threshold not honored")
	}
	if !strings.Contains(prompt, "Weather looks favorable") {
		t.Error("expected favorable-weather clause")
	}
}

func TestBuildItineraryPrompt_MockForecast(t *testing.T) {
	prompt := BuildItineraryPrompt(tripRequest(), 3, &response_models.WeatherForecast{Mock: true})

	if !strings.Contains(prompt, "No reliable forecast available") {
		t.Error("synthetic forecast should not be presented as real weather")
	}
}

func TestBuildItineraryPrompt_Defaults(t *testing.T) {
	req := request_models.GenerateItineraryRequest{
		Destination: request_models.Destination{Name: "Goa"},
		StartDate:   "2025-03-01",
		EndDate:     "2025-03-03",
	}

	prompt := BuildItineraryPrompt(req, 2, nil)

	for _, want := range []string{
		"Travelers: 2",
		"₹50000",
		"general sightseeing",
		"09:00 to 18:00",
		"within 1-2km of major tourist attractions",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing default %q", want)
		}
	}
}
