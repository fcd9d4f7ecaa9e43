package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voyagemind/internal/models/request_models"
	"voyagemind/internal/models/response_models"
	"voyagemind/pkg/utils"
)

type stubWeatherService struct {
	forecast *response_models.WeatherForecast
}

func (s *stubWeatherService) GetForecast(ctx context.Context, location, startDate, endDate string) *response_models.WeatherForecast {
	if s.forecast != nil {
		return s.forecast
	}
	return &response_models.WeatherForecast{Location: location, Summary: "Avg 28°C, mostly clear"}
}

type scriptedGenerationClient struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (c *scriptedGenerationClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	i := c.calls
	c.calls++
	c.prompts = append(c.prompts, prompt)
	if i < len(c.errs) && c.errs[i] != nil {
		return "", c.errs[i]
	}
	if i < len(c.responses) {
		return c.responses[i], nil
	}
	return "", errors.New("script exhausted")
}

func testPolicy() utils.RetryPolicy {
	return utils.RetryPolicy{MaxAttempts: 3, DefaultDelay: time.Millisecond}
}

func newTestItineraryService(client utils.GenerationClientInterface) ItineraryServiceInterface {
	return NewItineraryService(&stubWeatherService{}, client, testPolicy(), false)
}

const validResponse = `Sure! Here is your plan:
{"minimumCost": 8000, "itinerary": [{"day": 1, "title": "Beach day", "activities": [
	{"time": "9:00 AM", "category": "NATURE", "title": "Morning beach", "description": "Quiet sands"},
	"Lunch shack",
	{"time": "7:00 PM", "category": "NIGHTLIFE", "title": "Shack music", "description": "Live bands"}
]}], "tips": ["Carry sunscreen"]}`

func goaRequest(budget float64) request_models.GenerateItineraryRequest {
	req := request_models.GenerateItineraryRequest{
		Destination: request_models.Destination{Name: "Goa"},
		StartDate:   "2025-01-10",
		EndDate:     "2025-01-12",
	}
	if budget > 0 {
		req.Logistics = &request_models.Logistics{
			Travelers: 2,
			Budget:    &request_models.Budget{Amount: budget},
		}
	}
	return req
}

func TestGenerateItinerary_Success(t *testing.T) {
	client := &scriptedGenerationClient{responses: []string{validResponse}}
	service := newTestItineraryService(client)

	got, err := service.GenerateItinerary(context.Background(), goaRequest(20000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.calls != 1 {
		t.Errorf("expected 1 generation call, got %d", client.calls)
	}
	if got.Error != nil {
		t.Fatalf("unexpected budget rejection: %+v", got.Error)
	}
	if len(got.Days) != 1 || len(got.Days[0].Activities) != 3 {
		t.Fatalf("unexpected itinerary shape: %+v", got.Days)
	}
	if got.Weather == nil {
		t.Error("expected forecast attached to result")
	}
	for _, activity := range got.Days[0].Activities {
		if activity.Image == "" || activity.CategoryColor == "" || activity.Category == "" {
			t.Errorf("unnormalized activity leaked through: %+v", activity)
		}
	}
}

func TestGenerateItinerary_BudgetTooLow(t *testing.T) {
	client := &scriptedGenerationClient{responses: []string{validResponse}}
	service := newTestItineraryService(client)

	got, err := service.GenerateItinerary(context.Background(), goaRequest(5000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Error == nil {
		t.Fatal("expected budget rejection")
	}
	if got.Error.Message != "Budget Too Low" {
		t.Errorf("unexpected message: %q", got.Error.Message)
	}
	if got.Error.MinimumCost != 8000 {
		t.Errorf("expected floor 8000, got %v", got.Error.MinimumCost)
	}
	// No partial itinerary: normalization must not have run.
	if len(got.Days) != 0 {
		t.Errorf("expected no itinerary days, got %d", len(got.Days))
	}
}

func TestGenerateItinerary_NoBudgetSkipsFloorCheck(t *testing.T) {
	client := &scriptedGenerationClient{responses: []string{validResponse}}
	service := newTestItineraryService(client)

	got, err := service.GenerateItinerary(context.Background(), goaRequest(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Error != nil {
		t.Fatalf("floor check should be skipped without a declared budget: %+v", got.Error)
	}
}

func TestGenerateItinerary_RetriesRateLimitThenSucceeds(t *testing.T) {
	client := &scriptedGenerationClient{
		errs:      []error{errors.New("429 rate limit, retry in 0 seconds"), nil},
		responses: []string{"", validResponse},
	}
	service := newTestItineraryService(client)

	got, err := service.GenerateItinerary(context.Background(), goaRequest(20000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 2 {
		t.Errorf("expected exactly 2 attempts, got %d", client.calls)
	}
	if got == nil || got.Error != nil {
		t.Fatalf("expected successful itinerary, got %+v", got)
	}
}

func TestGenerateItinerary_ExhaustsRetries(t *testing.T) {
	rateLimited := errors.New("quota exceeded")
	client := &scriptedGenerationClient{errs: []error{rateLimited, rateLimited, rateLimited}}
	service := newTestItineraryService(client)

	_, err := service.GenerateItinerary(context.Background(), goaRequest(20000))
	if !errors.Is(err, utils.ErrGenerationUnavailable) {
		t.Fatalf("expected ErrGenerationUnavailable, got %v", err)
	}
	if client.calls != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", client.calls)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("expected last error preserved, got %v", err)
	}
}

func TestGenerateItinerary_NonRateLimitErrorNotRetried(t *testing.T) {
	client := &scriptedGenerationClient{errs: []error{errors.New("connection refused")}}
	service := newTestItineraryService(client)

	_, err := service.GenerateItinerary(context.Background(), goaRequest(20000))
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, utils.ErrGenerationUnavailable) {
		t.Errorf("non-retryable error should surface as-is, got %v", err)
	}
	if client.calls != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", client.calls)
	}
}

func TestGenerateItinerary_CancelledDuringBackoff(t *testing.T) {
	client := &scriptedGenerationClient{
		errs: []error{errors.New("429 rate limited, retry in 3600 seconds")},
	}
	service := newTestItineraryService(client)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := service.GenerateItinerary(ctx, goaRequest(20000))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if errors.Is(err, utils.ErrGenerationUnavailable) {
		t.Error("cancellation must stay distinct from GenerationUnavailable")
	}
	if client.calls != 1 {
		t.Errorf("expected the pending retry to be abandoned, got %d calls", client.calls)
	}
}

func TestGenerateItinerary_UnparsableResponse(t *testing.T) {
	client := &scriptedGenerationClient{responses: []string{"I'm sorry, I can't produce JSON today."}}
	service := newTestItineraryService(client)

	_, err := service.GenerateItinerary(context.Background(), goaRequest(20000))
	if !errors.Is(err, utils.ErrUnparsableResponse) {
		t.Fatalf("expected ErrUnparsableResponse, got %v", err)
	}
	if client.calls != 1 {
		t.Errorf("parse failures must not be retried, got %d calls", client.calls)
	}
}

func TestGenerateItinerary_InvalidDates(t *testing.T) {
	service := newTestItineraryService(&scriptedGenerationClient{})

	req := goaRequest(20000)
	req.EndDate = "2025-01-01" // before start

	_, err := service.GenerateItinerary(context.Background(), req)
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGenerateItinerary_WeatherInPrompt(t *testing.T) {
	client := &scriptedGenerationClient{responses: []string{validResponse}}
	weather := &stubWeatherService{forecast: &response_models.WeatherForecast{
		Location: "Goa",
		Summary:  "Avg 31°C, mostly rainy",
		Forecast: []response_models.DailyWeather{{Date: "2025-01-10", RainMM: 14}},
	}}
	service := NewItineraryService(weather, client, testPolicy(), false)

	if _, err := service.GenerateItinerary(context.Background(), goaRequest(20000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.prompts) != 1 || !strings.Contains(client.prompts[0], "IMPORTANT WEATHER ADJUSTMENT") {
		t.Error("forecast did not influence the prompt")
	}
}

func TestGenerateItinerary_DemoMode(t *testing.T) {
	service := NewItineraryService(&stubWeatherService{}, &scriptedGenerationClient{}, testPolicy(), true)

	got, err := service.GenerateItinerary(context.Background(), goaRequest(20000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Days) != 2 {
		t.Fatalf("expected 2 demo days for a 2-day trip, got %d", len(got.Days))
	}
	for _, day := range got.Days {
		if len(day.Activities) != 3 {
			t.Errorf("day %d: expected 3 activities, got %d", day.Day, len(day.Activities))
		}
		for _, activity := range day.Activities {
			if activity.Image == "" || activity.CategoryColor == "" {
				t.Errorf("demo activity missing presentation fields: %+v", activity)
			}
		}
	}
}
