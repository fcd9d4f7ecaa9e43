package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"voyagemind/internal/models/request_models"
	"voyagemind/internal/models/response_models"
	"voyagemind/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	weatherService WeatherServiceInterface
	client         utils.GenerationClientInterface
	retry          utils.RetryPolicy
	demoMode       bool
}

func NewItineraryService(
	weatherService WeatherServiceInterface,
	client utils.GenerationClientInterface,
	retry utils.RetryPolicy,
	demoMode bool,
) ItineraryServiceInterface {
	return &ItineraryService{
		weatherService: weatherService,
		client:         client,
		retry:          retry,
		demoMode:       demoMode,
	}
}

// GenerateItinerary runs the full pipeline: weather lookup, prompt assembly,
// generation with rate-limit retry, JSON extraction, budget-floor check and
// shape normalization. A budget below the model-computed floor returns a
// result carrying data.error rather than an error value.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error) {
	if !req.Validate() {
		return nil, fmt.Errorf("%w: missing required fields: destination, startDate, endDate", utils.ErrInvalidInput)
	}

	duration, err := TripDuration(req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	if s.demoMode {
		log.Printf("DEMO MODE: returning sample itinerary for %s", req.Destination.Name)
		return DemoItinerary(req.Destination.Name, duration), nil
	}

	weather := s.weatherService.GetForecast(ctx, req.Destination.Name, req.StartDate, req.EndDate)
	log.Printf("Weather for %s: %s", req.Destination.Name, weather.Summary)

	prompt := BuildItineraryPrompt(req, duration, weather)

	text, err := s.generateWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	jsonText, err := utils.ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var raw rawItinerary
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnparsableResponse, err)
	}

	floor, _ := raw.MinimumCost.Float64()
	if budget := req.DeclaredBudget(); budget != nil && floor > 0 && budget.Amount < floor {
		log.Printf("Budget too low for %s: declared %.0f, floor %.0f", req.Destination.Name, budget.Amount, floor)
		return &response_models.Itinerary{
			MinimumCost: floor,
			Error: &response_models.BudgetError{
				Message:     "Budget Too Low",
				MinimumCost: floor,
				Reason:      fmt.Sprintf("A %d-day trip to %s needs at least ₹%.0f; you declared ₹%.0f. Consider raising your budget or shortening the trip.", duration, req.Destination.Name, floor, budget.Amount),
			},
		}, nil
	}

	result := normalizeItinerary(&raw)
	result.Weather = weather
	return result, nil
}

// generateWithRetry retries only rate-limit errors, honoring the provider's
// "retry in N" hint. The wait is cancellable: it blocks this request only.
func (s *ItineraryService) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= s.retry.MaxAttempts; attempt++ {
		text, err := s.client.GenerateItineraryJSON(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !utils.IsRateLimited(err) {
			return "", err
		}
		if attempt == s.retry.MaxAttempts {
			break
		}

		delay := s.retry.DelayFrom(err.Error())
		log.Printf("Rate limited (attempt %d/%d), waiting %s before retry", attempt, s.retry.MaxAttempts, delay)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return "", fmt.Errorf("%w after %d attempts: %v", utils.ErrGenerationUnavailable, s.retry.MaxAttempts, lastErr)
}
