package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"voyagemind/internal/models/request_models"
	"voyagemind/internal/models/response_models"
)

var accommodationDescriptions = map[string]string{
	"near_attractions": "within 1-2km of major tourist attractions to minimize travel time",
	"budget_friendly":  "with best value for money, good ratings, and essential amenities",
	"luxury":           "premium 4-5 star property with excellent facilities and services",
	"central":          "in the heart of the city center with easy access to everything",
}

// TripDuration computes the day count of a trip, rounding partial days up and
// never going below one day. Errors indicate unparsable or inverted dates.
func TripDuration(startDate, endDate string) (int, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, err
	}
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s before start date %s", endDate, startDate)
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days, nil
}

// BuildItineraryPrompt assembles the generation instruction from the trip
// request and the already-fetched forecast. Pure function of its inputs.
func BuildItineraryPrompt(req request_models.GenerateItineraryRequest, duration int, weather *response_models.WeatherForecast) string {
	destination := req.Destination.Name
	travelers := req.Travelers()

	budgetAmount := 50000.0
	budgetStyle := "Standard"
	if budget := req.DeclaredBudget(); budget != nil {
		if budget.Amount > 0 {
			budgetAmount = budget.Amount
		}
		if budget.Style != "" {
			budgetStyle = budget.Style
		}
	}

	transport := "mixed"
	departure := "not specified"
	if req.Logistics != nil {
		if req.Logistics.Transport != "" {
			transport = req.Logistics.Transport
		}
		if req.Logistics.Departure != "" {
			departure = req.Logistics.Departure
		}
	}

	interests := "general sightseeing"
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}

	availStart, availEnd := "09:00", "18:00"
	if req.Availability != nil {
		if req.Availability.Start != "" {
			availStart = req.Availability.Start
		}
		if req.Availability.End != "" {
			availEnd = req.Availability.End
		}
	}

	stayPreference := accommodationDescriptions[req.Accommodation]
	if stayPreference == "" {
		stayPreference = accommodationDescriptions["near_attractions"]
	}

	var prompt strings.Builder

	fmt.Fprintf(&prompt, "You are an advanced AI travel planner. Generate a comprehensive %d-day itinerary for %s.\n\n", duration, destination)

	prompt.WriteString("USER INPUTS:\n")
	fmt.Fprintf(&prompt, "- Travel Dates: %s to %s\n", req.StartDate, req.EndDate)
	fmt.Fprintf(&prompt, "- Travelers: %d\n", travelers)
	fmt.Fprintf(&prompt, "- Budget: ₹%.0f total (%s style)\n", budgetAmount, budgetStyle)
	fmt.Fprintf(&prompt, "- Transport Preference: %s\n", transport)
	fmt.Fprintf(&prompt, "- Departing From: %s\n", departure)
	fmt.Fprintf(&prompt, "- Interests: %s\n", interests)
	fmt.Fprintf(&prompt, "- Daily Availability: %s to %s (plan activities within this window)\n", availStart, availEnd)
	fmt.Fprintf(&prompt, "- Accommodation Preference: %s\n", stayPreference)

	prompt.WriteString("\nWEATHER DATA:\n")
	prompt.WriteString(weatherClause(weather))
	prompt.WriteString("\n")

	prompt.WriteString(`
MINIMUM COST CHECK:
Compute the absolute minimum feasible cost for this trip using this formula:
minimumCost = (round-trip transport floor per traveler × travelers) + (daily floor per traveler × days × travelers)
Use the domestic tier for the transport floor if the destination is in the same country as the departure location, and the international tier otherwise. The daily floor covers the cheapest realistic lodging and food.
Return the result as a top-level "minimumCost" number in the JSON.
`)

	prompt.WriteString(`
OPTIMIZATION REQUIREMENTS:
1. TIME-SLOT PLANNING: Include crowd level hints like "(low crowd window)" for morning activities at popular spots
2. SMART HOTEL STRATEGY: Cluster activities by area and recommend a hotel within 1-2km of each day's activities
3. BOOKING INSIGHTS: For any ticketed attraction, provide booking timing advice
4. WEATHER-ADJUSTED SCHEDULING: If rain is expected, assign outdoor activities to clear days
`)

	fmt.Fprintf(&prompt, `
Return ONLY valid JSON (no markdown, no code blocks):
{
  "minimumCost": 12000,
  "itinerary": [
    {
      "day": 1,
      "title": "Day theme",
      "date": "Day 1",
      "area": "Area name where most activities are",
      "hotel": {
        "name": "Recommended hotel for this day/area",
        "area": "Locality name",
        "distance": "0.8km to today's activities",
        "priceRange": "₹2000-3500/night",
        "whyHere": "Short reason why stay here for this day"
      },
      "activities": [
        {
          "time": "9:00 AM",
          "endTime": "11:30 AM",
          "category": "CULTURE",
          "title": "Activity name (low crowd window)",
          "description": "Description with tips",
          "location": "Specific area/locality",
          "distanceFromHotel": "0.5km",
          "crowdLevel": "low",
          "isIndoor": false
        }
      ]
    }
  ],
  "stayStrategy": {
    "summary": "Brief explanation of hotel strategy",
    "totalHotels": 1,
    "clusters": [
      {"days": "1-%d", "hotel": "Hotel Name", "area": "Area Name", "reason": "Close to most activities"}
    ]
  },
  "bookingInsights": [
    {"activity": "Activity name", "insight": "Book 24-48 hours in advance for best price"}
  ],
  "scheduleAdjustments": [
    {"originalDay": 2, "adjustment": "Outdoor activity moved due to rain forecast"}
  ],
  "tips": ["Tip 1", "Tip 2", "Tip 3"]
}

Categories: CULTURE, FOOD, NATURE, SHOPPING, NIGHTLIFE
Generate exactly %d days, each with exactly 3 time-blocked activities: one morning, one afternoon, one evening. Use real place names and real hotel names for %s.
IMPORTANT: Group activities by area each day to minimize travel. Recommend hotels that are in the SAME area as that day's activities.`, duration, duration, destination)

	return prompt.String()
}

func weatherClause(weather *response_models.WeatherForecast) string {
	if weather == nil || weather.Mock || len(weather.Forecast) == 0 {
		return "No reliable forecast available. Plan a balanced mix of indoor and outdoor activities."
	}

	var rainyDates []string
	for _, day := range weather.Forecast {
		if day.RainMM > 2 {
			rainyDates = append(rainyDates, day.Date)
		}
	}

	if len(rainyDates) == 0 {
		summary := weather.Summary
		if summary == "" {
			summary = "Clear weather expected"
		}
		return fmt.Sprintf("%s. Weather looks favorable; mix of outdoor and indoor activities recommended.", summary)
	}

	return fmt.Sprintf(`IMPORTANT WEATHER ADJUSTMENT: Rain is forecasted on these days: %s.
For rainy days: Schedule INDOOR activities (museums, shopping, cafes, temples with covered areas).
Move outdoor activities (beaches, parks, trekking) to drier days.`, strings.Join(rainyDates, ", "))
}
