package services

import (
	"encoding/json"
	"strings"

	"voyagemind/internal/models/response_models"
)

const (
	defaultCategory      = "CULTURE"
	placeholderWhatToDo  = "Explore this location"
	defaultCategoryColor = "bg-gray-100 text-gray-700"
)

var categoryImages = map[string]string{
	"CULTURE":   "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=300&h=200&fit=crop",
	"FOOD":      "https://images.unsplash.com/photo-1514933651103-005eec06c04b?w=300&h=200&fit=crop",
	"NATURE":    "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=300&h=200&fit=crop",
	"SHOPPING":  "https://images.unsplash.com/photo-1555529669-e69e7aa0ba9a?w=300&h=200&fit=crop",
	"NIGHTLIFE": "https://images.unsplash.com/photo-1519046904884-53103b34b206?w=300&h=200&fit=crop",
}

var categoryColors = map[string]string{
	"CULTURE":   "bg-blue-100 text-blue-700",
	"FOOD":      "bg-orange-100 text-orange-700",
	"NATURE":    "bg-green-100 text-green-700",
	"SHOPPING":  "bg-pink-100 text-pink-700",
	"NIGHTLIFE": "bg-purple-100 text-purple-700",
}

// rawItinerary is the untyped boundary shape of model output. Activities stay
// variant (any) until normalizeItinerary coerces them; everything else the
// model may plausibly return well-formed is decoded strictly and passed
// through.
type rawItinerary struct {
	MinimumCost         json.Number                          `json:"minimumCost"`
	Days                []rawDay                             `json:"itinerary"`
	StayStrategy        *response_models.StayStrategy        `json:"stayStrategy"`
	BookingInsights     []response_models.BookingInsight     `json:"bookingInsights"`
	ScheduleAdjustments []response_models.ScheduleAdjustment `json:"scheduleAdjustments"`
	Tips                []string                             `json:"tips"`
}

type rawDay struct {
	Day        int                       `json:"day"`
	Title      string                    `json:"title"`
	Date       string                    `json:"date"`
	Area       string                    `json:"area"`
	Hotel      *response_models.DayHotel `json:"hotel"`
	Activities interface{}               `json:"activities"`
}

// normalizeItinerary repairs whatever shape the model produced into a
// render-ready itinerary. It never fails: malformed activity entries are
// wrapped or replaced, and every activity ends up with an id, a category, an
// image and a color class.
func normalizeItinerary(raw *rawItinerary) *response_models.Itinerary {
	result := &response_models.Itinerary{
		StayStrategy:        raw.StayStrategy,
		BookingInsights:     raw.BookingInsights,
		ScheduleAdjustments: raw.ScheduleAdjustments,
		Tips:                raw.Tips,
	}
	if cost, err := raw.MinimumCost.Float64(); err == nil {
		result.MinimumCost = cost
	}

	for dayIndex, day := range raw.Days {
		normalized := response_models.ItineraryDay{
			Day:        day.Day,
			Title:      day.Title,
			Date:       day.Date,
			Area:       day.Area,
			Hotel:      day.Hotel,
			Activities: []response_models.Activity{},
		}
		if normalized.Day == 0 {
			normalized.Day = dayIndex + 1
		}

		for actIndex, entry := range coerceToSlice(day.Activities) {
			activity := coerceActivity(entry)
			finalizeActivity(&activity, dayIndex, actIndex)
			normalized.Activities = append(normalized.Activities, activity)
		}

		result.Days = append(result.Days, normalized)
	}

	return result
}

// coerceToSlice turns the variant activities field into a slice, treating
// anything that is not an array as empty.
func coerceToSlice(value interface{}) []interface{} {
	slice, ok := value.([]interface{})
	if !ok {
		return []interface{}{}
	}
	return slice
}

// coerceActivity handles the three shapes the model has been seen to emit:
// a proper object, a bare title string, and garbage (null, numbers).
func coerceActivity(entry interface{}) response_models.Activity {
	switch v := entry.(type) {
	case string:
		return response_models.Activity{
			Title:       v,
			Description: placeholderWhatToDo,
			Category:    defaultCategory,
		}
	case map[string]interface{}:
		return response_models.Activity{
			Time:              stringField(v, "time"),
			EndTime:           stringField(v, "endTime"),
			Category:          stringField(v, "category"),
			Title:             stringField(v, "title"),
			Description:       stringField(v, "description"),
			Location:          stringField(v, "location"),
			DistanceFromHotel: stringField(v, "distanceFromHotel"),
			CrowdLevel:        stringField(v, "crowdLevel"),
			IsIndoor:          boolField(v, "isIndoor"),
		}
	default:
		return response_models.Activity{
			Title:       "Activity",
			Description: placeholderWhatToDo,
			Category:    defaultCategory,
		}
	}
}

// finalizeActivity fills the derived presentation fields. Deterministic id
// keeps the front end's keys stable across regenerations of the same trip.
func finalizeActivity(activity *response_models.Activity, dayIndex, actIndex int) {
	activity.ID = dayIndex*100 + actIndex

	category := strings.ToUpper(strings.TrimSpace(activity.Category))
	if category == "" {
		category = defaultCategory
	}
	activity.Category = category

	// Unknown categories keep their label but fall back to the CULTURE image
	// and the neutral color class.
	if image, ok := categoryImages[category]; ok {
		activity.Image = image
	} else {
		activity.Image = categoryImages[defaultCategory]
	}
	if color, ok := categoryColors[category]; ok {
		activity.CategoryColor = color
	} else {
		activity.CategoryColor = defaultCategoryColor
	}

	if activity.Title == "" {
		activity.Title = "Activity"
	}
	if activity.Description == "" {
		activity.Description = placeholderWhatToDo
	}
}

func stringField(m map[string]interface{}, key string) string {
	if value, ok := m[key].(string); ok {
		return value
	}
	return ""
}

func boolField(m map[string]interface{}, key string) bool {
	value, _ := m[key].(bool)
	return value
}
