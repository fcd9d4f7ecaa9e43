package services

import (
	"encoding/json"
	"testing"
)

func decodeRaw(t *testing.T, payload string) *rawItinerary {
	t.Helper()
	var raw rawItinerary
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	return &raw
}

func TestNormalizeItinerary_RepairsMalformedActivities(t *testing.T) {
	raw := decodeRaw(t, `{
		"itinerary": [
			{"day": 1, "title": "Mixed bag", "activities": [
				"Sunset at the fort",
				null,
				42,
				{"time": "9:00 AM", "category": "food", "title": "Street breakfast", "description": "Local stalls"}
			]},
			{"day": 2, "title": "Broken day", "activities": "not-an-array"},
			{"day": 3, "title": "Missing activities"}
		]
	}`)

	got := normalizeItinerary(raw)

	if len(got.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(got.Days))
	}

	day1 := got.Days[0]
	if len(day1.Activities) != 4 {
		t.Fatalf("expected 4 activities, got %d", len(day1.Activities))
	}

	// Bare string wrapped into a CULTURE placeholder.
	if day1.Activities[0].Title != "Sunset at the fort" {
		t.Errorf("string entry lost its title: %+v", day1.Activities[0])
	}
	if day1.Activities[0].Category != "CULTURE" || day1.Activities[0].Description != "Explore this location" {
		t.Errorf("string entry not wrapped correctly: %+v", day1.Activities[0])
	}

	// null and numeric entries become generic placeholders.
	for _, i := range []int{1, 2} {
		if day1.Activities[i].Title != "Activity" || day1.Activities[i].Category != "CULTURE" {
			t.Errorf("garbage entry %d not replaced: %+v", i, day1.Activities[i])
		}
	}

	// Proper object survives, category is upper-cased.
	if day1.Activities[3].Category != "FOOD" || day1.Activities[3].Title != "Street breakfast" {
		t.Errorf("object entry mangled: %+v", day1.Activities[3])
	}

	// Non-array and missing activities coerce to empty slices, never nil.
	for _, day := range got.Days[1:] {
		if day.Activities == nil || len(day.Activities) != 0 {
			t.Errorf("day %d activities not coerced to empty: %+v", day.Day, day.Activities)
		}
	}
}

func TestNormalizeItinerary_PresentationInvariants(t *testing.T) {
	raw := decodeRaw(t, `{
		"itinerary": [
			{"day": 1, "activities": [
				{"title": "A", "category": "NATURE"},
				{"title": "B", "category": "SPELUNKING"},
				{"title": "C"}
			]},
			{"day": 2, "activities": [{"title": "D", "category": "NIGHTLIFE"}]}
		]
	}`)

	got := normalizeItinerary(raw)

	for _, day := range got.Days {
		seen := map[int]bool{}
		for _, activity := range day.Activities {
			if activity.Category == "" {
				t.Errorf("activity %q has empty category", activity.Title)
			}
			if activity.Image == "" {
				t.Errorf("activity %q has empty image", activity.Title)
			}
			if activity.CategoryColor == "" {
				t.Errorf("activity %q has empty color", activity.Title)
			}
			if seen[activity.ID] {
				t.Errorf("duplicate id %d in day %d", activity.ID, day.Day)
			}
			seen[activity.ID] = true
		}
	}

	// Unknown category keeps its label but gets the default image and the
	// neutral color class.
	unknown := got.Days[0].Activities[1]
	if unknown.Category != "SPELUNKING" {
		t.Errorf("unknown category rewritten: %q", unknown.Category)
	}
	if unknown.Image != categoryImages["CULTURE"] {
		t.Errorf("unknown category image not defaulted: %q", unknown.Image)
	}
	if unknown.CategoryColor != defaultCategoryColor {
		t.Errorf("unknown category color not defaulted: %q", unknown.CategoryColor)
	}

	// Missing category defaults to CULTURE.
	if got.Days[0].Activities[2].Category != "CULTURE" {
		t.Errorf("missing category not defaulted: %+v", got.Days[0].Activities[2])
	}
}

func TestNormalizeItinerary_Idempotent(t *testing.T) {
	raw := decodeRaw(t, `{
		"minimumCost": 9000,
		"itinerary": [
			{"day": 1, "title": "Day one", "activities": [
				"Old town walk",
				{"time": "2:00 PM", "category": "SHOPPING", "title": "Bazaar", "description": "Haggle politely"}
			]}
		],
		"tips": ["Carry cash"]
	}`)

	first := normalizeItinerary(raw)

	// Feed the normalized output back through the normalizer.
	encoded, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second := normalizeItinerary(decodeRaw(t, string(encoded)))

	firstJSON, _ := json.Marshal(first.Days)
	secondJSON, _ := json.Marshal(second.Days)
	if string(firstJSON) != string(secondJSON) {
		t.Errorf("normalization not idempotent:\nfirst:  %s\nsecond: %s", firstJSON, secondJSON)
	}
}

func TestNormalizeItinerary_PassthroughFields(t *testing.T) {
	raw := decodeRaw(t, `{
		"minimumCost": 12500,
		"itinerary": [],
		"stayStrategy": {"summary": "One hotel", "totalHotels": 1},
		"tips": ["Tip 1", "Tip 2"]
	}`)

	got := normalizeItinerary(raw)

	if got.MinimumCost != 12500 {
		t.Errorf("expected minimumCost 12500, got %v", got.MinimumCost)
	}
	if got.StayStrategy == nil || got.StayStrategy.Summary != "One hotel" {
		t.Errorf("stay strategy lost: %+v", got.StayStrategy)
	}
	if len(got.Tips) != 2 {
		t.Errorf("tips lost: %+v", got.Tips)
	}
}
