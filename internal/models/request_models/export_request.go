package request_models

import (
	"encoding/json"

	"voyagemind/internal/models/response_models"
)

type ExportPDFRequest struct {
	Itinerary   json.RawMessage `json:"itinerary"`
	Destination string          `json:"destination"`
	Dates       string          `json:"dates,omitempty"`
}

type ExportCalendarRequest struct {
	Itinerary   []response_models.ItineraryDay `json:"itinerary"`
	Destination string                         `json:"destination"`
	StartDate   string                         `json:"startDate"`
}

type ShareLinkRequest struct {
	Itinerary   json.RawMessage `json:"itinerary"`
	Destination string          `json:"destination"`
	Dates       string          `json:"dates,omitempty"`
	Budget      json.RawMessage `json:"budget,omitempty"`
}
