package request_models

import (
	"encoding/json"
	"strings"
)

// Destination accepts either a bare string or an object with a name, the two
// shapes the front end has historically sent.
type Destination struct {
	Name    string `json:"name"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`
}

func (d *Destination) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		d.Name = name
		return nil
	}

	type plain Destination
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*d = Destination(obj)
	return nil
}

type Budget struct {
	Amount float64 `json:"amount"`
	Style  string  `json:"style,omitempty"`
}

type Logistics struct {
	Travelers int     `json:"travelers"`
	Transport string  `json:"transport,omitempty"` // public|private|mixed
	Departure string  `json:"departure,omitempty"`
	Budget    *Budget `json:"budget,omitempty"`
}

type Availability struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type GenerateItineraryRequest struct {
	Destination   Destination   `json:"destination"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	Logistics     *Logistics    `json:"logistics,omitempty"`
	Interests     []string      `json:"interests,omitempty"`
	Availability  *Availability `json:"availability,omitempty"`
	Accommodation string        `json:"accommodation,omitempty"` // near_attractions|budget_friendly|luxury|central
}

func (r *GenerateItineraryRequest) Travelers() int {
	if r.Logistics != nil && r.Logistics.Travelers > 0 {
		return r.Logistics.Travelers
	}
	return 2
}

func (r *GenerateItineraryRequest) DeclaredBudget() *Budget {
	if r.Logistics == nil {
		return nil
	}
	return r.Logistics.Budget
}

func (r *GenerateItineraryRequest) Validate() bool {
	return strings.TrimSpace(r.Destination.Name) != "" &&
		strings.TrimSpace(r.StartDate) != "" &&
		strings.TrimSpace(r.EndDate) != ""
}
