package response_models

// Activity is the strict, render-ready shape every itinerary entry is coerced
// into. ID, Image and CategoryColor are assigned by the normalizer, never by
// the model.
type Activity struct {
	ID                int    `json:"id"`
	Time              string `json:"time"`
	EndTime           string `json:"endTime,omitempty"`
	Category          string `json:"category"` // CULTURE|FOOD|NATURE|SHOPPING|NIGHTLIFE
	CategoryColor     string `json:"categoryColor"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Location          string `json:"location,omitempty"`
	DistanceFromHotel string `json:"distanceFromHotel,omitempty"`
	CrowdLevel        string `json:"crowdLevel,omitempty"`
	IsIndoor          bool   `json:"isIndoor,omitempty"`
	Image             string `json:"image"`
}

type DayHotel struct {
	Name       string `json:"name"`
	Area       string `json:"area,omitempty"`
	Distance   string `json:"distance,omitempty"`
	PriceRange string `json:"priceRange,omitempty"`
	WhyHere    string `json:"whyHere,omitempty"`
}

type ItineraryDay struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Date       string     `json:"date,omitempty"`
	Area       string     `json:"area,omitempty"`
	Hotel      *DayHotel  `json:"hotel,omitempty"`
	Activities []Activity `json:"activities"`
}

type StayCluster struct {
	Days   string `json:"days"`
	Hotel  string `json:"hotel"`
	Area   string `json:"area,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type StayStrategy struct {
	Summary     string        `json:"summary"`
	TotalHotels int           `json:"totalHotels,omitempty"`
	Clusters    []StayCluster `json:"clusters,omitempty"`
}

type BookingInsight struct {
	Activity string `json:"activity"`
	Insight  string `json:"insight"`
}

type ScheduleAdjustment struct {
	OriginalDay int    `json:"originalDay,omitempty"`
	Adjustment  string `json:"adjustment"`
}

// BudgetError rides inside a 200 payload when the declared budget is below
// the model-computed floor. The front end keys off data.error.
type BudgetError struct {
	Message     string  `json:"message"`
	MinimumCost float64 `json:"minimumCost"`
	Reason      string  `json:"reason,omitempty"`
}

type Itinerary struct {
	Days                []ItineraryDay       `json:"itinerary"`
	StayStrategy        *StayStrategy        `json:"stayStrategy,omitempty"`
	BookingInsights     []BookingInsight     `json:"bookingInsights,omitempty"`
	ScheduleAdjustments []ScheduleAdjustment `json:"scheduleAdjustments,omitempty"`
	Tips                []string             `json:"tips,omitempty"`
	MinimumCost         float64              `json:"minimumCost,omitempty"`
	Weather             *WeatherForecast     `json:"weather,omitempty"`
	Error               *BudgetError         `json:"error,omitempty"`
}
