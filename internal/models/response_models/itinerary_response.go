package response_models

import "itinera/pkg/itinerary"

type ParseItineraryResponse struct {
	Itinerary     itinerary.Itinerary        `json:"itinerary"`
	Strategy      itinerary.Strategy         `json:"strategy"`
	Validation    itinerary.ValidationResult `json:"validation"`
	Normalized    bool                       `json:"normalized"`
	Cached        bool                       `json:"cached"`
	DayCount      int                        `json:"day_count"`
	ActivityCount int                        `json:"activity_count"`
}

type NormalizeItineraryResponse struct {
	Itinerary     itinerary.Itinerary `json:"itinerary"`
	DayCount      int                 `json:"day_count"`
	ActivityCount int                 `json:"activity_count"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
