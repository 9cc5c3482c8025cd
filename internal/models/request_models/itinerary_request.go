package request_models

type ParseItineraryRequest struct {
	RawResponse string `json:"raw_response" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
}

// ValidateItineraryRequest carries an itinerary as loosely typed JSON so that
// structurally broken input still reaches the validator.
type ValidateItineraryRequest struct {
	Itinerary any `json:"itinerary"`
}

type NormalizeItineraryRequest struct {
	Itinerary any    `json:"itinerary"`
	StartDate string `json:"start_date" binding:"required"`
}
