package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidStartDate = errors.New("invalid start date")
	ErrPayloadTooLarge  = errors.New("raw response exceeds size limit")
	ErrEmptyItinerary   = errors.New("no itinerary could be recovered")
)
