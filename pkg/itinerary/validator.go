package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validate checks a decoded itinerary document and collects every violation.
// Indexes in messages are 1-based.
func Validate(doc any) ValidationResult {
	errs := []string{}

	days, ok := toDocument(doc)
	if !ok || len(days) == 0 {
		return ValidationResult{
			IsValid: false,
			Errors:  []string{"Itinerary must be a non-empty array"},
		}
	}

	for i, raw := range days {
		dayLabel := fmt.Sprintf("Day %d", i+1)

		day, ok := raw.(map[string]any)
		if !ok {
			errs = append(errs, dayLabel+": must be an object")
			continue
		}

		if !isNumber(day["dayNumber"]) {
			errs = append(errs, dayLabel+": missing or invalid dayNumber")
		}
		if isBlank(day["date"]) {
			errs = append(errs, dayLabel+": missing date")
		}

		activities, ok := day["activities"].([]any)
		if !ok {
			errs = append(errs, dayLabel+": activities must be an array")
			continue
		}

		for j, item := range activities {
			label := fmt.Sprintf("%s, Activity %d", dayLabel, j+1)

			activity, ok := item.(map[string]any)
			if !ok {
				errs = append(errs, label+": must be an object")
				continue
			}
			if firstString(activity, "activity", "title") == "" {
				errs = append(errs, label+": missing title")
			}
			if firstString(activity, "category", "type") == "" {
				errs = append(errs, label+": missing category")
			}
			if firstString(activity, "time") == "" {
				errs = append(errs, label+": missing time")
			}
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// ValidateItinerary validates a typed itinerary through the same rules.
func ValidateItinerary(it Itinerary) ValidationResult {
	return Validate(it)
}

// toDocument converts supported inputs into a loosely typed day array.
// Typed values go through a JSON round trip.
func toDocument(v any) ([]any, bool) {
	switch d := v.(type) {
	case nil:
		return nil, false
	case []any:
		return d, true
	case string:
		return decodeDocument([]byte(d))
	case []byte:
		return decodeDocument(d)
	case json.RawMessage:
		return decodeDocument(d)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	return decodeDocument(data)
}

func decodeDocument(data []byte) ([]any, bool) {
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	days, ok := out.([]any)
	return days, ok
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, json.Number, int:
		return true
	}
	return false
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
