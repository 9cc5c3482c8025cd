package itinerary

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dayMarkerPattern = regexp.MustCompile(`(?i)^[\s#*\-_>|]*day\s*(\d+)\b`)
	clockPattern     = regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}(?:\s*[ap]m\b)?`)
	atPlacePattern   = regexp.MustCompile(`(?i)\bat\s+([^,.]+)`)
)

// ParseLines is the last-resort scanner for prose responses. It returns raw
// day documents in the same shape the JSON path decodes, so the normalizer
// applies the same defaults to both.
func ParseLines(raw string) []any {
	var days []any
	var current map[string]any

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := dayMarkerPattern.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			current = map[string]any{
				"dayNumber":  float64(n),
				"activities": []any{},
			}
			days = append(days, current)
			continue
		}

		if current == nil || len(line) <= 5 {
			continue
		}

		token := clockPattern.FindString(line)
		if token == "" {
			continue
		}

		current["activities"] = append(current["activities"].([]any), map[string]any{
			"title":    line,
			"time":     strings.TrimSpace(token),
			"category": string(ClassifyText(line)),
			"location": lineLocation(line),
		})
	}

	return days
}

func lineLocation(line string) any {
	if m := atPlacePattern.FindStringSubmatch(line); m != nil {
		if place := strings.TrimSpace(m[1]); place != "" {
			return place
		}
	}
	return map[string]any{"name": defaultLocation}
}
