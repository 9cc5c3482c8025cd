package itinerary

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTitle    = "Untitled Activity"
	defaultTime     = "09:00"
	defaultDuration = "1 hour"
	defaultLocation = "TBD"
)

// NormalizeDays rebuilds an itinerary from decoded day documents. Day numbers
// and dates come from array position; source values are discarded.
func NormalizeDays(days []any, start time.Time) Itinerary {
	if looksLikeActivityList(days) {
		days = []any{map[string]any{"activities": days}}
	}

	out := make(Itinerary, 0, len(days))
	for i, raw := range days {
		day, _ := raw.(map[string]any)
		items, _ := day["activities"].([]any)

		activities := make([]Activity, 0, len(items))
		for _, item := range items {
			activities = append(activities, normalizeActivity(item))
		}

		out = append(out, Day{
			DayNumber:  i + 1,
			Date:       dateFor(start, i),
			Activities: activities,
		})
	}
	return out
}

// looksLikeActivityList detects the single-day shape: a flat array of
// activity objects with no activities key.
func looksLikeActivityList(days []any) bool {
	if len(days) == 0 {
		return false
	}
	for _, raw := range days {
		m, ok := raw.(map[string]any)
		if !ok {
			return false
		}
		if hasAny(m, "activities", "dayNumber", "day", "date") {
			return false
		}
		if !hasAny(m, "activity", "title", "time") {
			return false
		}
	}
	return true
}

func normalizeActivity(raw any) Activity {
	m, ok := raw.(map[string]any)
	if !ok {
		m = map[string]any{}
		if s, isString := raw.(string); isString {
			m["title"] = s
		}
	}

	category := firstString(m, "category", "type")
	if category == "" {
		category = string(CategoryActivity)
	}

	return Activity{
		Title:       orDefault(firstString(m, "activity", "title"), defaultTitle),
		Description: firstString(m, "description", "what_to_do"),
		Category:    MapCategory(category),
		Time:        orDefault(firstString(m, "time", "start_time", "startTime"), defaultTime),
		Duration:    orDefault(firstString(m, "duration"), defaultDuration),
		Cost:        normalizeCost(m["cost"]),
		Location:    normalizeLocation(m["location"]),
	}
}

// leadingNumberPattern reads the number a price string starts with once
// currency symbols and separators are gone, so "25.50." parses as 25.5.
var leadingNumberPattern = regexp.MustCompile(`^\d*\.?\d+`)

func normalizeCost(v any) float64 {
	var cost float64
	switch c := v.(type) {
	case float64:
		cost = c
	case json.Number:
		cost, _ = c.Float64()
	case int:
		cost = float64(c)
	case string:
		digits := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, c)
		parsed, err := strconv.ParseFloat(leadingNumberPattern.FindString(digits), 64)
		if err != nil {
			return 0
		}
		cost = parsed
	default:
		return 0
	}

	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
		return 0
	}
	return cost
}

func normalizeLocation(v any) string {
	var loc string
	switch l := v.(type) {
	case nil:
	case string:
		loc = l
	case map[string]any:
		var parts []string
		for _, key := range []string{"name", "address"} {
			if part := stringify(l[key]); part != "" {
				parts = append(parts, part)
			}
		}
		loc = strings.Join(parts, ", ")
	default:
		loc = stringify(l)
	}

	if strings.TrimSpace(loc) == "" {
		return defaultLocation
	}
	return loc
}

// firstString returns the first key holding a non-blank scalar value.
func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringify(m[key]); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case bool:
		if s {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

func hasAny(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
