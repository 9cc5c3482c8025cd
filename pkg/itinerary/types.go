package itinerary

import (
	"encoding/json"
	"time"
)

// DateLayout is the calendar date format used for Day.Date.
const DateLayout = "2006-01-02"

// Category is the closed set of activity kinds.
type Category string

const (
	CategorySightseeing    Category = "sightseeing"
	CategoryFood           Category = "food"
	CategoryAccommodation  Category = "accommodation"
	CategoryTransportation Category = "transportation"
	CategoryActivity       Category = "activity"
	CategoryNightlife      Category = "nightlife"
	CategoryOther          Category = "other"
)

// Categories lists the closed category enum in a stable order.
func Categories() []Category {
	return []Category{
		CategorySightseeing,
		CategoryFood,
		CategoryAccommodation,
		CategoryTransportation,
		CategoryActivity,
		CategoryNightlife,
		CategoryOther,
	}
}

func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Activity is one normalized itinerary entry.
type Activity struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Time        string   `json:"time"`
	Duration    string   `json:"duration"`
	Cost        float64  `json:"cost"`
	Location    string   `json:"location"`
}

// Day groups the activities planned for one calendar date.
type Day struct {
	DayNumber  int        `json:"dayNumber"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Itinerary is an ordered list of days, numbered contiguously from 1.
type Itinerary []Day

// MarshalJSON keeps an empty itinerary encoded as [] rather than null.
func (it Itinerary) MarshalJSON() ([]byte, error) {
	if it == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Day(it))
}

func (it Itinerary) Clone() Itinerary {
	out := make(Itinerary, len(it))
	for i, day := range it {
		out[i] = Day{
			DayNumber:  day.DayNumber,
			Date:       day.Date,
			Activities: append([]Activity(nil), day.Activities...),
		}
	}
	return out
}

// ActivityCount returns the number of activities across all days.
func (it Itinerary) ActivityCount() int {
	n := 0
	for _, day := range it {
		n += len(day.Activities)
	}
	return n
}

// ValidationResult lists every structural problem found in a document.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Strategy names the path that produced an itinerary.
type Strategy string

const (
	StrategyJSON     Strategy = "json"
	StrategyRepaired Strategy = "repaired"
	StrategyLenient  Strategy = "lenient"
	StrategyLines    Strategy = "lines"
	StrategyNone     Strategy = "none"
)

// Result pairs a parsed itinerary with the strategy that produced it.
type Result struct {
	Itinerary Itinerary `json:"itinerary"`
	Strategy  Strategy  `json:"strategy"`
}

// dateFor returns start + offset calendar days, formatted with DateLayout.
func dateFor(start time.Time, offset int) string {
	return time.Date(start.Year(), start.Month(), start.Day()+offset, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}
