package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"museum", CategorySightseeing},
		{"  Museum ", CategorySightseeing},
		{"lunch", CategoryFood},
		{"check-in", CategoryAccommodation},
		{"check_in", CategoryAccommodation},
		{"taxi", CategoryTransportation},
		{"spa", CategoryActivity},
		{"club", CategoryNightlife},
		{"shopping", CategoryOther},
		{"food", CategoryFood},
		{"nightlife", CategoryNightlife},
		{"underwater basket weaving", CategoryActivity},
		{"", CategoryActivity},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, MapCategory(tt.input))
		})
	}
}

func TestEveryCategoryMapsToItself(t *testing.T) {
	for _, c := range Categories() {
		assert.Equal(t, c, MapCategory(string(c)))
		assert.True(t, c.IsValid())
	}
	assert.False(t, Category("museum").IsValid())
}

func TestSynonymTableIsUnambiguous(t *testing.T) {
	seen := map[string]Category{}
	for category, words := range categorySynonyms {
		for _, word := range words {
			if prev, ok := seen[word]; ok {
				t.Errorf("synonym %q listed under both %s and %s", word, prev, category)
			}
			seen[word] = category
		}
	}
}

func TestClassifyText(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"9:00 AM Visit the National Museum", CategorySightseeing},
		{"12:30 Lunch at Pho 24", CategoryFood},
		{"Lunch near the temple", CategoryFood},
		{"15:00 Check-in at Hotel Rex", CategoryAccommodation},
		{"07:15 Taxi to the airport", CategoryTransportation},
		{"22:00 Drinks at Sky Bar", CategoryNightlife},
		{"18:00 Evening spa session", CategoryActivity},
		{"10:00 Walk around Barcelona", CategoryActivity},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyText(tt.input))
		})
	}
}
