package itinerary

import (
	"regexp"
	"strings"
)

// categorySynonyms is the one lookup shared by the JSON path, Normalize and
// the line parser's keyword scan.
var categorySynonyms = map[Category][]string{
	CategorySightseeing: {
		"sightseeing", "sight", "museum", "monument", "landmark", "temple",
		"pagoda", "shrine", "church", "cathedral", "palace", "fort", "castle",
		"gallery", "tour", "viewpoint", "heritage", "historical", "culture",
		"cultural", "park", "garden",
	},
	CategoryFood: {
		"food", "dining", "restaurant", "breakfast", "brunch", "lunch",
		"dinner", "meal", "cafe", "coffee", "snack", "street food", "cuisine",
		"bakery", "tea",
	},
	CategoryAccommodation: {
		"accommodation", "hotel", "check-in", "checkin", "check in",
		"check-out", "checkout", "check out", "hostel", "resort", "stay",
		"lodging", "homestay", "guesthouse",
	},
	CategoryTransportation: {
		"transportation", "transport", "transfer", "taxi", "cab", "flight",
		"airport", "train", "bus", "ferry", "metro", "drive", "commute",
		"departure", "arrival",
	},
	CategoryActivity: {
		"activity", "adventure", "spa", "massage", "hiking", "trek",
		"trekking", "outdoor", "sports", "beach", "swimming", "yoga",
		"cruise", "relaxation",
	},
	CategoryNightlife: {
		"nightlife", "bar", "club", "nightclub", "pub", "party", "lounge",
		"concert",
	},
	CategoryOther: {
		"other", "shopping", "market", "souvenir", "free time", "leisure",
		"misc",
	},
}

// keywordPriority is the order the line scan checks categories in.
var keywordPriority = []Category{
	CategoryFood,
	CategoryAccommodation,
	CategoryTransportation,
	CategorySightseeing,
	CategoryNightlife,
	CategoryOther,
	CategoryActivity,
}

var (
	synonymIndex     = buildSynonymIndex()
	keywordPatterns  = buildKeywordPatterns()
	categorySpaceFix = strings.NewReplacer("_", " ")
)

func buildSynonymIndex() map[string]Category {
	index := make(map[string]Category)
	for category, words := range categorySynonyms {
		for _, word := range words {
			index[word] = category
		}
	}
	return index
}

func buildKeywordPatterns() map[Category]*regexp.Regexp {
	patterns := make(map[Category]*regexp.Regexp, len(categorySynonyms))
	for category, words := range categorySynonyms {
		quoted := make([]string, len(words))
		for i, word := range words {
			quoted[i] = regexp.QuoteMeta(word)
		}
		patterns[category] = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return patterns
}

// MapCategory maps a free-text category onto the closed enum. Unknown and
// empty values map to CategoryActivity.
func MapCategory(raw string) Category {
	key := strings.ToLower(strings.TrimSpace(raw))
	if category, ok := synonymIndex[key]; ok {
		return category
	}
	if category, ok := synonymIndex[categorySpaceFix.Replace(key)]; ok {
		return category
	}
	return CategoryActivity
}

// ClassifyText scans free text for synonym keywords, checking meal, lodging
// and transit words before sightseeing ones.
func ClassifyText(text string) Category {
	lower := strings.ToLower(text)
	for _, category := range keywordPriority {
		if keywordPatterns[category].MatchString(lower) {
			return category
		}
	}
	return CategoryActivity
}
