package itinerary

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrCandidateNotFound = errors.New("no json array found in response")
	ErrRepairFailed      = errors.New("json repair failed")
)

var fencePattern = regexp.MustCompile("(?i)```(?:json)?")

// StripFences removes markdown code fences, with or without a json tag.
func StripFences(raw string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(raw, ""))
}

// ExtractCandidate returns the text between the first '[' and the last ']'
// of the unfenced response, both inclusive.
func ExtractCandidate(raw string) (string, error) {
	cleaned := StripFences(raw)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return "", ErrCandidateNotFound
	}

	return cleaned[start : end+1], nil
}
