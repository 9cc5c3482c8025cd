package itinerary

import (
	"fmt"
	"strings"
)

// BoundaryFunc locates the end of the last complete object in a truncated
// fragment. It returns the length to cut the fragment to, or -1.
type BoundaryFunc func(text string) int

// ElementBoundary cuts after the last object that closes as an element of an
// array, as seen by the balance scanner.
func ElementBoundary(text string) int {
	s := NewScanner()
	cut := -1
	for i := 0; i < len(text); i++ {
		closed, parent := s.Feed(text[i])
		if closed && text[i] == '}' && parent == '[' {
			cut = i + 1
		}
	}
	return cut
}

// IndentBoundary works on the pretty-printed layout generators usually emit.
// It looks backward for a closing-brace-only line, then for an array close
// line, then for any line that ends an object.
func IndentBoundary(text string) int {
	lines := strings.Split(text, "\n")
	offsets := make([]int, len(lines))
	pos := 0
	for i, line := range lines {
		offsets[i] = pos
		pos += len(line) + 1
	}

	matchers := []func(trimmed string) bool{
		func(t string) bool { return t == "}" || t == "}," },
		func(t string) bool { return t == "]" || t == "]," },
		func(t string) bool { return strings.HasSuffix(strings.TrimSuffix(t, ","), "}") },
	}

	for _, match := range matchers {
		for i := len(lines) - 1; i >= 0; i-- {
			trimmed := strings.TrimSpace(lines[i])
			if trimmed == "" || !match(trimmed) {
				continue
			}
			closer := strings.LastIndexAny(lines[i], "}]")
			return offsets[i] + closer + 1
		}
	}
	return -1
}

// BoundariesByName resolves a comma separated list such as "element,indent".
func BoundariesByName(names string) ([]BoundaryFunc, error) {
	var out []BoundaryFunc
	for _, name := range strings.Split(names, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
			continue
		case "element":
			out = append(out, ElementBoundary)
		case "indent":
			out = append(out, IndentBoundary)
		default:
			return nil, fmt.Errorf("unknown boundary heuristic %q", name)
		}
	}
	return out, nil
}
