package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Repairer turns a candidate JSON array into decoded day documents, closing
// truncated output when a strict parse fails.
type Repairer struct {
	boundaries []BoundaryFunc
	lenient    bool
}

func NewRepairer(boundaries []BoundaryFunc, lenient bool) *Repairer {
	return &Repairer{
		boundaries: boundaries,
		lenient:    lenient,
	}
}

func (r *Repairer) Repair(candidate string) ([]any, Strategy, error) {
	days, err := decodeArray(candidate)
	if err == nil {
		return days, StrategyJSON, nil
	}
	strictErr := err

	text := strings.TrimSpace(candidate)
	for _, attempt := range r.attempts(text) {
		if days, err := decodeArray(closeFragment(attempt)); err == nil {
			return days, StrategyRepaired, nil
		}
	}

	if r.lenient {
		if fixed, err := jsonrepair.JSONRepair(candidate); err == nil {
			if days, err := decodeArray(fixed); err == nil {
				return days, StrategyLenient, nil
			}
		}
	}

	return nil, "", fmt.Errorf("%w: %v", ErrRepairFailed, strictErr)
}

// attempts lists the fragments worth closing, in order. A fragment that
// already ends with ']' is first tried as-is; otherwise the dangling partial
// object is trimmed away. Without a boundary the counters decide alone.
func (r *Repairer) attempts(text string) []string {
	var out []string
	endsClosed := strings.HasSuffix(text, "]")
	if endsClosed {
		out = append(out, text)
	}

	if cut := r.boundary(text); cut > 0 {
		out = append(out, text[:cut])
	} else if !endsClosed {
		out = append(out, text)
	}
	return out
}

func (r *Repairer) boundary(text string) int {
	for _, find := range r.boundaries {
		if cut := find(text); cut > 0 && cut <= len(text) {
			return cut
		}
	}
	return -1
}

// closeFragment appends the closers implied by the balance scan.
func closeFragment(text string) string {
	text = strings.TrimRight(text, " \t\r\n,")
	bal := Scan(text)
	if bal.State != StateNormal {
		return text
	}
	return text + bal.Closers()
}

func decodeArray(text string) ([]any, error) {
	var out []any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, err
	}
	return out, nil
}
