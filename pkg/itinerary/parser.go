// Package itinerary turns language-model travel-planning output into a
// validated, normalized itinerary. Parsing never fails: malformed input falls
// back from strict JSON to repaired JSON to a line scan, and finally to an
// empty itinerary.
package itinerary

import (
	"time"

	"go.uber.org/zap"
)

type Option func(*Parser)

func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithBoundaries replaces the truncation boundary heuristics, tried in order.
func WithBoundaries(boundaries ...BoundaryFunc) Option {
	return func(p *Parser) {
		p.boundaries = boundaries
	}
}

// WithLenientRepair toggles the general-purpose JSON repair pass that runs
// after balance repair has failed.
func WithLenientRepair(enabled bool) Option {
	return func(p *Parser) {
		p.lenient = enabled
	}
}

// Parser is immutable once built and safe for concurrent use.
type Parser struct {
	logger     *zap.Logger
	boundaries []BoundaryFunc
	lenient    bool
	repairer   *Repairer
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger:     zap.NewNop(),
		boundaries: []BoundaryFunc{ElementBoundary, IndentBoundary},
		lenient:    true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.repairer = NewRepairer(p.boundaries, p.lenient)
	return p
}

func (p *Parser) Parse(raw string, start time.Time) Itinerary {
	return p.ParseDetailed(raw, start).Itinerary
}

func (p *Parser) ParseDetailed(raw string, start time.Time) Result {
	if days, strategy, ok := p.parseJSON(raw); ok {
		return Result{Itinerary: NormalizeDays(days, start), Strategy: strategy}
	}

	days := ParseLines(raw)
	if len(days) == 0 {
		p.logger.Debug("no itinerary recovered", zap.Int("length", len(raw)))
		return Result{Itinerary: Itinerary{}, Strategy: StrategyNone}
	}

	p.logger.Debug("itinerary recovered from lines", zap.Int("days", len(days)))
	return Result{Itinerary: NormalizeDays(days, start), Strategy: StrategyLines}
}

func (p *Parser) parseJSON(raw string) ([]any, Strategy, bool) {
	candidate, err := ExtractCandidate(raw)
	if err != nil {
		p.logger.Debug("json candidate not found", zap.Error(err))
		return nil, "", false
	}

	days, strategy, err := p.repairer.Repair(candidate)
	if err != nil {
		p.logger.Debug("json repair failed", zap.Error(err), zap.Int("candidate_length", len(candidate)))
		return nil, "", false
	}
	if !hasItineraryShape(days) {
		p.logger.Debug("json array holds no day or activity objects", zap.Int("elements", len(days)))
		return nil, "", false
	}

	if strategy != StrategyJSON {
		p.logger.Debug("json recovered by repair", zap.String("strategy", string(strategy)), zap.Int("days", len(days)))
	}
	return days, strategy, true
}

// Normalize re-derives every day and activity field of an already day-shaped
// value. Unsupported input yields an empty itinerary.
func (p *Parser) Normalize(v any, start time.Time) Itinerary {
	days, ok := toDocument(v)
	if !ok {
		return Itinerary{}
	}
	return NormalizeDays(days, start)
}

func (p *Parser) Validate(v any) ValidationResult {
	return Validate(v)
}

// hasItineraryShape reports whether at least one element is an object
// carrying a day or activity field.
func hasItineraryShape(items []any) bool {
	for _, item := range items {
		if m, ok := item.(map[string]any); ok && hasAny(m, shapeKeys...) {
			return true
		}
	}
	return false
}

var shapeKeys = []string{"activities", "dayNumber", "day", "date", "activity", "title", "time"}

var defaultParser = NewParser()

// Parse runs the default parser.
func Parse(raw string, start time.Time) Itinerary {
	return defaultParser.Parse(raw, start)
}

func ParseDetailed(raw string, start time.Time) Result {
	return defaultParser.ParseDetailed(raw, start)
}

func Normalize(v any, start time.Time) Itinerary {
	return defaultParser.Normalize(v, start)
}
