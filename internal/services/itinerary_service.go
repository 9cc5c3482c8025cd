package services

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"itinera/internal/models/response_models"
	"itinera/pkg/itinerary"
	mem "itinera/pkg/memcache"
	"itinera/pkg/utils"
)

const DefaultMaxResponseBytes = 256 << 10

type ItineraryServiceInterface interface {
	ParseItinerary(ctx context.Context, rawResponse, startDate string) (*response_models.ParseItineraryResponse, error)
	ValidateItinerary(ctx context.Context, doc any) (itinerary.ValidationResult, error)
	NormalizeItinerary(ctx context.Context, doc any, startDate string) (*response_models.NormalizeItineraryResponse, error)
}

// ItineraryParser is the subset of *itinerary.Parser the service needs.
type ItineraryParser interface {
	ParseDetailed(raw string, start time.Time) itinerary.Result
	Normalize(v any, start time.Time) itinerary.Itinerary
	Validate(v any) itinerary.ValidationResult
}

type ItineraryServiceConfig struct {
	MaxResponseBytes int
	CacheTTL         time.Duration
}

type ItineraryService struct {
	parser ItineraryParser
	cache  mem.ParseResultStore
	config ItineraryServiceConfig
	logger *zap.Logger
}

func NewItineraryService(
	parser ItineraryParser,
	cache mem.ParseResultStore,
	config ItineraryServiceConfig,
	logger *zap.Logger,
) ItineraryServiceInterface {
	if config.MaxResponseBytes <= 0 {
		config.MaxResponseBytes = DefaultMaxResponseBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryService{
		parser: parser,
		cache:  cache,
		config: config,
		logger: logger,
	}
}

// ParseItinerary recovers an itinerary from a raw model response, validates
// it and normalizes it again when validation fails.
func (s *ItineraryService) ParseItinerary(ctx context.Context, rawResponse, startDate string) (*response_models.ParseItineraryResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawResponse) == "" {
		return nil, fmt.Errorf("%w: raw_response is empty", utils.ErrInvalidInput)
	}
	if len(rawResponse) > s.config.MaxResponseBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", utils.ErrPayloadTooLarge, len(rawResponse), s.config.MaxResponseBytes)
	}

	start, err := utils.ParseStartDate(startDate)
	if err != nil {
		return nil, err
	}

	cacheKey := generateCacheKey(rawResponse, start)
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			s.logger.Debug("parse cache hit", zap.String("key", cacheKey))
			return buildParseResponse(cached, true), nil
		}
	}

	result := s.parser.ParseDetailed(rawResponse, start)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parsed := mem.CachedParse{Result: result}
	parsed.Validation = s.parser.Validate(result.Itinerary)
	if !parsed.Validation.IsValid && len(result.Itinerary) > 0 {
		parsed.Result.Itinerary = s.parser.Normalize(result.Itinerary, start)
		parsed.Validation = s.parser.Validate(parsed.Result.Itinerary)
		parsed.Normalized = true
	}

	if len(parsed.Result.Itinerary) == 0 {
		s.logger.Warn("no itinerary recovered from response",
			zap.Int("length", len(rawResponse)),
			zap.String("strategy", string(result.Strategy)))
		return nil, utils.ErrEmptyItinerary
	}

	s.logger.Info("itinerary parsed",
		zap.String("strategy", string(parsed.Result.Strategy)),
		zap.Int("days", len(parsed.Result.Itinerary)),
		zap.Int("activities", parsed.Result.Itinerary.ActivityCount()),
		zap.Bool("normalized", parsed.Normalized))

	if s.cache != nil {
		s.cache.Set(cacheKey, parsed, s.config.CacheTTL)
	}
	return buildParseResponse(parsed, false), nil
}

func (s *ItineraryService) ValidateItinerary(ctx context.Context, doc any) (itinerary.ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return itinerary.ValidationResult{}, err
	}
	return s.parser.Validate(doc), nil
}

func (s *ItineraryService) NormalizeItinerary(ctx context.Context, doc any, startDate string) (*response_models.NormalizeItineraryResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start, err := utils.ParseStartDate(startDate)
	if err != nil {
		return nil, err
	}

	normalized := s.parser.Normalize(doc, start)
	if len(normalized) == 0 {
		return nil, utils.ErrEmptyItinerary
	}

	return &response_models.NormalizeItineraryResponse{
		Itinerary:     normalized,
		DayCount:      len(normalized),
		ActivityCount: normalized.ActivityCount(),
	}, nil
}

func buildParseResponse(parsed mem.CachedParse, cached bool) *response_models.ParseItineraryResponse {
	return &response_models.ParseItineraryResponse{
		Itinerary:     parsed.Result.Itinerary,
		Strategy:      parsed.Result.Strategy,
		Validation:    parsed.Validation,
		Normalized:    parsed.Normalized,
		Cached:        cached,
		DayCount:      len(parsed.Result.Itinerary),
		ActivityCount: parsed.Result.Itinerary.ActivityCount(),
	}
}

// generateCacheKey hashes the raw response together with the trip start date.
func generateCacheKey(rawResponse string, start time.Time) string {
	h := sha256.New()
	h.Write([]byte(utils.FormatDate(start)))
	h.Write([]byte{0})
	h.Write([]byte(rawResponse))
	return fmt.Sprintf("%x", h.Sum(nil))[:32]
}
