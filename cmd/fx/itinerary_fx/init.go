// cmd/fx/itinerary_fx/init.go
package itinerary_fx

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"itinera/cmd/fx/config_fx"
	"itinera/internal/services"
	"itinera/pkg/itinerary"
	mem "itinera/pkg/memcache"
)

var Module = fx.Provide(
	ProvideItineraryParser,
	ProvideItineraryService,
)

// ProvideItineraryParser builds the shared parser from the repair settings.
func ProvideItineraryParser(cfg config_fx.AppConfig, logger *zap.Logger) (*itinerary.Parser, error) {
	boundaries, err := itinerary.BoundariesByName(cfg.RepairBoundary)
	if err != nil {
		return nil, fmt.Errorf("REPAIR_BOUNDARY: %w", err)
	}

	logger.Info("Initializing itinerary parser",
		zap.String("boundaries", cfg.RepairBoundary),
		zap.Bool("lenient_repair", cfg.LenientRepair))

	return itinerary.NewParser(
		itinerary.WithLogger(logger.Named("itinerary")),
		itinerary.WithBoundaries(boundaries...),
		itinerary.WithLenientRepair(cfg.LenientRepair),
	), nil
}

func ProvideItineraryService(
	parser *itinerary.Parser,
	cache mem.ParseResultStore,
	cfg config_fx.AppConfig,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(
		parser,
		cache,
		services.ItineraryServiceConfig{
			MaxResponseBytes: cfg.MaxResponseBytes,
			CacheTTL:         cfg.ParseCacheTTL,
		},
		logger.Named("service"),
	)
}
