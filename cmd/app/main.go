package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"itinera/cmd/fx/config_fx"
	"itinera/cmd/fx/controllers_fx"
	"itinera/cmd/fx/itinerary_fx"
	"itinera/cmd/fx/logger_fx"
	"itinera/cmd/fx/memcache_fx"
	"itinera/internal/api/controllers"
	"itinera/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		memcache_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config_fx.AppConfig, logger *zap.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting HTTP server", zap.String("addr", server.Addr))
			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config_fx.AppConfig,
	logger *zap.Logger,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	RegisterRoutes(r, cfg, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg config_fx.AppConfig,
	itineraryController *controllers.ItineraryController) {

	r.GET("/healthz", itineraryController.HealthHandler)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.Use(middleware.BodySizeLimiter(cfg.MaxRequestBytes))
	itineraryGroup.POST("/parse", itineraryController.ParseItineraryHandler)
	itineraryGroup.POST("/validate", itineraryController.ValidateItineraryHandler)
	itineraryGroup.POST("/normalize", itineraryController.NormalizeItineraryHandler)
}
