package logger_fx

import (
	"context"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"itinera/cmd/fx/config_fx"
)

var Module = fx.Options(
	fx.Provide(ProvideLogger),
	fx.Invoke(registerSync),
)

// ProvideLogger builds a production JSON logger when APP_ENV is production
// and a console development logger otherwise.
func ProvideLogger(cfg config_fx.AppConfig) (*zap.Logger, error) {
	return NewLogger(cfg.AppEnv, cfg.LogLevel)
}

func NewLogger(mode, level string) (*zap.Logger, error) {
	var zcfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		zcfg = zap.NewProductionConfig()
	default:
		zcfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return zcfg.Build()
}

func registerSync(lc fx.Lifecycle, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
}
