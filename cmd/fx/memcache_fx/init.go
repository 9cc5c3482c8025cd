package memcache_fx

import (
	"go.uber.org/fx"

	"itinera/cmd/fx/config_fx"
	mem "itinera/pkg/memcache"
)

var Module = fx.Provide(provideParseResultStore)

func provideParseResultStore(cfg config_fx.AppConfig) mem.ParseResultStore {
	return mem.NewParseResults(cfg.ParseCacheSize)
}
