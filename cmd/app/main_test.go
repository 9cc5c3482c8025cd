package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"itinera/cmd/fx/config_fx"
	"itinera/cmd/fx/controllers_fx"
	"itinera/cmd/fx/itinerary_fx"
	"itinera/cmd/fx/memcache_fx"
)

func newTestEngine(t *testing.T, cfg config_fx.AppConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var engine *gin.Engine
	app := fxtest.New(t,
		fx.Supply(cfg),
		fx.Provide(func() *zap.Logger { return zaptest.NewLogger(t) }),
		fx.NopLogger,
		memcache_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,
		fx.Provide(ProvideRouter),
		fx.Populate(&engine),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)
	return engine
}

func testConfig() config_fx.AppConfig {
	return config_fx.AppConfig{
		AppEnv:           "test",
		MaxResponseBytes: 4096,
		MaxRequestBytes:  16384,
		ParseCacheSize:   10,
		LenientRepair:    true,
		RepairBoundary:   "element,indent",
		AllowedOrigins:   []string{"*"},
	}
}

func TestRouterParsesTruncatedResponse(t *testing.T) {
	engine := newTestEngine(t, testConfig())

	raw := `Here you go: [{"day": 1, "activities": [{"activity": "Hotel check-in", "type": "hotel", "time": "14:00"}]}, {"day": 2, "activities": [{"activity": "Snorkel`
	body, err := json.Marshal(map[string]string{"raw_response": raw, "start_date": "2025-07-16"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/itineraries/parse", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env struct {
		Data struct {
			Strategy  string `json:"strategy"`
			Itinerary []struct {
				DayNumber  int    `json:"dayNumber"`
				Date       string `json:"date"`
				Activities []struct {
					Category string `json:"category"`
				} `json:"activities"`
			} `json:"itinerary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "repaired", env.Data.Strategy)
	require.Len(t, env.Data.Itinerary, 1)
	assert.Equal(t, "2025-07-16", env.Data.Itinerary[0].Date)
	assert.Equal(t, "accommodation", env.Data.Itinerary[0].Activities[0].Category)
}

func TestRouterRejectsUnknownBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.RepairBoundary = "fuzzy"

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(zap.NewNop),
		fx.NopLogger,
		memcache_fx.Module,
		itinerary_fx.Module,
		fx.Invoke(func(*gin.Engine) {}),
		controllers_fx.Module,
		fx.Provide(ProvideRouter),
	)
	assert.Error(t, app.Err())
}

func TestRouterHealth(t *testing.T) {
	engine := newTestEngine(t, testConfig())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}
