// cmd/fx/config_fx/init.go
package config_fx

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Provide(ProvideAppConfig)

// AppConfig holds every setting read from the environment.
type AppConfig struct {
	Port             string
	AppEnv           string
	LogLevel         string
	MaxResponseBytes int
	MaxRequestBytes  int64
	ParseCacheTTL    time.Duration
	ParseCacheSize   int
	LenientRepair    bool
	RepairBoundary   string
	AllowedOrigins   []string
}

// ProvideAppConfig loads .env when present, then reads the environment.
func ProvideAppConfig() AppConfig {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env file: %v", err)
	}
	return LoadAppConfig()
}

func LoadAppConfig() AppConfig {
	maxResponse := getEnvInt("MAX_RESPONSE_BYTES", 256<<10)
	return AppConfig{
		Port:             getEnvWithDefault("PORT", "8080"),
		AppEnv:           getEnvWithDefault("APP_ENV", "development"),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", ""),
		MaxResponseBytes: maxResponse,
		MaxRequestBytes:  int64(getEnvInt("MAX_REQUEST_BYTES", 4*maxResponse)),
		ParseCacheTTL:    getEnvDuration("PARSE_CACHE_TTL", 10*time.Minute),
		ParseCacheSize:   getEnvInt("PARSE_CACHE_SIZE", 1000),
		LenientRepair:    getEnvBool("LENIENT_REPAIR", true),
		RepairBoundary:   getEnvWithDefault("REPAIR_BOUNDARY", "element,indent"),
		AllowedOrigins:   splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
