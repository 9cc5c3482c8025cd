package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the listed origins. A "*" entry allows any origin and
// an empty list allows none.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept", TraceIDHeader},
		ExposeHeaders: []string{TraceIDHeader},
	}

	var origins []string
	for _, origin := range allowedOrigins {
		if origin == "*" {
			config.AllowAllOrigins = true
			continue
		}
		origins = append(origins, origin)
	}

	switch {
	case config.AllowAllOrigins:
	case len(origins) == 0:
		config.AllowOriginFunc = func(string) bool { return false }
	default:
		config.AllowOrigins = origins
	}

	return cors.New(config)
}
