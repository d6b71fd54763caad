package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/6laercio/saude-integrada-api/internal/config"
)

// CORS allows the configured origins. "*" (the default) reflects any origin.
func CORS(cfg *config.Config) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}

	if cfg.AllowsAnyOrigin() {
		c.AllowOriginFunc = func(string) bool { return true }
	} else {
		c.AllowOrigins = cfg.CORSOrigins
		c.AllowCredentials = true
	}

	return cors.New(c)
}
