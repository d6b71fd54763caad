package middleware

import (
	"fmt"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/6laercio/saude-integrada-api/internal/httperr"
)

func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				var stack [4096]byte
				n := runtime.Stack(stack[:], false)

				log.Error().
					Str("request_id", RequestIDFrom(c)).
					Str("panic", fmt.Sprintf("%v", r)).
					Str("stack", string(stack[:n])).
					Msg("panic recovered")

				httperr.Internal(c, "INTERNAL_ERROR", "Erro interno do servidor.")
				c.Abort()
			}
		}()
		c.Next()
	}
}
