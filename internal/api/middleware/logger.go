package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request: method, path, status, latency and
// client IP.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Printf(
			"%s %s %d in %s from %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)
	}
}
