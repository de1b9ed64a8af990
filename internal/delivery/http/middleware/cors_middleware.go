package middleware

import (
	"github.com/gin-gonic/gin"
)

// CORSMiddleware lets the Next.js frontend (FRONTEND_URL) talk to this API
// with credentials. Only the configured frontend origin and, outside
// production, localhost dev servers are allowed; everything else gets no
// CORS headers and the browser blocks it.
func CORSMiddleware(frontendURL string, isProduction bool) gin.HandlerFunc {
	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:3001": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowed := origin == "" || origin == frontendURL
		if !allowed && !isProduction && devOrigins[origin] {
			allowed = true
		}

		if allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			c.Header("Access-Control-Max-Age", "86400")
		}

		// Caches must differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if allowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
