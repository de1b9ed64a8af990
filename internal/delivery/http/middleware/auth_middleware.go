package middleware

import (
	"net/http"
	"strings"

	"go-golf-advising-backend/internal/delivery/http/response"
	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates requests with the session token issued at
// login. The token travels either as a Bearer header (API clients) or the
// auth_token cookie (browser).
func AuthMiddleware(sessions *auth.SessionIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := sessions.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid session token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.Subject)
		c.Set(string(domain.KeyUserEmail), claims.Email)

		c.Next()
	}
}
