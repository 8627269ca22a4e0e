package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/avoronov/scoreboard/internal/pkg/auth"
)

// UserIDContextKey is a gin context key for the authenticated user identifier.
const UserIDContextKey = "userID"

// TokenParser validates bearer tokens and resolves the user they belong to.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// AuthRequired ensures the caller presented a valid bearer token before
// the handler runs. Missing and invalid tokens are indistinguishable to
// the client.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
