package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/avoronov/scoreboard/internal/domain/errors"
	"github.com/avoronov/scoreboard/internal/domain/model"
)

// UserContextKey is a gin context key for the record loaded from the :id
// path parameter.
const UserContextKey = "user"

// UserGetter fetches a user by identifier.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
}

// LoadUser resolves the :id path parameter into a stored user. A malformed
// identifier and an absent record produce the same 404 body, so the client
// cannot tell the two cases apart. Store failures propagate as 500.
func LoadUser(getter UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("id")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			abortNoUser(c, raw)
			return
		}

		user, err := getter.GetUser(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				abortNoUser(c, raw)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

func abortNoUser(c *gin.Context, id string) {
	c.String(http.StatusNotFound, fmt.Sprintf("no user found with id %s", id))
	c.Abort()
}
