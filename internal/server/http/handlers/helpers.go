package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/avoronov/scoreboard/internal/domain/model"
	"github.com/avoronov/scoreboard/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// LoadedUser returns the record resolved by the identifier-loading
// middleware, or nil when no record was attached.
func LoadedUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}
