package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/avoronov/scoreboard/internal/domain/errors"
	"github.com/avoronov/scoreboard/internal/pkg/pagination"
	"github.com/avoronov/scoreboard/internal/server/http/dto"
)

// UserHandler manages the user resource endpoints.
type UserHandler struct {
	facade          UserFacade
	defaultPageSize int
	maxPageSize     int
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade, defaultPageSize, maxPageSize int) *UserHandler {
	return &UserHandler{facade: facade, defaultPageSize: defaultPageSize, maxPageSize: maxPageSize}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.CreateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "username already taken"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// List handles GET /api/users. The response carries per-user score
// aggregates ordered by user id; users without guesses do not appear.
func (h *UserHandler) List(c *gin.Context) {
	params := pagination.FromQuery(c.Request.URL.Query(), h.defaultPageSize, h.maxPageSize)

	scores, total, err := h.facade.ListUserScores(c.Request.Context(), params.Offset(), params.PageSize)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Link", params.LinkHeader(c.Request.URL, total))

	resp := make([]dto.UserScoreResponse, 0, len(scores))
	for _, s := range scores {
		resp = append(resp, dto.NewUserScoreResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/users/:id. The record was already resolved by the
// identifier-loading middleware.
func (h *UserHandler) Get(c *gin.Context) {
	user := LoadedUser(c)
	if user == nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Update handles PATCH /api/users/:id. Absent body fields are left
// untouched; a supplied password is re-hashed before persisting.
func (h *UserHandler) Update(c *gin.Context) {
	user := LoadedUser(c)
	if user == nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.facade.UpdateUser(c.Request.Context(), user.ID, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "username already taken"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

// Delete handles DELETE /api/users/:id. Guesses referencing the user are
// left in place.
func (h *UserHandler) Delete(c *gin.Context) {
	user := LoadedUser(c)
	if user == nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	if err := h.facade.DeleteUser(c.Request.Context(), user.ID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
