package dto

import (
	"time"

	"github.com/avoronov/scoreboard/internal/domain/model"
)

// UserResponse is the public view of a user. The password hash is omitted
// by construction and never serialized.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserScoreResponse extends the public user view with aggregated guess
// statistics for the listing endpoint.
type UserScoreResponse struct {
	UserResponse
	TotalScore   float64 `json:"totalScore"`
	MaxScore     float64 `json:"maxScore"`
	AverageScore float64 `json:"averageScore"`
}

// CreateUserRequest carries the create payload. Unknown body fields are
// ignored.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest carries the partial update payload; nil fields leave
// the stored value untouched.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// NewUserResponse shapes a domain user into its public view.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

// NewUserScoreResponse shapes an aggregation row into its public view.
func NewUserScoreResponse(s model.UserScore) UserScoreResponse {
	return UserScoreResponse{
		UserResponse: NewUserResponse(&s.User),
		TotalScore:   s.TotalScore,
		MaxScore:     s.MaxScore,
		AverageScore: s.AverageScore,
	}
}
