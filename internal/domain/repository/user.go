package repository

import (
	"context"

	"github.com/avoronov/scoreboard/internal/domain/model"
)

// UserUpdate carries the mutable user fields for a partial update. Nil
// pointers leave the stored value untouched.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
}

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
