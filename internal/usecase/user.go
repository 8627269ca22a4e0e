package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/avoronov/scoreboard/internal/domain/errors"
	"github.com/avoronov/scoreboard/internal/domain/model"
	"github.com/avoronov/scoreboard/internal/domain/repository"
	pkgAuth "github.com/avoronov/scoreboard/internal/pkg/auth"
)

// UserUseCase implements the user resource operations.
type UserUseCase struct {
	users   repository.UserRepository
	guesses repository.GuessRepository
	hasher  pkgAuth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, guesses repository.GuessRepository, hasher pkgAuth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, guesses: guesses, hasher: hasher}
}

// Create persists a new user with the password stored as a hash.
func (u *UserUseCase) Create(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, username, hash)
}

// Get fetches a user by identifier.
func (u *UserUseCase) Get(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// Update applies a partial update. A supplied password is re-hashed; nil
// fields leave the stored values untouched.
func (u *UserUseCase) Update(ctx context.Context, id int64, username, password *string) (*model.User, error) {
	update := repository.UserUpdate{Username: username}
	if password != nil {
		hash, err := u.hasher.Hash(*password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}
	return u.users.Update(ctx, id, update)
}

// Delete removes the user permanently. Guesses referencing the user are
// not cascaded.
func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}

// List returns one aggregated score row per user having guesses, plus the
// total user count for pagination.
func (u *UserUseCase) List(ctx context.Context, offset, limit int) ([]model.UserScore, int64, error) {
	total, err := u.users.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	scores, err := u.guesses.AggregateScores(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return scores, total, nil
}
