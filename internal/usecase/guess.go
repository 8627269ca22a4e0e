package usecase

import (
	"context"

	"github.com/avoronov/scoreboard/internal/domain/model"
	"github.com/avoronov/scoreboard/internal/domain/repository"
)

// GuessUseCase records scored guesses for users.
type GuessUseCase struct {
	users   repository.UserRepository
	guesses repository.GuessRepository
}

// NewGuessUseCase constructs GuessUseCase.
func NewGuessUseCase(users repository.UserRepository, guesses repository.GuessRepository) *GuessUseCase {
	return &GuessUseCase{users: users, guesses: guesses}
}

// Record attributes a scored guess to an existing user.
func (u *GuessUseCase) Record(ctx context.Context, userID int64, score float64) (*model.Guess, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return u.guesses.Add(ctx, userID, score)
}

// History lists a user's guesses, newest first.
func (u *GuessUseCase) History(ctx context.Context, userID int64) ([]model.Guess, error) {
	return u.guesses.ListByUser(ctx, userID)
}
