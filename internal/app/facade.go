package app

import (
	"context"

	"github.com/avoronov/scoreboard/internal/domain/model"
	"github.com/avoronov/scoreboard/internal/usecase"
)

// ScoreboardFacade exposes the full application surface to the HTTP layer.
type ScoreboardFacade struct {
	auth    *usecase.AuthUseCase
	users   *usecase.UserUseCase
	guesses *usecase.GuessUseCase
}

// NewScoreboardFacade constructs the facade over the use cases.
func NewScoreboardFacade(auth *usecase.AuthUseCase, users *usecase.UserUseCase, guesses *usecase.GuessUseCase) *ScoreboardFacade {
	return &ScoreboardFacade{auth: auth, users: users, guesses: guesses}
}

func (f *ScoreboardFacade) Register(ctx context.Context, username, password string) (*model.User, error) {
	return f.auth.Register(ctx, username, password)
}

func (f *ScoreboardFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *ScoreboardFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *ScoreboardFacade) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	return f.users.Create(ctx, username, password)
}

func (f *ScoreboardFacade) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return f.users.Get(ctx, id)
}

func (f *ScoreboardFacade) UpdateUser(ctx context.Context, id int64, username, password *string) (*model.User, error) {
	return f.users.Update(ctx, id, username, password)
}

func (f *ScoreboardFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.Delete(ctx, id)
}

func (f *ScoreboardFacade) ListUserScores(ctx context.Context, offset, limit int) ([]model.UserScore, int64, error) {
	return f.users.List(ctx, offset, limit)
}

func (f *ScoreboardFacade) RecordGuess(ctx context.Context, userID int64, score float64) (*model.Guess, error) {
	return f.guesses.Record(ctx, userID, score)
}

func (f *ScoreboardFacade) GuessHistory(ctx context.Context, userID int64) ([]model.Guess, error) {
	return f.guesses.History(ctx, userID)
}
