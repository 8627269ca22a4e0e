package handlers

import (
	"context"

	"github.com/avoronov/scoreboard/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// UserFacade encapsulates user CRUD and listing exposed via HTTP.
type UserFacade interface {
	CreateUser(ctx context.Context, username, password string) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, username, password *string) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListUserScores(ctx context.Context, offset, limit int) ([]model.UserScore, int64, error)
}

// ScoreboardFacade aggregates the full set of operations used across handlers.
type ScoreboardFacade interface {
	AuthFacade
	UserFacade
}
