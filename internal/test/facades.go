package test

import (
	"context"
	"time"

	"github.com/avoronov/scoreboard/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	CreateFn func(context.Context, string, string) (*model.User, error)
	GetFn    func(context.Context, int64) (*model.User, error)
	UpdateFn func(context.Context, int64, *string, *string) (*model.User, error)
	DeleteFn func(context.Context, int64) error
	ListFn   func(context.Context, int, int) ([]model.UserScore, int64, error)
}

// CreateUser delegates to the override or returns a default user.
func (s UserFacadeStub) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username, CreatedAt: time.Unix(0, 0)}, nil
}

// GetUser returns the configured user for the identifier.
func (s UserFacadeStub) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.User{ID: id, Username: "user", CreatedAt: time.Unix(0, 0)}, nil
}

// UpdateUser delegates to the override or echoes the update back.
func (s UserFacadeStub) UpdateUser(ctx context.Context, id int64, username, password *string) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, username, password)
	}
	user := &model.User{ID: id, Username: "user"}
	if username != nil {
		user.Username = *username
	}
	return user, nil
}

// DeleteUser delegates to the override or succeeds.
func (s UserFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ListUserScores returns preconfigured aggregation rows.
func (s UserFacadeStub) ListUserScores(ctx context.Context, offset, limit int) ([]model.UserScore, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, offset, limit)
	}
	return []model.UserScore{{
		User:         model.User{ID: 1, Username: "user", CreatedAt: time.Unix(0, 0)},
		TotalScore:   10,
		MaxScore:     7,
		AverageScore: 5,
	}}, 1, nil
}

// ScoreboardFacadeStub aggregates facade dependencies for HTTP layer tests.
type ScoreboardFacadeStub struct {
	AuthFacadeStub
	UserFacadeStub
}
