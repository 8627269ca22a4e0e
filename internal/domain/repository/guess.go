package repository

import (
	"context"

	"github.com/avoronov/scoreboard/internal/domain/model"
)

// GuessRepository stores scored guesses and computes per-user statistics.
type GuessRepository interface {
	Add(ctx context.Context, userID int64, score float64) (*model.Guess, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Guess, error)
	// AggregateScores joins users to their guesses, groups by user and
	// returns sum/max/mean of scores ordered by user id. Users without
	// guesses are not part of the result.
	AggregateScores(ctx context.Context, offset, limit int) ([]model.UserScore, error)
}
