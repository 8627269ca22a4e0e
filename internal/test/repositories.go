package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/avoronov/scoreboard/internal/domain/errors"
	"github.com/avoronov/scoreboard/internal/domain/model"
	"github.com/avoronov/scoreboard/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash, CreatedAt: time.Unix(0, 0)}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update applies the partial update in place.
func (s *UserRepositoryStub) Update(ctx context.Context, id int64, update repository.UserUpdate) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Username != nil {
		if existing, taken := s.Users[*update.Username]; taken && existing.ID != id {
			return nil, domainErrors.ErrAlreadyExists
		}
		delete(s.Users, user.Username)
		user.Username = *update.Username
		s.Users[user.Username] = user
	}
	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}
	return user, nil
}

// Delete removes the user or reports not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	delete(s.Users, user.Username)
	return nil
}

// Count reports the number of stored users.
func (s *UserRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.ByID)), nil
}

// GuessRepositoryStub stores guesses in-memory and aggregates them the way
// the real store does: users without guesses never produce a row.
type GuessRepositoryStub struct {
	Guesses []model.Guess
	Users   *UserRepositoryStub
	Next    int64
	Err     error

	AddFn       func(context.Context, int64, float64) (*model.Guess, error)
	AggregateFn func(context.Context, int, int) ([]model.UserScore, error)
}

// Add appends a guess for the user.
func (s *GuessRepositoryStub) Add(ctx context.Context, userID int64, score float64) (*model.Guess, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, score)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	guess := model.Guess{ID: s.Next, UserID: userID, Score: score, CreatedAt: time.Unix(0, 0)}
	s.Guesses = append(s.Guesses, guess)
	return &guess, nil
}

// ListByUser returns stored guesses for the user.
func (s *GuessRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Guess, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Guess
	for _, g := range s.Guesses {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	return result, nil
}

// AggregateScores groups stored guesses by user, ordered by user id.
func (s *GuessRepositoryStub) AggregateScores(ctx context.Context, offset, limit int) ([]model.UserScore, error) {
	if s.AggregateFn != nil {
		return s.AggregateFn(ctx, offset, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}

	type agg struct {
		sum   float64
		max   float64
		count int
	}
	byUser := make(map[int64]*agg)
	for _, g := range s.Guesses {
		a, ok := byUser[g.UserID]
		if !ok {
			a = &agg{max: g.Score}
			byUser[g.UserID] = a
		}
		a.sum += g.Score
		if g.Score > a.max {
			a.max = g.Score
		}
		a.count++
	}

	ids := make([]int64, 0, len(byUser))
	for id := range byUser {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.UserScore
	for _, id := range ids {
		a := byUser[id]
		user := model.User{ID: id}
		if s.Users != nil {
			if stored, ok := s.Users.ByID[id]; ok {
				user = *stored
			}
		}
		result = append(result, model.UserScore{
			User:         user,
			TotalScore:   a.sum,
			MaxScore:     a.max,
			AverageScore: a.sum / float64(a.count),
		})
	}

	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}
