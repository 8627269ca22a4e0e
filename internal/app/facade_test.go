package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/avoronov/scoreboard/internal/domain/errors"
	testhelpers "github.com/avoronov/scoreboard/internal/test"
	"github.com/avoronov/scoreboard/internal/usecase"
)

func newFacade() (*ScoreboardFacade, *testhelpers.UserRepositoryStub, *testhelpers.GuessRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	guessRepo := &testhelpers.GuessRepositoryStub{Users: userRepo}
	hasher := testhelpers.HasherStub{}
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}

	authUC := usecase.NewAuthUseCase(userRepo, hasher, strategy)
	userUC := usecase.NewUserUseCase(userRepo, guessRepo, hasher)
	guessUC := usecase.NewGuessUseCase(userRepo, guessRepo)

	return NewScoreboardFacade(authUC, userUC, guessUC), userRepo, guessRepo
}

func TestScoreboardFacadeAuth(t *testing.T) {
	facade, users, _ := newFacade()

	created, err := facade.Register(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if created.Username != "user" {
		t.Fatalf("unexpected user: %+v", created)
	}

	stored, err := users.GetByUsername(context.Background(), "user")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.PasswordHash != "hash:pass" {
		t.Fatalf("password stored unhashed: %q", stored.PasswordHash)
	}

	token, err := facade.Authenticate(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	if _, err := facade.Authenticate(context.Background(), "user", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	id, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}
}

func TestScoreboardFacadeUsers(t *testing.T) {
	facade, users, _ := newFacade()

	created, err := facade.CreateUser(context.Background(), "alice", "pass")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	fetched, err := facade.GetUser(context.Background(), created.ID)
	if err != nil || fetched.Username != "alice" {
		t.Fatalf("unexpected get result: %+v err=%v", fetched, err)
	}

	renamed := "alicia"
	updated, err := facade.UpdateUser(context.Background(), created.ID, &renamed, nil)
	if err != nil || updated.Username != "alicia" {
		t.Fatalf("unexpected update result: %+v err=%v", updated, err)
	}

	if err := facade.DeleteUser(context.Background(), created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := users.GetByID(context.Background(), created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected user removed, got %v", err)
	}
}

func TestScoreboardFacadeScores(t *testing.T) {
	facade, _, _ := newFacade()

	alice, _ := facade.CreateUser(context.Background(), "alice", "pass")
	if _, err := facade.CreateUser(context.Background(), "bob", "pass"); err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if _, err := facade.RecordGuess(context.Background(), alice.ID, 4); err != nil {
		t.Fatalf("record returned error: %v", err)
	}
	if _, err := facade.RecordGuess(context.Background(), alice.ID, 8); err != nil {
		t.Fatalf("record returned error: %v", err)
	}

	history, err := facade.GuessHistory(context.Background(), alice.ID)
	if err != nil || len(history) != 2 {
		t.Fatalf("unexpected history: %v err=%v", history, err)
	}

	// Bob has no guesses and must not appear in the aggregated listing.
	scores, total, err := facade.ListUserScores(context.Background(), 0, 20)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(scores) != 1 || scores[0].ID != alice.ID {
		t.Fatalf("unexpected scores: %+v", scores)
	}
	if scores[0].TotalScore != 12 || scores[0].MaxScore != 8 || scores[0].AverageScore != 6 {
		t.Fatalf("unexpected aggregates: %+v", scores[0])
	}
}
