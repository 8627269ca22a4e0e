package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErrors "github.com/avoronov/scoreboard/internal/domain/errors"
	pkgAuth "github.com/avoronov/scoreboard/internal/pkg/auth"
	testhelpers "github.com/avoronov/scoreboard/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, err := uc.Register(ctx, "alice", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	stored, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if stored.PasswordHash == "password" {
		t.Fatal("plaintext password must never be stored")
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	cases := []struct {
		name               string
		username, password string
	}{
		{"empty username", "", "pass"},
		{"blank username", "   ", "pass"},
		{"empty password", "bob", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Register(context.Background(), tc.username, tc.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, err := uc.Register(ctx, "bob", "secret"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, err := uc.Register(ctx, "bob", "secret"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if len(repo.ByID) != 1 {
		t.Fatalf("duplicate register must not create a record, have %d", len(repo.ByID))
	}
}

func TestAuthUseCaseRegisterHashError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	hasher := testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", errors.New("boom")
	}}
	uc := NewAuthUseCase(repo, hasher, newStrategyStub())
	if _, err := uc.Register(context.Background(), "carol", "pass"); err == nil {
		t.Fatal("expected hash error to propagate")
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, err := uc.Register(ctx, "carol", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := uc.Authenticate(ctx, "carol", "bad"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	if _, err := uc.Authenticate(ctx, "nobody", "123456"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("unknown user must look like bad credentials, got %v", err)
	}

	token, err := uc.Authenticate(ctx, "carol", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseAuthenticateEmptyCredentials(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.Authenticate(context.Background(), "", ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Err = errors.New("db down")
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.Authenticate(context.Background(), "carol", "pass"); errors.Is(err, domainErrors.ErrInvalidCredentials) || err == nil {
		t.Fatalf("store failure must not masquerade as bad credentials, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}

	id, err := uc.ParseToken("token-7")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if id != 7 {
		t.Fatalf("unexpected id %d", id)
	}
}
