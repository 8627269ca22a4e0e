package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/avoronov/scoreboard/internal/app"
	"github.com/avoronov/scoreboard/internal/config"
	"github.com/avoronov/scoreboard/internal/domain/repository"
	"github.com/avoronov/scoreboard/internal/storage/postgres"
	"github.com/avoronov/scoreboard/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		TokenTTL:        time.Minute,
		DefaultPageSize: 20,
		MaxPageSize:     100,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	guessRepo := &test.GuessRepositoryStub{Users: userRepo}

	var facade *app.ScoreboardFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.GuessRepository(guessRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected scoreboard facade instance")
	}
}
