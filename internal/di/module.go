package di

import (
	"github.com/avoronov/scoreboard/internal/app"
	"github.com/avoronov/scoreboard/internal/config"
	"github.com/avoronov/scoreboard/internal/logger"
	"github.com/avoronov/scoreboard/internal/pkg/auth"
	"github.com/avoronov/scoreboard/internal/server/http/router"
	"github.com/avoronov/scoreboard/internal/storage/postgres"
	"github.com/avoronov/scoreboard/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
