package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/avoronov/scoreboard/internal/config"
	"github.com/avoronov/scoreboard/internal/server/http/handlers"
	"github.com/avoronov/scoreboard/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ScoreboardFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade, cfg.DefaultPageSize, cfg.MaxPageSize)

	api := engine.Group("/api")
	users := api.Group("/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)

	byID := users.Group("/:id")
	byID.Use(middleware.LoadUser(facade))
	byID.GET("", userHandler.Get)
	byID.PATCH("", middleware.RequireJSON(), userHandler.Update)
	byID.DELETE("", middleware.AuthRequired(facade), userHandler.Delete)

	return engine
}
