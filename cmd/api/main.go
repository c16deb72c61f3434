package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskhive/taskhive/internal/api"
	"github.com/taskhive/taskhive/internal/core/service"
	"github.com/taskhive/taskhive/internal/infrastructure/config"
	mongodb "github.com/taskhive/taskhive/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhive/taskhive/internal/infrastructure/db/redis"
	"github.com/taskhive/taskhive/internal/infrastructure/queue"
	"github.com/taskhive/taskhive/pkg/logger"
)

// @title        Task Management API
// @version      1.0
// @description  Multi-tenant task management with JWT authentication and role-based access control.
// @BasePath     /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories & services ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	statsCache := redisdb.NewStatsCache(rdb, cfg.Redis.StatsTTL)

	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userService, cfg.JWTSecret, cfg.TokenTTL)
	activityService := service.NewActivityService(activityRepo, log)

	dispatcher := queue.NewDispatcher(0, activityService, log)
	dispatcher.Start(ctx)

	taskService := service.NewTaskService(taskRepo, statsCache, dispatcher, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Auth:      authService,
		Users:     userService,
		Tasks:     taskService,
		Activity:  activityService,
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
