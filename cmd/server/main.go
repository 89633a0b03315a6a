package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixelforge/nexus-api/internal/api"
	mongodb "github.com/pixelforge/nexus-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pixelforge/nexus-api/internal/infrastructure/db/redis"
	"github.com/pixelforge/nexus-api/internal/infrastructure/storage"
	"github.com/pixelforge/nexus-api/internal/pkg/config"
	"github.com/pixelforge/nexus-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	fileStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload storage init failed")
	}

	e := api.NewRouter(db, rdb, fileStore, cfg)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("users: %w", err)
	}
	if err := mongodb.NewProjectRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("projects: %w", err)
	}
	if err := mongodb.NewDocumentRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("documents: %w", err)
	}
	return nil
}
