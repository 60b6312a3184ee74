// Copyright (c) 2026 Bookvault. All rights reserved.

/*
Bookvault API server.

This binary wires every layer together: configuration, PostgreSQL, Redis,
object storage, the staged-upload sweeper, and the HTTP transport. All
dependencies are constructed here and injected down; no package below this
one reaches for globals.
*/
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/minhngoc/bookvault/internal/api"
	"github.com/minhngoc/bookvault/internal/catalog/author"
	"github.com/minhngoc/bookvault/internal/catalog/book"
	"github.com/minhngoc/bookvault/internal/catalog/genre"
	"github.com/minhngoc/bookvault/internal/platform/config"
	"github.com/minhngoc/bookvault/internal/platform/constants"
	"github.com/minhngoc/bookvault/internal/platform/migration"
	"github.com/minhngoc/bookvault/internal/platform/postgres"
	platformredis "github.com/minhngoc/bookvault/internal/platform/redis"
	"github.com/minhngoc/bookvault/internal/platform/sec"
	"github.com/minhngoc/bookvault/internal/storage"
	"github.com/minhngoc/bookvault/internal/upload"
)

func main() {

	// 1. Local development convenience. A missing .env file is not an error;
	// production supplies real environment variables.
	_ = godotenv.Load()

	// 2. Structured logging (JSON to stdout).
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	// 3. Configuration.
	cfg, err := config.Load()
	must(log, err, "failed to load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
	}

	log.Info("starting",
		slog.String("version", constants.AppVersion),
		slog.String("environment", cfg.Environment),
	)

	// Startup deadline covers connecting, migrating, and client construction.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// 4. PostgreSQL connection pool.
	pool, err := postgres.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "failed to connect to postgres")
	defer pool.Close()

	// 5. Schema migrations.
	err = migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log)
	must(log, err, "failed to run migrations")

	// 6. Redis client for the book read cache.
	rdb, err := platformredis.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "failed to connect to redis")
	defer rdb.Close()

	// 7. Token verification for the authentication gate.
	tokenService, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "failed to initialize token service")

	// 8. Object storage. Optional: without it the upload endpoint refuses
	// requests and the rest of the catalog keeps working.
	var uploader storage.Uploader
	if cfg.StorageConfigured() {
		s3Client, err := storage.NewS3Client(startupCtx, storage.Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		must(log, err, "failed to initialize object storage")
		uploader = s3Client
	} else {
		log.Warn("object storage not configured, uploads disabled")
	}

	// 9. Domain wiring.
	stagedRepository := upload.NewPostgresRepository(pool)
	uploadCoordinator := upload.NewCoordinator(uploader, stagedRepository, cfg.CDNHost, cfg.UploadTTL, log)
	uploadHandler := upload.NewHandler(uploadCoordinator)

	bookRepository := book.NewPostgresRepository(pool)
	bookCache := book.NewCache(rdb)
	bookService := book.NewService(bookRepository, stagedRepository, bookCache, log)
	bookHandler := book.NewHandler(bookService)

	authorRepository := author.NewPostgresRepository(pool)
	authorService := author.NewService(authorRepository, log)
	authorHandler := author.NewHandler(authorService)

	genreRepository := genre.NewPostgresRepository(pool)
	genreService := genre.NewService(genreRepository, log)
	genreHandler := genre.NewHandler(genreService)

	// 10. Health probes.
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Ping(ctx)
		},
		CheckCache: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return rdb.Ping(ctx).Err()
		},
	}, log)

	// 11. Background sweeper reclaiming staged uploads that never got a book.
	appCtx, cancelApp := context.WithCancel(context.Background())
	defer cancelApp()

	sweeper := upload.NewSweeper(stagedRepository, uploader, cfg.SweepInterval, log)
	go sweeper.Run(appCtx)

	// 12. HTTP server.
	server := api.NewServer(appCtx, cfg, log, tokenService, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Upload:    uploadHandler,
		Book:      bookHandler,
		Author:    authorHandler,
		Genre:     genreHandler,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	// 13. Wait for shutdown signal or server failure.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		must(log, err, "server failed")
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	cancelApp()
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("graceful shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped")
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
}

// must logs the error with the given message and exits.
func must(log *slog.Logger, err error, message string) {
	if err == nil {
		return
	}
	log.Error(message, slog.Any("error", err))
	os.Exit(1)
}
