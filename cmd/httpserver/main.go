package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"
	"moviecatalog/postgres"

	sentrygo "github.com/getsentry/sentry-go"
)

const shutdownTimeout = 10 * time.Second

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		slog.Error("Cannot init logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("Cannot init sentry", "error", err)
	}
	defer sentry.Flush()

	db, err := postgres.NewConnection(postgres.Options{
		DBName:          cfg.DB.Name,
		DBUser:          cfg.DB.User,
		Password:        cfg.DB.Pass,
		Host:            cfg.DB.Host,
		Port:            strconv.Itoa(cfg.DB.Port),
		SSLMode:         cfg.DB.EnableSSL,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalw("Cannot open postgres connection", "error", err)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Warnw("Cannot close postgres connection", "error", err)
		}
	}()

	server := httpserver.Default(cfg)
	server.Logger = log
	server.MovieService = movie.NewUsecase(postgres.NewMovieRepository(db))
	server.HealthChecker = postgres.NewHealthChecker(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server started", "addr", server.Addr, "env", cfg.AppEnv)
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
		}
		return
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
}
