// Package app assembles the URL shortener from its configuration and runs it
// until the context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/shortener/internal/config"
	"github.com/vadimbarashkov/shortener/internal/metrics"
	"github.com/vadimbarashkov/shortener/internal/usecase"
	"github.com/vadimbarashkov/shortener/migrations"
	"github.com/vadimbarashkov/shortener/pkg/postgres"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/shortener/internal/adapter/delivery/http"
	repository "github.com/vadimbarashkov/shortener/internal/adapter/repository/postgres"
)

const (
	appName         = "url-shortener"
	shutdownTimeout = 10 * time.Second
)

func newLogger(cfg *config.Config) (*httplog.Logger, error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}

	return httplog.NewLogger(appName, httplog.Options{
		JSON:            cfg.Log.JSON,
		LogLevel:        level,
		Concise:         cfg.Log.Concise,
		Tags:            map[string]string{"env": cfg.Env},
		QuietDownRoutes: []string{"/ping", "/metrics"},
		QuietDownPeriod: 10 * time.Second,
	}), nil
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to create logger: %w", op, err)
	}

	db, err := postgres.New(
		ctx,
		cfg.Postgres.DSN(),
		postgres.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
		postgres.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
		postgres.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
		postgres.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(migrations.FS, cfg.Postgres.DSN()); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	urlRepo := repository.NewURLRepository(db)
	urlUseCase := usecase.NewURLUseCase(
		urlRepo,
		usecase.WithKeyLength(cfg.KeyLength),
		usecase.WithMaxRetries(cfg.MaxRetries),
	)

	router := delivery.NewRouter(logger, metrics.New(), urlUseCase)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        router,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", "addr", server.Addr, "env", cfg.Env)

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
