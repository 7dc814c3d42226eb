package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/lunarbyte/flashdeck-backend/internal/adapter/postgres"
	collectionrepo "github.com/lunarbyte/flashdeck-backend/internal/adapter/postgres/collection"
	flashcardrepo "github.com/lunarbyte/flashdeck-backend/internal/adapter/postgres/flashcard"
	"github.com/lunarbyte/flashdeck-backend/internal/auth"
	"github.com/lunarbyte/flashdeck-backend/internal/config"
	"github.com/lunarbyte/flashdeck-backend/internal/domain"
	"github.com/lunarbyte/flashdeck-backend/internal/service/collection"
	"github.com/lunarbyte/flashdeck-backend/internal/service/study"
	"github.com/lunarbyte/flashdeck-backend/internal/transport/middleware"
	"github.com/lunarbyte/flashdeck-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database pool, wires services and transport, and runs the
// HTTP server until SIGINT/SIGTERM triggers a graceful shutdown.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cardRepo := flashcardrepo.New(pool)
	collRepo := collectionrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	srs := domain.SRSConfig{
		DefaultEaseFactor: cfg.SRS.DefaultEaseFactor,
		MinEaseFactor:     cfg.SRS.MinEaseFactor,
		MaxIntervalDays:   cfg.SRS.MaxIntervalDays,
		MasteryThreshold:  cfg.SRS.MasteryThreshold,
	}

	studySvc := study.NewService(logger, cardRepo, collRepo, txManager, srs)
	collectionSvc := collection.NewService(logger, cardRepo, collRepo, txManager, srs)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	mux := rest.NewRouter(rest.RouterDeps{
		Study:  rest.NewStudyHandler(studySvc, logger),
		Cards:  rest.NewCardHandler(collectionSvc, logger),
		Health: rest.NewHealthHandler(pool, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
