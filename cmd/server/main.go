package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"bookmarks/backend/internal/config"
	authdomain "bookmarks/backend/internal/domain/auth"
	bookmarkdomain "bookmarks/backend/internal/domain/bookmark"
	"bookmarks/backend/internal/httpserver"
	"bookmarks/backend/internal/infrastructure/memory"
	"bookmarks/backend/internal/infrastructure/password"
	"bookmarks/backend/internal/infrastructure/postgres"
	"bookmarks/backend/internal/infrastructure/token"
	"bookmarks/backend/internal/logging"
	authusecase "bookmarks/backend/internal/usecase/auth"
	bookmarkusecase "bookmarks/backend/internal/usecase/bookmark"
	userusecase "bookmarks/backend/internal/usecase/user"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tokenManager, err := token.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)
	if err != nil {
		return fmt.Errorf("token manager: %w", err)
	}

	users, bookmarks, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	authService := authusecase.NewService(users, tokenManager, password.NewBcryptHasher(cfg.BcryptCost))
	userService := userusecase.NewService(users)
	bookmarkService := bookmarkusecase.NewService(bookmarks)

	server := httpserver.NewServer(cfg, logger, authService, userService, bookmarkService)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", slog.String("addr", server.Addr()))
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		logger.Info("graceful shutdown completed")
		return nil
	})
	return g.Wait()
}

// openStore selects the repositories for the configured storage driver.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (authdomain.UserRepository, bookmarkdomain.Repository, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("using in-memory storage; data is lost on restart")
		return memory.NewUserRepository(), memory.NewBookmarkRepository(), func() {}, nil
	}

	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("run database migrations: %w", err)
	}
	return postgres.NewUserRepository(db.Pool), postgres.NewBookmarkRepository(db.Pool), db.Close, nil
}
