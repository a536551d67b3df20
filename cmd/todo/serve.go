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

	"github.com/spf13/cobra"

	todohttp "github.com/jaekwang-park/todolist-api/internal/http"
	"github.com/jaekwang-park/todolist-api/internal/repository"
	"github.com/jaekwang-park/todolist-api/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	logger := slog.Default()
	logger.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.ServerPort,
		"log_level", cfg.LogLevel,
		"api_prefix", cfg.APIPrefix,
	)

	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	// Services
	listSvc := service.NewListService(repository.NewSQLList(db))
	itemSvc := service.NewItemService(repository.NewSQLItem(db), db, nil)

	// HTTP Server
	router := todohttp.NewRouter(cfg.APIPrefix, listSvc, itemSvc)
	srv := todohttp.NewServer(cfg.ServerPort, logger, router)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, logger, srv)
}

type server interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// run serves until ctx is done or the server fails to start, in which case
// the start error is returned.
func run(ctx context.Context, logger *slog.Logger, srv server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("server starting", "port", cfg.ServerPort)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
