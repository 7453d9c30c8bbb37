package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/team-voting/internal/config"
	"github.com/bagdasarian/team-voting/internal/db"
	"github.com/bagdasarian/team-voting/internal/handler"
	"github.com/bagdasarian/team-voting/internal/handler/server"
	"github.com/bagdasarian/team-voting/internal/repository/document"
	"github.com/bagdasarian/team-voting/internal/service"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.Level}))
	slog.SetDefault(logger)

	ctx := context.Background()
	backend, closeBackend := db.MustOpenBackend(ctx, cfg)
	logger.Info("storage opened", "driver", cfg.Storage.Driver)
	defer closeBackend()

	store := document.NewStore(backend,
		document.WithDefaultAdmin(cfg.Admin.Username, cfg.Admin.Password),
		document.WithLogger(logger),
	)

	limiter := service.NewLoginLimiter(cfg.Auth.LoginRatePerMinute, cfg.Auth.LoginBurst)
	userService := service.NewUserService(store, store, limiter)
	teamService := service.NewTeamService(store, store, store)
	voteService := service.NewVoteService(store, store, store)

	if cfg.Storage.ReconcileOnStart {
		if _, err := teamService.Reconcile(ctx); err != nil {
			logger.Error("startup reconcile failed", "error", err)
			os.Exit(1)
		}
	}

	h := handler.NewHandler(userService, teamService, voteService, logger)
	srv := server.NewServer(h, cfg.HTTP.Addr, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
}
