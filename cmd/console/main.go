package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/team-voting/internal/config"
	"github.com/bagdasarian/team-voting/internal/console"
	"github.com/bagdasarian/team-voting/internal/db"
	"github.com/bagdasarian/team-voting/internal/repository/document"
	"github.com/bagdasarian/team-voting/internal/service"
)

func main() {
	cfg := config.Load()

	// логи в stderr, чтобы не смешивать их с выводом консоли
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.Level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, closeBackend := db.MustOpenBackend(ctx, cfg)
	defer closeBackend()

	store := document.NewStore(backend,
		document.WithDefaultAdmin(cfg.Admin.Username, cfg.Admin.Password),
		document.WithLogger(logger),
	)

	limiter := service.NewLoginLimiter(cfg.Auth.LoginRatePerMinute, cfg.Auth.LoginBurst)
	teamService := service.NewTeamService(store, store, store)

	if cfg.Storage.ReconcileOnStart {
		if _, err := teamService.Reconcile(ctx); err != nil {
			logger.Error("startup reconcile failed", "error", err)
			os.Exit(1)
		}
	}

	c, err := console.New(
		service.NewUserService(store, store, limiter),
		teamService,
		service.NewVoteService(store, store, store),
		os.Stdin,
		os.Stdout,
	)
	if err != nil {
		logger.Error("failed to start console", "error", err)
		os.Exit(1)
	}

	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("console stopped", "error", err)
		os.Exit(1)
	}
}
