// Package main wires the HTTP server for the GitHub API proxy.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Dheerajaldak/GitHub-API/config"
	"github.com/Dheerajaldak/GitHub-API/internal/repository"
	"github.com/Dheerajaldak/GitHub-API/internal/usecase"
	"github.com/Dheerajaldak/GitHub-API/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, "github", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, cfg.GitHub.Username, cfg.HTTP.RequestTimeout)

	serv := newServer(cfg, log, uc)

	go func() {
		log.Infow("server running", "addr", cfg.ServerAddr())
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
