package domain

import (
	"context"
	"time"

	"github.com/Dheerajaldak/GitHub-API/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	owner   string
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies. owner is the
// GitHub account whose profile and repositories are proxied.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	owner string,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		owner:   owner,
		timeout: timeout,
	}
}

// withTimeout bounds ctx by d; a non-positive d only adds cancellation.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
