package usecase

import (
	"context"
	"time"

	"github.com/Dheerajaldak/GitHub-API/internal/repository"
	"github.com/Dheerajaldak/GitHub-API/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	GitHubUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, owner string, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, owner, timeout)
}
