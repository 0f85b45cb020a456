// Package repository provides factory for upstream clients.
package repository

import (
	"context"
	"fmt"

	"github.com/Dheerajaldak/GitHub-API/config"
	ghrepo "github.com/Dheerajaldak/GitHub-API/internal/repository/github"

	"go.uber.org/zap"
)

// Repository aggregates all upstream interfaces.
type Repository interface {
	LifecycleInterface
	GitHubInterface
}

// New constructs upstream backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "github":
		return ghrepo.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
