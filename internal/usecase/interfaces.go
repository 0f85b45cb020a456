package usecase

import (
	"context"

	"github.com/Dheerajaldak/GitHub-API/internal/entities"
)

// GitHubUsecaseInterface abstracts the proxied GitHub operations for delivery layer.
type GitHubUsecaseInterface interface {
	Overview(ctx context.Context) (*entities.Profile, error)
	Repository(ctx context.Context, name string) (*entities.Repository, error)
	CreateIssue(ctx context.Context, repoName string, draft entities.IssueDraft) (*entities.Issue, error)
}
