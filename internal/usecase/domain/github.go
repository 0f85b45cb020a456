// Package domain contains application usecases orchestrating the proxied GitHub calls.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dheerajaldak/GitHub-API/internal/entities"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/sync/errgroup"
)

const issuesURLPlaceholder = "{/number}"

// Overview returns the configured account's profile and its repositories.
// Both upstream calls run concurrently; a failure of either discards the result.
func (u *Usecase) Overview(ctx context.Context) (*entities.Profile, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	var (
		user  gh.User
		repos []*gh.Repository
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return u.repo.Fetch(gctx, fmt.Sprintf("/users/%s", u.owner), &user)
	})
	g.Go(func() error {
		return u.repo.Fetch(gctx, fmt.Sprintf("/users/%s/repos", u.owner), &repos)
	})
	if err := g.Wait(); err != nil {
		return nil, &entities.FetchError{Op: entities.OpOverview, Resource: u.owner}
	}

	summaries := make([]entities.RepoSummary, 0, len(repos))
	for _, r := range repos {
		summaries = append(summaries, entities.RepoSummary{
			Name:        r.GetName(),
			Description: r.Description,
			URL:         r.GetHTMLURL(),
		})
	}

	return &entities.Profile{
		Username:  user.GetLogin(),
		Followers: user.GetFollowers(),
		Following: user.GetFollowing(),
		Repos:     summaries,
	}, nil
}

// Repository returns metadata of one of the account's repositories.
// name is passed to GitHub as is.
func (u *Usecase) Repository(ctx context.Context, name string) (*entities.Repository, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	var repo gh.Repository
	if err := u.repo.Fetch(ctx, fmt.Sprintf("/repos/%s/%s", u.owner, name), &repo); err != nil {
		return nil, &entities.FetchError{Op: entities.OpRepository, Resource: name}
	}
	if repo.IssuesURL == nil {
		u.log.Errorw("repository response without issues_url", "repo", name)
		return nil, &entities.FetchError{Op: entities.OpRepository, Resource: name}
	}

	return &entities.Repository{
		Name:        repo.GetName(),
		Description: repo.Description,
		Language:    repo.Language,
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		IssuesURL:   strings.Replace(repo.GetIssuesURL(), issuesURLPlaceholder, "", 1),
	}, nil
}

// CreateIssue opens an issue on repoName. Title and body must both be non-empty.
func (u *Usecase) CreateIssue(ctx context.Context, repoName string, draft entities.IssueDraft) (*entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if draft.Title == "" || draft.Body == "" {
		return nil, entities.NewValidationError("Title and body are required")
	}

	issue, err := u.repo.CreateIssue(ctx, repoName, draft.Title, draft.Body)
	if err != nil {
		return nil, &entities.FetchError{Op: entities.OpCreateIssue, Resource: repoName}
	}
	u.log.Infow("issue create", "repo", repoName, "number", issue.GetNumber())

	return &entities.Issue{
		Title: issue.GetTitle(),
		URL:   issue.GetHTMLURL(),
	}, nil
}
