// Package repository contains the interfaces of upstream data sources.
package repository

import (
	"context"

	"github.com/google/go-github/v68/github"
)

// LifecycleInterface describes client startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// GitHubInterface exposes the GitHub REST calls the service proxies.
type GitHubInterface interface {
	// Fetch GETs endpoint relative to the API base and decodes the JSON body into v.
	Fetch(ctx context.Context, endpoint string, v any) error
	// CreateIssue opens an issue on a repository owned by the configured account.
	CreateIssue(ctx context.Context, repoName, title, body string) (*github.Issue, error)
}
