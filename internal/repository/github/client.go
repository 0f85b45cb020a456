// Package github implements the upstream repository against the GitHub REST API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Dheerajaldak/GitHub-API/config"
	"github.com/Dheerajaldak/GitHub-API/internal/entities"

	gh "github.com/google/go-github/v68/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

var errNotStarted = errors.New("github client not started")

// Client wraps a go-github client authenticated with the configured token.
type Client struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.GitHubConfig
	http    *http.Client
	gh      *gh.Client
}

// New creates a GitHub repository instance. The HTTP client is built in OnStart.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Client {
	return &Client{
		baseCtx: ctx,
		log:     log.Named("repo.github"),
		cfg:     cfg.GitHub,
	}
}

// OnStart builds the authenticated HTTP client and points it at the base URL.
func (c *Client) OnStart(_ context.Context) error {
	base, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return fmt.Errorf("parse base url: %q is not absolute", c.cfg.BaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	httpClient := &http.Client{}
	if c.cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.cfg.Token})
		httpClient = oauth2.NewClient(c.baseCtx, ts)
	} else {
		c.log.Warnw("github token is empty, requests are unauthenticated")
	}

	client := gh.NewClient(httpClient)
	client.BaseURL = base

	c.http = httpClient
	c.gh = client
	c.log.Infow("github client ready", "base_url", base.String(), "username", c.cfg.Username)
	return nil
}

// OnStop releases idle upstream connections.
func (c *Client) OnStop(_ context.Context) error {
	if c.http != nil {
		c.http.CloseIdleConnections()
	}
	return nil
}

// Fetch issues an authenticated GET for endpoint and decodes the body into v.
func (c *Client) Fetch(ctx context.Context, endpoint string, v any) error {
	if c.gh == nil {
		return c.fail("fetch", endpoint, errNotStarted)
	}

	req, err := c.gh.NewRequest(http.MethodGet, strings.TrimPrefix(endpoint, "/"), nil)
	if err != nil {
		return c.fail("fetch", endpoint, fmt.Errorf("build request: %w", err))
	}
	if _, err := c.gh.Do(ctx, req, v); err != nil {
		return c.fail("fetch", endpoint, err)
	}
	return nil
}

// CreateIssue posts {title, body} to the repository's issues collection.
func (c *Client) CreateIssue(ctx context.Context, repoName, title, body string) (*gh.Issue, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/issues", c.cfg.Username, repoName)
	if c.gh == nil {
		return nil, c.fail("create issue", endpoint, errNotStarted)
	}

	issue, _, err := c.gh.Issues.Create(ctx, c.cfg.Username, repoName, &gh.IssueRequest{
		Title: gh.Ptr(title),
		Body:  gh.Ptr(body),
	})
	if err != nil {
		return nil, c.fail("create issue", endpoint, err)
	}
	return issue, nil
}

func (c *Client) fail(op, endpoint string, err error) error {
	c.log.Errorw("github request failed", "op", op, "endpoint", endpoint, "error", err)
	return entities.ErrUpstreamFetch
}
