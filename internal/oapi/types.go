// Package oapi defines the HTTP contract of the service: payload types and routes.
package oapi

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RepoSummary is one entry of GitHubOverview.Repos.
type RepoSummary struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Url         string  `json:"url"`
}

// GitHubOverview is returned by GET /github.
type GitHubOverview struct {
	Username    string        `json:"username"`
	Followers   int           `json:"followers"`
	Following   int           `json:"following"`
	PublicRepos int           `json:"publicRepos"`
	Repos       []RepoSummary `json:"repos"`
}

// Repository is returned by GET /github/{repoName}.
type Repository struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	Stars       int     `json:"stars"`
	Forks       int     `json:"forks"`
	IssuesUrl   string  `json:"issuesUrl"`
}

// PostGithubRepoNameIssuesJSONRequestBody is the body of POST /github/{repoName}/issues.
type PostGithubRepoNameIssuesJSONRequestBody struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// IssueCreated is returned by POST /github/{repoName}/issues.
type IssueCreated struct {
	Message  string `json:"message"`
	IssueUrl string `json:"issueUrl"`
}
