// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/Dheerajaldak/GitHub-API/internal/entities"
	oapi "github.com/Dheerajaldak/GitHub-API/internal/oapi"
)

// IssueCreatedMessage is the fixed confirmation returned with a new issue.
const IssueCreatedMessage = "Issue created successfully"

// ToOAPIOverview maps entities.Profile to transport model.
func ToOAPIOverview(p entities.Profile) oapi.GitHubOverview {
	return oapi.GitHubOverview{
		Username:    p.Username,
		Followers:   p.Followers,
		Following:   p.Following,
		PublicRepos: p.PublicRepos(),
		Repos:       ToOAPIRepoSummaryList(p.Repos),
	}
}

// ToOAPIRepoSummaryList maps a slice of entities.RepoSummary to transport slice, keeping order.
func ToOAPIRepoSummaryList(list []entities.RepoSummary) []oapi.RepoSummary {
	res := make([]oapi.RepoSummary, 0, len(list))
	for _, r := range list {
		res = append(res, oapi.RepoSummary{
			Name:        r.Name,
			Description: r.Description,
			Url:         r.URL,
		})
	}
	return res
}

// ToOAPIRepository maps entities.Repository to transport model.
func ToOAPIRepository(r entities.Repository) oapi.Repository {
	return oapi.Repository{
		Name:        r.Name,
		Description: r.Description,
		Language:    r.Language,
		Stars:       r.Stars,
		Forks:       r.Forks,
		IssuesUrl:   r.IssuesURL,
	}
}

// FromOAPIIssue builds an entities.IssueDraft from transport DTO.
func FromOAPIIssue(src oapi.PostGithubRepoNameIssuesJSONRequestBody) entities.IssueDraft {
	return entities.IssueDraft{
		Title: src.Title,
		Body:  src.Body,
	}
}

// ToOAPIIssueCreated maps a created issue to transport model.
func ToOAPIIssueCreated(i entities.Issue) oapi.IssueCreated {
	return oapi.IssueCreated{
		Message:  IssueCreatedMessage,
		IssueUrl: i.URL,
	}
}
