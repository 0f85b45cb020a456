package entities

// Profile is the configured account together with its repositories.
type Profile struct {
	Username  string
	Followers int
	Following int
	Repos     []RepoSummary
}

// PublicRepos is the number of repositories listed in the profile.
func (p Profile) PublicRepos() int {
	return len(p.Repos)
}

// RepoSummary is the short form of a repository used in listings.
type RepoSummary struct {
	Name        string
	Description *string
	URL         string
}

// Repository is a single repository's metadata.
type Repository struct {
	Name        string
	Description *string
	Language    *string
	Stars       int
	Forks       int
	IssuesURL   string
}

// Issue is a newly created issue.
type Issue struct {
	Title string
	URL   string
}

// IssueDraft is an issue before it is submitted upstream.
type IssueDraft struct {
	Title string
	Body  string
}
