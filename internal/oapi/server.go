package oapi

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// GetRoot serves the plain-text greeting.
	// (GET /)
	GetRoot(c *fiber.Ctx) error
	// GetGithub returns profile and repositories of the configured account.
	// (GET /github)
	GetGithub(c *fiber.Ctx) error
	// GetGithubRepoName returns a single repository.
	// (GET /github/{repoName})
	GetGithubRepoName(c *fiber.Ctx, repoName string) error
	// PostGithubRepoNameIssues creates an issue.
	// (POST /github/{repoName}/issues)
	PostGithubRepoNameIssues(c *fiber.Ctx, repoName string) error
}

// ServerInterfaceWrapper extracts path parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetRoot operation middleware
func (siw *ServerInterfaceWrapper) GetRoot(c *fiber.Ctx) error {
	return siw.Handler.GetRoot(c)
}

// GetGithub operation middleware
func (siw *ServerInterfaceWrapper) GetGithub(c *fiber.Ctx) error {
	return siw.Handler.GetGithub(c)
}

// GetGithubRepoName operation middleware
func (siw *ServerInterfaceWrapper) GetGithubRepoName(c *fiber.Ctx) error {
	return siw.Handler.GetGithubRepoName(c, pathParam(c, "repoName"))
}

// PostGithubRepoNameIssues operation middleware
func (siw *ServerInterfaceWrapper) PostGithubRepoNameIssues(c *fiber.Ctx) error {
	return siw.Handler.PostGithubRepoNameIssues(c, pathParam(c, "repoName"))
}

// pathParam returns the percent-decoded path parameter, or the raw value
// when it is not valid escaping.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// RegisterHandlers binds every ServerInterface operation to its route on router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.Get("/", wrapper.GetRoot)
	router.Get("/github", wrapper.GetGithub)
	router.Get("/github/:repoName", wrapper.GetGithubRepoName)
	router.Post("/github/:repoName/issues", wrapper.PostGithubRepoNameIssues)
}
