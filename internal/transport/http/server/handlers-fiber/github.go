package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/Dheerajaldak/GitHub-API/internal/entities"
	"github.com/Dheerajaldak/GitHub-API/internal/mapper"
	api "github.com/Dheerajaldak/GitHub-API/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// Greeting is the body of GET /.
const Greeting = "Hello, Backend Test, Mar 9 2025"

// GetRoot returns the plain-text greeting.
func (h *Handler) GetRoot(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(http.StatusOK).SendString(Greeting)
}

// GetGithub returns the account profile with its repositories.
func (h *Handler) GetGithub(c *fiber.Ctx) error {
	profile, err := h.uc.Overview(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to fetch github overview", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIOverview(*profile))
}

// GetGithubRepoName returns metadata of one repository.
func (h *Handler) GetGithubRepoName(c *fiber.Ctx, repoName string) error {
	repo, err := h.uc.Repository(c.UserContext(), repoName)
	if err != nil {
		h.log.Errorw("failed to fetch repository", "repo", repoName, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIRepository(*repo))
}

// PostGithubRepoNameIssues creates an issue on the repository.
func (h *Handler) PostGithubRepoNameIssues(c *fiber.Ctx, repoName string) error {
	// Only JSON bodies carry fields; anything else is validated as empty.
	var body api.PostGithubRepoNameIssuesJSONRequestBody
	if c.Is("json") {
		if err := c.BodyParser(&body); err != nil {
			h.log.Infow("failed to parse body", "error", err.Error())
			body = api.PostGithubRepoNameIssuesJSONRequestBody{}
		}
	}

	issue, err := h.uc.CreateIssue(c.UserContext(), repoName, mapper.FromOAPIIssue(body))
	if errors.Is(err, entities.ErrInvalidArgument) {
		h.log.Infow("issue rejected", "repo", repoName, "error", err.Error())
		return writeError(c, err)
	}
	if err != nil {
		h.log.Errorw("failed to create issue", "repo", repoName, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIIssueCreated(*issue))
}
