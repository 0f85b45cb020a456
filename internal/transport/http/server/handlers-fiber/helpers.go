package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Dheerajaldak/GitHub-API/internal/entities"
	api "github.com/Dheerajaldak/GitHub-API/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

type errorPolicy struct {
	status  int
	message func(resource string) string
}

// upstreamPolicies maps a failed operation to what the caller sees. The
// repository lookup reports every upstream failure as not found.
var upstreamPolicies = map[entities.Operation]errorPolicy{
	entities.OpOverview: {
		status:  http.StatusInternalServerError,
		message: func(string) string { return "Failed to fetch GitHub data" },
	},
	entities.OpRepository: {
		status:  http.StatusNotFound,
		message: func(name string) string { return fmt.Sprintf("Repository %s not found", name) },
	},
	entities.OpCreateIssue: {
		status:  http.StatusInternalServerError,
		message: func(string) string { return "Failed to create issue" },
	},
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	var (
		verr *entities.ValidationError
		ferr *entities.FetchError
	)
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		msg = verr.Message
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.As(err, &ferr):
		if p, ok := upstreamPolicies[ferr.Op]; ok {
			status = p.status
			msg = p.message(ferr.Resource)
		}
	}

	return c.Status(status).JSON(errorResponse(msg))
}

func errorResponse(msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: msg}
}
