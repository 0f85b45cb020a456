package handlers_fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dheerajaldak/GitHub-API/internal/entities"
	api "github.com/Dheerajaldak/GitHub-API/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) (int, api.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, testErr := app.Test(req)
	require.NoError(t, testErr)
	defer resp.Body.Close()

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestWriteErrorValidation(t *testing.T) {
	status, body := serveError(t, entities.NewValidationError("Title and body are required"))

	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Title and body are required", body.Error)
}

func TestWriteErrorUpstreamPolicies(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{
			name:   "overview",
			err:    &entities.FetchError{Op: entities.OpOverview, Resource: "alice"},
			status: http.StatusInternalServerError,
			msg:    "Failed to fetch GitHub data",
		},
		{
			name:   "repository",
			err:    &entities.FetchError{Op: entities.OpRepository, Resource: "my-repo"},
			status: http.StatusNotFound,
			msg:    "Repository my-repo not found",
		},
		{
			name:   "create_issue",
			err:    &entities.FetchError{Op: entities.OpCreateIssue, Resource: "my-repo"},
			status: http.StatusInternalServerError,
			msg:    "Failed to create issue",
		},
		{
			name:   "wrapped",
			err:    fmt.Errorf("handler: %w", &entities.FetchError{Op: entities.OpRepository, Resource: "x"}),
			status: http.StatusNotFound,
			msg:    "Repository x not found",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			status, body := serveError(t, tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.msg, body.Error)
		})
	}
}

func TestWriteErrorUnclassified(t *testing.T) {
	status, body := serveError(t, errors.New("boom"))

	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "internal error", body.Error)
}
