// Package handler translates HTTP requests into use case calls.
package handler

import (
	"net/http"

	"todoez/internal/delivery/api/middleware"
	"todoez/internal/delivery/api/response"
	"todoez/internal/delivery/api/validator"
	"todoez/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageResponse acknowledges a command without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func ack(c echo.Context, statusCode int, message string) error {
	return response.Success(c, statusCode, MessageResponse{Message: message})
}

// callerID returns the authenticated user. The bool is false when the route
// was mounted without the auth middleware.
func callerID(c echo.Context) (uuid.UUID, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return uuid.Nil, false
	}

	return actor.UserID, true
}

// invalidInput answers a request that failed struct validation, listing the
// rejected fields. Errors from binding carry no field list.
func invalidInput(c echo.Context, err error) error {
	if fields := validator.FieldErrors(err); fields != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", fields)
	}

	return response.BindingError(c, "INVALID_INPUT", "Invalid request parameters")
}

func missingActor(c echo.Context) error {
	return response.Unauthorized(c, "CONTEXT_ERROR", "Authenticated user not found in context")
}

// uuidParams parses the named path parameters in order.
// Callers answer a failure with a 400.
func uuidParams(c echo.Context, names ...string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		id, err := uuid.Parse(c.Param(name))
		if err != nil {
			return nil, errors.Errorf("invalid %s", name)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// pageRequest reads page and limit from the query string.
func pageRequest(c echo.Context) (entity.PageRequest, error) {
	var page entity.PageRequest
	err := echo.QueryParamsBinder(c).
		Int("page", &page.Page).
		Int("limit", &page.Limit).
		BindError()
	if err != nil {
		return page, errors.New("page and limit must be integers")
	}

	return page.Normalize(), nil
}
