package handler

import (
	"log/slog"
	"net/http"

	"todoez/internal/delivery/api/response"
	"todoez/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SprintTitleRequest renames a sprint.
type SprintTitleRequest struct {
	Title string `json:"title" validate:"required"`
}

// SprintHandlerParams holds dependencies for SprintHandler, injected by Fx.
type SprintHandlerParams struct {
	fx.In

	SprintUC usecase.SprintUsecase
	Logger   *slog.Logger
}

// SprintHandler serves sprint endpoints.
type SprintHandler struct {
	sprintUC usecase.SprintUsecase
	logger   *slog.Logger
}

// NewSprintHandler is the constructor for SprintHandler.
func NewSprintHandler(params SprintHandlerParams) *SprintHandler {
	return &SprintHandler{
		sprintUC: params.SprintUC,
		logger:   params.Logger,
	}
}

func (h *SprintHandler) Create(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req usecase.SprintInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sprint input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	sprint, err := h.sprintUC.Create(c.Request().Context(), userID, ids[0], &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sprint)
}

func (h *SprintHandler) List(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	sprints, err := h.sprintUC.List(c.Request().Context(), userID, ids[0])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sprints)
}

// ListWithTasks pages through the project's sprints with their tasks.
func (h *SprintHandler) ListWithTasks(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	page, err := pageRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	result, err := h.sprintUC.ListWithTasks(c.Request().Context(), userID, ids[0], page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *SprintHandler) UpdateTitle(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id", "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req SprintTitleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sprint input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	sprint, err := h.sprintUC.UpdateTitle(c.Request().Context(), userID, ids[0], ids[1], req.Title)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sprint)
}

func (h *SprintHandler) Delete(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id", "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	if err := h.sprintUC.Delete(c.Request().Context(), userID, ids[0], ids[1]); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, "Delete sprint successfully")
}
