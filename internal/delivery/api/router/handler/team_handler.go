package handler

import (
	"log/slog"
	"net/http"

	"todoez/internal/delivery/api/response"
	"todoez/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NameRequest names a team or a project.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// TeamHandlerParams holds dependencies for TeamHandler, injected by Fx.
type TeamHandlerParams struct {
	fx.In

	TeamUC usecase.TeamUsecase
	Logger *slog.Logger
}

// TeamHandler serves team endpoints.
type TeamHandler struct {
	teamUC usecase.TeamUsecase
	logger *slog.Logger
}

// NewTeamHandler is the constructor for TeamHandler.
func NewTeamHandler(params TeamHandlerParams) *TeamHandler {
	return &TeamHandler{
		teamUC: params.TeamUC,
		logger: params.Logger,
	}
}

func (h *TeamHandler) Create(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid team input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	team, err := h.teamUC.Create(c.Request().Context(), userID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, team)
}

func (h *TeamHandler) List(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	teams, err := h.teamUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, teams)
}

func (h *TeamHandler) Get(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	detail, err := h.teamUC.Get(c.Request().Context(), userID, ids[0])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

func (h *TeamHandler) Update(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid team input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	team, err := h.teamUC.Update(c.Request().Context(), userID, ids[0], req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, team)
}

func (h *TeamHandler) Delete(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	if err := h.teamUC.Delete(c.Request().Context(), userID, ids[0]); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, "Delete team successfully")
}
