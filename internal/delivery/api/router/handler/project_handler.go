package handler

import (
	"log/slog"
	"net/http"

	"todoez/internal/delivery/api/response"
	"todoez/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	ProjectUC usecase.ProjectUsecase
	Logger    *slog.Logger
}

// ProjectHandler serves project endpoints.
type ProjectHandler struct {
	projectUC usecase.ProjectUsecase
	logger    *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler.
func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projectUC: params.ProjectUC,
		logger:    params.Logger,
	}
}

func (h *ProjectHandler) Create(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	project, err := h.projectUC.Create(c.Request().Context(), userID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, project)
}

func (h *ProjectHandler) List(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	projects, err := h.projectUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	detail, err := h.projectUC.Get(c.Request().Context(), userID, ids[0])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

func (h *ProjectHandler) Update(c echo.Context) error {
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
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	project, err := h.projectUC.Update(c.Request().Context(), userID, ids[0], req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	if err := h.projectUC.Delete(c.Request().Context(), userID, ids[0]); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, "Delete project successfully")
}

// ShareQR renders the project link as a PNG.
func (h *ProjectHandler) ShareQR(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	png, err := h.projectUC.ShareQR(c.Request().Context(), userID, ids[0])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
