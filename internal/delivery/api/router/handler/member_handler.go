package handler

import (
	"log/slog"
	"net/http"

	"todoez/internal/delivery/api/response"
	"todoez/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddMemberRequest names the user to add by email.
type AddMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// MemberHandler serves the member endpoints of one scope kind.
type MemberHandler struct {
	memberUC      usecase.MemberUsecase
	scopeParam    string
	removedNotice string
	logger        *slog.Logger
}

// MemberHandlerParams holds dependencies for both member handlers, injected by Fx.
type MemberHandlerParams struct {
	fx.In

	TeamMemberUC    usecase.TeamMemberUsecase
	ProjectMemberUC usecase.ProjectMemberUsecase
	Logger          *slog.Logger
}

// MemberHandlers groups the team and project member handlers.
type MemberHandlers struct {
	Team    *MemberHandler
	Project *MemberHandler
}

// NewMemberHandlers is the constructor for MemberHandlers.
func NewMemberHandlers(params MemberHandlerParams) *MemberHandlers {
	return &MemberHandlers{
		Team: &MemberHandler{
			memberUC:      params.TeamMemberUC,
			scopeParam:    "team_id",
			removedNotice: "Delete user from team successfully",
			logger:        params.Logger,
		},
		Project: &MemberHandler{
			memberUC:      params.ProjectMemberUC,
			scopeParam:    "project_id",
			removedNotice: "Delete user from project successfully",
			logger:        params.Logger,
		},
	}
}

// ScopeParam is the path parameter holding the team or project id.
func (h *MemberHandler) ScopeParam() string {
	return h.scopeParam
}

func (h *MemberHandler) Add(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, h.scopeParam)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	membership, err := h.memberUC.Add(c.Request().Context(), userID, ids[0], req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, membership)
}

func (h *MemberHandler) List(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, h.scopeParam)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	members, err := h.memberUC.List(c.Request().Context(), userID, ids[0])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, members)
}

func (h *MemberHandler) Remove(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, h.scopeParam, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	if err := h.memberUC.Remove(c.Request().Context(), userID, ids[0], ids[1]); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, h.removedNotice)
}
