package handler

import (
	"log/slog"
	"net/http"

	"todoez/internal/delivery/api/response"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CreateCommentRequest posts a comment on a task.
type CreateCommentRequest struct {
	TaskID  uuid.UUID `json:"task_id" validate:"required"`
	Content string    `json:"content" validate:"required"`
}

// CommentContentRequest edits a comment.
type CommentContentRequest struct {
	Content string `json:"content" validate:"required"`
}

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler serves task comment endpoints.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler.
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

func (h *CommentHandler) Create(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	comment, err := h.commentUC.Create(c.Request().Context(), userID, ids[0], req.TaskID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, comment)
}

func (h *CommentHandler) List(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id", "task_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	page, err := pageRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	comments, err := h.commentUC.List(c.Request().Context(), userID, ids[0], ids[1], page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comments)
}

func (h *CommentHandler) Update(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id", "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req CommentContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	comment, err := h.commentUC.Update(c.Request().Context(), userID, ids[0], ids[1], req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id", "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	if err := h.commentUC.Delete(c.Request().Context(), userID, ids[0], ids[1]); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, "Delete message successfully")
}
