package handler

import (
	"log/slog"
	"net/http"

	"todoez/internal/delivery/api/response"
	"todoez/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NoteHandlerParams holds dependencies for NoteHandler, injected by Fx.
type NoteHandlerParams struct {
	fx.In

	NoteUC usecase.NoteUsecase
	Logger *slog.Logger
}

// NoteHandler serves team note endpoints.
type NoteHandler struct {
	noteUC usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler.
func NewNoteHandler(params NoteHandlerParams) *NoteHandler {
	return &NoteHandler{
		noteUC: params.NoteUC,
		logger: params.Logger,
	}
}

func (h *NoteHandler) Create(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "team_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req usecase.NoteInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	note, err := h.noteUC.Create(c.Request().Context(), userID, ids[0], &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, note)
}

func (h *NoteHandler) List(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "team_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	page, err := pageRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	notes, err := h.noteUC.List(c.Request().Context(), userID, ids[0], page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notes)
}

func (h *NoteHandler) Update(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "team_id", "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req usecase.NoteInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	note, err := h.noteUC.Update(c.Request().Context(), userID, ids[0], ids[1], &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, note)
}

func (h *NoteHandler) Delete(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "team_id", "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	if err := h.noteUC.Delete(c.Request().Context(), userID, ids[0], ids[1]); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, "Delete note successfully")
}
