package handler

import (
	"log/slog"
	"net/http"

	"todoez/internal/delivery/api/response"
	"todoez/internal/domain/entity"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskListQuery is the query string of the task listings.
type TaskListQuery struct {
	Type     string `query:"type" validate:"omitempty,oneof=task bug story epic"`
	Status   string `query:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Priority string `query:"priority" validate:"omitempty,oneof=lowest low medium high highest"`
	Keyword  string `query:"keyword"`
	Assignee string `query:"assignee" validate:"omitempty,uuid"`
	Reporter string `query:"reporter" validate:"omitempty,uuid"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

func (q *TaskListQuery) toTaskQuery() *usecase.TaskQuery {
	query := &usecase.TaskQuery{
		Type:     entity.TaskType(q.Type),
		Status:   entity.TaskStatus(q.Status),
		Priority: entity.TaskPriority(q.Priority),
		Keyword:  q.Keyword,
		Page:     entity.PageRequest{Page: q.Page, Limit: q.Limit}.Normalize(),
	}
	// Already validated as uuids.
	if q.Assignee != "" {
		query.AssigneeID = uuid.MustParse(q.Assignee)
	}
	if q.Reporter != "" {
		query.ReporterID = uuid.MustParse(q.Reporter)
	}

	return query
}

// TaskStatusRequest moves a task to another column.
type TaskStatusRequest struct {
	Status entity.TaskStatus `json:"status" validate:"required,oneof=todo in_progress review done"`
}

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler serves task endpoints.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler.
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

func (h *TaskHandler) Create(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req usecase.CreateTaskInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	task, err := h.taskUC.Create(c.Request().Context(), userID, ids[0], &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, task)
}

// ListMine lists tasks assigned to the caller across projects.
func (h *TaskHandler) ListMine(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	query, err := h.bindQuery(c)
	if err != nil {
		return invalidInput(c, err)
	}

	page, err := h.taskUC.ListMine(c.Request().Context(), userID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *TaskHandler) List(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	query, err := h.bindQuery(c)
	if err != nil {
		return invalidInput(c, err)
	}

	page, err := h.taskUC.List(c.Request().Context(), userID, ids[0], query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *TaskHandler) Get(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id", "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	task, err := h.taskUC.Get(c.Request().Context(), userID, ids[0], ids[1])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id", "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req TaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	task, err := h.taskUC.UpdateStatus(c.Request().Context(), userID, ids[0], ids[1], req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

func (h *TaskHandler) Update(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id", "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req usecase.UpdateTaskInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(c, err)
	}

	task, err := h.taskUC.Update(c.Request().Context(), userID, ids[0], ids[1], &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

func (h *TaskHandler) Delete(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return missingActor(c)
	}

	ids, err := uuidParams(c, "project_id", "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	if err := h.taskUC.Delete(c.Request().Context(), userID, ids[0], ids[1]); err != nil {
		return response.HandleAppError(c, err)
	}

	return ack(c, http.StatusOK, "Delete task successfully")
}

func (h *TaskHandler) bindQuery(c echo.Context) (*usecase.TaskQuery, error) {
	var q TaskListQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return nil, err
	}
	if err := c.Validate(&q); err != nil {
		return nil, err
	}

	return q.toTaskQuery(), nil
}
