package usecase

import (
	"context"
	"time"

	"todoez/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task.
// AssigneeID is a project membership id.
type CreateTaskInput struct {
	Content     string              `json:"content" validate:"required"`
	Description string              `json:"description"`
	Type        entity.TaskType     `json:"type" validate:"required,oneof=task bug story epic"`
	Priority    entity.TaskPriority `json:"priority" validate:"required,oneof=lowest low medium high highest"`
	EndAt       *time.Time          `json:"end_at"`
	SprintID    uuid.UUID           `json:"sprint_id" validate:"required"`
	AssigneeID  uuid.UUID           `json:"assignee_id" validate:"required"`
}

// UpdateTaskInput replaces every editable field of a task.
// AssigneeID and ReporterID are project membership ids.
type UpdateTaskInput struct {
	Content     string              `json:"content" validate:"required"`
	Description string              `json:"description"`
	Type        entity.TaskType     `json:"type" validate:"required,oneof=task bug story epic"`
	Status      entity.TaskStatus   `json:"status" validate:"required,oneof=todo in_progress review done"`
	Priority    entity.TaskPriority `json:"priority" validate:"required,oneof=lowest low medium high highest"`
	EndAt       *time.Time          `json:"end_at"`
	SprintID    uuid.UUID           `json:"sprint_id" validate:"required"`
	AssigneeID  uuid.UUID           `json:"assignee_id" validate:"required"`
	ReporterID  uuid.UUID           `json:"reporter_id" validate:"required"`
}

// TaskQuery narrows a task listing. Zero values mean "no filter".
type TaskQuery struct {
	Type       entity.TaskType
	Status     entity.TaskStatus
	Priority   entity.TaskPriority
	Keyword    string
	AssigneeID uuid.UUID
	ReporterID uuid.UUID
	Page       entity.PageRequest
}

// TaskUsecase manages tasks. Every project call requires an active project membership.
type TaskUsecase interface {
	// Create stores the task with the caller's membership as reporter.
	Create(ctx context.Context, userID, projectID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)
	// ListMine returns tasks assigned to the caller's active memberships across projects.
	ListMine(ctx context.Context, userID uuid.UUID, query *TaskQuery) (*entity.Page[*entity.Task], error)
	List(ctx context.Context, userID, projectID uuid.UUID, query *TaskQuery) (*entity.Page[*entity.Task], error)
	Get(ctx context.Context, userID, projectID, taskID uuid.UUID) (*entity.Task, error)
	UpdateStatus(ctx context.Context, userID, projectID, taskID uuid.UUID, status entity.TaskStatus) (*entity.Task, error)
	Update(ctx context.Context, userID, projectID, taskID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, userID, projectID, taskID uuid.UUID) error
}
