package repository

import (
	"context"

	"todoez/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTaskNotFound is returned when a task is not found in its project.
var ErrTaskNotFound = errors.New("task not found")

// ErrReporterNotFound and ErrAssigneeNotFound are returned when a task write
// references a membership that no longer exists.
var (
	ErrReporterNotFound = errors.New("task reporter membership not found")
	ErrAssigneeNotFound = errors.New("task assignee membership not found")
)

// TaskRepository persists tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByID(ctx context.Context, projectID, id uuid.UUID) (*entity.Task, error)
	// List returns a page of tasks matching the filter, newest first, with reporter and assignee loaded.
	List(ctx context.Context, filter entity.TaskFilter, page entity.PageRequest) ([]*entity.Task, int64, error)
	// ListBySprints returns every task of the given sprints with reporter and assignee loaded.
	ListBySprints(ctx context.Context, sprintIDs []uuid.UUID) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, projectID, id uuid.UUID) error
}
