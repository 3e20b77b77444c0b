package usecase

import (
	"context"
	"time"

	"todoez/internal/domain/entity"

	"github.com/google/uuid"
)

// SprintInput defines the data required to create a sprint.
type SprintInput struct {
	Title   string    `json:"title" validate:"required"`
	StartAt time.Time `json:"start_at" validate:"required"`
	EndAt   time.Time `json:"end_at" validate:"required"`
}

// SprintUsecase manages the sprints of a project. Every call requires an active project membership.
type SprintUsecase interface {
	Create(ctx context.Context, userID, projectID uuid.UUID, input *SprintInput) (*entity.Sprint, error)
	List(ctx context.Context, userID, projectID uuid.UUID) ([]*entity.Sprint, error)
	// ListWithTasks returns a page of sprints, each with its tasks.
	ListWithTasks(ctx context.Context, userID, projectID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.SprintWithTasks], error)
	UpdateTitle(ctx context.Context, userID, projectID, sprintID uuid.UUID, title string) (*entity.Sprint, error)
	Delete(ctx context.Context, userID, projectID, sprintID uuid.UUID) error
}
