package usecase

import (
	"context"

	"todoez/internal/domain/entity"

	"github.com/google/uuid"
)

// NoteInput defines the content of a note.
type NoteInput struct {
	Content     string `json:"content" validate:"required"`
	Description string `json:"description"`
}

// CommentUsecase manages task comments. Only the author may edit or delete a comment.
type CommentUsecase interface {
	Create(ctx context.Context, userID, projectID, taskID uuid.UUID, content string) (*entity.Comment, error)
	List(ctx context.Context, userID, projectID, taskID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Comment], error)
	Update(ctx context.Context, userID, projectID, commentID uuid.UUID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, userID, projectID, commentID uuid.UUID) error
}

// NoteUsecase manages team notes. Only the author may edit or delete a note.
type NoteUsecase interface {
	Create(ctx context.Context, userID, teamID uuid.UUID, input *NoteInput) (*entity.Note, error)
	List(ctx context.Context, userID, teamID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Note], error)
	Update(ctx context.Context, userID, teamID, noteID uuid.UUID, input *NoteInput) (*entity.Note, error)
	Delete(ctx context.Context, userID, teamID, noteID uuid.UUID) error
}
