package repository

import (
	"context"

	"todoez/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrTeamNotFound is returned when a team is not found.
	ErrTeamNotFound = errors.New("team not found")
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrSprintNotFound is returned when a sprint is not found in its project.
	ErrSprintNotFound = errors.New("sprint not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrNoteNotFound is returned when a note is not found in its team.
	ErrNoteNotFound = errors.New("note not found")
)

// TeamRepository persists teams.
type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Team, error)
	// ListByMember returns teams where userID holds an active membership, newest first.
	ListByMember(ctx context.Context, userID uuid.UUID) ([]*entity.Team, error)
	Update(ctx context.Context, team *entity.Team) error
	// Delete removes the team; notes cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	// ListByMember returns projects where userID holds an active membership, newest first.
	ListByMember(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	// Delete removes the project; sprints, tasks and comments cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SprintRepository persists sprints.
type SprintRepository interface {
	Create(ctx context.Context, sprint *entity.Sprint) error
	FindByID(ctx context.Context, projectID, id uuid.UUID) (*entity.Sprint, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Sprint, error)
	// ListPageByProject returns a page of sprints, newest first, and the project's sprint count.
	ListPageByProject(ctx context.Context, projectID uuid.UUID, page entity.PageRequest) ([]*entity.Sprint, int64, error)
	Update(ctx context.Context, sprint *entity.Sprint) error
	Delete(ctx context.Context, projectID, id uuid.UUID) error
}

// CommentRepository persists task comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	// ListByTask returns a page of comments ordered by last update, newest first.
	ListByTask(ctx context.Context, taskID uuid.UUID, page entity.PageRequest) ([]*entity.Comment, int64, error)
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NoteRepository persists team notes.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	FindByID(ctx context.Context, teamID, id uuid.UUID) (*entity.Note, error)
	// ListByTeam returns a page of notes ordered by creation, newest first.
	ListByTeam(ctx context.Context, teamID uuid.UUID, page entity.PageRequest) ([]*entity.Note, int64, error)
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, teamID, id uuid.UUID) error
}
