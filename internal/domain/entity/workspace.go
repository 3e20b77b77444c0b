package entity

import (
	"time"

	"github.com/google/uuid"
)

// Team groups users who share notes.
type Team struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"create_at"`
	UpdatedAt time.Time `json:"update_at"`
}

// Project groups users who share sprints and tasks.
type Project struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"create_at"`
	UpdatedAt time.Time `json:"update_at"`
}

// Sprint is a time box inside a project.
type Sprint struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Title     string    `json:"title"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	CreatedAt time.Time `json:"create_at"`
	UpdatedAt time.Time `json:"update_at"`
}

// SprintWithTasks is a sprint together with its tasks.
type SprintWithTasks struct {
	*Sprint
	Tasks []*Task `json:"tasks"`
}

// Comment is written by a project member on a task.
// AuthorID references the author's project membership.
type Comment struct {
	ID        uuid.UUID      `json:"id"`
	TaskID    uuid.UUID      `json:"task_id"`
	AuthorID  uuid.UUID      `json:"user_id"`
	Content   string         `json:"content"`
	Author    *MemberSummary `json:"user,omitempty"`
	CreatedAt time.Time      `json:"create_at"`
	UpdatedAt time.Time      `json:"update_at"`
}

// Note is written by a team member.
// AuthorID references the author's team membership.
type Note struct {
	ID          uuid.UUID      `json:"id"`
	TeamID      uuid.UUID      `json:"team_id"`
	AuthorID    uuid.UUID      `json:"user_id"`
	Content     string         `json:"content"`
	Description string         `json:"description"`
	Author      *MemberSummary `json:"user,omitempty"`
	CreatedAt   time.Time      `json:"create_at"`
	UpdatedAt   time.Time      `json:"update_at"`
}
