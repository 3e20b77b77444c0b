package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskType classifies a task.
type TaskType string

const (
	TaskTypeTask  TaskType = "task"
	TaskTypeBug   TaskType = "bug"
	TaskTypeStory TaskType = "story"
	TaskTypeEpic  TaskType = "epic"
)

// TaskStatus is the workflow column of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	TaskPriorityLowest  TaskPriority = "lowest"
	TaskPriorityLow     TaskPriority = "low"
	TaskPriorityMedium  TaskPriority = "medium"
	TaskPriorityHigh    TaskPriority = "high"
	TaskPriorityHighest TaskPriority = "highest"
)

// Task is a unit of work inside a sprint.
// ReporterID and AssigneeID reference project memberships, not users.
type Task struct {
	ID          uuid.UUID      `json:"id"`
	ProjectID   uuid.UUID      `json:"project_id"`
	SprintID    uuid.UUID      `json:"sprint_id"`
	Content     string         `json:"content"`
	Description string         `json:"description"`
	Type        TaskType       `json:"type"`
	Status      TaskStatus     `json:"status"`
	Priority    TaskPriority   `json:"priority"`
	EndAt       *time.Time     `json:"end_at"`
	ReporterID  uuid.UUID      `json:"reporter_id"`
	AssigneeID  uuid.UUID      `json:"assignee_id"`
	Reporter    *MemberSummary `json:"reporter,omitempty"`
	Assignee    *MemberSummary `json:"assignee,omitempty"`
	CreatedAt   time.Time      `json:"create_at"`
	UpdatedAt   time.Time      `json:"update_at"`
}

// TaskFilter narrows task listings. Zero values mean "no filter".
type TaskFilter struct {
	ProjectID  uuid.UUID
	SprintID   uuid.UUID
	Type       TaskType
	Status     TaskStatus
	Priority   TaskPriority
	Keyword    string
	AssigneeID uuid.UUID
	ReporterID uuid.UUID

	// AssigneeUserID restricts results to tasks whose active assignee
	// membership belongs to this user.
	AssigneeUserID uuid.UUID
}
