package service

import (
	"context"
)

// TaskAssignedEvent is published when a task gets a new assignee.
type TaskAssignedEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	TaskID         string `json:"task_id"`
	ProjectID      string `json:"project_id"`
	AssigneeUserID string `json:"assignee_user_id"`
	Content        string `json:"content"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTaskAssigned publishes a task assignment event for async processing
	PublishTaskAssigned(ctx context.Context, event *TaskAssignedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
