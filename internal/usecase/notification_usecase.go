package usecase

import (
	"context"

	"todoez/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrMalformedEvent marks an event that can never be processed. It must not be retried.
var ErrMalformedEvent = errors.New("malformed event")

// TaskNotificationUsecase delivers task assignment notifications.
type TaskNotificationUsecase interface {
	// NotifyTaskAssigned pushes to the assignee's devices and mails the assignee.
	// Errors other than ErrMalformedEvent are worth retrying.
	NotifyTaskAssigned(ctx context.Context, event *service.TaskAssignedEvent) error
}
