package impl

import (
	"context"
	"log/slog"

	"todoez/config"
	"todoez/internal/domain/entity"
	"todoez/internal/domain/repository"
	"todoez/internal/domain/service"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	taskAssignedTitle = "New task assigned"
)

type taskNotifier struct {
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceRepository
	pusher     service.NotificationService
	mailer     service.Mailer
	appBaseURL string
	logger     *slog.Logger
}

// TaskNotifierParams holds dependencies for the task notifier, injected by Fx.
// Pusher is nil when Firebase is not configured; pushes are then skipped.
type TaskNotifierParams struct {
	fx.In

	UserRepo   repository.UserRepository
	DeviceRepo repository.DeviceRepository
	Pusher     service.NotificationService `optional:"true"`
	Mailer     service.Mailer
	Config     *config.Config
	Logger     *slog.Logger
}

// NewTaskNotifier creates the use case run by the notification worker.
func NewTaskNotifier(params TaskNotifierParams) usecase.TaskNotificationUsecase {
	var baseURL string
	if params.Config != nil && params.Config.Auth != nil {
		baseURL = params.Config.Auth.AppBaseURL
	}

	return &taskNotifier{
		userRepo:   params.UserRepo,
		deviceRepo: params.DeviceRepo,
		pusher:     params.Pusher,
		mailer:     params.Mailer,
		appBaseURL: baseURL,
		logger:     params.Logger,
	}
}

func (n *taskNotifier) NotifyTaskAssigned(ctx context.Context, event *service.TaskAssignedEvent) error {
	if event == nil {
		return errors.Wrap(usecase.ErrMalformedEvent, "event is nil")
	}

	userID, err := uuid.Parse(event.AssigneeUserID)
	if err != nil {
		return errors.Wrapf(usecase.ErrMalformedEvent, "assignee_user_id %q", event.AssigneeUserID)
	}
	projectID, err := uuid.Parse(event.ProjectID)
	if err != nil {
		return errors.Wrapf(usecase.ErrMalformedEvent, "project_id %q", event.ProjectID)
	}
	taskID, err := uuid.Parse(event.TaskID)
	if err != nil {
		return errors.Wrapf(usecase.ErrMalformedEvent, "task_id %q", event.TaskID)
	}

	logger := loggerFor(ctx, n.logger).With(
		slog.String("task_id", taskID.String()),
		slog.String("assignee_user_id", userID.String()),
	)

	user, err := n.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn("Assignee no longer exists, dropping notification")

			return nil
		}

		return errors.Wrap(err, "failed to find assignee")
	}

	if err := n.push(ctx, logger, user, event); err != nil {
		return err
	}

	msg, err := taskAssignedMail(n.appBaseURL, projectID.String(), taskID.String(), event.Content).render(user.Email)
	if err != nil {
		return errors.Wrap(err, "failed to render task mail")
	}
	if err := n.mailer.Send(ctx, msg); err != nil {
		logger.Error("Failed to mail task assignment", slog.Any("error", err))
	}

	return nil
}

// push sends to every active device of the user in Firebase-sized batches
// and deactivates the tokens Firebase reports as unregistered.
func (n *taskNotifier) push(ctx context.Context, logger *slog.Logger, user *entity.User, event *service.TaskAssignedEvent) error {
	if n.pusher == nil {
		return nil
	}

	devices, err := n.deviceRepo.FindActiveDevicesByUser(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch devices")
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"task_id":    event.TaskID,
		"project_id": event.ProjectID,
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		result, err := n.pusher.SendBatchNotification(ctx, batch, taskAssignedTitle, event.Content, data)
		if err != nil {
			// Keep going with the remaining batches.
			logger.Error("Failed to send push batch", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			totalFailed += len(batch)

			continue
		}

		totalSent += result.SuccessCount
		totalFailed += result.FailureCount
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		if err := n.deviceRepo.DeactivateByTokens(ctx, user.ID, invalidTokens); err != nil {
			logger.Error("Failed to deactivate invalid tokens", slog.Any("error", err))
		}
	}

	logger.Info("Task assignment pushed",
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}
