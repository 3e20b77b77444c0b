package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"todoez/internal/domain/entity"
	"todoez/internal/domain/repository"
	"todoez/internal/domain/service"
	mockRepo "todoez/internal/mocks/repository"
	mockSvc "todoez/internal/mocks/service"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskNotifierFixtures struct {
	notifier   usecase.TaskNotificationUsecase
	userRepo   *mockRepo.MockUserRepository
	deviceRepo *mockRepo.MockDeviceRepository
	pusher     *mockSvc.MockNotificationService
	mailer     *mockSvc.MockMailer
}

func createTestTaskNotifier(t *testing.T, withPusher bool) taskNotifierFixtures {
	fx := taskNotifierFixtures{
		userRepo:   mockRepo.NewMockUserRepository(t),
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		pusher:     mockSvc.NewMockNotificationService(t),
		mailer:     mockSvc.NewMockMailer(t),
	}

	params := TaskNotifierParams{
		UserRepo:   fx.userRepo,
		DeviceRepo: fx.deviceRepo,
		Mailer:     fx.mailer,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	}
	if withPusher {
		params.Pusher = fx.pusher
	}
	fx.notifier = NewTaskNotifier(params)

	return fx
}

func newAssignedEvent(userID uuid.UUID) *service.TaskAssignedEvent {
	return &service.TaskAssignedEvent{
		TaskID:         uuid.NewString(),
		ProjectID:      uuid.NewString(),
		AssigneeUserID: userID.String(),
		Content:        "fix login",
	}
}

func devicesWithTokens(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   userID,
			FCMToken: fmt.Sprintf("token-%d", i),
			IsActive: true,
		})
	}

	return devices
}

func TestTaskNotifier_PushesAndMails(t *testing.T) {
	fx := createTestTaskNotifier(t, true)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com"}
	event := newAssignedEvent(user.ID)

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, user.ID).Return(devicesWithTokens(user.ID, 2), nil)
	fx.pusher.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1"}, taskAssignedTitle, event.Content, map[string]string{
			"task_id":    event.TaskID,
			"project_id": event.ProjectID,
		}).
		Return(&service.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-1"}}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, user.ID, []string{"token-1"}).Return(nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *service.MailMessage) bool {
			return msg.To == user.Email &&
				strings.Contains(msg.TextBody, "/projects/"+event.ProjectID+"/tasks/"+event.TaskID)
		})).
		Return(nil)

	require.NoError(t, fx.notifier.NotifyTaskAssigned(ctx, event))
}

func TestTaskNotifier_SplitsIntoFirebaseBatches(t *testing.T) {
	fx := createTestTaskNotifier(t, true)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com"}
	event := newAssignedEvent(user.ID)

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, user.ID).Return(devicesWithTokens(user.ID, firebaseBatchSize+1), nil)
	fx.pusher.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }), mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("quota exceeded")).
		Once()
	fx.pusher.EXPECT().
		SendBatchNotification(ctx, []string{fmt.Sprintf("token-%d", firebaseBatchSize)}, mock.Anything, mock.Anything, mock.Anything).
		Return(&service.PushResult{SuccessCount: 1}, nil).
		Once()
	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.MailMessage")).Return(nil)

	require.NoError(t, fx.notifier.NotifyTaskAssigned(ctx, event))
}

func TestTaskNotifier_WithoutFirebaseOnlyMails(t *testing.T) {
	fx := createTestTaskNotifier(t, false)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.MailMessage")).Return(nil)

	require.NoError(t, fx.notifier.NotifyTaskAssigned(ctx, newAssignedEvent(user.ID)))
}

func TestTaskNotifier_MailFailureIsNotRetried(t *testing.T) {
	fx := createTestTaskNotifier(t, true)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, user.ID).Return(nil, nil)
	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.MailMessage")).Return(errors.New("smtp down"))

	assert.NoError(t, fx.notifier.NotifyTaskAssigned(ctx, newAssignedEvent(user.ID)))
}

func TestTaskNotifier_MissingAssigneeIsDropped(t *testing.T) {
	fx := createTestTaskNotifier(t, true)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	assert.NoError(t, fx.notifier.NotifyTaskAssigned(ctx, newAssignedEvent(userID)))
}

func TestTaskNotifier_RetryableErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("user lookup", func(t *testing.T) {
		fx := createTestTaskNotifier(t, true)
		userID := uuid.New()
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("connection refused"))

		err := fx.notifier.NotifyTaskAssigned(ctx, newAssignedEvent(userID))
		require.Error(t, err)
		assert.False(t, errors.Is(err, usecase.ErrMalformedEvent))
	})

	t.Run("device lookup", func(t *testing.T) {
		fx := createTestTaskNotifier(t, true)
		user := &entity.User{ID: uuid.New()}
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, user.ID).Return(nil, errors.New("connection refused"))

		err := fx.notifier.NotifyTaskAssigned(ctx, newAssignedEvent(user.ID))
		require.Error(t, err)
		assert.False(t, errors.Is(err, usecase.ErrMalformedEvent))
	})
}

func TestTaskNotifier_MalformedEvents(t *testing.T) {
	ctx := context.Background()
	valid := newAssignedEvent(uuid.New())

	cases := map[string]*service.TaskAssignedEvent{
		"nil event":        nil,
		"bad assignee":     {TaskID: valid.TaskID, ProjectID: valid.ProjectID, AssigneeUserID: "nope"},
		"bad project":      {TaskID: valid.TaskID, ProjectID: "nope", AssigneeUserID: valid.AssigneeUserID},
		"bad task":         {TaskID: "nope", ProjectID: valid.ProjectID, AssigneeUserID: valid.AssigneeUserID},
		"missing assignee": {TaskID: valid.TaskID, ProjectID: valid.ProjectID},
	}
	for name, event := range cases {
		t.Run(name, func(t *testing.T) {
			fx := createTestTaskNotifier(t, true)

			err := fx.notifier.NotifyTaskAssigned(ctx, event)
			assert.True(t, errors.Is(err, usecase.ErrMalformedEvent))
		})
	}
}
