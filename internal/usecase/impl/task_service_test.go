package impl

import (
	"context"
	"testing"

	deliverycontext "todoez/internal/delivery/context"
	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
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

type taskServiceFixtures struct {
	service        usecase.TaskUsecase
	taskRepo       *mockRepo.MockTaskRepository
	sprintRepo     *mockRepo.MockSprintRepository
	membershipRepo *mockRepo.MockMembershipRepository
	publisher      *mockSvc.MockEventPublisher

	projectID uuid.UUID
	sprintID  uuid.UUID
	caller    *entity.Membership
	assignee  *entity.Membership
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	fx := taskServiceFixtures{
		taskRepo:       mockRepo.NewMockTaskRepository(t),
		sprintRepo:     mockRepo.NewMockSprintRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		projectID:      uuid.New(),
		sprintID:       uuid.New(),
	}
	fx.caller = activeMembership(entity.ScopeProject, fx.projectID, uuid.New(), false)
	fx.assignee = activeMembership(entity.ScopeProject, fx.projectID, uuid.New(), false)
	fx.service = NewTaskService(TaskServiceParams{
		TaskRepo:       fx.taskRepo,
		SprintRepo:     fx.sprintRepo,
		MembershipRepo: fx.membershipRepo,
		Publisher:      fx.publisher,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func (fx taskServiceFixtures) expectMember(ctx context.Context) {
	fx.membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeProject, fx.projectID, fx.caller.UserID).Return(fx.caller, nil)
}

func (fx taskServiceFixtures) createInput() *usecase.CreateTaskInput {
	return &usecase.CreateTaskInput{
		Content:    "write tests",
		Type:       entity.TaskTypeTask,
		Priority:   entity.TaskPriorityHigh,
		SprintID:   fx.sprintID,
		AssigneeID: fx.assignee.ID,
	}
}

func TestTaskService_Create_PublishesAssignment(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	input := fx.createInput()

	var created *entity.Task
	fx.expectMember(ctx)
	fx.sprintRepo.EXPECT().FindByID(ctx, fx.projectID, fx.sprintID).Return(&entity.Sprint{ID: fx.sprintID}, nil)
	fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, fx.assignee.ID).Return(fx.assignee, nil)
	fx.taskRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(task *entity.Task) bool {
			return task.ReporterID == fx.caller.ID &&
				task.AssigneeID == fx.assignee.ID &&
				task.Status == entity.TaskStatusTodo
		})).
		Run(func(_ context.Context, task *entity.Task) { created = task }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishTaskAssigned(ctx, mock.MatchedBy(func(event *service.TaskAssignedEvent) bool {
			return event.RequestID == "req-1" &&
				event.AssigneeUserID == fx.assignee.UserID.String() &&
				event.ProjectID == fx.projectID.String() &&
				event.Content == input.Content
		})).
		Return(nil)
	fx.taskRepo.EXPECT().
		FindByID(ctx, fx.projectID, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*entity.Task, error) {
			stored := *created
			stored.Assignee = &entity.MemberSummary{ID: fx.assignee.UserID}

			return &stored, nil
		})

	task, err := fx.service.Create(ctx, fx.caller.UserID, fx.projectID, input)
	require.NoError(t, err)
	assert.Equal(t, fx.assignee.UserID, task.Assignee.ID)
}

func TestTaskService_Create_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()

	fx.expectMember(ctx)
	fx.sprintRepo.EXPECT().FindByID(ctx, fx.projectID, fx.sprintID).Return(&entity.Sprint{ID: fx.sprintID}, nil)
	fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, fx.assignee.ID).Return(fx.assignee, nil)
	fx.taskRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Task")).Return(nil)
	fx.publisher.EXPECT().PublishTaskAssigned(ctx, mock.Anything).Return(errors.New("broker down"))
	fx.taskRepo.EXPECT().FindByID(ctx, fx.projectID, mock.Anything).Return(nil, repository.ErrTaskNotFound)

	task, err := fx.service.Create(ctx, fx.caller.UserID, fx.projectID, fx.createInput())
	require.NoError(t, err)
	assert.Equal(t, "write tests", task.Content)
}

func TestTaskService_Create_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("outsider", func(t *testing.T) {
		fx := createTestTaskService(t)
		fx.membershipRepo.EXPECT().
			FindByUser(ctx, entity.ScopeProject, fx.projectID, fx.caller.UserID).
			Return(nil, repository.ErrMembershipNotFound)

		_, err := fx.service.Create(ctx, fx.caller.UserID, fx.projectID, fx.createInput())
		assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	})

	t.Run("sprint of another project", func(t *testing.T) {
		fx := createTestTaskService(t)
		fx.expectMember(ctx)
		fx.sprintRepo.EXPECT().FindByID(ctx, fx.projectID, fx.sprintID).Return(nil, repository.ErrSprintNotFound)

		_, err := fx.service.Create(ctx, fx.caller.UserID, fx.projectID, fx.createInput())
		assert.True(t, errors.Is(err, domainerrors.ErrSprintNotFound))
	})

	t.Run("revoked assignee", func(t *testing.T) {
		fx := createTestTaskService(t)
		fx.assignee.Revoke(fx.assignee.CreatedAt)

		fx.expectMember(ctx)
		fx.sprintRepo.EXPECT().FindByID(ctx, fx.projectID, fx.sprintID).Return(&entity.Sprint{ID: fx.sprintID}, nil)
		fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, fx.assignee.ID).Return(fx.assignee, nil)

		_, err := fx.service.Create(ctx, fx.caller.UserID, fx.projectID, fx.createInput())
		assert.True(t, errors.Is(err, domainerrors.ErrAssigneeNotMember))
	})
}

func TestTaskService_Create_ReferenceRemovedDuringWrite(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		repoErr error
		want    error
	}{
		{name: "sprint", repoErr: repository.ErrSprintNotFound, want: domainerrors.ErrSprintNotFound},
		{name: "reporter", repoErr: repository.ErrReporterNotFound, want: domainerrors.ErrReporterNotMember},
		{name: "assignee", repoErr: repository.ErrAssigneeNotFound, want: domainerrors.ErrAssigneeNotMember},
		{name: "project", repoErr: repository.ErrProjectNotFound, want: domainerrors.ErrProjectNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestTaskService(t)
			fx.expectMember(ctx)
			fx.sprintRepo.EXPECT().FindByID(ctx, fx.projectID, fx.sprintID).Return(&entity.Sprint{ID: fx.sprintID}, nil)
			fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, fx.assignee.ID).Return(fx.assignee, nil)
			fx.taskRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Task")).Return(tc.repoErr)

			_, err := fx.service.Create(ctx, fx.caller.UserID, fx.projectID, fx.createInput())
			assert.True(t, errors.Is(err, tc.want))
		})
	}
}

func TestTaskService_ListMine_FiltersByCaller(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()
	query := &usecase.TaskQuery{
		Keyword:    "  login ",
		AssigneeID: uuid.New(),
		Status:     entity.TaskStatusDone,
		Page:       entity.PageRequest{Page: 2, Limit: 5},
	}

	fx.taskRepo.EXPECT().
		List(ctx, entity.TaskFilter{
			Keyword:        "login",
			Status:         entity.TaskStatusDone,
			AssigneeUserID: userID,
		}, entity.PageRequest{Page: 2, Limit: 5}).
		Return(nil, 0, nil)

	page, err := fx.service.ListMine(ctx, userID, query)
	require.NoError(t, err)
	assert.NotNil(t, page.List)
	assert.Zero(t, page.Total)
}

func TestTaskService_List_ScopesToProject(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	tasks := []*entity.Task{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.expectMember(ctx)
	fx.taskRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f entity.TaskFilter) bool {
			return f.ProjectID == fx.projectID && f.Type == entity.TaskTypeBug
		}), mock.AnythingOfType("entity.PageRequest")).
		Return(tasks, int64(12), nil)

	page, err := fx.service.List(ctx, fx.caller.UserID, fx.projectID, &usecase.TaskQuery{Type: entity.TaskTypeBug})
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Total)
	assert.Len(t, page.List, 2)
}

func TestTaskService_UpdateStatus(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	task := &entity.Task{ID: uuid.New(), ProjectID: fx.projectID, Status: entity.TaskStatusTodo}

	fx.expectMember(ctx)
	fx.taskRepo.EXPECT().FindByID(ctx, fx.projectID, task.ID).Return(task, nil)
	fx.taskRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(got *entity.Task) bool { return got.Status == entity.TaskStatusReview })).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, fx.caller.UserID, fx.projectID, task.ID, entity.TaskStatusReview)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusReview, updated.Status)
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()

	updateInput := func(fx taskServiceFixtures, assigneeID uuid.UUID) *usecase.UpdateTaskInput {
		return &usecase.UpdateTaskInput{
			Content:    "write more tests",
			Type:       entity.TaskTypeStory,
			Status:     entity.TaskStatusInProgress,
			Priority:   entity.TaskPriorityLow,
			SprintID:   fx.sprintID,
			AssigneeID: assigneeID,
			ReporterID: fx.caller.ID,
		}
	}

	t.Run("reassignment publishes", func(t *testing.T) {
		fx := createTestTaskService(t)
		task := &entity.Task{ID: uuid.New(), ProjectID: fx.projectID, AssigneeID: fx.caller.ID, ReporterID: fx.caller.ID}

		fx.expectMember(ctx)
		fx.taskRepo.EXPECT().FindByID(ctx, fx.projectID, task.ID).Return(task, nil).Twice()
		fx.sprintRepo.EXPECT().FindByID(ctx, fx.projectID, fx.sprintID).Return(&entity.Sprint{ID: fx.sprintID}, nil)
		fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, fx.assignee.ID).Return(fx.assignee, nil)
		fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, fx.caller.ID).Return(fx.caller, nil)
		fx.taskRepo.EXPECT().Update(ctx, task).Return(nil)
		fx.publisher.EXPECT().
			PublishTaskAssigned(ctx, mock.MatchedBy(func(event *service.TaskAssignedEvent) bool {
				return event.AssigneeUserID == fx.assignee.UserID.String()
			})).
			Return(nil)

		updated, err := fx.service.Update(ctx, fx.caller.UserID, fx.projectID, task.ID, updateInput(fx, fx.assignee.ID))
		require.NoError(t, err)
		assert.Equal(t, fx.assignee.ID, updated.AssigneeID)
		assert.Equal(t, entity.TaskStatusInProgress, updated.Status)
	})

	t.Run("same assignee does not publish", func(t *testing.T) {
		fx := createTestTaskService(t)
		task := &entity.Task{ID: uuid.New(), ProjectID: fx.projectID, AssigneeID: fx.assignee.ID, ReporterID: fx.caller.ID}

		fx.expectMember(ctx)
		fx.taskRepo.EXPECT().FindByID(ctx, fx.projectID, task.ID).Return(task, nil).Twice()
		fx.sprintRepo.EXPECT().FindByID(ctx, fx.projectID, fx.sprintID).Return(&entity.Sprint{ID: fx.sprintID}, nil)
		fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, fx.assignee.ID).Return(fx.assignee, nil)
		fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, fx.caller.ID).Return(fx.caller, nil)
		fx.taskRepo.EXPECT().Update(ctx, task).Return(nil)

		_, err := fx.service.Update(ctx, fx.caller.UserID, fx.projectID, task.ID, updateInput(fx, fx.assignee.ID))
		require.NoError(t, err)
	})

	t.Run("reporter outside the project", func(t *testing.T) {
		fx := createTestTaskService(t)
		task := &entity.Task{ID: uuid.New(), ProjectID: fx.projectID}

		fx.expectMember(ctx)
		fx.taskRepo.EXPECT().FindByID(ctx, fx.projectID, task.ID).Return(task, nil)
		fx.sprintRepo.EXPECT().FindByID(ctx, fx.projectID, fx.sprintID).Return(&entity.Sprint{ID: fx.sprintID}, nil)
		fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, fx.assignee.ID).Return(fx.assignee, nil)
		fx.membershipRepo.EXPECT().
			FindByID(ctx, entity.ScopeProject, fx.projectID, fx.caller.ID).
			Return(nil, repository.ErrMembershipNotFound)

		_, err := fx.service.Update(ctx, fx.caller.UserID, fx.projectID, task.ID, updateInput(fx, fx.assignee.ID))
		assert.True(t, errors.Is(err, domainerrors.ErrReporterNotMember))
	})

	t.Run("assignee membership removed during write", func(t *testing.T) {
		fx := createTestTaskService(t)
		task := &entity.Task{ID: uuid.New(), ProjectID: fx.projectID, AssigneeID: fx.caller.ID, ReporterID: fx.caller.ID}

		fx.expectMember(ctx)
		fx.taskRepo.EXPECT().FindByID(ctx, fx.projectID, task.ID).Return(task, nil)
		fx.sprintRepo.EXPECT().FindByID(ctx, fx.projectID, fx.sprintID).Return(&entity.Sprint{ID: fx.sprintID}, nil)
		fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, fx.assignee.ID).Return(fx.assignee, nil)
		fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, fx.caller.ID).Return(fx.caller, nil)
		fx.taskRepo.EXPECT().Update(ctx, task).Return(repository.ErrAssigneeNotFound)

		_, err := fx.service.Update(ctx, fx.caller.UserID, fx.projectID, task.ID, updateInput(fx, fx.assignee.ID))
		assert.True(t, errors.Is(err, domainerrors.ErrAssigneeNotMember))
	})
}

func TestTaskService_Delete_NotFound(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	taskID := uuid.New()

	fx.expectMember(ctx)
	fx.taskRepo.EXPECT().Delete(ctx, fx.projectID, taskID).Return(repository.ErrTaskNotFound)

	err := fx.service.Delete(ctx, fx.caller.UserID, fx.projectID, taskID)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}
