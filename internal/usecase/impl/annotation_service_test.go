package impl

import (
	"context"
	"testing"
	"time"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	mockRepo "todoez/internal/mocks/repository"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSprintService_Create_RejectsInvertedRange(t *testing.T) {
	svc := NewSprintService(SprintServiceParams{
		SprintRepo:     mockRepo.NewMockSprintRepository(t),
		TaskRepo:       mockRepo.NewMockTaskRepository(t),
		MembershipRepo: mockRepo.NewMockMembershipRepository(t),
		Logger:         newDiscardLogger(),
	})
	now := time.Now()

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), &usecase.SprintInput{
		Title:   "sprint 1",
		StartAt: now,
		EndAt:   now.Add(-time.Hour),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSprintService_ListWithTasks_GroupsBySprint(t *testing.T) {
	ctx := context.Background()
	sprintRepo := mockRepo.NewMockSprintRepository(t)
	taskRepo := mockRepo.NewMockTaskRepository(t)
	membershipRepo := mockRepo.NewMockMembershipRepository(t)
	svc := NewSprintService(SprintServiceParams{
		SprintRepo:     sprintRepo,
		TaskRepo:       taskRepo,
		MembershipRepo: membershipRepo,
		Logger:         newDiscardLogger(),
	})

	projectID := uuid.New()
	member := activeMembership(entity.ScopeProject, projectID, uuid.New(), false)
	first := &entity.Sprint{ID: uuid.New(), ProjectID: projectID}
	second := &entity.Sprint{ID: uuid.New(), ProjectID: projectID}

	membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeProject, projectID, member.UserID).Return(member, nil)
	sprintRepo.EXPECT().
		ListPageByProject(ctx, projectID, entity.PageRequest{Page: 1, Limit: entity.DefaultPageLimit}).
		Return([]*entity.Sprint{first, second}, int64(2), nil)
	taskRepo.EXPECT().
		ListBySprints(ctx, []uuid.UUID{first.ID, second.ID}).
		Return([]*entity.Task{{ID: uuid.New(), SprintID: first.ID}, {ID: uuid.New(), SprintID: first.ID}}, nil)

	page, err := svc.ListWithTasks(ctx, member.UserID, projectID, entity.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.List, 2)
	assert.Len(t, page.List[0].Tasks, 2)
	assert.NotNil(t, page.List[1].Tasks)
	assert.Empty(t, page.List[1].Tasks)
}

type commentServiceFixtures struct {
	service        usecase.CommentUsecase
	commentRepo    *mockRepo.MockCommentRepository
	taskRepo       *mockRepo.MockTaskRepository
	membershipRepo *mockRepo.MockMembershipRepository

	projectID uuid.UUID
	member    *entity.Membership
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	fx := commentServiceFixtures{
		commentRepo:    mockRepo.NewMockCommentRepository(t),
		taskRepo:       mockRepo.NewMockTaskRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		projectID:      uuid.New(),
	}
	fx.member = activeMembership(entity.ScopeProject, fx.projectID, uuid.New(), false)
	fx.service = NewCommentService(CommentServiceParams{
		CommentRepo:    fx.commentRepo,
		TaskRepo:       fx.taskRepo,
		MembershipRepo: fx.membershipRepo,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestCommentService_Create_AuthorIsMembership(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	taskID := uuid.New()

	fx.membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeProject, fx.projectID, fx.member.UserID).Return(fx.member, nil)
	fx.taskRepo.EXPECT().FindByID(ctx, fx.projectID, taskID).Return(&entity.Task{ID: taskID}, nil)
	fx.commentRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Comment) bool {
			return c.AuthorID == fx.member.ID && c.TaskID == taskID
		})).
		Return(nil)
	fx.commentRepo.EXPECT().FindByID(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil, repository.ErrCommentNotFound)

	comment, err := fx.service.Create(ctx, fx.member.UserID, fx.projectID, taskID, "looks good")
	require.NoError(t, err)
	assert.Equal(t, "looks good", comment.Content)
}

func TestCommentService_OnlyAuthorMayChange(t *testing.T) {
	ctx := context.Background()

	t.Run("another member", func(t *testing.T) {
		fx := createTestCommentService(t)
		comment := &entity.Comment{ID: uuid.New(), TaskID: uuid.New(), AuthorID: uuid.New()}

		fx.membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeProject, fx.projectID, fx.member.UserID).Return(fx.member, nil)
		fx.commentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
		fx.taskRepo.EXPECT().FindByID(ctx, fx.projectID, comment.TaskID).Return(&entity.Task{ID: comment.TaskID}, nil)

		_, err := fx.service.Update(ctx, fx.member.UserID, fx.projectID, comment.ID, "edited")
		assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	})

	t.Run("comment of another project", func(t *testing.T) {
		fx := createTestCommentService(t)
		comment := &entity.Comment{ID: uuid.New(), TaskID: uuid.New(), AuthorID: fx.member.ID}

		fx.membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeProject, fx.projectID, fx.member.UserID).Return(fx.member, nil)
		fx.commentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
		fx.taskRepo.EXPECT().FindByID(ctx, fx.projectID, comment.TaskID).Return(nil, repository.ErrTaskNotFound)

		err := fx.service.Delete(ctx, fx.member.UserID, fx.projectID, comment.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
	})

	t.Run("author deletes", func(t *testing.T) {
		fx := createTestCommentService(t)
		comment := &entity.Comment{ID: uuid.New(), TaskID: uuid.New(), AuthorID: fx.member.ID}

		fx.membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeProject, fx.projectID, fx.member.UserID).Return(fx.member, nil)
		fx.commentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
		fx.taskRepo.EXPECT().FindByID(ctx, fx.projectID, comment.TaskID).Return(&entity.Task{ID: comment.TaskID}, nil)
		fx.commentRepo.EXPECT().Delete(ctx, comment.ID).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, fx.member.UserID, fx.projectID, comment.ID))
	})
}

func TestNoteService_OnlyAuthorMayChange(t *testing.T) {
	ctx := context.Background()
	noteRepo := mockRepo.NewMockNoteRepository(t)
	membershipRepo := mockRepo.NewMockMembershipRepository(t)
	svc := NewNoteService(NoteServiceParams{
		NoteRepo:       noteRepo,
		MembershipRepo: membershipRepo,
		Logger:         newDiscardLogger(),
	})

	teamID := uuid.New()
	member := activeMembership(entity.ScopeTeam, teamID, uuid.New(), true)
	note := &entity.Note{ID: uuid.New(), TeamID: teamID, AuthorID: uuid.New()}

	membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeTeam, teamID, member.UserID).Return(member, nil)
	noteRepo.EXPECT().FindByID(ctx, teamID, note.ID).Return(note, nil)

	_, err := svc.Update(ctx, member.UserID, teamID, note.ID, &usecase.NoteInput{Content: "edited"})
	assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
}
