package impl

import (
	"context"
	"testing"

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

type memberServiceFixtures struct {
	service        usecase.ProjectMemberUsecase
	userRepo       *mockRepo.MockUserRepository
	membershipRepo *mockRepo.MockMembershipRepository
	projectRepo    *mockRepo.MockProjectRepository

	projectID uuid.UUID
	creator   *entity.Membership
}

func createTestProjectMemberService(t *testing.T) memberServiceFixtures {
	fx := memberServiceFixtures{
		userRepo:       mockRepo.NewMockUserRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		projectRepo:    mockRepo.NewMockProjectRepository(t),
		projectID:      uuid.New(),
	}
	fx.creator = activeMembership(entity.ScopeProject, fx.projectID, uuid.New(), true)
	fx.service = NewProjectMemberService(MemberServiceParams{
		UserRepo:       fx.userRepo,
		MembershipRepo: fx.membershipRepo,
		TeamRepo:       mockRepo.NewMockTeamRepository(t),
		ProjectRepo:    fx.projectRepo,
		Logger:         newDiscardLogger(),
	})

	return fx
}

// expectCreatorCall sets up the project lookup and the caller's creator membership.
func (fx memberServiceFixtures) expectCreatorCall(ctx context.Context) {
	fx.projectRepo.EXPECT().FindByID(ctx, fx.projectID).Return(&entity.Project{ID: fx.projectID}, nil)
	fx.membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeProject, fx.projectID, fx.creator.UserID).Return(fx.creator, nil)
}

func TestMemberService_Add_NewMember(t *testing.T) {
	fx := createTestProjectMemberService(t)
	ctx := context.Background()
	target := &entity.User{ID: uuid.New(), Email: "bob@example.com", IsVerify: true}

	fx.expectCreatorCall(ctx)
	fx.userRepo.EXPECT().FindByEmail(ctx, target.Email).Return(target, nil)
	fx.membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeProject, fx.projectID, target.ID).Return(nil, repository.ErrMembershipNotFound)
	fx.membershipRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(m *entity.Membership) bool {
			return m.UserID == target.ID && !m.IsCreator && m.IsActive() && m.Scope == entity.ScopeProject
		})).
		Return(nil)

	view, err := fx.service.Add(ctx, fx.creator.UserID, fx.projectID, target.Email)
	require.NoError(t, err)
	assert.Equal(t, target.ID, view.UserID)
	assert.Nil(t, view.RevokedAt)
	assert.Equal(t, target.Email, view.User.Email)
}

func TestMemberService_Add_AlreadyActive(t *testing.T) {
	fx := createTestProjectMemberService(t)
	ctx := context.Background()
	target := &entity.User{ID: uuid.New(), Email: "bob@example.com", IsVerify: true}

	fx.expectCreatorCall(ctx)
	fx.userRepo.EXPECT().FindByEmail(ctx, target.Email).Return(target, nil)
	fx.membershipRepo.EXPECT().
		FindByUser(ctx, entity.ScopeProject, fx.projectID, target.ID).
		Return(activeMembership(entity.ScopeProject, fx.projectID, target.ID, false), nil)

	_, err := fx.service.Add(ctx, fx.creator.UserID, fx.projectID, target.Email)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyMember))
}

func TestMemberService_Add_ReactivatesRevoked(t *testing.T) {
	fx := createTestProjectMemberService(t)
	ctx := context.Background()
	target := &entity.User{ID: uuid.New(), Email: "bob@example.com", IsVerify: true}
	revoked := revokedMembership(entity.ScopeProject, fx.projectID, target.ID)
	originalID := revoked.ID

	fx.expectCreatorCall(ctx)
	fx.userRepo.EXPECT().FindByEmail(ctx, target.Email).Return(target, nil)
	fx.membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeProject, fx.projectID, target.ID).Return(revoked, nil)
	fx.membershipRepo.EXPECT().
		UpdateState(ctx, mock.MatchedBy(func(m *entity.Membership) bool {
			return m.ID == originalID && m.IsActive()
		})).
		Return(nil)

	view, err := fx.service.Add(ctx, fx.creator.UserID, fx.projectID, target.Email)
	require.NoError(t, err)
	assert.Equal(t, originalID, view.ID)
	assert.Nil(t, view.RevokedAt)
}

func TestMemberService_Add_ConcurrentInsert(t *testing.T) {
	fx := createTestProjectMemberService(t)
	ctx := context.Background()
	target := &entity.User{ID: uuid.New(), Email: "bob@example.com", IsVerify: true}

	fx.expectCreatorCall(ctx)
	fx.userRepo.EXPECT().FindByEmail(ctx, target.Email).Return(target, nil)
	fx.membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeProject, fx.projectID, target.ID).Return(nil, repository.ErrMembershipNotFound)
	fx.membershipRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Membership")).Return(repository.ErrDuplicateMembership)

	_, err := fx.service.Add(ctx, fx.creator.UserID, fx.projectID, target.Email)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyMember))
}

func TestMemberService_Add_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("caller is not the creator", func(t *testing.T) {
		fx := createTestProjectMemberService(t)
		callerID := uuid.New()

		fx.projectRepo.EXPECT().FindByID(ctx, fx.projectID).Return(&entity.Project{ID: fx.projectID}, nil)
		fx.membershipRepo.EXPECT().
			FindByUser(ctx, entity.ScopeProject, fx.projectID, callerID).
			Return(activeMembership(entity.ScopeProject, fx.projectID, callerID, false), nil)

		_, err := fx.service.Add(ctx, callerID, fx.projectID, "bob@example.com")
		assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestProjectMemberService(t)

		fx.expectCreatorCall(ctx)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Add(ctx, fx.creator.UserID, fx.projectID, "ghost@example.com")
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("unverified user", func(t *testing.T) {
		fx := createTestProjectMemberService(t)

		fx.expectCreatorCall(ctx)
		fx.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(&entity.User{ID: uuid.New()}, nil)

		_, err := fx.service.Add(ctx, fx.creator.UserID, fx.projectID, "new@example.com")
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotVerified))
	})

	t.Run("missing project", func(t *testing.T) {
		fx := createTestProjectMemberService(t)

		fx.projectRepo.EXPECT().FindByID(ctx, fx.projectID).Return(nil, repository.ErrProjectNotFound)

		_, err := fx.service.Add(ctx, fx.creator.UserID, fx.projectID, "bob@example.com")
		assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
	})
}

func TestMemberService_List_IncludesRevoked(t *testing.T) {
	fx := createTestProjectMemberService(t)
	ctx := context.Background()
	revoked := revokedMembership(entity.ScopeProject, fx.projectID, uuid.New())

	fx.expectCreatorCall(ctx)
	fx.membershipRepo.EXPECT().
		ListByScope(ctx, entity.ScopeProject, fx.projectID).
		Return([]*entity.Membership{fx.creator, revoked}, nil)

	list, err := fx.service.List(ctx, fx.creator.UserID, fx.projectID)
	require.NoError(t, err)
	assert.True(t, list.Creator)
	require.Len(t, list.List, 2)
	assert.Nil(t, list.List[0].RevokedAt)
	assert.NotNil(t, list.List[1].RevokedAt)
}

func TestMemberService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the membership", func(t *testing.T) {
		fx := createTestProjectMemberService(t)
		target := activeMembership(entity.ScopeProject, fx.projectID, uuid.New(), false)

		fx.expectCreatorCall(ctx)
		fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, target.ID).Return(target, nil)
		fx.membershipRepo.EXPECT().
			UpdateState(ctx, mock.MatchedBy(func(m *entity.Membership) bool { return !m.IsActive() })).
			Return(nil)

		require.NoError(t, fx.service.Remove(ctx, fx.creator.UserID, fx.projectID, target.ID))
	})

	t.Run("creator cannot remove itself", func(t *testing.T) {
		fx := createTestProjectMemberService(t)

		fx.expectCreatorCall(ctx)

		err := fx.service.Remove(ctx, fx.creator.UserID, fx.projectID, fx.creator.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrCannotRemoveCreator))
	})

	t.Run("already revoked", func(t *testing.T) {
		fx := createTestProjectMemberService(t)
		target := revokedMembership(entity.ScopeProject, fx.projectID, uuid.New())

		fx.expectCreatorCall(ctx)
		fx.membershipRepo.EXPECT().FindByID(ctx, entity.ScopeProject, fx.projectID, target.ID).Return(target, nil)

		err := fx.service.Remove(ctx, fx.creator.UserID, fx.projectID, target.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrMemberNotFound))
	})

	t.Run("active member who is not the creator", func(t *testing.T) {
		fx := createTestProjectMemberService(t)
		callerID := uuid.New()

		fx.projectRepo.EXPECT().FindByID(ctx, fx.projectID).Return(&entity.Project{ID: fx.projectID}, nil)
		fx.membershipRepo.EXPECT().
			FindByUser(ctx, entity.ScopeProject, fx.projectID, callerID).
			Return(activeMembership(entity.ScopeProject, fx.projectID, callerID, false), nil)

		err := fx.service.Remove(ctx, callerID, fx.projectID, fx.creator.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	})

	t.Run("revoked creator loses privileges", func(t *testing.T) {
		fx := createTestProjectMemberService(t)
		fx.creator.Revoke(fx.creator.CreatedAt)

		fx.expectCreatorCall(ctx)

		err := fx.service.Remove(ctx, fx.creator.UserID, fx.projectID, uuid.New())
		assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	})
}

func TestTeamMemberService_UsesTeamScope(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	membershipRepo := mockRepo.NewMockMembershipRepository(t)
	teamRepo := mockRepo.NewMockTeamRepository(t)
	teamID := uuid.New()
	creator := activeMembership(entity.ScopeTeam, teamID, uuid.New(), true)

	svc := NewTeamMemberService(MemberServiceParams{
		UserRepo:       userRepo,
		MembershipRepo: membershipRepo,
		TeamRepo:       teamRepo,
		ProjectRepo:    mockRepo.NewMockProjectRepository(t),
		Logger:         newDiscardLogger(),
	})

	teamRepo.EXPECT().FindByID(ctx, teamID).Return(&entity.Team{ID: teamID}, nil)
	membershipRepo.EXPECT().FindByUser(ctx, entity.ScopeTeam, teamID, creator.UserID).Return(creator, nil)
	membershipRepo.EXPECT().ListByScope(ctx, entity.ScopeTeam, teamID).Return([]*entity.Membership{creator}, nil)

	list, err := svc.List(ctx, creator.UserID, teamID)
	require.NoError(t, err)
	assert.Len(t, list.List, 1)
}
