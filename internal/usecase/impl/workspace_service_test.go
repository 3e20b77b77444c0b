package impl

import (
	"context"
	"testing"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	mockRepo "todoez/internal/mocks/repository"
	mockSvc "todoez/internal/mocks/service"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// txRepos wires a mocked transaction manager that runs the callback against mocked repositories.
type txRepos struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	teamRepo       *mockRepo.MockTeamRepository
	projectRepo    *mockRepo.MockProjectRepository
	membershipRepo *mockRepo.MockMembershipRepository
}

func newTxRepos(t *testing.T) txRepos {
	return txRepos{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		teamRepo:       mockRepo.NewMockTeamRepository(t),
		projectRepo:    mockRepo.NewMockProjectRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
	}
}

// expectExecute runs the transaction callback and returns its error, mimicking a rollback on failure.
func (tx txRepos) expectExecute(ctx context.Context) {
	tx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		})
}

type teamServiceFixtures struct {
	service        usecase.TeamUsecase
	teamRepo       *mockRepo.MockTeamRepository
	membershipRepo *mockRepo.MockMembershipRepository
	tx             txRepos
}

func createTestTeamService(t *testing.T) teamServiceFixtures {
	fx := teamServiceFixtures{
		teamRepo:       mockRepo.NewMockTeamRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		tx:             newTxRepos(t),
	}
	fx.service = NewTeamService(TeamServiceParams{
		TeamRepo:       fx.teamRepo,
		MembershipRepo: fx.membershipRepo,
		TxManager:      fx.tx.txManager,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestTeamService_Create_AddsCreatorMembership(t *testing.T) {
	fx := createTestTeamService(t)
	ctx := context.Background()
	userID := uuid.New()

	var createdTeam *entity.Team
	fx.tx.expectExecute(ctx)
	fx.tx.factory.EXPECT().TeamRepo().Return(fx.tx.teamRepo)
	fx.tx.factory.EXPECT().MembershipRepo().Return(fx.tx.membershipRepo)
	fx.tx.teamRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Team")).
		Run(func(_ context.Context, team *entity.Team) { createdTeam = team }).
		Return(nil)
	fx.tx.membershipRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(m *entity.Membership) bool {
			return m.UserID == userID && m.IsCreator && m.IsActive() && m.Scope == entity.ScopeTeam
		})).
		Return(nil)

	team, err := fx.service.Create(ctx, userID, "core")
	require.NoError(t, err)
	assert.Equal(t, "core", team.Name)
	assert.Same(t, createdTeam, team)
}

func TestTeamService_Create_RollsBackOnMembershipFailure(t *testing.T) {
	fx := createTestTeamService(t)
	ctx := context.Background()

	fx.tx.expectExecute(ctx)
	fx.tx.factory.EXPECT().TeamRepo().Return(fx.tx.teamRepo)
	fx.tx.factory.EXPECT().MembershipRepo().Return(fx.tx.membershipRepo)
	fx.tx.teamRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Team")).Return(nil)
	fx.tx.membershipRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Membership")).Return(errors.New("insert failed"))

	team, err := fx.service.Create(ctx, uuid.New(), "core")
	assert.Nil(t, team)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
}

func TestTeamService_List_NeverNil(t *testing.T) {
	fx := createTestTeamService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.teamRepo.EXPECT().ListByMember(ctx, userID).Return(nil, nil)

	teams, err := fx.service.List(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, teams)
	assert.Empty(t, teams)
}

func TestTeamService_Get(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()

	t.Run("member sees the creator flag", func(t *testing.T) {
		fx := createTestTeamService(t)
		userID := uuid.New()

		fx.teamRepo.EXPECT().FindByID(ctx, teamID).Return(&entity.Team{ID: teamID, Name: "core"}, nil)
		fx.membershipRepo.EXPECT().
			FindByUser(ctx, entity.ScopeTeam, teamID, userID).
			Return(activeMembership(entity.ScopeTeam, teamID, userID, false), nil)

		detail, err := fx.service.Get(ctx, userID, teamID)
		require.NoError(t, err)
		assert.False(t, detail.Creator)
		assert.Equal(t, "core", detail.Information.Name)
	})

	t.Run("revoked member is refused", func(t *testing.T) {
		fx := createTestTeamService(t)
		userID := uuid.New()

		fx.teamRepo.EXPECT().FindByID(ctx, teamID).Return(&entity.Team{ID: teamID}, nil)
		fx.membershipRepo.EXPECT().
			FindByUser(ctx, entity.ScopeTeam, teamID, userID).
			Return(revokedMembership(entity.ScopeTeam, teamID, userID), nil)

		_, err := fx.service.Get(ctx, userID, teamID)
		assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	})

	t.Run("missing team", func(t *testing.T) {
		fx := createTestTeamService(t)

		fx.teamRepo.EXPECT().FindByID(ctx, teamID).Return(nil, repository.ErrTeamNotFound)

		_, err := fx.service.Get(ctx, uuid.New(), teamID)
		assert.True(t, errors.Is(err, domainerrors.ErrTeamNotFound))
	})
}

func TestTeamService_NonCreatorCannotModify(t *testing.T) {
	ctx := context.Background()
	teamID := uuid.New()
	userID := uuid.New()

	setup := func(t *testing.T) teamServiceFixtures {
		fx := createTestTeamService(t)
		fx.teamRepo.EXPECT().FindByID(ctx, teamID).Return(&entity.Team{ID: teamID}, nil)
		fx.membershipRepo.EXPECT().
			FindByUser(ctx, entity.ScopeTeam, teamID, userID).
			Return(activeMembership(entity.ScopeTeam, teamID, userID, false), nil)

		return fx
	}

	t.Run("update", func(t *testing.T) {
		fx := setup(t)

		_, err := fx.service.Update(ctx, userID, teamID, "renamed")
		assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	})

	t.Run("delete", func(t *testing.T) {
		fx := setup(t)

		err := fx.service.Delete(ctx, userID, teamID)
		assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	})
}

func TestTeamService_Delete_RemovesMemberships(t *testing.T) {
	fx := createTestTeamService(t)
	ctx := context.Background()
	teamID := uuid.New()
	userID := uuid.New()

	fx.teamRepo.EXPECT().FindByID(ctx, teamID).Return(&entity.Team{ID: teamID}, nil)
	fx.membershipRepo.EXPECT().
		FindByUser(ctx, entity.ScopeTeam, teamID, userID).
		Return(activeMembership(entity.ScopeTeam, teamID, userID, true), nil)
	fx.tx.expectExecute(ctx)
	fx.tx.factory.EXPECT().TeamRepo().Return(fx.tx.teamRepo)
	fx.tx.factory.EXPECT().MembershipRepo().Return(fx.tx.membershipRepo)
	fx.tx.teamRepo.EXPECT().Delete(ctx, teamID).Return(nil)
	fx.tx.membershipRepo.EXPECT().DeleteByScope(ctx, entity.ScopeTeam, teamID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, userID, teamID))
}

type projectServiceFixtures struct {
	service        usecase.ProjectUsecase
	projectRepo    *mockRepo.MockProjectRepository
	membershipRepo *mockRepo.MockMembershipRepository
	qrCodes        *mockSvc.MockQRCodeService
	tx             txRepos
}

func createTestProjectService(t *testing.T) projectServiceFixtures {
	fx := projectServiceFixtures{
		projectRepo:    mockRepo.NewMockProjectRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		qrCodes:        mockSvc.NewMockQRCodeService(t),
		tx:             newTxRepos(t),
	}
	fx.service = NewProjectService(ProjectServiceParams{
		ProjectRepo:    fx.projectRepo,
		MembershipRepo: fx.membershipRepo,
		TxManager:      fx.tx.txManager,
		QRCodes:        fx.qrCodes,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestProjectService_Create(t *testing.T) {
	fx := createTestProjectService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tx.expectExecute(ctx)
	fx.tx.factory.EXPECT().ProjectRepo().Return(fx.tx.projectRepo)
	fx.tx.factory.EXPECT().MembershipRepo().Return(fx.tx.membershipRepo)
	fx.tx.projectRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Project")).Return(nil)
	fx.tx.membershipRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(m *entity.Membership) bool {
			return m.UserID == userID && m.IsCreator && m.Scope == entity.ScopeProject
		})).
		Return(nil)

	project, err := fx.service.Create(ctx, userID, "todoez")
	require.NoError(t, err)
	assert.Equal(t, "todoez", project.Name)
}

func TestProjectService_List_GroupsMembersByProject(t *testing.T) {
	fx := createTestProjectService(t)
	ctx := context.Background()
	userID := uuid.New()
	core := &entity.Project{ID: uuid.New(), Name: "core"}
	docs := &entity.Project{ID: uuid.New(), Name: "docs"}
	empty := &entity.Project{ID: uuid.New(), Name: "empty"}
	coreCreator := activeMembership(entity.ScopeProject, core.ID, userID, true)
	coreMember := activeMembership(entity.ScopeProject, core.ID, uuid.New(), false)
	docsCreator := activeMembership(entity.ScopeProject, docs.ID, userID, true)

	fx.projectRepo.EXPECT().ListByMember(ctx, userID).Return([]*entity.Project{core, docs, empty}, nil)
	fx.membershipRepo.EXPECT().
		ListActiveByScopes(ctx, entity.ScopeProject, []uuid.UUID{core.ID, docs.ID, empty.ID}).
		Return([]*entity.Membership{coreCreator, docsCreator, coreMember}, nil).
		Once()

	projects, err := fx.service.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, projects, 3)

	assert.Equal(t, core, projects[0].Project)
	require.Len(t, projects[0].Members, 2)
	assert.Equal(t, coreCreator.ID, projects[0].Members[0].ID)
	assert.Equal(t, coreMember.ID, projects[0].Members[1].ID)

	require.Len(t, projects[1].Members, 1)
	assert.Equal(t, docsCreator.ID, projects[1].Members[0].ID)

	assert.NotNil(t, projects[2].Members)
	assert.Empty(t, projects[2].Members)
}

func TestProjectService_NonCreatorCannotModify(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	userID := uuid.New()

	setup := func(t *testing.T) projectServiceFixtures {
		fx := createTestProjectService(t)
		fx.projectRepo.EXPECT().FindByID(ctx, projectID).Return(&entity.Project{ID: projectID, Name: "core"}, nil)
		fx.membershipRepo.EXPECT().
			FindByUser(ctx, entity.ScopeProject, projectID, userID).
			Return(activeMembership(entity.ScopeProject, projectID, userID, false), nil)

		return fx
	}

	t.Run("update", func(t *testing.T) {
		fx := setup(t)

		_, err := fx.service.Update(ctx, userID, projectID, "renamed")
		assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	})

	t.Run("delete", func(t *testing.T) {
		fx := setup(t)

		err := fx.service.Delete(ctx, userID, projectID)
		assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	})
}

func TestProjectService_Delete_TxFailure(t *testing.T) {
	fx := createTestProjectService(t)
	ctx := context.Background()
	projectID := uuid.New()
	userID := uuid.New()

	fx.projectRepo.EXPECT().FindByID(ctx, projectID).Return(&entity.Project{ID: projectID}, nil)
	fx.membershipRepo.EXPECT().
		FindByUser(ctx, entity.ScopeProject, projectID, userID).
		Return(activeMembership(entity.ScopeProject, projectID, userID, true), nil)
	fx.tx.expectExecute(ctx)
	fx.tx.factory.EXPECT().ProjectRepo().Return(fx.tx.projectRepo)
	fx.tx.factory.EXPECT().MembershipRepo().Return(fx.tx.membershipRepo)
	fx.tx.projectRepo.EXPECT().Delete(ctx, projectID).Return(nil)
	fx.tx.membershipRepo.EXPECT().DeleteByScope(ctx, entity.ScopeProject, projectID).Return(errors.New("connection reset"))

	err := fx.service.Delete(ctx, userID, projectID)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
}

func TestProjectService_ShareQR(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	userID := uuid.New()

	t.Run("member gets the PNG", func(t *testing.T) {
		fx := createTestProjectService(t)
		png := []byte{0x89, 'P', 'N', 'G'}

		fx.projectRepo.EXPECT().FindByID(ctx, projectID).Return(&entity.Project{ID: projectID}, nil)
		fx.membershipRepo.EXPECT().
			FindByUser(ctx, entity.ScopeProject, projectID, userID).
			Return(activeMembership(entity.ScopeProject, projectID, userID, false), nil)
		fx.qrCodes.EXPECT().GenerateProjectQR(projectID).Return(png, nil)

		got, err := fx.service.ShareQR(ctx, userID, projectID)
		require.NoError(t, err)
		assert.Equal(t, png, got)
	})

	t.Run("outsider is refused", func(t *testing.T) {
		fx := createTestProjectService(t)

		fx.projectRepo.EXPECT().FindByID(ctx, projectID).Return(&entity.Project{ID: projectID}, nil)
		fx.membershipRepo.EXPECT().
			FindByUser(ctx, entity.ScopeProject, projectID, userID).
			Return(nil, repository.ErrMembershipNotFound)

		_, err := fx.service.ShareQR(ctx, userID, projectID)
		assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	})
}
