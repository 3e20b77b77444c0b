package impl

import (
	"context"
	"log/slog"
	"time"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type teamService struct {
	teamRepo  repository.TeamRepository
	guard     *membershipGuard
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// TeamServiceParams holds dependencies for TeamService, injected by Fx.
type TeamServiceParams struct {
	fx.In

	TeamRepo       repository.TeamRepository
	MembershipRepo repository.MembershipRepository
	TxManager      repository.TransactionManager
	Logger         *slog.Logger
}

// NewTeamService is the constructor for teamService.
func NewTeamService(params TeamServiceParams) usecase.TeamUsecase {
	return &teamService{
		teamRepo:  params.TeamRepo,
		guard:     newMembershipGuard(params.MembershipRepo),
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *teamService) Create(ctx context.Context, userID uuid.UUID, name string) (*entity.Team, error) {
	team := &entity.Team{ID: uuid.New(), Name: name}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.TeamRepo().Create(ctx, team); err != nil {
			return err
		}

		return repos.MembershipRepo().Create(ctx, newCreatorMembership(entity.ScopeTeam, team.ID, userID))
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
	}

	loggerFor(ctx, srv.logger).Info("Team created",
		slog.String("team_id", team.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return team, nil
}

func (srv *teamService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Team, error) {
	teams, err := srv.teamRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list teams")
	}
	if teams == nil {
		teams = []*entity.Team{}
	}

	return teams, nil
}

func (srv *teamService) Get(ctx context.Context, userID, teamID uuid.UUID) (*usecase.Detail[*entity.Team], error) {
	team, err := srv.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	membership, err := srv.guard.RequireMember(ctx, entity.ScopeTeam, teamID, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.Detail[*entity.Team]{Creator: membership.IsCreator, Information: team}, nil
}

func (srv *teamService) Update(ctx context.Context, userID, teamID uuid.UUID, name string) (*entity.Team, error) {
	team, err := srv.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if _, err := srv.guard.RequireCreator(ctx, entity.ScopeTeam, teamID, userID); err != nil {
		return nil, err
	}

	team.Name = name
	if err := srv.teamRepo.Update(ctx, team); err != nil {
		return nil, notFound(err, repository.ErrTeamNotFound, domainerrors.ErrTeamNotFound, "failed to update team")
	}

	return team, nil
}

// Delete drops the team row first; notes follow by cascade and memberships are removed in the same transaction.
func (srv *teamService) Delete(ctx context.Context, userID, teamID uuid.UUID) error {
	if _, err := srv.findTeam(ctx, teamID); err != nil {
		return err
	}
	if _, err := srv.guard.RequireCreator(ctx, entity.ScopeTeam, teamID, userID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.TeamRepo().Delete(ctx, teamID); err != nil {
			return err
		}

		return repos.MembershipRepo().DeleteByScope(ctx, entity.ScopeTeam, teamID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return errors.Wrap(domainerrors.ErrTeamNotFound, "team vanished during delete")
		}

		return errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
	}

	loggerFor(ctx, srv.logger).Info("Team deleted", slog.String("team_id", teamID.String()))

	return nil
}

func (srv *teamService) findTeam(ctx context.Context, teamID uuid.UUID) (*entity.Team, error) {
	team, err := srv.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, notFound(err, repository.ErrTeamNotFound, domainerrors.ErrTeamNotFound, "failed to find team")
	}

	return team, nil
}

func newCreatorMembership(scope entity.Scope, scopeID, userID uuid.UUID) *entity.Membership {
	now := time.Now()

	return &entity.Membership{
		ID:        uuid.New(),
		Scope:     scope,
		ScopeID:   scopeID,
		UserID:    userID,
		IsCreator: true,
		State:     entity.ActiveState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
