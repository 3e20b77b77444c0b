package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// memberService manages memberships of a single scope kind.
// scopeExists reports the scope's own not-found error.
type memberService struct {
	scope          entity.Scope
	scopeExists    func(ctx context.Context, scopeID uuid.UUID) error
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	guard          *membershipGuard
	logger         *slog.Logger
}

// MemberServiceParams holds dependencies shared by the team and project member services.
type MemberServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	MembershipRepo repository.MembershipRepository
	TeamRepo       repository.TeamRepository
	ProjectRepo    repository.ProjectRepository
	Logger         *slog.Logger
}

// NewTeamMemberService builds the member service of teams.
func NewTeamMemberService(params MemberServiceParams) usecase.TeamMemberUsecase {
	return newMemberService(params, entity.ScopeTeam, func(ctx context.Context, teamID uuid.UUID) error {
		_, err := params.TeamRepo.FindByID(ctx, teamID)
		if err != nil {
			return notFound(err, repository.ErrTeamNotFound, domainerrors.ErrTeamNotFound, "failed to find team")
		}

		return nil
	})
}

// NewProjectMemberService builds the member service of projects.
func NewProjectMemberService(params MemberServiceParams) usecase.ProjectMemberUsecase {
	return newMemberService(params, entity.ScopeProject, func(ctx context.Context, projectID uuid.UUID) error {
		_, err := params.ProjectRepo.FindByID(ctx, projectID)
		if err != nil {
			return notFound(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to find project")
		}

		return nil
	})
}

func newMemberService(
	params MemberServiceParams,
	scope entity.Scope,
	scopeExists func(ctx context.Context, scopeID uuid.UUID) error,
) *memberService {
	return &memberService{
		scope:          scope,
		scopeExists:    scopeExists,
		userRepo:       params.UserRepo,
		membershipRepo: params.MembershipRepo,
		guard:          newMembershipGuard(params.MembershipRepo),
		logger:         params.Logger,
	}
}

func (srv *memberService) Add(ctx context.Context, userID, scopeID uuid.UUID, email string) (*entity.MembershipView, error) {
	if err := srv.scopeExists(ctx, scopeID); err != nil {
		return nil, err
	}
	if _, err := srv.guard.RequireCreator(ctx, srv.scope, scopeID, userID); err != nil {
		return nil, err
	}

	target, err := srv.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user by email")
	}
	if !target.IsVerify {
		return nil, errors.Wrapf(domainerrors.ErrUserNotVerified, "user %s", target.ID)
	}

	logger := loggerFor(ctx, srv.logger).With(
		slog.String("scope", string(srv.scope)),
		slog.String("scope_id", scopeID.String()),
		slog.String("member_user_id", target.ID.String()),
	)

	existing, err := srv.membershipRepo.FindByUser(ctx, srv.scope, scopeID, target.ID)
	switch {
	case err == nil:
		if existing.IsActive() {
			return nil, errors.WithStack(domainerrors.ErrUserAlreadyMember)
		}

		existing.Reactivate()
		if err := srv.membershipRepo.UpdateState(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to reactivate membership")
		}
		existing.User = target
		logger.Info("Membership reactivated", slog.String("membership_id", existing.ID.String()))

		return existing.View(), nil
	case !errors.Is(err, repository.ErrMembershipNotFound):
		return nil, errors.Wrap(err, "failed to look up membership")
	}

	now := time.Now()
	membership := &entity.Membership{
		ID:        uuid.New(),
		Scope:     srv.scope,
		ScopeID:   scopeID,
		UserID:    target.ID,
		State:     entity.ActiveState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.membershipRepo.Create(ctx, membership); err != nil {
		if errors.Is(err, repository.ErrDuplicateMembership) {
			return nil, errors.WithStack(domainerrors.ErrUserAlreadyMember)
		}

		return nil, errors.Wrap(err, "failed to create membership")
	}
	membership.User = target
	logger.Info("Membership created", slog.String("membership_id", membership.ID.String()))

	return membership.View(), nil
}

func (srv *memberService) List(ctx context.Context, userID, scopeID uuid.UUID) (*usecase.MemberList, error) {
	if err := srv.scopeExists(ctx, scopeID); err != nil {
		return nil, err
	}

	caller, err := srv.guard.RequireMember(ctx, srv.scope, scopeID, userID)
	if err != nil {
		return nil, err
	}

	memberships, err := srv.membershipRepo.ListByScope(ctx, srv.scope, scopeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list memberships")
	}

	views := make([]*entity.MembershipView, 0, len(memberships))
	for _, membership := range memberships {
		views = append(views, membership.View())
	}

	return &usecase.MemberList{Creator: caller.IsCreator, List: views}, nil
}

func (srv *memberService) Remove(ctx context.Context, userID, scopeID, membershipID uuid.UUID) error {
	if err := srv.scopeExists(ctx, scopeID); err != nil {
		return err
	}

	caller, err := srv.guard.RequireCreator(ctx, srv.scope, scopeID, userID)
	if err != nil {
		return err
	}
	if caller.ID == membershipID {
		return errors.WithStack(domainerrors.ErrCannotRemoveCreator)
	}

	target, err := srv.membershipRepo.FindByID(ctx, srv.scope, scopeID, membershipID)
	if err != nil {
		return notFound(err, repository.ErrMembershipNotFound, domainerrors.ErrMemberNotFound, "failed to find membership")
	}
	if !target.IsActive() {
		return errors.Wrap(domainerrors.ErrMemberNotFound, "membership already revoked")
	}

	target.Revoke(time.Now())
	if err := srv.membershipRepo.UpdateState(ctx, target); err != nil {
		return notFound(err, repository.ErrMembershipNotFound, domainerrors.ErrMemberNotFound, "failed to revoke membership")
	}

	loggerFor(ctx, srv.logger).Info("Membership revoked",
		slog.String("scope", string(srv.scope)),
		slog.String("membership_id", membershipID.String()),
	)

	return nil
}
