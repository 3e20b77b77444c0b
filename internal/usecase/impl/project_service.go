package impl

import (
	"context"
	"log/slog"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/domain/service"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type projectService struct {
	projectRepo    repository.ProjectRepository
	membershipRepo repository.MembershipRepository
	guard          *membershipGuard
	txManager      repository.TransactionManager
	qrCodes        service.QRCodeService
	logger         *slog.Logger
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo    repository.ProjectRepository
	MembershipRepo repository.MembershipRepository
	TxManager      repository.TransactionManager
	QRCodes        service.QRCodeService
	Logger         *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		projectRepo:    params.ProjectRepo,
		membershipRepo: params.MembershipRepo,
		guard:          newMembershipGuard(params.MembershipRepo),
		txManager:      params.TxManager,
		qrCodes:        params.QRCodes,
		logger:         params.Logger,
	}
}

func (srv *projectService) Create(ctx context.Context, userID uuid.UUID, name string) (*entity.Project, error) {
	project := &entity.Project{ID: uuid.New(), Name: name}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.ProjectRepo().Create(ctx, project); err != nil {
			return err
		}

		return repos.MembershipRepo().Create(ctx, newCreatorMembership(entity.ScopeProject, project.ID, userID))
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
	}

	loggerFor(ctx, srv.logger).Info("Project created",
		slog.String("project_id", project.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return project, nil
}

// List returns the caller's projects, each with its active members. Members
// of every project are loaded in one query.
func (srv *projectService) List(ctx context.Context, userID uuid.UUID) ([]*usecase.ProjectWithMembers, error) {
	projects, err := srv.projectRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projectIDs := make([]uuid.UUID, 0, len(projects))
	for _, project := range projects {
		projectIDs = append(projectIDs, project.ID)
	}

	memberships, err := srv.membershipRepo.ListActiveByScopes(ctx, entity.ScopeProject, projectIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list project members")
	}

	membersOf := make(map[uuid.UUID][]*entity.MembershipView, len(projects))
	for _, membership := range memberships {
		membersOf[membership.ScopeID] = append(membersOf[membership.ScopeID], membership.View())
	}

	result := make([]*usecase.ProjectWithMembers, 0, len(projects))
	for _, project := range projects {
		members := membersOf[project.ID]
		if members == nil {
			members = []*entity.MembershipView{}
		}
		result = append(result, &usecase.ProjectWithMembers{Project: project, Members: members})
	}

	return result, nil
}

func (srv *projectService) Get(ctx context.Context, userID, projectID uuid.UUID) (*usecase.Detail[*entity.Project], error) {
	project, err := srv.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	membership, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.Detail[*entity.Project]{Creator: membership.IsCreator, Information: project}, nil
}

func (srv *projectService) Update(ctx context.Context, userID, projectID uuid.UUID, name string) (*entity.Project, error) {
	project, err := srv.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if _, err := srv.guard.RequireCreator(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return nil, err
	}

	project.Name = name
	if err := srv.projectRepo.Update(ctx, project); err != nil {
		return nil, notFound(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to update project")
	}

	return project, nil
}

// Delete drops the project row, cascading to sprints, tasks and comments,
// then removes its memberships.
func (srv *projectService) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	if _, err := srv.findProject(ctx, projectID); err != nil {
		return err
	}
	if _, err := srv.guard.RequireCreator(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.ProjectRepo().Delete(ctx, projectID); err != nil {
			return err
		}

		return repos.MembershipRepo().DeleteByScope(ctx, entity.ScopeProject, projectID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return errors.Wrap(domainerrors.ErrProjectNotFound, "project vanished during delete")
		}

		return errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
	}

	loggerFor(ctx, srv.logger).Info("Project deleted", slog.String("project_id", projectID.String()))

	return nil
}

func (srv *projectService) ShareQR(ctx context.Context, userID, projectID uuid.UUID) ([]byte, error) {
	if _, err := srv.findProject(ctx, projectID); err != nil {
		return nil, err
	}
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateProjectQR(projectID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func (srv *projectService) findProject(ctx context.Context, projectID uuid.UUID) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, notFound(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to find project")
	}

	return project, nil
}
