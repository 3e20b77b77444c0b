package impl

import (
	"context"
	"log/slog"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sprintService struct {
	sprintRepo repository.SprintRepository
	taskRepo   repository.TaskRepository
	guard      *membershipGuard
	logger     *slog.Logger
}

// SprintServiceParams holds dependencies for SprintService, injected by Fx.
type SprintServiceParams struct {
	fx.In

	SprintRepo     repository.SprintRepository
	TaskRepo       repository.TaskRepository
	MembershipRepo repository.MembershipRepository
	Logger         *slog.Logger
}

// NewSprintService is the constructor for sprintService.
func NewSprintService(params SprintServiceParams) usecase.SprintUsecase {
	return &sprintService{
		sprintRepo: params.SprintRepo,
		taskRepo:   params.TaskRepo,
		guard:      newMembershipGuard(params.MembershipRepo),
		logger:     params.Logger,
	}
}

func (srv *sprintService) Create(ctx context.Context, userID, projectID uuid.UUID, input *usecase.SprintInput) (*entity.Sprint, error) {
	if input.EndAt.Before(input.StartAt) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "end_at must not precede start_at")
	}
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return nil, err
	}

	sprint := &entity.Sprint{
		ID:        uuid.New(),
		ProjectID: projectID,
		Title:     input.Title,
		StartAt:   input.StartAt,
		EndAt:     input.EndAt,
	}
	if err := srv.sprintRepo.Create(ctx, sprint); err != nil {
		return nil, notFound(err, repository.ErrProjectNotFound, domainerrors.ErrProjectNotFound, "failed to create sprint")
	}

	loggerFor(ctx, srv.logger).Info("Sprint created",
		slog.String("sprint_id", sprint.ID.String()),
		slog.String("project_id", projectID.String()),
	)

	return sprint, nil
}

func (srv *sprintService) List(ctx context.Context, userID, projectID uuid.UUID) ([]*entity.Sprint, error) {
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return nil, err
	}

	sprints, err := srv.sprintRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sprints")
	}
	if sprints == nil {
		sprints = []*entity.Sprint{}
	}

	return sprints, nil
}

func (srv *sprintService) ListWithTasks(
	ctx context.Context,
	userID, projectID uuid.UUID,
	page entity.PageRequest,
) (*entity.Page[*entity.SprintWithTasks], error) {
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return nil, err
	}

	sprints, total, err := srv.sprintRepo.ListPageByProject(ctx, projectID, page.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sprints")
	}

	sprintIDs := make([]uuid.UUID, 0, len(sprints))
	for _, sprint := range sprints {
		sprintIDs = append(sprintIDs, sprint.ID)
	}

	tasks, err := srv.taskRepo.ListBySprints(ctx, sprintIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sprint tasks")
	}

	bySprint := make(map[uuid.UUID][]*entity.Task, len(sprints))
	for _, task := range tasks {
		bySprint[task.SprintID] = append(bySprint[task.SprintID], task)
	}

	list := make([]*entity.SprintWithTasks, 0, len(sprints))
	for _, sprint := range sprints {
		sprintTasks := bySprint[sprint.ID]
		if sprintTasks == nil {
			sprintTasks = []*entity.Task{}
		}
		list = append(list, &entity.SprintWithTasks{Sprint: sprint, Tasks: sprintTasks})
	}

	return newPage(list, total), nil
}

func (srv *sprintService) UpdateTitle(ctx context.Context, userID, projectID, sprintID uuid.UUID, title string) (*entity.Sprint, error) {
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return nil, err
	}

	sprint, err := srv.sprintRepo.FindByID(ctx, projectID, sprintID)
	if err != nil {
		return nil, notFound(err, repository.ErrSprintNotFound, domainerrors.ErrSprintNotFound, "failed to find sprint")
	}

	sprint.Title = title
	if err := srv.sprintRepo.Update(ctx, sprint); err != nil {
		return nil, notFound(err, repository.ErrSprintNotFound, domainerrors.ErrSprintNotFound, "failed to update sprint")
	}

	return sprint, nil
}

func (srv *sprintService) Delete(ctx context.Context, userID, projectID, sprintID uuid.UUID) error {
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return err
	}

	if err := srv.sprintRepo.Delete(ctx, projectID, sprintID); err != nil {
		return notFound(err, repository.ErrSprintNotFound, domainerrors.ErrSprintNotFound, "failed to delete sprint")
	}

	loggerFor(ctx, srv.logger).Info("Sprint deleted", slog.String("sprint_id", sprintID.String()))

	return nil
}
