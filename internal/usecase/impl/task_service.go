package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "todoez/internal/delivery/context"
	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/domain/service"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type taskService struct {
	taskRepo       repository.TaskRepository
	sprintRepo     repository.SprintRepository
	membershipRepo repository.MembershipRepository
	guard          *membershipGuard
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo       repository.TaskRepository
	SprintRepo     repository.SprintRepository
	MembershipRepo repository.MembershipRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo:       params.TaskRepo,
		sprintRepo:     params.SprintRepo,
		membershipRepo: params.MembershipRepo,
		guard:          newMembershipGuard(params.MembershipRepo),
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

func (srv *taskService) Create(ctx context.Context, userID, projectID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	reporter, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID)
	if err != nil {
		return nil, err
	}
	if err := srv.requireSprint(ctx, projectID, input.SprintID); err != nil {
		return nil, err
	}

	assignee, err := srv.activeMember(ctx, projectID, input.AssigneeID, domainerrors.ErrAssigneeNotMember)
	if err != nil {
		return nil, err
	}

	task := &entity.Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		SprintID:    input.SprintID,
		Content:     input.Content,
		Description: input.Description,
		Type:        input.Type,
		Status:      entity.TaskStatusTodo,
		Priority:    input.Priority,
		EndAt:       input.EndAt,
		ReporterID:  reporter.ID,
		AssigneeID:  assignee.ID,
	}
	if err := srv.taskRepo.Create(ctx, task); err != nil {
		return nil, taskWriteFailure(err, "failed to create task")
	}

	loggerFor(ctx, srv.logger).Info("Task created",
		slog.String("task_id", task.ID.String()),
		slog.String("project_id", projectID.String()),
	)
	srv.publishAssigned(ctx, task, assignee.UserID)

	return srv.reload(ctx, task)
}

func (srv *taskService) ListMine(ctx context.Context, userID uuid.UUID, query *usecase.TaskQuery) (*entity.Page[*entity.Task], error) {
	filter := toTaskFilter(query)
	filter.AssigneeUserID = userID
	// Assignee and reporter membership ids only make sense within one project.
	filter.AssigneeID = uuid.Nil
	filter.ReporterID = uuid.Nil

	return srv.list(ctx, filter, query.Page)
}

func (srv *taskService) List(ctx context.Context, userID, projectID uuid.UUID, query *usecase.TaskQuery) (*entity.Page[*entity.Task], error) {
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return nil, err
	}

	filter := toTaskFilter(query)
	filter.ProjectID = projectID

	return srv.list(ctx, filter, query.Page)
}

func (srv *taskService) Get(ctx context.Context, userID, projectID, taskID uuid.UUID) (*entity.Task, error) {
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return nil, err
	}

	return srv.findTask(ctx, projectID, taskID)
}

func (srv *taskService) UpdateStatus(
	ctx context.Context,
	userID, projectID, taskID uuid.UUID,
	status entity.TaskStatus,
) (*entity.Task, error) {
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return nil, err
	}

	task, err := srv.findTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = status
	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return nil, taskWriteFailure(err, "failed to update task status")
	}

	return task, nil
}

func (srv *taskService) Update(
	ctx context.Context,
	userID, projectID, taskID uuid.UUID,
	input *usecase.UpdateTaskInput,
) (*entity.Task, error) {
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return nil, err
	}

	task, err := srv.findTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}
	if err := srv.requireSprint(ctx, projectID, input.SprintID); err != nil {
		return nil, err
	}

	assignee, err := srv.activeMember(ctx, projectID, input.AssigneeID, domainerrors.ErrAssigneeNotMember)
	if err != nil {
		return nil, err
	}
	if _, err := srv.activeMember(ctx, projectID, input.ReporterID, domainerrors.ErrReporterNotMember); err != nil {
		return nil, err
	}

	reassigned := task.AssigneeID != assignee.ID

	task.SprintID = input.SprintID
	task.Content = input.Content
	task.Description = input.Description
	task.Type = input.Type
	task.Status = input.Status
	task.Priority = input.Priority
	task.EndAt = input.EndAt
	task.AssigneeID = assignee.ID
	task.ReporterID = input.ReporterID

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return nil, taskWriteFailure(err, "failed to update task")
	}

	if reassigned {
		srv.publishAssigned(ctx, task, assignee.UserID)
	}

	return srv.reload(ctx, task)
}

func (srv *taskService) Delete(ctx context.Context, userID, projectID, taskID uuid.UUID) error {
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return err
	}

	if err := srv.taskRepo.Delete(ctx, projectID, taskID); err != nil {
		return notFound(err, repository.ErrTaskNotFound, domainerrors.ErrTaskNotFound, "failed to delete task")
	}

	loggerFor(ctx, srv.logger).Info("Task deleted", slog.String("task_id", taskID.String()))

	return nil
}

// taskWriteFailure maps references that vanished between validation and the
// write to the errors validation itself would have produced.
func taskWriteFailure(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrTaskNotFound):
		return errors.Wrap(domainerrors.ErrTaskNotFound, msg)
	case errors.Is(err, repository.ErrProjectNotFound):
		return errors.Wrap(domainerrors.ErrProjectNotFound, msg)
	case errors.Is(err, repository.ErrSprintNotFound):
		return errors.Wrap(domainerrors.ErrSprintNotFound, msg)
	case errors.Is(err, repository.ErrReporterNotFound):
		return errors.Wrap(domainerrors.ErrReporterNotMember, msg)
	case errors.Is(err, repository.ErrAssigneeNotFound):
		return errors.Wrap(domainerrors.ErrAssigneeNotMember, msg)
	default:
		return errors.Wrap(err, msg)
	}
}

func (srv *taskService) list(ctx context.Context, filter entity.TaskFilter, page entity.PageRequest) (*entity.Page[*entity.Task], error) {
	tasks, total, err := srv.taskRepo.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return newPage(tasks, total), nil
}

func (srv *taskService) findTask(ctx context.Context, projectID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, projectID, taskID)
	if err != nil {
		return nil, notFound(err, repository.ErrTaskNotFound, domainerrors.ErrTaskNotFound, "failed to find task")
	}

	return task, nil
}

// reload fetches the stored task so reporter and assignee summaries are populated.
func (srv *taskService) reload(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	stored, err := srv.taskRepo.FindByID(ctx, task.ProjectID, task.ID)
	if err != nil {
		loggerFor(ctx, srv.logger).Warn("Failed to reload task", slog.Any("error", err))

		return task, nil
	}

	return stored, nil
}

func (srv *taskService) requireSprint(ctx context.Context, projectID, sprintID uuid.UUID) error {
	if _, err := srv.sprintRepo.FindByID(ctx, projectID, sprintID); err != nil {
		return notFound(err, repository.ErrSprintNotFound, domainerrors.ErrSprintNotFound, "failed to find sprint")
	}

	return nil
}

// activeMember resolves a project membership id, failing with notMember unless it is active.
func (srv *taskService) activeMember(
	ctx context.Context,
	projectID, membershipID uuid.UUID,
	notMember *domainerrors.BaseError,
) (*entity.Membership, error) {
	membership, err := srv.membershipRepo.FindByID(ctx, entity.ScopeProject, projectID, membershipID)
	if err != nil {
		return nil, notFound(err, repository.ErrMembershipNotFound, notMember, "failed to find membership")
	}
	if !membership.IsActive() {
		return nil, errors.Wrapf(notMember, "membership %s is revoked", membershipID)
	}

	return membership, nil
}

// publishAssigned emits the assignment event. Failures are logged, never returned.
func (srv *taskService) publishAssigned(ctx context.Context, task *entity.Task, assigneeUserID uuid.UUID) {
	event := &service.TaskAssignedEvent{
		RequestID:      deliverycontext.RequestIDFrom(ctx),
		TaskID:         task.ID.String(),
		ProjectID:      task.ProjectID.String(),
		AssigneeUserID: assigneeUserID.String(),
		Content:        task.Content,
	}

	if err := srv.publisher.PublishTaskAssigned(ctx, event); err != nil {
		loggerFor(ctx, srv.logger).Error("Failed to publish task assigned event",
			slog.String("task_id", event.TaskID),
			slog.Any("error", err),
		)
	}
}

func toTaskFilter(query *usecase.TaskQuery) entity.TaskFilter {
	return entity.TaskFilter{
		Type:       query.Type,
		Status:     query.Status,
		Priority:   query.Priority,
		Keyword:    strings.TrimSpace(query.Keyword),
		AssigneeID: query.AssigneeID,
		ReporterID: query.ReporterID,
	}
}
