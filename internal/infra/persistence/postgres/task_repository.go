package postgres

import (
	"context"
	"strings"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)
	if err := repo.db.WithContext(ctx).Omit("Reporter", "Assignee").Create(taskM).Error; err != nil {
		return taskWriteError(err, "failed to create task")
	}

	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

func (repo *taskRepository) FindByID(ctx context.Context, projectID, id uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel
	if err := repo.withPeople(repo.db.WithContext(ctx)).
		Where("tasks.project_id = ? AND tasks.id = ?", projectID, id).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	return toTaskDomain(&taskM), nil
}

func (repo *taskRepository) List(ctx context.Context, filter entity.TaskFilter, page entity.PageRequest) ([]*entity.Task, int64, error) {
	page = page.Normalize()
	query := applyTaskFilter(repo.db.WithContext(ctx).Model(&model.TaskModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count tasks")
	}

	var taskModels []*model.TaskModel
	if err := repo.withPeople(query).
		Order("tasks.created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&taskModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, total, nil
}

func (repo *taskRepository) ListBySprints(ctx context.Context, sprintIDs []uuid.UUID) ([]*entity.Task, error) {
	if len(sprintIDs) == 0 {
		return []*entity.Task{}, nil
	}

	var taskModels []*model.TaskModel
	if err := repo.withPeople(repo.db.WithContext(ctx)).
		Where("tasks.sprint_id IN ?", sprintIDs).
		Order("tasks.created_at DESC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by sprints")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("project_id = ? AND id = ?", task.ProjectID, task.ID).
		Updates(map[string]any{
			"sprint_id":   task.SprintID,
			"content":     task.Content,
			"description": task.Description,
			"type":        string(task.Type),
			"status":      string(task.Status),
			"priority":    string(task.Priority),
			"end_at":      task.EndAt,
			"reporter_id": task.ReporterID,
			"assignee_id": task.AssigneeID,
		})
	if result.Error != nil {
		return taskWriteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func (repo *taskRepository) Delete(ctx context.Context, projectID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("project_id = ? AND id = ?", projectID, id).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Names of the foreign keys declared on tasks.
const (
	fkTasksProject  = "fk_tasks_project"
	fkTasksSprint   = "fk_tasks_sprint"
	fkTasksReporter = "fk_tasks_reporter"
	fkTasksAssignee = "fk_tasks_assignee"
)

// taskWriteError maps a foreign key violation to the reference that vanished.
func taskWriteError(err error, msg string) error {
	if !isForeignKeyConstraintViolation(err) {
		return domainerrors.NewDatabaseExecuteError(err, msg)
	}

	switch violatedConstraint(err) {
	case fkTasksProject:
		return repository.ErrProjectNotFound
	case fkTasksSprint:
		return repository.ErrSprintNotFound
	case fkTasksReporter:
		return repository.ErrReporterNotFound
	case fkTasksAssignee:
		return repository.ErrAssigneeNotFound
	default:
		return domainerrors.NewDatabaseExecuteError(err, msg)
	}
}

func (repo *taskRepository) withPeople(query *gorm.DB) *gorm.DB {
	return query.Preload("Reporter.User").Preload("Assignee.User")
}

func applyTaskFilter(query *gorm.DB, filter entity.TaskFilter) *gorm.DB {
	if filter.ProjectID != uuid.Nil {
		query = query.Where("tasks.project_id = ?", filter.ProjectID)
	}
	if filter.SprintID != uuid.Nil {
		query = query.Where("tasks.sprint_id = ?", filter.SprintID)
	}
	if filter.Type != "" {
		query = query.Where("tasks.type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("tasks.status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("tasks.priority = ?", filter.Priority)
	}
	if filter.Keyword != "" {
		query = query.Where("tasks.content ILIKE ?", "%"+escapeLike(filter.Keyword)+"%")
	}
	if filter.AssigneeID != uuid.Nil {
		query = query.Where("tasks.assignee_id = ?", filter.AssigneeID)
	}
	if filter.ReporterID != uuid.Nil {
		query = query.Where("tasks.reporter_id = ?", filter.ReporterID)
	}
	if filter.AssigneeUserID != uuid.Nil {
		query = query.Joins(
			"JOIN memberships assignee_m ON assignee_m.id = tasks.assignee_id AND assignee_m.user_id = ? AND assignee_m.revoked_at IS NULL",
			filter.AssigneeUserID,
		)
	}

	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

// --- Mapper Functions ---

func memberSummary(membership *model.MembershipModel) *entity.MemberSummary {
	if membership == nil {
		return nil
	}

	return toUserDomain(membership.User).Summary()
}

func toTaskDomain(data *model.TaskModel) *entity.Task {
	return &entity.Task{
		ID:          data.ID,
		ProjectID:   data.ProjectID,
		SprintID:    data.SprintID,
		Content:     data.Content,
		Description: data.Description,
		Type:        entity.TaskType(data.Type),
		Status:      entity.TaskStatus(data.Status),
		Priority:    entity.TaskPriority(data.Priority),
		EndAt:       data.EndAt,
		ReporterID:  data.ReporterID,
		AssigneeID:  data.AssigneeID,
		Reporter:    memberSummary(data.Reporter),
		Assignee:    memberSummary(data.Assignee),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTaskDomain(data *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		ID:          data.ID,
		ProjectID:   data.ProjectID,
		SprintID:    data.SprintID,
		Content:     data.Content,
		Description: data.Description,
		Type:        string(data.Type),
		Status:      string(data.Status),
		Priority:    string(data.Priority),
		EndAt:       data.EndAt,
		ReporterID:  data.ReporterID,
		AssigneeID:  data.AssigneeID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
