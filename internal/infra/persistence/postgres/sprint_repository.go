package postgres

import (
	"context"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type sprintRepository struct {
	db *gorm.DB
}

// NewSprintRepository is the constructor for sprintRepository.
func NewSprintRepository(db *gorm.DB) repository.SprintRepository {
	return &sprintRepository{db: db}
}

func (repo *sprintRepository) Create(ctx context.Context, sprint *entity.Sprint) error {
	sprintM := fromSprintDomain(sprint)
	if err := repo.db.WithContext(ctx).Create(sprintM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProjectNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sprint")
	}

	sprint.CreatedAt = sprintM.CreatedAt
	sprint.UpdatedAt = sprintM.UpdatedAt

	return nil
}

func (repo *sprintRepository) FindByID(ctx context.Context, projectID, id uuid.UUID) (*entity.Sprint, error) {
	var sprintM model.SprintModel
	if err := repo.db.WithContext(ctx).
		Where("project_id = ? AND id = ?", projectID, id).
		First(&sprintM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSprintNotFound
		}

		return nil, errors.Wrap(err, "failed to find sprint")
	}

	return toSprintDomain(&sprintM), nil
}

func (repo *sprintRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Sprint, error) {
	var sprintModels []*model.SprintModel
	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("start_at ASC").
		Find(&sprintModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sprints")
	}

	return toSprintDomains(sprintModels), nil
}

func (repo *sprintRepository) ListPageByProject(ctx context.Context, projectID uuid.UUID, page entity.PageRequest) ([]*entity.Sprint, int64, error) {
	page = page.Normalize()
	query := repo.db.WithContext(ctx).Model(&model.SprintModel{}).Where("project_id = ?", projectID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count sprints")
	}

	var sprintModels []*model.SprintModel
	if err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&sprintModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list sprint page")
	}

	return toSprintDomains(sprintModels), total, nil
}

func (repo *sprintRepository) Update(ctx context.Context, sprint *entity.Sprint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SprintModel{}).
		Where("project_id = ? AND id = ?", sprint.ProjectID, sprint.ID).
		Updates(map[string]any{
			"title":    sprint.Title,
			"start_at": sprint.StartAt,
			"end_at":   sprint.EndAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update sprint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSprintNotFound
	}

	return nil
}

func (repo *sprintRepository) Delete(ctx context.Context, projectID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("project_id = ? AND id = ?", projectID, id).
		Delete(&model.SprintModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete sprint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSprintNotFound
	}

	return nil
}

func toSprintDomains(data []*model.SprintModel) []*entity.Sprint {
	sprints := make([]*entity.Sprint, 0, len(data))
	for _, sprintM := range data {
		sprints = append(sprints, toSprintDomain(sprintM))
	}

	return sprints
}

func toSprintDomain(data *model.SprintModel) *entity.Sprint {
	return &entity.Sprint{
		ID:        data.ID,
		ProjectID: data.ProjectID,
		Title:     data.Title,
		StartAt:   data.StartAt,
		EndAt:     data.EndAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSprintDomain(data *entity.Sprint) *model.SprintModel {
	return &model.SprintModel{
		ID:        data.ID,
		ProjectID: data.ProjectID,
		Title:     data.Title,
		StartAt:   data.StartAt,
		EndAt:     data.EndAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
