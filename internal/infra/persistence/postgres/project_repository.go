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

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := &model.ProjectModel{ID: project.ID, Name: project.Name}
	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return toProjectDomain(&projectM), nil
}

func (repo *projectRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel
	if err := repo.db.WithContext(ctx).
		Joins(scopeJoin("projects"), entity.ScopeProject, userID).
		Order("projects.created_at DESC").
		Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Update("name", project.Name)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	return &entity.Project{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
