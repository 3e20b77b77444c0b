package postgres

import (
	"context"
	"fmt"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activeMemberJoin restricts a scope table to rows where the user holds an active membership.
const activeMemberJoin = "JOIN memberships ON memberships.scope_id = %s.id AND memberships.scope = ? AND memberships.user_id = ? AND memberships.revoked_at IS NULL"

func scopeJoin(table string) string {
	return fmt.Sprintf(activeMemberJoin, table)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository is the constructor for teamRepository.
func NewTeamRepository(db *gorm.DB) repository.TeamRepository {
	return &teamRepository{db: db}
}

func (repo *teamRepository) Create(ctx context.Context, team *entity.Team) error {
	teamM := &model.TeamModel{ID: team.ID, Name: team.Name}
	if err := repo.db.WithContext(ctx).Create(teamM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create team")
	}

	team.CreatedAt = teamM.CreatedAt
	team.UpdatedAt = teamM.UpdatedAt

	return nil
}

func (repo *teamRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	var teamM model.TeamModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&teamM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeamNotFound
		}

		return nil, errors.Wrap(err, "failed to find team")
	}

	return toTeamDomain(&teamM), nil
}

func (repo *teamRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]*entity.Team, error) {
	var teamModels []*model.TeamModel
	if err := repo.db.WithContext(ctx).
		Joins(scopeJoin("teams"), entity.ScopeTeam, userID).
		Order("teams.created_at DESC").
		Find(&teamModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list teams")
	}

	teams := make([]*entity.Team, 0, len(teamModels))
	for _, teamM := range teamModels {
		teams = append(teams, toTeamDomain(teamM))
	}

	return teams, nil
}

func (repo *teamRepository) Update(ctx context.Context, team *entity.Team) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TeamModel{}).
		Where("id = ?", team.ID).
		Update("name", team.Name)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update team")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTeamNotFound
	}

	return nil
}

func (repo *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TeamModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete team")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTeamNotFound
	}

	return nil
}

func toTeamDomain(data *model.TeamModel) *entity.Team {
	return &entity.Team{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
