package postgres

import (
	"context"
	"time"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// membershipRepository implements repository.MembershipRepository on the shared memberships table.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

func (repo *membershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)
	if err := repo.db.WithContext(ctx).Omit("User").Create(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMembership
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create membership")
	}

	membership.CreatedAt = membershipM.CreatedAt
	membership.UpdatedAt = membershipM.UpdatedAt

	return nil
}

// FindByUser reads from the primary since authorization depends on it.
func (repo *membershipRepository) FindByUser(ctx context.Context, scope entity.Scope, scopeID, userID uuid.UUID) (*entity.Membership, error) {
	return repo.first(repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("scope = ? AND scope_id = ? AND user_id = ?", scope, scopeID, userID))
}

func (repo *membershipRepository) FindByID(ctx context.Context, scope entity.Scope, scopeID, id uuid.UUID) (*entity.Membership, error) {
	return repo.first(repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("scope = ? AND scope_id = ? AND id = ?", scope, scopeID, id).
		Preload("User"))
}

func (repo *membershipRepository) first(query *gorm.DB) (*entity.Membership, error) {
	var membershipM model.MembershipModel
	if err := query.First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}

	return toMembershipDomain(&membershipM), nil
}

func (repo *membershipRepository) ListByScope(ctx context.Context, scope entity.Scope, scopeID uuid.UUID) ([]*entity.Membership, error) {
	var membershipModels []*model.MembershipModel
	if err := repo.db.WithContext(ctx).
		Where("scope = ? AND scope_id = ?", scope, scopeID).
		Preload("User").
		Order("created_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list memberships")
	}

	return toMembershipDomains(membershipModels), nil
}

func (repo *membershipRepository) ListActiveByScopes(ctx context.Context, scope entity.Scope, scopeIDs []uuid.UUID) ([]*entity.Membership, error) {
	if len(scopeIDs) == 0 {
		return []*entity.Membership{}, nil
	}

	var membershipModels []*model.MembershipModel
	if err := repo.db.WithContext(ctx).
		Where("scope = ? AND scope_id IN ? AND revoked_at IS NULL", scope, scopeIDs).
		Preload("User").
		Order("created_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active memberships of scopes")
	}

	return toMembershipDomains(membershipModels), nil
}

func (repo *membershipRepository) ListActiveByUsers(ctx context.Context, scope entity.Scope, userIDs []uuid.UUID) ([]*entity.Membership, error) {
	if len(userIDs) == 0 {
		return []*entity.Membership{}, nil
	}

	var membershipModels []*model.MembershipModel
	if err := repo.db.WithContext(ctx).
		Where("scope = ? AND user_id IN ? AND revoked_at IS NULL", scope, userIDs).
		Order("created_at DESC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active memberships")
	}

	return toMembershipDomains(membershipModels), nil
}

func (repo *membershipRepository) UpdateState(ctx context.Context, membership *entity.Membership) error {
	var revokedAt *time.Time
	if at, revoked := membership.State.RevokedAt(); revoked {
		revokedAt = &at
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("id = ?", membership.ID).
		Update("revoked_at", revokedAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update membership")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

func (repo *membershipRepository) DeleteByScope(ctx context.Context, scope entity.Scope, scopeID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("scope = ? AND scope_id = ?", scope, scopeID).
		Delete(&model.MembershipModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete memberships")
	}

	return nil
}

// --- Mapper Functions ---

func toMembershipDomains(data []*model.MembershipModel) []*entity.Membership {
	memberships := make([]*entity.Membership, 0, len(data))
	for _, membershipM := range data {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships
}

func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	state := entity.ActiveState()
	if data.RevokedAt != nil {
		state = entity.RevokedState(*data.RevokedAt)
	}

	return &entity.Membership{
		ID:        data.ID,
		Scope:     entity.Scope(data.Scope),
		ScopeID:   data.ScopeID,
		UserID:    data.UserID,
		IsCreator: data.IsCreator,
		State:     state,
		User:      toUserDomain(data.User),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromMembershipDomain(data *entity.Membership) *model.MembershipModel {
	if data == nil {
		return nil
	}

	membershipM := &model.MembershipModel{
		ID:        data.ID,
		Scope:     string(data.Scope),
		ScopeID:   data.ScopeID,
		UserID:    data.UserID,
		IsCreator: data.IsCreator,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if at, revoked := data.State.RevokedAt(); revoked {
		membershipM.RevokedAt = &at
	}

	return membershipM
}
