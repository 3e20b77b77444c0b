// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/plugin/dbresolver"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID reads from the primary: callers compare password and refresh hashes
// that may have just been written.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail reads from the primary for the same reason as FindByID.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	return repo.updateColumns(ctx, user.ID, map[string]any{
		"fullname":     user.Fullname,
		"phone_number": user.PhoneNumber,
		"avatar":       user.Avatar,
	}, "failed to update user profile")
}

func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return repo.updateColumns(ctx, id, map[string]any{"password_hash": nullableString(hash)}, "failed to update password")
}

func (repo *userRepository) UpdateRefreshTokenHash(ctx context.Context, id uuid.UUID, hash string) error {
	return repo.updateColumns(ctx, id, map[string]any{"refresh_token_hash": nullableString(hash)}, "failed to update refresh token")
}

func (repo *userRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumns(ctx, id, map[string]any{"is_verify": true}, "failed to verify user")
}

func (repo *userRepository) ListVerifiedExcept(ctx context.Context, id uuid.UUID) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("is_verify = ? AND id <> ?", true, id).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list verified users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

func (repo *userRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, msg)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func nullableString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		Email:            data.Email,
		Fullname:         data.Fullname,
		PhoneNumber:      data.PhoneNumber,
		Avatar:           data.Avatar,
		PasswordHash:     derefString(data.PasswordHash),
		RefreshTokenHash: derefString(data.RefreshTokenHash),
		IsVerify:         data.IsVerify,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:               data.ID,
		Email:            data.Email,
		Fullname:         data.Fullname,
		PhoneNumber:      data.PhoneNumber,
		Avatar:           data.Avatar,
		PasswordHash:     nullableString(data.PasswordHash),
		RefreshTokenHash: nullableString(data.RefreshTokenHash),
		IsVerify:         data.IsVerify,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
