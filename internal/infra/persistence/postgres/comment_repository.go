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

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		ID:       comment.ID,
		TaskID:   comment.TaskID,
		AuthorID: comment.AuthorID,
		Content:  comment.Content,
	}
	if err := repo.db.WithContext(ctx).Omit("Author").Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTaskNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).
		Preload("Author.User").
		Where("id = ?", id).
		First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return toCommentDomain(&commentM), nil
}

func (repo *commentRepository) ListByTask(ctx context.Context, taskID uuid.UUID, page entity.PageRequest) ([]*entity.Comment, int64, error) {
	page = page.Normalize()
	query := repo.db.WithContext(ctx).Model(&model.CommentModel{}).Where("task_id = ?", taskID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count comments")
	}

	var commentModels []*model.CommentModel
	if err := query.
		Preload("Author.User").
		Order("updated_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&commentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, total, nil
}

func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Update("content", comment.Content)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        data.ID,
		TaskID:    data.TaskID,
		AuthorID:  data.AuthorID,
		Content:   data.Content,
		Author:    memberSummary(data.Author),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
