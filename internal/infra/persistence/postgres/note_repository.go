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

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := &model.NoteModel{
		ID:          note.ID,
		TeamID:      note.TeamID,
		AuthorID:    note.AuthorID,
		Content:     note.Content,
		Description: note.Description,
	}
	if err := repo.db.WithContext(ctx).Omit("Author").Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTeamNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

func (repo *noteRepository) FindByID(ctx context.Context, teamID, id uuid.UUID) (*entity.Note, error) {
	var noteM model.NoteModel
	if err := repo.db.WithContext(ctx).
		Preload("Author.User").
		Where("team_id = ? AND id = ?", teamID, id).
		First(&noteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note")
	}

	return toNoteDomain(&noteM), nil
}

func (repo *noteRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, page entity.PageRequest) ([]*entity.Note, int64, error) {
	page = page.Normalize()
	query := repo.db.WithContext(ctx).Model(&model.NoteModel{}).Where("team_id = ?", teamID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notes")
	}

	var noteModels []*model.NoteModel
	if err := query.
		Preload("Author.User").
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&noteModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notes")
	}

	notes := make([]*entity.Note, 0, len(noteModels))
	for _, noteM := range noteModels {
		notes = append(notes, toNoteDomain(noteM))
	}

	return notes, total, nil
}

func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("team_id = ? AND id = ?", note.TeamID, note.ID).
		Updates(map[string]any{
			"content":     note.Content,
			"description": note.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

func (repo *noteRepository) Delete(ctx context.Context, teamID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("team_id = ? AND id = ?", teamID, id).
		Delete(&model.NoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

func toNoteDomain(data *model.NoteModel) *entity.Note {
	return &entity.Note{
		ID:          data.ID,
		TeamID:      data.TeamID,
		AuthorID:    data.AuthorID,
		Content:     data.Content,
		Description: data.Description,
		Author:      memberSummary(data.Author),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
