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

type noteService struct {
	noteRepo repository.NoteRepository
	guard    *membershipGuard
	logger   *slog.Logger
}

// NoteServiceParams holds dependencies for NoteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	NoteRepo       repository.NoteRepository
	MembershipRepo repository.MembershipRepository
	Logger         *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		noteRepo: params.NoteRepo,
		guard:    newMembershipGuard(params.MembershipRepo),
		logger:   params.Logger,
	}
}

func (srv *noteService) Create(ctx context.Context, userID, teamID uuid.UUID, input *usecase.NoteInput) (*entity.Note, error) {
	author, err := srv.guard.RequireMember(ctx, entity.ScopeTeam, teamID, userID)
	if err != nil {
		return nil, err
	}

	note := &entity.Note{
		ID:          uuid.New(),
		TeamID:      teamID,
		AuthorID:    author.ID,
		Content:     input.Content,
		Description: input.Description,
	}
	if err := srv.noteRepo.Create(ctx, note); err != nil {
		return nil, notFound(err, repository.ErrTeamNotFound, domainerrors.ErrTeamNotFound, "failed to create note")
	}

	stored, err := srv.noteRepo.FindByID(ctx, teamID, note.ID)
	if err != nil {
		return note, nil
	}

	return stored, nil
}

func (srv *noteService) List(ctx context.Context, userID, teamID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Note], error) {
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeTeam, teamID, userID); err != nil {
		return nil, err
	}

	notes, total, err := srv.noteRepo.ListByTeam(ctx, teamID, page.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	return newPage(notes, total), nil
}

func (srv *noteService) Update(ctx context.Context, userID, teamID, noteID uuid.UUID, input *usecase.NoteInput) (*entity.Note, error) {
	note, err := srv.authored(ctx, userID, teamID, noteID)
	if err != nil {
		return nil, err
	}

	note.Content = input.Content
	note.Description = input.Description
	if err := srv.noteRepo.Update(ctx, note); err != nil {
		return nil, notFound(err, repository.ErrNoteNotFound, domainerrors.ErrNoteNotFound, "failed to update note")
	}

	return note, nil
}

func (srv *noteService) Delete(ctx context.Context, userID, teamID, noteID uuid.UUID) error {
	if _, err := srv.authored(ctx, userID, teamID, noteID); err != nil {
		return err
	}

	if err := srv.noteRepo.Delete(ctx, teamID, noteID); err != nil {
		return notFound(err, repository.ErrNoteNotFound, domainerrors.ErrNoteNotFound, "failed to delete note")
	}

	loggerFor(ctx, srv.logger).Info("Note deleted", slog.String("note_id", noteID.String()))

	return nil
}

func (srv *noteService) authored(ctx context.Context, userID, teamID, noteID uuid.UUID) (*entity.Note, error) {
	member, err := srv.guard.RequireMember(ctx, entity.ScopeTeam, teamID, userID)
	if err != nil {
		return nil, err
	}

	note, err := srv.noteRepo.FindByID(ctx, teamID, noteID)
	if err != nil {
		return nil, notFound(err, repository.ErrNoteNotFound, domainerrors.ErrNoteNotFound, "failed to find note")
	}
	if note.AuthorID != member.ID {
		return nil, errors.Wrap(domainerrors.ErrNoPermission, "only the author may change a note")
	}

	return note, nil
}
