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

type commentService struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	guard       *membershipGuard
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo    repository.CommentRepository
	TaskRepo       repository.TaskRepository
	MembershipRepo repository.MembershipRepository
	Logger         *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		taskRepo:    params.TaskRepo,
		guard:       newMembershipGuard(params.MembershipRepo),
		logger:      params.Logger,
	}
}

func (srv *commentService) Create(ctx context.Context, userID, projectID, taskID uuid.UUID, content string) (*entity.Comment, error) {
	author, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID)
	if err != nil {
		return nil, err
	}
	if err := srv.requireTask(ctx, projectID, taskID, domainerrors.ErrTaskNotFound); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ID:       uuid.New(),
		TaskID:   taskID,
		AuthorID: author.ID,
		Content:  content,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, notFound(err, repository.ErrTaskNotFound, domainerrors.ErrTaskNotFound, "failed to create comment")
	}

	stored, err := srv.commentRepo.FindByID(ctx, comment.ID)
	if err != nil {
		return comment, nil
	}

	return stored, nil
}

func (srv *commentService) List(
	ctx context.Context,
	userID, projectID, taskID uuid.UUID,
	page entity.PageRequest,
) (*entity.Page[*entity.Comment], error) {
	if _, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID); err != nil {
		return nil, err
	}
	if err := srv.requireTask(ctx, projectID, taskID, domainerrors.ErrTaskNotFound); err != nil {
		return nil, err
	}

	comments, total, err := srv.commentRepo.ListByTask(ctx, taskID, page.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return newPage(comments, total), nil
}

func (srv *commentService) Update(ctx context.Context, userID, projectID, commentID uuid.UUID, content string) (*entity.Comment, error) {
	comment, err := srv.authored(ctx, userID, projectID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, notFound(err, repository.ErrCommentNotFound, domainerrors.ErrCommentNotFound, "failed to update comment")
	}

	return comment, nil
}

func (srv *commentService) Delete(ctx context.Context, userID, projectID, commentID uuid.UUID) error {
	if _, err := srv.authored(ctx, userID, projectID, commentID); err != nil {
		return err
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		return notFound(err, repository.ErrCommentNotFound, domainerrors.ErrCommentNotFound, "failed to delete comment")
	}

	loggerFor(ctx, srv.logger).Info("Comment deleted", slog.String("comment_id", commentID.String()))

	return nil
}

// authored loads a comment of the project and checks the caller wrote it.
func (srv *commentService) authored(ctx context.Context, userID, projectID, commentID uuid.UUID) (*entity.Comment, error) {
	member, err := srv.guard.RequireMember(ctx, entity.ScopeProject, projectID, userID)
	if err != nil {
		return nil, err
	}

	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, notFound(err, repository.ErrCommentNotFound, domainerrors.ErrCommentNotFound, "failed to find comment")
	}
	if err := srv.requireTask(ctx, projectID, comment.TaskID, domainerrors.ErrCommentNotFound); err != nil {
		return nil, err
	}
	if comment.AuthorID != member.ID {
		return nil, errors.Wrap(domainerrors.ErrNoPermission, "only the author may change a comment")
	}

	return comment, nil
}

func (srv *commentService) requireTask(ctx context.Context, projectID, taskID uuid.UUID, missing *domainerrors.BaseError) error {
	if _, err := srv.taskRepo.FindByID(ctx, projectID, taskID); err != nil {
		return notFound(err, repository.ErrTaskNotFound, missing, "failed to find task")
	}

	return nil
}
