package impl

import (
	"context"
	"log/slog"

	deliverycontext "todoez/internal/delivery/context"
	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"

	"github.com/pkg/errors"
)

// loggerFor returns the request-scoped logger if available, otherwise the fallback.
func loggerFor(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, fallback)
}

// notFound maps a repository sentinel to the domain error shown to clients.
// Any other error is wrapped with msg.
func notFound(err, sentinel error, domainErr *domainerrors.BaseError, msg string) error {
	if errors.Is(err, sentinel) {
		return errors.Wrap(domainErr, msg)
	}

	return errors.Wrap(err, msg)
}

// newPage builds a page result, keeping List non-nil so it renders as [].
func newPage[T any](list []T, total int64) *entity.Page[T] {
	if list == nil {
		list = []T{}
	}

	return &entity.Page[T]{Total: total, List: list}
}

func findAccountByEmail(ctx context.Context, users repository.UserRepository, email string) (*entity.User, error) {
	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, domainerrors.ErrEmailNotExists, "failed to find user by email")
	}

	return user, nil
}
