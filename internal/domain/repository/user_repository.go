// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"todoez/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile writes fullname, phone number and avatar.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash overwrites the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error

	// UpdateRefreshTokenHash overwrites the stored refresh token hash. An empty hash signs the user out.
	UpdateRefreshTokenHash(ctx context.Context, id uuid.UUID, hash string) error

	// MarkVerified sets the verified flag.
	MarkVerified(ctx context.Context, id uuid.UUID) error

	// ListVerifiedExcept returns verified users other than the given one.
	ListVerifiedExcept(ctx context.Context, id uuid.UUID) ([]*entity.User, error)
}
