package repository

import (
	"context"

	"todoez/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrMembershipNotFound is returned when no membership row matches, whatever its state.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrDuplicateMembership is returned when a row for the same (scope, scope id, user) already exists.
	ErrDuplicateMembership = errors.New("membership already exists")
)

// MembershipRepository persists team and project memberships.
// Lookups return rows in any state; callers decide what a revoked row means.
type MembershipRepository interface {
	// Create inserts a new membership row.
	Create(ctx context.Context, membership *entity.Membership) error

	// FindByUser returns the row joining userID to the scope.
	FindByUser(ctx context.Context, scope entity.Scope, scopeID, userID uuid.UUID) (*entity.Membership, error)

	// FindByID returns the row with the given id inside the scope.
	FindByID(ctx context.Context, scope entity.Scope, scopeID, id uuid.UUID) (*entity.Membership, error)

	// ListByScope returns every row of the scope, revoked ones included, with users loaded.
	ListByScope(ctx context.Context, scope entity.Scope, scopeID uuid.UUID) ([]*entity.Membership, error)

	// ListActiveByScopes returns the active rows of several scopes of one kind, with users loaded.
	ListActiveByScopes(ctx context.Context, scope entity.Scope, scopeIDs []uuid.UUID) ([]*entity.Membership, error)

	// ListActiveByUsers returns the active rows of the given users for one scope kind.
	ListActiveByUsers(ctx context.Context, scope entity.Scope, userIDs []uuid.UUID) ([]*entity.Membership, error)

	// UpdateState persists the membership state.
	UpdateState(ctx context.Context, membership *entity.Membership) error

	// DeleteByScope hard-deletes the rows of a scope that is itself being deleted.
	DeleteByScope(ctx context.Context, scope entity.Scope, scopeID uuid.UUID) error
}
