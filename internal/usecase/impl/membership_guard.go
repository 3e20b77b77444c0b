// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// membershipGuard answers whether a user may act inside a team or project.
// A revoked membership is treated exactly like a missing one.
type membershipGuard struct {
	memberships repository.MembershipRepository
}

func newMembershipGuard(memberships repository.MembershipRepository) *membershipGuard {
	return &membershipGuard{memberships: memberships}
}

// Resolve returns the user's active membership, or nil when there is none.
func (g *membershipGuard) Resolve(ctx context.Context, scope entity.Scope, scopeID, userID uuid.UUID) (*entity.Membership, error) {
	membership, err := g.memberships.FindByUser(ctx, scope, scopeID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to resolve membership")
	}
	if !membership.IsActive() {
		return nil, nil
	}

	return membership, nil
}

// RequireMember fails with ErrNoPermission unless the user is an active member.
func (g *membershipGuard) RequireMember(ctx context.Context, scope entity.Scope, scopeID, userID uuid.UUID) (*entity.Membership, error) {
	membership, err := g.Resolve(ctx, scope, scopeID, userID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, errors.Wrapf(domainerrors.ErrNoPermission, "user %s is not a member of %s %s", userID, scope, scopeID)
	}

	return membership, nil
}

// RequireCreator fails with ErrNoPermission unless the user is the active creator.
func (g *membershipGuard) RequireCreator(ctx context.Context, scope entity.Scope, scopeID, userID uuid.UUID) (*entity.Membership, error) {
	membership, err := g.RequireMember(ctx, scope, scopeID, userID)
	if err != nil {
		return nil, err
	}
	if err := requirePrivileged(membership); err != nil {
		return nil, err
	}

	return membership, nil
}

// requirePrivileged fails with ErrNoPermission unless the membership carries the creator flag.
func requirePrivileged(membership *entity.Membership) error {
	if membership == nil || !membership.IsCreator {
		return errors.Wrap(domainerrors.ErrNoPermission, "creator privilege required")
	}

	return nil
}
