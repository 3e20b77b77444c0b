package entity

import (
	"time"

	"github.com/google/uuid"
)

// Scope names the kind of resource a membership grants access to.
type Scope string

const (
	ScopeTeam    Scope = "team"
	ScopeProject Scope = "project"
)

// IsValid reports whether the scope is one of the known kinds.
func (s Scope) IsValid() bool {
	return s == ScopeTeam || s == ScopeProject
}

type membershipKind uint8

const (
	membershipActive membershipKind = iota
	membershipRevoked
)

// MembershipState is either Active or Revoked at a point in time.
// The zero value is Active.
type MembershipState struct {
	kind      membershipKind
	revokedAt time.Time
}

// ActiveState returns the state of a membership that grants access.
func ActiveState() MembershipState {
	return MembershipState{kind: membershipActive}
}

// RevokedState returns the state of a membership revoked at the given time.
func RevokedState(at time.Time) MembershipState {
	return MembershipState{kind: membershipRevoked, revokedAt: at}
}

// IsActive reports whether the membership grants access.
func (s MembershipState) IsActive() bool {
	return s.kind == membershipActive
}

// RevokedAt returns the revocation time and true if the membership is revoked.
func (s MembershipState) RevokedAt() (time.Time, bool) {
	if s.kind != membershipRevoked {
		return time.Time{}, false
	}

	return s.revokedAt, true
}

// Membership joins a user to a team or a project.
// Rows are never hard-deleted; revocation moves the state to Revoked.
type Membership struct {
	ID        uuid.UUID
	Scope     Scope
	ScopeID   uuid.UUID
	UserID    uuid.UUID
	IsCreator bool
	State     MembershipState
	User      *User // Optional, loaded by listing queries.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the membership currently grants access.
func (m *Membership) IsActive() bool {
	return m != nil && m.State.IsActive()
}

// Revoke moves the membership to the Revoked state.
func (m *Membership) Revoke(at time.Time) {
	m.State = RevokedState(at)
}

// Reactivate moves a revoked membership back to Active, keeping its id.
func (m *Membership) Reactivate() {
	m.State = ActiveState()
}

// MembershipView is the listing representation of a membership.
type MembershipView struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	IsCreator bool           `json:"is_creator"`
	RevokedAt *time.Time     `json:"delete_at"`
	User      *MemberSummary `json:"user,omitempty"`
	CreatedAt time.Time      `json:"create_at"`
}

// View renders the membership, exposing the revocation time as a nullable field.
func (m *Membership) View() *MembershipView {
	view := &MembershipView{
		ID:        m.ID,
		UserID:    m.UserID,
		IsCreator: m.IsCreator,
		User:      m.User.Summary(),
		CreatedAt: m.CreatedAt,
	}
	if at, revoked := m.State.RevokedAt(); revoked {
		view.RevokedAt = &at
	}

	return view
}
