package entity

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipState(t *testing.T) {
	var zero MembershipState
	assert.True(t, zero.IsActive())

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	revoked := RevokedState(at)
	assert.False(t, revoked.IsActive())

	got, ok := revoked.RevokedAt()
	require.True(t, ok)
	assert.Equal(t, at, got)

	_, ok = ActiveState().RevokedAt()
	assert.False(t, ok)
}

func TestMembership_RevokeAndReactivate(t *testing.T) {
	m := &Membership{ID: uuid.New(), Scope: ScopeProject, ScopeID: uuid.New(), UserID: uuid.New()}
	assert.True(t, m.IsActive())

	m.Revoke(time.Now())
	assert.False(t, m.IsActive())

	id := m.ID
	m.Reactivate()
	assert.True(t, m.IsActive())
	assert.Equal(t, id, m.ID)

	var missing *Membership
	assert.False(t, missing.IsActive())
}

func TestMembership_View(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := &Membership{
		ID:     uuid.New(),
		UserID: uuid.New(),
		State:  RevokedState(at),
		User:   &User{Fullname: "Bob", Email: "bob@example.com"},
	}

	view := m.View()
	require.NotNil(t, view.RevokedAt)
	assert.Equal(t, at, *view.RevokedAt)
	assert.Equal(t, "Bob", view.User.Fullname)

	m.Reactivate()
	m.User = nil
	view = m.View()
	assert.Nil(t, view.RevokedAt)
	assert.Nil(t, view.User)
}

func TestPageRequest_Normalize(t *testing.T) {
	assert.Equal(t, PageRequest{Page: 1, Limit: DefaultPageLimit}, PageRequest{}.Normalize())
	assert.Equal(t, PageRequest{Page: 3, Limit: MaxPageLimit}, PageRequest{Page: 3, Limit: 500}.Normalize())
	assert.Equal(t, 20, PageRequest{Page: 3, Limit: 10}.Offset())
}

func TestPageRequest_HugePageDoesNotOverflow(t *testing.T) {
	for _, limit := range []int{1, 7, 10, MaxPageLimit, 500} {
		page := PageRequest{Page: math.MaxInt, Limit: limit}

		assert.Positive(t, page.Offset(), "limit %d", limit)
		assert.LessOrEqual(t, page.Normalize().Page, math.MaxInt/page.Normalize().Limit)
	}
}

func TestScope_IsValid(t *testing.T) {
	assert.True(t, ScopeTeam.IsValid())
	assert.True(t, ScopeProject.IsValid())
	assert.False(t, Scope("org").IsValid())
}
