package impl

import (
	"context"
	"sync"
	"testing"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	mockRepo "todoez/internal/mocks/repository"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memMembershipRepo keeps memberships in memory and enforces the
// (scope, scope id, user) uniqueness the database guarantees.
type memMembershipRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Membership
}

var _ repository.MembershipRepository = (*memMembershipRepo)(nil)

func newMemMembershipRepo() *memMembershipRepo {
	return &memMembershipRepo{rows: make(map[uuid.UUID]*entity.Membership)}
}

func (r *memMembershipRepo) Create(_ context.Context, membership *entity.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.Scope == membership.Scope && row.ScopeID == membership.ScopeID && row.UserID == membership.UserID {
			return repository.ErrDuplicateMembership
		}
	}
	clone := *membership
	clone.User = nil
	r.rows[membership.ID] = &clone

	return nil
}

func (r *memMembershipRepo) find(match func(*entity.Membership) bool) (*entity.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if match(row) {
			clone := *row

			return &clone, nil
		}
	}

	return nil, repository.ErrMembershipNotFound
}

func (r *memMembershipRepo) list(match func(*entity.Membership) bool) []*entity.Membership {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []*entity.Membership{}
	for _, row := range r.rows {
		if match(row) {
			clone := *row
			out = append(out, &clone)
		}
	}

	return out
}

func (r *memMembershipRepo) FindByUser(_ context.Context, scope entity.Scope, scopeID, userID uuid.UUID) (*entity.Membership, error) {
	return r.find(func(m *entity.Membership) bool {
		return m.Scope == scope && m.ScopeID == scopeID && m.UserID == userID
	})
}

func (r *memMembershipRepo) FindByID(_ context.Context, scope entity.Scope, scopeID, id uuid.UUID) (*entity.Membership, error) {
	return r.find(func(m *entity.Membership) bool {
		return m.Scope == scope && m.ScopeID == scopeID && m.ID == id
	})
}

func (r *memMembershipRepo) ListByScope(_ context.Context, scope entity.Scope, scopeID uuid.UUID) ([]*entity.Membership, error) {
	return r.list(func(m *entity.Membership) bool { return m.Scope == scope && m.ScopeID == scopeID }), nil
}

func (r *memMembershipRepo) ListActiveByScopes(_ context.Context, scope entity.Scope, scopeIDs []uuid.UUID) ([]*entity.Membership, error) {
	ids := make(map[uuid.UUID]bool, len(scopeIDs))
	for _, id := range scopeIDs {
		ids[id] = true
	}

	return r.list(func(m *entity.Membership) bool { return m.Scope == scope && ids[m.ScopeID] && m.IsActive() }), nil
}

func (r *memMembershipRepo) ListActiveByUsers(_ context.Context, scope entity.Scope, userIDs []uuid.UUID) ([]*entity.Membership, error) {
	ids := make(map[uuid.UUID]bool, len(userIDs))
	for _, id := range userIDs {
		ids[id] = true
	}

	return r.list(func(m *entity.Membership) bool { return m.Scope == scope && ids[m.UserID] && m.IsActive() }), nil
}

func (r *memMembershipRepo) UpdateState(_ context.Context, membership *entity.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[membership.ID]
	if !ok {
		return repository.ErrMembershipNotFound
	}
	row.State = membership.State

	return nil
}

func (r *memMembershipRepo) DeleteByScope(_ context.Context, scope entity.Scope, scopeID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, row := range r.rows {
		if row.Scope == scope && row.ScopeID == scopeID {
			delete(r.rows, id)
		}
	}

	return nil
}

type membershipFlow struct {
	service     usecase.TeamMemberUsecase
	memberships *memMembershipRepo
	users       *memUserRepo
	teamID      uuid.UUID
	creator     *entity.User
}

func newMembershipFlow(t *testing.T) *membershipFlow {
	f := &membershipFlow{
		memberships: newMemMembershipRepo(),
		users:       newMemUserRepo(),
		teamID:      uuid.New(),
		creator:     &entity.User{ID: uuid.New(), Email: "owner@example.com", IsVerify: true},
	}
	ctx := context.Background()
	require.NoError(t, f.users.Create(ctx, f.creator))
	require.NoError(t, f.memberships.Create(ctx, newCreatorMembership(entity.ScopeTeam, f.teamID, f.creator.ID)))

	teamRepo := mockRepo.NewMockTeamRepository(t)
	teamRepo.EXPECT().FindByID(mock.Anything, f.teamID).Return(&entity.Team{ID: f.teamID, Name: "core"}, nil)

	f.service = NewTeamMemberService(MemberServiceParams{
		UserRepo:       f.users,
		MembershipRepo: f.memberships,
		TeamRepo:       teamRepo,
		ProjectRepo:    mockRepo.NewMockProjectRepository(t),
		Logger:         newDiscardLogger(),
	})

	return f
}

func (f *membershipFlow) newUser(t *testing.T, email string) *entity.User {
	t.Helper()

	user := &entity.User{ID: uuid.New(), Email: email, IsVerify: true}
	require.NoError(t, f.users.Create(context.Background(), user))

	return user
}

// rowsOf returns every stored row of userID in the team, whatever its state.
func (f *membershipFlow) rowsOf(userID uuid.UUID) []*entity.Membership {
	return f.memberships.list(func(m *entity.Membership) bool {
		return m.Scope == entity.ScopeTeam && m.ScopeID == f.teamID && m.UserID == userID
	})
}

func TestMembershipFlow_AddRevokeReadd(t *testing.T) {
	f := newMembershipFlow(t)
	ctx := context.Background()
	bob := f.newUser(t, "bob@example.com")

	first, err := f.service.Add(ctx, f.creator.ID, f.teamID, bob.Email)
	require.NoError(t, err)

	_, err = f.service.Add(ctx, f.creator.ID, f.teamID, bob.Email)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyMember))
	require.Len(t, f.rowsOf(bob.ID), 1)

	require.NoError(t, f.service.Remove(ctx, f.creator.ID, f.teamID, first.ID))
	rows := f.rowsOf(bob.ID)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsActive())

	again, err := f.service.Add(ctx, f.creator.ID, f.teamID, bob.Email)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	rows = f.rowsOf(bob.ID)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsActive())
	assert.Equal(t, first.ID, rows[0].ID)

	list, err := f.service.List(ctx, f.creator.ID, f.teamID)
	require.NoError(t, err)
	assert.True(t, list.Creator)
	assert.Len(t, list.List, 2)
}

func TestMembershipFlow_ConcurrentAddsLeaveOneRow(t *testing.T) {
	f := newMembershipFlow(t)
	ctx := context.Background()
	bob := f.newUser(t, "bob@example.com")

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.service.Add(ctx, f.creator.ID, f.teamID, bob.Email)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyMember), err)
	}
	assert.Equal(t, 1, succeeded)

	rows := f.rowsOf(bob.ID)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsActive())
}

func TestMembershipFlow_MemberCannotRemoveOthers(t *testing.T) {
	f := newMembershipFlow(t)
	ctx := context.Background()
	bob := f.newUser(t, "bob@example.com")
	carol := f.newUser(t, "carol@example.com")

	_, err := f.service.Add(ctx, f.creator.ID, f.teamID, bob.Email)
	require.NoError(t, err)
	carolRow, err := f.service.Add(ctx, f.creator.ID, f.teamID, carol.Email)
	require.NoError(t, err)

	err = f.service.Remove(ctx, bob.ID, f.teamID, carolRow.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNoPermission))
	assert.True(t, f.rowsOf(carol.ID)[0].IsActive())
}
