package impl

import (
	"context"
	"strings"
	"testing"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	mockRepo "todoez/internal/mocks/repository"
	mockSvc "todoez/internal/mocks/service"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service        usecase.UserUsecase
	userRepo       *mockRepo.MockUserRepository
	membershipRepo *mockRepo.MockMembershipRepository
	hasher         *mockSvc.MockPasswordHasher
	avatars        *mockSvc.MockAvatarStorage
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		userRepo:       mockRepo.NewMockUserRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
		avatars:        mockSvc.NewMockAvatarStorage(t),
	}
	fx.service = NewUserService(UserServiceParams{
		UserRepo:       fx.userRepo,
		MembershipRepo: fx.membershipRepo,
		Hasher:         fx.hasher,
		Avatars:        fx.avatars,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestUserService_ListDirectory(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	callerID := uuid.New()
	bob := &entity.User{ID: uuid.New(), Email: "bob@example.com", IsVerify: true}
	carol := &entity.User{ID: uuid.New(), Email: "carol@example.com", IsVerify: true}
	teamID, projectID := uuid.New(), uuid.New()

	fx.userRepo.EXPECT().ListVerifiedExcept(ctx, callerID).Return([]*entity.User{bob, carol}, nil)
	fx.membershipRepo.EXPECT().
		ListActiveByUsers(ctx, entity.ScopeTeam, []uuid.UUID{bob.ID, carol.ID}).
		Return([]*entity.Membership{activeMembership(entity.ScopeTeam, teamID, bob.ID, false)}, nil)
	fx.membershipRepo.EXPECT().
		ListActiveByUsers(ctx, entity.ScopeProject, []uuid.UUID{bob.ID, carol.ID}).
		Return([]*entity.Membership{activeMembership(entity.ScopeProject, projectID, carol.ID, true)}, nil)

	entries, err := fx.service.ListDirectory(ctx, callerID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []uuid.UUID{teamID}, entries[0].TeamIDs)
	assert.Empty(t, entries[0].ProjectIDs)
	assert.Equal(t, []uuid.UUID{projectID}, entries[1].ProjectIDs)
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	newUser := func() *entity.User {
		return &entity.User{ID: uuid.New(), PasswordHash: "stored-hash", IsVerify: true}
	}

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newUser()

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("old", user.PasswordHash).Return(false)

		err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{CurrentPassword: "old", NewPassword: "new"})
		assert.True(t, errors.Is(err, domainerrors.ErrWrongPassword))
	})

	t.Run("same password", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newUser()

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("old", user.PasswordHash).Return(true)

		err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{CurrentPassword: "old", NewPassword: "old"})
		assert.True(t, errors.Is(err, domainerrors.ErrSamePassword))
	})

	t.Run("google account", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newUser()
		user.PasswordHash = ""

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{CurrentPassword: "old", NewPassword: "new"})
		assert.True(t, errors.Is(err, domainerrors.ErrGoogleAccount))
	})

	t.Run("stores the new hash", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newUser()

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("old", user.PasswordHash).Return(true)
		fx.hasher.EXPECT().Hash("new").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePasswordHash(ctx, user.ID, "new-hash").Return(nil)

		require.NoError(t, fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{CurrentPassword: "old", NewPassword: "new"}))
	})
}

func TestUserService_DeleteAvatar(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Avatar: "https://img/a.png"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Avatar == "" })).
		Return(nil)

	profile, err := fx.service.DeleteAvatar(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.Avatar)
	assert.False(t, profile.IsEmailSignin)
}

func TestUserService_UploadAvatar(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the image and points the avatar at it", func(t *testing.T) {
		fx := createTestUserService(t)
		user := &entity.User{ID: uuid.New()}
		data := []byte("\x89PNG\r\n\x1a\n")

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.avatars.EXPECT().
			Upload(ctx, mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, "avatars/"+user.ID.String()+"/") && strings.HasSuffix(key, ".png")
			}), "image/png", data).
			Return("https://cdn.example.com/avatars/a.png", nil)
		fx.userRepo.EXPECT().UpdateProfile(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		profile, err := fx.service.UploadAvatar(ctx, user.ID, &usecase.AvatarUpload{ContentType: "image/png", Data: data})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/avatars/a.png", profile.Avatar)
	})

	t.Run("unsupported type", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UploadAvatar(ctx, uuid.New(), &usecase.AvatarUpload{ContentType: "application/pdf", Data: []byte("%PDF")})
		assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))
	})

	t.Run("too large", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UploadAvatar(ctx, uuid.New(), &usecase.AvatarUpload{ContentType: "image/jpeg", Data: make([]byte, 2<<10)})
		assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
	})
}
