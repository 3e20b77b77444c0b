package impl

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/domain/service"
	mockRepo "todoez/internal/mocks/repository"
	mockSvc "todoez/internal/mocks/service"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockTokenService
	google   *mockSvc.MockOAuthAuthService
	mailer   *mockSvc.MockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		userRepo: mockRepo.NewMockUserRepository(t),
		hasher:   mockSvc.NewMockPasswordHasher(t),
		tokens:   mockSvc.NewMockTokenService(t),
		google:   mockSvc.NewMockOAuthAuthService(t),
		mailer:   mockSvc.NewMockMailer(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		UserRepo:          fx.userRepo,
		Hasher:            fx.hasher,
		TokenService:      fx.tokens,
		GoogleAuthService: fx.google,
		Mailer:            fx.mailer,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})

	return fx
}

func passwordUser(verified bool) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Fullname:     "Alice",
		PasswordHash: "stored-hash",
		IsVerify:     verified,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.SignupInput{Email: "alice@example.com", Password: "secret", Fullname: "Alice"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == input.Email && u.PasswordHash == "hashed" && !u.IsVerify
		})).
		Return(nil)
	fx.tokens.EXPECT().IssueAccessToken(mock.Anything, input.Email).Return("verify-token", nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *service.MailMessage) bool {
			return msg.To == input.Email &&
				strings.Contains(msg.TextBody, "http://localhost:3000/auth/verify-email?") &&
				strings.Contains(msg.TextBody, "token=verify-token")
		})).
		Return(nil)

	require.NoError(t, fx.service.Signup(ctx, input))
}

func TestAuthService_Signup_EmailExists(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(passwordUser(true), nil)

	err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "alice@example.com", Password: "secret"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailExists))
}

func TestAuthService_Signup_MailFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokens.EXPECT().IssueAccessToken(mock.Anything, "alice@example.com").Return("verify-token", nil)
	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.MailMessage")).Return(errors.New("smtp down"))

	err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "alice@example.com", Password: "secret"})
	assert.True(t, errors.Is(err, domainerrors.ErrMailDeliveryFailed))
}

func TestAuthService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the user verified", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(false)

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.tokens.EXPECT().Verify("tok", service.ScopeAccess).Return(&service.TokenPayload{UserID: user.ID, Email: user.Email}, nil)
		fx.userRepo.EXPECT().MarkVerified(ctx, user.ID).Return(nil)

		require.NoError(t, fx.service.VerifyEmail(ctx, user.Email, "tok"))
	})

	t.Run("verifying twice succeeds", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(true)

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.tokens.EXPECT().Verify("tok", service.ScopeAccess).Return(&service.TokenPayload{UserID: user.ID, Email: user.Email}, nil)

		require.NoError(t, fx.service.VerifyEmail(ctx, user.Email, "tok"))
	})

	t.Run("token issued for another email", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(false)

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.tokens.EXPECT().Verify("tok", service.ScopeAccess).Return(&service.TokenPayload{Email: "mallory@example.com"}, nil)

		err := fx.service.VerifyEmail(ctx, user.Email, "tok")
		assert.True(t, errors.Is(err, domainerrors.ErrCannotVerifyToken))
	})

	t.Run("empty token", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(false)

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

		err := fx.service.VerifyEmail(ctx, user.Email, "")
		assert.True(t, errors.Is(err, domainerrors.ErrTokenMissing))
		assert.Equal(t, http.StatusUnauthorized, domainerrors.ErrTokenMissing.HTTPCode())
	})

	t.Run("rejected token", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(false)

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.tokens.EXPECT().Verify("forged", service.ScopeAccess).Return(nil, errors.New("signature is invalid"))

		err := fx.service.VerifyEmail(ctx, user.Email, "forged")
		assert.True(t, errors.Is(err, domainerrors.ErrCannotVerifyToken))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		err := fx.service.VerifyEmail(ctx, "ghost@example.com", "tok")
		assert.True(t, errors.Is(err, domainerrors.ErrEmailNotExists))
	})
}

func TestAuthService_Signin(t *testing.T) {
	ctx := context.Background()

	t.Run("unverified account is rejected", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(false)

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)

		_, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: user.Email, Password: "secret"})
		assert.True(t, errors.Is(err, domainerrors.ErrAccountNotVerified))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(true)

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("nope", user.PasswordHash).Return(false)

		_, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: user.Email, Password: "nope"})
		assert.True(t, errors.Is(err, domainerrors.ErrWrongPassword))
	})

	t.Run("google account has no password", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(true)
		user.PasswordHash = ""

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

		_, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: user.Email, Password: "secret"})
		assert.True(t, errors.Is(err, domainerrors.ErrWrongPassword))
	})

	t.Run("opens a session", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(true)

		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)
		fx.tokens.EXPECT().IssueAccessToken(user.ID, user.Email).Return("access", nil)
		fx.tokens.EXPECT().IssueRefreshToken(user.ID, user.Email).Return("refresh", nil)
		fx.hasher.EXPECT().Hash("refresh").Return("refresh-hash", nil)
		fx.userRepo.EXPECT().UpdateRefreshTokenHash(ctx, user.ID, "refresh-hash").Return(nil)

		out, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: user.Email, Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
		assert.Equal(t, user.ID, out.UserInfo.ID)
	})
}

func TestAuthService_ResetPassword_SamePassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := passwordUser(true)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)

	err := fx.service.ResetPassword(ctx, user.Email, "secret")
	assert.True(t, errors.Is(err, domainerrors.ErrSamePassword))
}

func TestAuthService_ForgotPassword_GoogleAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := passwordUser(true)
	user.PasswordHash = ""

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	err := fx.service.ForgotPassword(ctx, user.Email)
	assert.True(t, errors.Is(err, domainerrors.ErrGoogleAccount))
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokens.EXPECT().Verify("bad", service.ScopeRefresh).Return(nil, service.ErrInvalidToken)

		_, err := fx.service.RefreshToken(ctx, "bad")
		assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
	})

	t.Run("signed out user", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(true)

		fx.tokens.EXPECT().Verify("refresh", service.ScopeRefresh).Return(&service.TokenPayload{UserID: user.ID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		_, err := fx.service.RefreshToken(ctx, "refresh")
		assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
	})

	t.Run("token of an older session", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(true)
		user.RefreshTokenHash = "current-hash"

		fx.tokens.EXPECT().Verify("old", service.ScopeRefresh).Return(&service.TokenPayload{UserID: user.ID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("old", "current-hash").Return(false)

		_, err := fx.service.RefreshToken(ctx, "old")
		assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t)
		userID := uuid.New()

		fx.tokens.EXPECT().Verify("refresh", service.ScopeRefresh).Return(&service.TokenPayload{UserID: userID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.RefreshToken(ctx, "refresh")
		assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
	})

	t.Run("issues a new access token", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(true)
		user.RefreshTokenHash = "current-hash"

		fx.tokens.EXPECT().Verify("refresh", service.ScopeRefresh).Return(&service.TokenPayload{UserID: user.ID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("refresh", "current-hash").Return(true)
		fx.tokens.EXPECT().IssueAccessToken(user.ID, user.Email).Return("access-2", nil)

		out, err := fx.service.RefreshToken(ctx, "refresh")
		require.NoError(t, err)
		assert.Equal(t, "access-2", out.AccessToken)
	})
}

func TestAuthService_GoogleSignin(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.google.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("audience mismatch"))

		_, err := fx.service.GoogleSignin(ctx, "bad")
		assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
	})

	t.Run("email owned by a password account", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := passwordUser(true)

		fx.google.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.OAuthUser{Email: user.Email}, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

		_, err := fx.service.GoogleSignin(ctx, "id-token")
		assert.True(t, errors.Is(err, domainerrors.ErrEmailExists))
	})

	t.Run("first signin creates a verified account", func(t *testing.T) {
		fx := createTestAuthService(t)
		oauthUser := &service.OAuthUser{Email: "bob@example.com", Name: "Bob", AvatarURL: "https://img/bob.png"}

		fx.google.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, oauthUser.Email).Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.IsVerify && !u.HasPassword() && u.Avatar == oauthUser.AvatarURL
			})).
			Return(nil)
		fx.tokens.EXPECT().IssueAccessToken(mock.Anything, oauthUser.Email).Return("access", nil)
		fx.tokens.EXPECT().IssueRefreshToken(mock.Anything, oauthUser.Email).Return("refresh", nil)
		fx.hasher.EXPECT().Hash("refresh").Return("refresh-hash", nil)
		fx.userRepo.EXPECT().UpdateRefreshTokenHash(ctx, mock.Anything, "refresh-hash").Return(nil)

		out, err := fx.service.GoogleSignin(ctx, "id-token")
		require.NoError(t, err)
		assert.Equal(t, "Bob", out.UserInfo.Fullname)
	})
}

func TestAuthService_Signout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().UpdateRefreshTokenHash(ctx, userID, "").Return(nil)

	require.NoError(t, fx.service.Signout(ctx, userID))
}
