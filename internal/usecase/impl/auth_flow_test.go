package impl

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/domain/service"
	"todoez/internal/infra/auth"
	mockSvc "todoez/internal/mocks/service"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUserRepo keeps users in memory for flow tests.
type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *memUserRepo) update(id uuid.UUID, fn func(*entity.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	fn(user)

	return nil
}

func (r *memUserRepo) UpdateProfile(_ context.Context, user *entity.User) error {
	return r.update(user.ID, func(u *entity.User) {
		u.Fullname, u.PhoneNumber, u.Avatar = user.Fullname, user.PhoneNumber, user.Avatar
	})
}

func (r *memUserRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	return r.update(id, func(u *entity.User) { u.PasswordHash = hash })
}

func (r *memUserRepo) UpdateRefreshTokenHash(_ context.Context, id uuid.UUID, hash string) error {
	return r.update(id, func(u *entity.User) { u.RefreshTokenHash = hash })
}

func (r *memUserRepo) MarkVerified(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(u *entity.User) { u.IsVerify = true })
}

func (r *memUserRepo) ListVerifiedExcept(_ context.Context, id uuid.UUID) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var users []*entity.User
	for _, user := range r.users {
		if user.ID != id && user.IsVerify {
			clone := *user
			users = append(users, &clone)
		}
	}

	return users, nil
}

// outbox records every mail instead of sending it.
type outbox struct {
	mu   sync.Mutex
	sent []*service.MailMessage
}

func (o *outbox) Send(_ context.Context, msg *service.MailMessage) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.sent = append(o.sent, msg)

	return nil
}

// lastLinkToken extracts the token query parameter of the last mailed link.
func (o *outbox) lastLinkToken(t *testing.T) string {
	t.Helper()

	o.mu.Lock()
	defer o.mu.Unlock()

	require.NotEmpty(t, o.sent)
	lines := strings.Split(strings.TrimSpace(o.sent[len(o.sent)-1].TextBody), "\n")
	link, err := url.Parse(lines[len(lines)-1])
	require.NoError(t, err)

	return link.Query().Get("token")
}

type authFlow struct {
	service usecase.AuthUsecase
	users   *memUserRepo
	mails   *outbox
	clock   *time.Time
}

func newAuthFlow(t *testing.T) *authFlow {
	now := time.Now()
	flow := &authFlow{users: newMemUserRepo(), mails: &outbox{}, clock: &now}

	tokens, err := auth.NewJWTService(auth.JWTOptions{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
		Now:           func() time.Time { return *flow.clock },
	})
	require.NoError(t, err)

	flow.service = NewAuthService(AuthServiceParams{
		UserRepo:          flow.users,
		Hasher:            auth.NewBcryptHasher(4),
		TokenService:      tokens,
		GoogleAuthService: mockSvc.NewMockOAuthAuthService(t),
		Mailer:            flow.mails,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})

	return flow
}

func (f *authFlow) signupAndVerify(t *testing.T, email, password string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.service.Signup(ctx, &usecase.SignupInput{Email: email, Password: password, Fullname: "Flow"}))
	require.NoError(t, f.service.VerifyEmail(ctx, email, f.mails.lastLinkToken(t)))
}

func TestAuthFlow_SignupVerifySignin(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()

	require.NoError(t, flow.service.Signup(ctx, &usecase.SignupInput{Email: "a@x.io", Password: "p1", Fullname: "A"}))

	_, err := flow.service.Signin(ctx, &usecase.SigninInput{Email: "a@x.io", Password: "p1"})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotVerified))

	require.NoError(t, flow.service.VerifyEmail(ctx, "a@x.io", flow.mails.lastLinkToken(t)))

	session, err := flow.service.Signin(ctx, &usecase.SigninInput{Email: "a@x.io", Password: "p1"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.True(t, session.UserInfo.IsVerify)

	err = flow.service.Signup(ctx, &usecase.SignupInput{Email: "a@x.io", Password: "p2", Fullname: "A"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailExists))
}

func TestAuthFlow_RefreshAndSignout(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	flow.signupAndVerify(t, "b@x.io", "p1")

	session, err := flow.service.Signin(ctx, &usecase.SigninInput{Email: "b@x.io", Password: "p1"})
	require.NoError(t, err)

	refreshed, err := flow.service.RefreshToken(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// An access token is signed with the other secret.
	_, err = flow.service.RefreshToken(ctx, session.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))

	require.NoError(t, flow.service.Signout(ctx, session.UserInfo.ID))

	_, err = flow.service.RefreshToken(ctx, session.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}

func TestAuthFlow_NewSigninReplacesSession(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	flow.signupAndVerify(t, "c@x.io", "p1")

	first, err := flow.service.Signin(ctx, &usecase.SigninInput{Email: "c@x.io", Password: "p1"})
	require.NoError(t, err)
	second, err := flow.service.Signin(ctx, &usecase.SigninInput{Email: "c@x.io", Password: "p1"})
	require.NoError(t, err)

	_, err = flow.service.RefreshToken(ctx, first.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))

	_, err = flow.service.RefreshToken(ctx, second.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthFlow_ExpiredRefreshToken(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	flow.signupAndVerify(t, "d@x.io", "p1")

	session, err := flow.service.Signin(ctx, &usecase.SigninInput{Email: "d@x.io", Password: "p1"})
	require.NoError(t, err)

	*flow.clock = flow.clock.Add(25 * time.Hour)

	_, err = flow.service.RefreshToken(ctx, session.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}

func TestAuthFlow_ResetPassword(t *testing.T) {
	flow := newAuthFlow(t)
	ctx := context.Background()
	flow.signupAndVerify(t, "e@x.io", "p1")

	require.NoError(t, flow.service.ForgotPassword(ctx, "e@x.io"))
	assert.Len(t, flow.mails.sent, 2)

	err := flow.service.ResetPassword(ctx, "e@x.io", "p1")
	assert.True(t, errors.Is(err, domainerrors.ErrSamePassword))

	require.NoError(t, flow.service.ResetPassword(ctx, "e@x.io", "p2"))

	_, err = flow.service.Signin(ctx, &usecase.SigninInput{Email: "e@x.io", Password: "p1"})
	assert.True(t, errors.Is(err, domainerrors.ErrWrongPassword))

	_, err = flow.service.Signin(ctx, &usecase.SigninInput{Email: "e@x.io", Password: "p2"})
	assert.NoError(t, err)
}
