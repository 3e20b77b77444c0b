package auth

import (
	"testing"
	"time"

	"todoez/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOptions() JWTOptions {
	return JWTOptions{
		AccessSecret:  "test_access_secret_key_very_long_for_testing",
		RefreshSecret: "test_refresh_secret_key_very_long_for_testing",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	}
}

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(newTestOptions())
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, err := svc.IssueAccessToken(userID, "a@x.com")
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefreshToken(userID, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	access, err := svc.Verify(accessToken, service.ScopeAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, access.UserID)
	assert.Equal(t, "a@x.com", access.Email)
	assert.Equal(t, service.ScopeAccess, access.Scope)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), access.ExpiresAt, 5*time.Second)

	refresh, err := svc.Verify(refreshToken, service.ScopeRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refresh.UserID)
	assert.Equal(t, service.ScopeRefresh, refresh.Scope)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	first, err := svc.IssueRefreshToken(userID, "a@x.com")
	require.NoError(t, err)
	second, err := svc.IssueRefreshToken(userID, "a@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_VerifyRejectsWrongScope(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, err := svc.IssueAccessToken(userID, "a@x.com")
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefreshToken(userID, "a@x.com")
	require.NoError(t, err)

	_, err = svc.Verify(accessToken, service.ScopeRefresh)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = svc.Verify(refreshToken, service.ScopeAccess)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_VerifyRejectsExpired(t *testing.T) {
	opts := newTestOptions()
	opts.Now = func() time.Time { return time.Now().Add(-30 * 24 * time.Hour) }
	issuer, err := NewJWTService(opts)
	require.NoError(t, err)

	expired, err := issuer.IssueRefreshToken(uuid.New(), "a@x.com")
	require.NoError(t, err)

	_, err = newTestJWTService(t).Verify(expired, service.ScopeRefresh)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_VerifyRejectsForeignSecret(t *testing.T) {
	opts := newTestOptions()
	opts.RefreshSecret = "another_refresh_secret_used_by_an_attacker"
	foreign, err := NewJWTService(opts)
	require.NoError(t, err)

	token, err := foreign.IssueRefreshToken(uuid.New(), "a@x.com")
	require.NoError(t, err)

	_, err = newTestJWTService(t).Verify(token, service.ScopeRefresh)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_VerifyRejectsOtherAlgorithms(t *testing.T) {
	opts := newTestOptions()
	claims := tokenClaims{
		Type: string(service.ScopeAccess),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(opts.AccessSecret))
	require.NoError(t, err)

	_, err = newTestJWTService(t).Verify(token, service.ScopeAccess)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_VerifyRejectsMalformed(t *testing.T) {
	svc := newTestJWTService(t)

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		payload, err := svc.Verify(token, service.ScopeAccess)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, payload)
	}
}

func TestNewJWTService_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*JWTOptions)
		wantErr string
	}{
		{name: "empty secrets", mutate: func(o *JWTOptions) { o.AccessSecret, o.RefreshSecret = "", "" }, wantErr: "jwt secrets must be provided"},
		{name: "shared secret", mutate: func(o *JWTOptions) { o.RefreshSecret = o.AccessSecret }, wantErr: "must differ"},
		{name: "zero ttl", mutate: func(o *JWTOptions) { o.AccessTTL = 0 }, wantErr: "lifetimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := newTestOptions()
			tt.mutate(&opts)

			svc, err := NewJWTService(opts)
			require.Error(t, err)
			assert.Nil(t, svc)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
