package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"todoez/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const testClientID = "test_client_id.apps.googleusercontent.com"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stubValidator(payload *idtoken.Payload, err error) ValidateFunc {
	return func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		if audience != testClientID {
			return nil, errors.Errorf("unexpected audience %q", audience)
		}

		return payload, err
	}
}

func validPayload() *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: testClientID,
		Subject:  "10769150350006150715113082367",
		Claims: map[string]any{
			"email":          "jane@example.com",
			"email_verified": true,
			"name":           "Jane Doe",
			"picture":        "https://lh3.googleusercontent.com/a/photo.jpg",
		},
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	svc := newAuthService(testClientID, stubValidator(validPayload(), nil), newDiscardLogger())

	user, err := svc.VerifyIDToken(context.Background(), "header.payload.signature")
	require.NoError(t, err)
	assert.Equal(t, "10769150350006150715113082367", user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "https://lh3.googleusercontent.com/a/photo.jpg", user.AvatarURL)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*idtoken.Payload)
		err     error
		token   string
		wantErr string
	}{
		{name: "validator error", err: errors.New("idtoken: token expired"), token: "t", wantErr: "invalid ID token"},
		{name: "foreign issuer", mutate: func(p *idtoken.Payload) { p.Issuer = "https://evil.example.com" }, token: "t", wantErr: "invalid issuer"},
		{name: "unverified email", mutate: func(p *idtoken.Payload) { p.Claims["email_verified"] = false }, token: "t", wantErr: "email not verified"},
		{name: "missing email", mutate: func(p *idtoken.Payload) { delete(p.Claims, "email") }, token: "t", wantErr: "no email claim"},
		{name: "empty token", token: "", wantErr: "empty ID token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			if tt.mutate != nil {
				tt.mutate(payload)
			}
			svc := newAuthService(testClientID, stubValidator(payload, tt.err), newDiscardLogger())

			user, err := svc.VerifyIDToken(context.Background(), tt.token)
			require.Error(t, err)
			assert.Nil(t, user)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAuthService_StringEmailVerified(t *testing.T) {
	payload := validPayload()
	payload.Claims["email_verified"] = "true"
	svc := newAuthService(testClientID, stubValidator(payload, nil), newDiscardLogger())

	user, err := svc.VerifyIDToken(context.Background(), "t")
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_MissingClientID(t *testing.T) {
	svc := NewAuthService("", newDiscardLogger())

	_, err := svc.VerifyIDToken(context.Background(), "t")
	assert.ErrorContains(t, err, "client id")
}

func TestAuthService_GetProvider(t *testing.T) {
	svc := NewAuthService(testClientID, newDiscardLogger())

	assert.Equal(t, service.ProviderGoogle, svc.GetProvider())
}
