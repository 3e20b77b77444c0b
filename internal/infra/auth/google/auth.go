package google

import (
	"context"
	"log/slog"

	"todoez/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// ValidateFunc checks the signature, expiry and audience of an ID token.
type ValidateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl verifies Google ID tokens against Google's public keys.
type AuthServiceImpl struct {
	clientID string
	validate ValidateFunc
	logger   *slog.Logger
}

// NewAuthService creates a verifier whose expected audience is clientID.
func NewAuthService(clientID string, logger *slog.Logger) service.OAuthAuthService {
	return newAuthService(clientID, idtoken.Validate, logger)
}

func newAuthService(clientID string, validate ValidateFunc, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		clientID: clientID,
		validate: validate,
		logger:   logger,
	}
}

// VerifyIDToken implements service.OAuthAuthService.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}
	if idToken == "" {
		return nil, errors.New("empty ID token")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}
	if user.Email == "" {
		return nil, errors.New("token has no email claim")
	}
	if !user.EmailVerified {
		return nil, errors.New("email not verified")
	}

	s.logger.DebugContext(ctx, "Google ID token verified",
		slog.String("subject", user.ID),
		slog.String("email", user.Email))

	return user, nil
}

// GetProvider returns the OAuth provider name.
func (s *AuthServiceImpl) GetProvider() string {
	return service.ProviderGoogle
}

func claimString(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}

// Google sends email_verified as a bool, older tokens as the string "true".
func claimBool(claims map[string]any, key string) bool {
	switch value := claims[key].(type) {
	case bool:
		return value
	case string:
		return value == "true"
	default:
		return false
	}
}
