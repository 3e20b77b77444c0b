// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"todoez/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// JWTOptions holds the signing material of the token service.
type JWTOptions struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	// Now overrides the clock, used by tests. Defaults to time.Now.
	Now func() time.Time
}

// tokenClaims is the JWT body: sub carries the user id.
type tokenClaims struct {
	Email string `json:"email"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService implements service.TokenService with HS256 tokens.
type jwtService struct {
	secrets map[service.TokenScope][]byte
	ttls    map[service.TokenScope]time.Duration
	now     func() time.Time
}

// NewJWTService validates the options and returns a token service.
func NewJWTService(opts JWTOptions) (service.TokenService, error) {
	if opts.AccessSecret == "" || opts.RefreshSecret == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if opts.AccessSecret == opts.RefreshSecret {
		return nil, errors.New("access and refresh secrets must differ")
	}
	if opts.AccessTTL <= 0 || opts.RefreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &jwtService{
		secrets: map[service.TokenScope][]byte{
			service.ScopeAccess:  []byte(opts.AccessSecret),
			service.ScopeRefresh: []byte(opts.RefreshSecret),
		},
		ttls: map[service.TokenScope]time.Duration{
			service.ScopeAccess:  opts.AccessTTL,
			service.ScopeRefresh: opts.RefreshTTL,
		},
		now: now,
	}, nil
}

func (s *jwtService) IssueAccessToken(userID uuid.UUID, email string) (string, error) {
	return s.issue(userID, email, service.ScopeAccess)
}

func (s *jwtService) IssueRefreshToken(userID uuid.UUID, email string) (string, error) {
	return s.issue(userID, email, service.ScopeRefresh)
}

// Verify parses the token with the secret of scope. Every failure maps to service.ErrInvalidToken.
func (s *jwtService) Verify(token string, scope service.TokenScope) (*service.TokenPayload, error) {
	secret, ok := s.secrets[scope]
	if !ok {
		return nil, errors.Wrapf(service.ErrInvalidToken, "unknown token scope %q", scope)
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	if claims.Type != string(scope) {
		return nil, errors.Wrapf(service.ErrInvalidToken, "token type %q does not match scope %q", claims.Type, scope)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, "subject is not a user id")
	}

	return &service.TokenPayload{
		UserID:    userID,
		Email:     claims.Email,
		Scope:     scope,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *jwtService) issue(userID uuid.UUID, email string, scope service.TokenScope) (string, error) {
	issuedAt := s.now()
	claims := tokenClaims{
		Email: email,
		Type:  string(scope),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttls[scope])),
			// A unique id keeps two tokens issued within the same second distinct.
			ID: uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secrets[scope])
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s token", scope)
	}

	return signed, nil
}
