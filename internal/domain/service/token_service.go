package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TokenScope selects the signing secret a token is issued and verified with.
type TokenScope string

const (
	ScopeAccess  TokenScope = "access"
	ScopeRefresh TokenScope = "refresh"
)

// ErrInvalidToken is returned for malformed, expired or wrongly signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// TokenPayload is the verified content of a token.
type TokenPayload struct {
	UserID    uuid.UUID
	Email     string
	Scope     TokenScope
	ExpiresAt time.Time
}

// TokenService issues and verifies signed tokens.
// Access and refresh tokens are signed with different secrets.
type TokenService interface {
	// IssueAccessToken creates a short-lived token for the user.
	IssueAccessToken(userID uuid.UUID, email string) (string, error)

	// IssueRefreshToken creates a long-lived token for the user.
	IssueRefreshToken(userID uuid.UUID, email string) (string, error)

	// Verify checks signature and expiry with the secret of the given scope.
	Verify(token string, scope TokenScope) (*TokenPayload, error)
}
