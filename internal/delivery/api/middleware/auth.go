package middleware

import (
	"strings"

	"todoez/internal/delivery/api/response"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// Actor is the authenticated caller of a request.
type Actor struct {
	UserID uuid.UUID
	Email  string
}

// AuthMiddleware validates bearer access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the access token and stores the Actor for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrTokenMissing)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		payload, err := m.tokenSvc.Verify(tokenString, service.ScopeAccess)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		c.Set(actorKey, &Actor{UserID: payload.UserID, Email: payload.Email})

		return next(c)
	}
}

// ActorFrom returns the Actor stored by Authenticate.
func ActorFrom(c echo.Context) (*Actor, bool) {
	actor, ok := c.Get(actorKey).(*Actor)

	return actor, ok && actor != nil
}
