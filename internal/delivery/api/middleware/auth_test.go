package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"todoez/internal/domain/service"
	mockSvc "todoez/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, header string) (*httptest.ResponseRecorder, *Actor) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *Actor
	next := func(c echo.Context) error {
		seen, _ = ActorFrom(c)

		return c.NoContent(http.StatusNoContent)
	}

	require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(next)(c))

	return rec, seen
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		rec, actor := runAuthenticate(t, mockSvc.NewMockTokenService(t), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
		assert.Nil(t, actor)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec, actor := runAuthenticate(t, mockSvc.NewMockTokenService(t), "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
		assert.Nil(t, actor)
	})

	t.Run("rejected token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().Verify("expired", service.ScopeAccess).Return(nil, errors.New("token expired"))

		rec, actor := runAuthenticate(t, tokenSvc, "Bearer expired")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
		assert.Nil(t, actor)
	})

	t.Run("valid token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		userID := uuid.New()
		tokenSvc.EXPECT().
			Verify("good", service.ScopeAccess).
			Return(&service.TokenPayload{UserID: userID, Email: "a@x.io", Scope: service.ScopeAccess}, nil)

		rec, actor := runAuthenticate(t, tokenSvc, "Bearer good")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, actor)
		assert.Equal(t, userID, actor.UserID)
		assert.Equal(t, "a@x.io", actor.Email)
	})
}

func TestActorFrom_Empty(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := ActorFrom(c)
	assert.False(t, ok)
}
