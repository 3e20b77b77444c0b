package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todoez/internal/delivery/api/middleware"
	"todoez/internal/delivery/api/response"
	"todoez/internal/delivery/api/validator"
	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	mockUsecase "todoez/internal/mocks/usecase"
	"todoez/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context for a JSON request, signed in as actor when non-nil.
func newTestContext(method, target, body string, actor *middleware.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		c.Set("actor", actor)
	}

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Data MessageResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data.Message
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodPost, "/api/auth/signup", `{"email":"not-an-email","password":"p","fullname":"A"}`, nil)

		require.NoError(t, h.Signup(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", info.Code)
		assert.Equal(t, []any{map[string]any{"field": "email", "tag": "email"}}, info.Details)
	})

	t.Run("created", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodPost, "/api/auth/signup", `{"email":"a@x.io","password":"p","fullname":"A"}`, nil)

		authUC.EXPECT().
			Signup(mock.Anything, &usecase.SignupInput{Email: "a@x.io", Password: "p", Fullname: "A"}).
			Return(nil)

		require.NoError(t, h.Signup(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Signup successfully", decodeMessage(t, rec))
	})

	t.Run("email taken", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodPost, "/api/auth/signup", `{"email":"a@x.io","password":"p","fullname":"A"}`, nil)

		authUC.EXPECT().Signup(mock.Anything, mock.Anything).Return(errors.Wrap(domainerrors.ErrEmailExists, "signup"))

		require.NoError(t, h.Signup(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrEmailExists.ErrorCode(), decodeError(t, rec).Code)
	})
}

func TestAuthHandler_RefreshToken_Forbidden(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
	c, rec := newTestContext(http.MethodPost, "/api/auth/refresh", `{"refreshToken":"stale"}`, nil)

	authUC.EXPECT().RefreshToken(mock.Anything, "stale").Return(nil, errors.WithStack(domainerrors.ErrAccessDenied))

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTeamHandler_Create(t *testing.T) {
	t.Run("requires an actor", func(t *testing.T) {
		h := NewTeamHandler(TeamHandlerParams{TeamUC: mockUsecase.NewMockTeamUsecase(t), Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodPost, "/api/teams", `{"name":"core"}`, nil)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		teamUC := mockUsecase.NewMockTeamUsecase(t)
		h := NewTeamHandler(TeamHandlerParams{TeamUC: teamUC, Logger: newDiscardLogger()})
		actor := &middleware.Actor{UserID: uuid.New()}
		c, rec := newTestContext(http.MethodPost, "/api/teams", `{"name":"core"}`, actor)
		team := &entity.Team{ID: uuid.New(), Name: "core"}

		teamUC.EXPECT().Create(mock.Anything, actor.UserID, "core").Return(team, nil)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), team.ID.String())
	})

	t.Run("missing name", func(t *testing.T) {
		h := NewTeamHandler(TeamHandlerParams{TeamUC: mockUsecase.NewMockTeamUsecase(t), Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodPost, "/api/teams", `{}`, &middleware.Actor{UserID: uuid.New()})

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTeamHandler_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		h := NewTeamHandler(TeamHandlerParams{TeamUC: mockUsecase.NewMockTeamUsecase(t), Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodDelete, "/api/teams/nope", "", &middleware.Actor{UserID: uuid.New()})
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
	})

	t.Run("non creator", func(t *testing.T) {
		teamUC := mockUsecase.NewMockTeamUsecase(t)
		h := NewTeamHandler(TeamHandlerParams{TeamUC: teamUC, Logger: newDiscardLogger()})
		actor := &middleware.Actor{UserID: uuid.New()}
		teamID := uuid.New()
		c, rec := newTestContext(http.MethodDelete, "/api/teams/"+teamID.String(), "", actor)
		c.SetParamNames("id")
		c.SetParamValues(teamID.String())

		teamUC.EXPECT().Delete(mock.Anything, actor.UserID, teamID).Return(errors.WithStack(domainerrors.ErrNoPermission))

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "NO_PERMISSION", decodeError(t, rec).Code)
	})

	t.Run("deleted", func(t *testing.T) {
		teamUC := mockUsecase.NewMockTeamUsecase(t)
		h := NewTeamHandler(TeamHandlerParams{TeamUC: teamUC, Logger: newDiscardLogger()})
		actor := &middleware.Actor{UserID: uuid.New()}
		teamID := uuid.New()
		c, rec := newTestContext(http.MethodDelete, "/api/teams/"+teamID.String(), "", actor)
		c.SetParamNames("id")
		c.SetParamValues(teamID.String())

		teamUC.EXPECT().Delete(mock.Anything, actor.UserID, teamID).Return(nil)

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Delete team successfully", decodeMessage(t, rec))
	})
}

func TestMemberHandler_RemoveUsesScopeParam(t *testing.T) {
	projectMemberUC := mockUsecase.NewMockProjectMemberUsecase(t)
	handlers := NewMemberHandlers(MemberHandlerParams{
		TeamMemberUC:    mockUsecase.NewMockTeamMemberUsecase(t),
		ProjectMemberUC: projectMemberUC,
		Logger:          newDiscardLogger(),
	})
	actor := &middleware.Actor{UserID: uuid.New()}
	projectID, membershipID := uuid.New(), uuid.New()
	c, rec := newTestContext(http.MethodDelete, "/api/members/project/x/y", "", actor)
	c.SetParamNames(handlers.Project.ScopeParam(), "id")
	c.SetParamValues(projectID.String(), membershipID.String())

	projectMemberUC.EXPECT().Remove(mock.Anything, actor.UserID, projectID, membershipID).Return(nil)

	require.NoError(t, handlers.Project.Remove(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Delete user from project successfully", decodeMessage(t, rec))
}

func TestTaskHandler_ListMine_Query(t *testing.T) {
	t.Run("binds filters", func(t *testing.T) {
		taskUC := mockUsecase.NewMockTaskUsecase(t)
		h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC, Logger: newDiscardLogger()})
		actor := &middleware.Actor{UserID: uuid.New()}
		c, rec := newTestContext(http.MethodGet, "/api/tasks/my-task?status=done&keyword=login&page=2&limit=5", "", actor)

		taskUC.EXPECT().
			ListMine(mock.Anything, actor.UserID, mock.MatchedBy(func(q *usecase.TaskQuery) bool {
				return q.Status == entity.TaskStatusDone &&
					q.Keyword == "login" &&
					q.Page == entity.PageRequest{Page: 2, Limit: 5}
			})).
			Return(&entity.Page[*entity.Task]{Total: 0, List: []*entity.Task{}}, nil)

		require.NoError(t, h.ListMine(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		h := NewTaskHandler(TaskHandlerParams{TaskUC: mockUsecase.NewMockTaskUsecase(t), Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodGet, "/api/tasks/my-task?status=archived", "", &middleware.Actor{UserID: uuid.New()})

		require.NoError(t, h.ListMine(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"field":"status"`)
	})
}

func TestPageRequest(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/?page=0&limit=1000", "", nil)
	page, err := pageRequest(c)
	require.NoError(t, err)
	assert.Equal(t, entity.PageRequest{Page: 1, Limit: entity.MaxPageLimit}, page)

	c, _ = newTestContext(http.MethodGet, "/?page=9223372036854775807&limit=100", "", nil)
	page, err = pageRequest(c)
	require.NoError(t, err)
	assert.Positive(t, page.Offset())

	c, _ = newTestContext(http.MethodGet, "/?page=abc", "", nil)
	_, err = pageRequest(c)
	assert.Error(t, err)
}
