package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "todoez/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedServer(t *testing.T, verbose bool) (*echo.Echo, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(RequestScope(logger))
	e.Use(AccessLog(logger, verbose))

	return e, &buf
}

func TestRequestScope(t *testing.T) {
	e, _ := newLoggedServer(t, false)

	var seenID string
	var seenLogger *slog.Logger
	e.GET("/ping", func(c echo.Context) error {
		seenID = deliverycontext.RequestIDFrom(c.Request().Context())
		seenLogger = deliverycontext.LoggerFrom(c.Request().Context(), nil)
		assert.Equal(t, seenID, deliverycontext.RequestID(c))

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-7", seenID)
		assert.Equal(t, "req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.NotNil(t, seenLogger)
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.NotEmpty(t, seenID)
		assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestAccessLog_QuietLogsOnlyServerFailures(t *testing.T) {
	e, buf := newLoggedServer(t, false)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Empty(t, buf.String())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, buf.String(), `"status":502`)
	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestAccessLog_VerboseLogsEverything(t *testing.T) {
	e, buf := newLoggedServer(t, true)
	e.GET("/missing", func(c echo.Context) error { return echo.ErrNotFound })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))

	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"query":"x=1"`)
}
