package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"innkeeper/config"
	"innkeeper/internal/delivery/http/middleware"
	"innkeeper/internal/delivery/http/validator"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an Echo instance with the same validator and error
// handling the real server installs, so handler tests observe the final
// response envelope instead of raw handler errors.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "test"

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(cfg, discardLogger()).HandleHTTPError

	return e
}

// doJSON performs a JSON request against the Echo instance and returns the recorder.
func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// withActor registers the routes behind a stub auth middleware that always
// authenticates as the given user.
func withActor(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyUserID, userID)

			return next(c)
		}
	}
}

func requireJSONBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	return rec.Body.String()
}

func mustRequest(t *testing.T, e *echo.Echo, method, target, body string, wantCode int) string {
	t.Helper()

	rec := doJSON(e, method, target, body)
	require.Equal(t, wantCode, rec.Code, "unexpected status, body: %s", rec.Body.String())

	return requireJSONBody(t, rec)
}
