package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeeper/config"
	domainerrors "innkeeper/internal/domain/errors"
)

func handleError(t *testing.T, env string, err error) *httptest.ResponseRecorder {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/hotels", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewErrorMiddleware(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	mw.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	err := domainerrors.NewValidationError(
		domainerrors.FieldError{Field: "email", Message: "Please provide a valid email"},
		domainerrors.FieldError{Field: "password", Message: "Password is required"},
	)

	rec := handleError(t, "development", err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Success bool                      `json:"success"`
		Errors  []domainerrors.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	require.Len(t, envelope.Errors, 2)
	assert.Equal(t, "email", envelope.Errors[0].Field)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	// Handlers wrap usecase errors with a stack; the mapping must unwrap.
	err := pkgerrors.WithStack(domainerrors.ErrInvalidCredentials)

	rec := handleError(t, "development", err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Invalid credentials"`)
}

func TestErrorMiddleware_EchoNotFound(t *testing.T) {
	rec := handleError(t, "development", echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Route not found"`)
}

func TestErrorMiddleware_UnhandledError_Development(t *testing.T) {
	rec := handleError(t, "development", pkgerrors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Something went wrong!"`)
	assert.Contains(t, rec.Body.String(), "pq: connection refused")
}

func TestErrorMiddleware_UnhandledError_ProductionRedactsDetail(t *testing.T) {
	rec := handleError(t, "production", pkgerrors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Something went wrong!"`)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.NotContains(t, rec.Body.String(), `"error"`)
}
