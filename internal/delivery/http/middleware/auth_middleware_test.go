package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeeper/internal/domain/service"
	"innkeeper/internal/mocks"
)

func invokeAuth(t *testing.T, tokens *mocks.TokenService, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(tokens)
	err := mw.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	return rec, c, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := new(mocks.TokenService)
	userID := uuid.New()
	tokens.On("Validate", "valid-token").Return(&service.Claims{UserID: userID}, nil)

	rec, c, err := invokeAuth(t, tokens, "Bearer valid-token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	tokens.AssertExpectations(t)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := new(mocks.TokenService)

	rec, _, err := invokeAuth(t, tokens, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Authentication required"`)
	tokens.AssertNotCalled(t, "Validate")
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	tokens := new(mocks.TokenService)

	rec, _, err := invokeAuth(t, tokens, "Basic dXNlcjpwYXNz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokens.AssertNotCalled(t, "Validate")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := new(mocks.TokenService)
	tokens.On("Validate", "expired-token").Return(nil, assert.AnError)

	rec, _, err := invokeAuth(t, tokens, "Bearer expired-token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Invalid or expired token"`)
}
