package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"innkeeper/internal/delivery/http/response"
	"innkeeper/internal/domain/service"
)

// ContextKeyUserID is the echo.Context key the authenticated user's ID is stored under.
const ContextKeyUserID = "userID"

// AuthMiddleware authenticates requests carrying a bearer token.
type AuthMiddleware struct {
	tokens service.TokenService
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate validates the Authorization header and stores the user ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return response.Fail(c, http.StatusUnauthorized, "Authentication required")
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return response.Fail(c, http.StatusUnauthorized, "Authentication required")
		}

		claims, err := m.tokens.Validate(tokenString)
		if err != nil {
			return response.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}
