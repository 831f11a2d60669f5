package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are opaque to the rest of the application and are never persisted;
// validity is determined solely by signature and expiry.
type TokenService interface {
	// Issue creates a signed, time-limited token bound to the user ID.
	Issue(userID uuid.UUID) (string, error)

	// Validate checks the signature and expiry of a token string.
	Validate(tokenString string) (*Claims, error)
}
