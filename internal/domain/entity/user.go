// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. One user exists per normalized email;
// accounts are created only through registration and are never hard-deleted.
type User struct {
	ID             uuid.UUID `json:"id"`        // The unique identifier for the user, assigned at creation.
	Name           string    `json:"name"`      // The user's display name.
	Email          string    `json:"email"`     // Normalized (trimmed, lowercased) email, used as the login key.
	PasswordDigest string    `json:"-"`         // One-way bcrypt digest. Never serialized; loaded only by the credential lookup.
	CreatedAt      time.Time `json:"createdAt"` // Timestamp of when this account was created.
	UpdatedAt      time.Time `json:"updatedAt"` // Timestamp of the last modification to this account.
}

// NormalizeEmail canonicalizes an email address for storage and lookup.
// Uniqueness is enforced over this normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
