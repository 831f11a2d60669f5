package repository

import (
	"context"

	"innkeeper/internal/domain/entity"
)

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	// Create persists a new contact message.
	Create(ctx context.Context, msg *entity.ContactMessage) error
}
