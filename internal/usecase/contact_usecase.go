package usecase

import (
	"context"

	"innkeeper/internal/domain/entity"
)

// SubmitContactInput defines the data submitted through the contact form.
type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactUsecase defines the interface for the public contact form.
type ContactUsecase interface {
	// SubmitContact persists a contact message and announces it best-effort.
	SubmitContact(ctx context.Context, input SubmitContactInput) (*entity.ContactMessage, error)
}
