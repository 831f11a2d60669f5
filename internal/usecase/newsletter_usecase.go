package usecase

import (
	"context"

	"innkeeper/internal/domain/entity"
)

// NewsletterUsecase defines the interface for newsletter subscriptions.
type NewsletterUsecase interface {
	// Subscribe adds an email to the newsletter. A duplicate normalized
	// email fails with the already-subscribed error.
	Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscription, error)

	// Unsubscribe removes an email from the newsletter. Unsubscribing an
	// email that was never subscribed is not an error.
	Unsubscribe(ctx context.Context, email string) error
}
