package repository

import (
	"context"
	"errors"

	"innkeeper/internal/domain/entity"
)

// ErrSubscriptionNotFound is returned when no subscription exists for an email.
var ErrSubscriptionNotFound = errors.New("newsletter subscription not found")

// NewsletterRepository persists newsletter subscriptions; the store enforces
// one subscription per normalized email.
type NewsletterRepository interface {
	// FindByEmail retrieves a subscription by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error)

	// Create persists a new subscription.
	Create(ctx context.Context, sub *entity.NewsletterSubscription) error

	// DeleteByEmail removes the subscription for an email, if any.
	// It returns ErrSubscriptionNotFound when nothing was removed.
	DeleteByEmail(ctx context.Context, email string) error
}
