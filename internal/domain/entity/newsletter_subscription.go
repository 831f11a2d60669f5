package entity

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscription records an email subscribed to the newsletter.
// Exactly one subscription exists per normalized email.
type NewsletterSubscription struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
