package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscriptionModel mirrors the 'newsletter_subscriptions' table.
// The unique index on email keeps one row per normalized address.
type NewsletterSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsletterSubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}
