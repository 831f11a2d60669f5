package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hotel represents a bookable property in the inventory.
type Hotel struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Price       int64     `json:"price"` // Nightly price in the smallest currency unit.
	StarRating  int       `json:"starRating"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	OwnerID     uuid.UUID `json:"ownerId"` // The user that manages this listing.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
