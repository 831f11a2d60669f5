package repository

import (
	"context"
	"errors"

	"innkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHotelNotFound is returned when a hotel lookup matches nothing.
var ErrHotelNotFound = errors.New("hotel not found")

// HotelFilter narrows hotel listings. Zero values mean "no filter".
type HotelFilter struct {
	City string
}

// HotelRepository defines the standard operations for hotel persistence.
type HotelRepository interface {
	// FindByID retrieves a single hotel by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)

	// List returns hotels matching the filter, newest first.
	List(ctx context.Context, filter HotelFilter) ([]*entity.Hotel, error)

	// Count returns the total number of hotels in the inventory.
	Count(ctx context.Context) (int64, error)

	// Create persists a new hotel.
	Create(ctx context.Context, hotel *entity.Hotel) error

	// CreateBatch persists several hotels at once (seeding).
	CreateBatch(ctx context.Context, hotels []*entity.Hotel) error

	// Update modifies an existing hotel.
	Update(ctx context.Context, hotel *entity.Hotel) error

	// Delete removes a hotel by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll clears the hotel inventory (seeding reset).
	DeleteAll(ctx context.Context) (int64, error)
}
