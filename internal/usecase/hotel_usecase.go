package usecase

import (
	"context"

	"github.com/google/uuid"

	"innkeeper/internal/domain/entity"
)

// ListHotelsInput narrows the hotel listing.
type ListHotelsInput struct {
	City string
}

// CreateHotelInput defines the data required to create a hotel listing.
type CreateHotelInput struct {
	Name        string
	City        string
	Address     string
	Description string
	Price       int64
	StarRating  int
	Amenities   []string
	Images      []string
	OwnerID     uuid.UUID
}

// UpdateHotelInput defines the data required to update a hotel listing.
// The actor must own the listing.
type UpdateHotelInput struct {
	HotelID     uuid.UUID
	ActorID     uuid.UUID
	Name        string
	City        string
	Address     string
	Description string
	Price       int64
	StarRating  int
	Amenities   []string
	Images      []string
}

// HotelUsecase defines the interface for hotel inventory operations.
type HotelUsecase interface {
	// ListHotels returns hotels, optionally filtered by city.
	ListHotels(ctx context.Context, input ListHotelsInput) ([]*entity.Hotel, error)

	// GetHotel returns a single hotel by ID.
	GetHotel(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)

	// CreateHotel adds a listing owned by the acting user.
	CreateHotel(ctx context.Context, input CreateHotelInput) (*entity.Hotel, error)

	// UpdateHotel modifies a listing. Only the owner may update it.
	UpdateHotel(ctx context.Context, input UpdateHotelInput) (*entity.Hotel, error)

	// DeleteHotel removes a listing. Only the owner may delete it.
	DeleteHotel(ctx context.Context, hotelID, actorID uuid.UUID) error
}
