package repository

import (
	"context"
	"errors"

	"innkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when a booking lookup matches nothing.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the standard operations for booking persistence.
type BookingRepository interface {
	// FindByID retrieves a single booking by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// ListByUserID returns all bookings made by a user, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)

	// Create persists a new booking.
	Create(ctx context.Context, booking *entity.Booking) error

	// Update modifies an existing booking (status changes).
	Update(ctx context.Context, booking *entity.Booking) error
}
