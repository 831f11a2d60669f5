package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"innkeeper/internal/domain/entity"
)

// CreateBookingInput defines the data required to book a stay.
type CreateBookingInput struct {
	UserID   uuid.UUID
	HotelID  uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// BookingUsecase defines the interface for booking operations.
// Every operation is scoped to the acting user; bookings of other
// users are indistinguishable from missing ones.
type BookingUsecase interface {
	// CreateBooking reserves a stay. The total price is the hotel's nightly
	// price times the number of nights, fixed at creation time.
	CreateBooking(ctx context.Context, input CreateBookingInput) (*entity.Booking, error)

	// ListBookings returns the acting user's bookings, newest first.
	ListBookings(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)

	// GetBooking returns one of the acting user's bookings.
	GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*entity.Booking, error)

	// CancelBooking marks one of the acting user's bookings cancelled.
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) (*entity.Booking, error)

	// BookingQRCode renders a confirmation QR code for one of the acting
	// user's bookings as a PNG image.
	BookingQRCode(ctx context.Context, bookingID, userID uuid.UUID) ([]byte, error)
}
