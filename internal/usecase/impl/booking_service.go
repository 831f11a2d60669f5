package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "innkeeper/internal/delivery/context"
	"innkeeper/internal/domain/entity"
	domainerrors "innkeeper/internal/domain/errors"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/domain/service"
	"innkeeper/internal/usecase"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookingRepo repository.BookingRepository
	hotelRepo   repository.HotelRepository
	publisher   service.EventPublisher
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for bookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	BookingRepo repository.BookingRepository
	HotelRepo   repository.HotelRepository
	Publisher   service.EventPublisher
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo: params.BookingRepo,
		hotelRepo:   params.HotelRepo,
		publisher:   params.Publisher,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBooking reserves a stay. The total price is fixed at creation as the
// hotel's nightly price times the number of nights; later price changes on
// the hotel do not affect existing bookings.
func (srv *bookingService) CreateBooking(ctx context.Context, input usecase.CreateBookingInput) (*entity.Booking, error) {
	hotel, err := srv.hotelRepo.FindByID(ctx, input.HotelID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, domainerrors.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to load hotel for booking")
	}

	booking := &entity.Booking{
		UserID:   input.UserID,
		HotelID:  hotel.ID,
		CheckIn:  input.CheckIn,
		CheckOut: input.CheckOut,
		Guests:   input.Guests,
		Status:   entity.BookingStatusConfirmed,
	}
	booking.TotalPrice = hotel.Price * int64(booking.Nights())

	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking created",
		slog.String("bookingId", booking.ID.String()),
		slog.String("hotelId", hotel.ID.String()),
		slog.Int64("totalPrice", booking.TotalPrice),
	)

	srv.publishBookingEvent(ctx, service.EventTypeBookingCreated, booking)

	return booking, nil
}

// ListBookings returns the acting user's bookings, newest first.
func (srv *bookingService) ListBookings(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// GetBooking returns one of the acting user's bookings. A booking owned by
// another user is reported as missing.
func (srv *bookingService) GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*entity.Booking, error) {
	return srv.loadOwnBooking(ctx, bookingID, userID)
}

// CancelBooking marks one of the acting user's bookings cancelled.
func (srv *bookingService) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.loadOwnBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, domainerrors.ErrBookingAlreadyCancelled
	}

	booking.Status = entity.BookingStatusCancelled
	if err := srv.bookingRepo.Update(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to cancel booking")
	}

	srv.log(ctx).Info("Booking cancelled", slog.String("bookingId", booking.ID.String()))

	srv.publishBookingEvent(ctx, service.EventTypeBookingCancelled, booking)

	return booking, nil
}

// BookingQRCode renders a confirmation QR code for one of the acting user's bookings.
func (srv *bookingService) BookingQRCode(ctx context.Context, bookingID, userID uuid.UUID) ([]byte, error) {
	booking, err := srv.loadOwnBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateBookingQR(booking.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate booking QR code")
	}

	return png, nil
}

func (srv *bookingService) loadOwnBooking(ctx context.Context, bookingID, userID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to load booking")
	}

	// Ownership failures look identical to missing bookings.
	if booking.UserID != userID {
		return nil, domainerrors.ErrBookingNotFound
	}

	return booking, nil
}

// publishBookingEvent announces a booking change best-effort. Publish
// failures are logged and never fail the request.
func (srv *bookingService) publishBookingEvent(ctx context.Context, eventType string, booking *entity.Booking) {
	if srv.publisher == nil {
		return
	}

	event := &service.BookingEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		BookingID: booking.ID.String(),
		UserID:    booking.UserID.String(),
		HotelID:   booking.HotelID.String(),
		CheckIn:   booking.CheckIn.Format(time.DateOnly),
		CheckOut:  booking.CheckOut.Format(time.DateOnly),
	}
	if err := srv.publisher.PublishBookingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish booking event",
			slog.String("type", eventType),
			slog.String("bookingId", booking.ID.String()),
			slog.Any("error", err),
		)
	}
}
