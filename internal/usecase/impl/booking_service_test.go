package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"innkeeper/internal/domain/entity"
	domainerrors "innkeeper/internal/domain/errors"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/domain/service"
	"innkeeper/internal/mocks"
	"innkeeper/internal/usecase"
)

func newBookingFixture() (*mocks.BookingRepository, *mocks.HotelRepository, *mocks.EventPublisher, *mocks.QRCodeService, usecase.BookingUsecase) {
	bookingRepo := &mocks.BookingRepository{}
	hotelRepo := &mocks.HotelRepository{}
	publisher := &mocks.EventPublisher{}
	qrService := &mocks.QRCodeService{}

	svc := NewBookingService(BookingServiceParams{
		BookingRepo: bookingRepo,
		HotelRepo:   hotelRepo,
		Publisher:   publisher,
		QRService:   qrService,
		Logger:      discardLogger(),
	})

	return bookingRepo, hotelRepo, publisher, qrService, svc
}

func TestBookingService_CreateBooking_PriceIsNightlyTimesNights(t *testing.T) {
	bookingRepo, hotelRepo, publisher, _, svc := newBookingFixture()
	ctx := context.Background()
	userID := uuid.New()
	hotelID := uuid.New()

	hotelRepo.On("FindByID", ctx, hotelID).Return(&entity.Hotel{
		ID:    hotelID,
		Price: 2500,
	}, nil)
	bookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			booking := args.Get(1).(*entity.Booking)
			booking.ID = uuid.New()
		}).
		Return(nil)
	publisher.On("PublishBookingEvent", ctx, mock.AnythingOfType("*service.BookingEvent")).Return(nil)

	checkIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	booking, err := svc.CreateBooking(ctx, usecase.CreateBookingInput{
		UserID:   userID,
		HotelID:  hotelID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7500), booking.TotalPrice) // 2500 x 3 nights
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)

	publisher.AssertExpectations(t)
}

func TestBookingService_CreateBooking_HotelMissing(t *testing.T) {
	bookingRepo, hotelRepo, _, _, svc := newBookingFixture()
	ctx := context.Background()
	hotelID := uuid.New()

	hotelRepo.On("FindByID", ctx, hotelID).Return(nil, repository.ErrHotelNotFound)

	booking, err := svc.CreateBooking(ctx, usecase.CreateBookingInput{
		UserID:  uuid.New(),
		HotelID: hotelID,
	})
	require.Error(t, err)
	assert.Nil(t, booking)
	assert.True(t, errors.Is(err, domainerrors.ErrHotelNotFound))

	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_PublishFailureDoesNotFail(t *testing.T) {
	bookingRepo, hotelRepo, publisher, _, svc := newBookingFixture()
	ctx := context.Background()
	hotelID := uuid.New()

	hotelRepo.On("FindByID", ctx, hotelID).Return(&entity.Hotel{ID: hotelID, Price: 1000}, nil)
	bookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	publisher.On("PublishBookingEvent", ctx, mock.AnythingOfType("*service.BookingEvent")).
		Return(errors.New("broker unavailable"))

	checkIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	booking, err := svc.CreateBooking(ctx, usecase.CreateBookingInput{
		UserID:   uuid.New(),
		HotelID:  hotelID,
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, 1),
		Guests:   1,
	})

	// Publishing is best-effort; the booking still succeeds.
	require.NoError(t, err)
	assert.NotNil(t, booking)
}

func TestBookingService_GetBooking_OtherUsersBookingLooksMissing(t *testing.T) {
	bookingRepo, _, _, _, svc := newBookingFixture()
	ctx := context.Background()
	bookingID := uuid.New()

	bookingRepo.On("FindByID", ctx, bookingID).Return(&entity.Booking{
		ID:     bookingID,
		UserID: uuid.New(),
	}, nil)

	booking, err := svc.GetBooking(ctx, bookingID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, booking)
	assert.True(t, errors.Is(err, domainerrors.ErrBookingNotFound))
}

func TestBookingService_CancelBooking(t *testing.T) {
	bookingRepo, _, publisher, _, svc := newBookingFixture()
	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()

	bookingRepo.On("FindByID", ctx, bookingID).Return(&entity.Booking{
		ID:     bookingID,
		UserID: userID,
		Status: entity.BookingStatusConfirmed,
	}, nil)
	bookingRepo.On("Update", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	publisher.On("PublishBookingEvent", ctx, mock.MatchedBy(func(event *service.BookingEvent) bool {
		return event.Type == service.EventTypeBookingCancelled
	})).Return(nil)

	booking, err := svc.CancelBooking(ctx, bookingID, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
}

func TestBookingService_CancelBooking_AlreadyCancelled(t *testing.T) {
	bookingRepo, _, _, _, svc := newBookingFixture()
	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()

	bookingRepo.On("FindByID", ctx, bookingID).Return(&entity.Booking{
		ID:     bookingID,
		UserID: userID,
		Status: entity.BookingStatusCancelled,
	}, nil)

	booking, err := svc.CancelBooking(ctx, bookingID, userID)
	require.Error(t, err)
	assert.Nil(t, booking)
	assert.True(t, errors.Is(err, domainerrors.ErrBookingAlreadyCancelled))

	bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBookingService_BookingQRCode(t *testing.T) {
	bookingRepo, _, _, qrService, svc := newBookingFixture()
	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()

	bookingRepo.On("FindByID", ctx, bookingID).Return(&entity.Booking{
		ID:     bookingID,
		UserID: userID,
	}, nil)
	qrService.On("GenerateBookingQR", bookingID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := svc.BookingQRCode(ctx, bookingID, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
