package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"innkeeper/internal/domain/entity"
	"innkeeper/internal/usecase"
)

// AuthUsecase is a mock implementation of usecase.AuthUsecase.
type AuthUsecase struct {
	mock.Mock
}

func (_m *AuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	ret := _m.Called(ctx, input)

	var out *usecase.AuthOutput
	if ret.Get(0) != nil {
		out = ret.Get(0).(*usecase.AuthOutput)
	}

	return out, ret.Error(1)
}

func (_m *AuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	ret := _m.Called(ctx, input)

	var out *usecase.AuthOutput
	if ret.Get(0) != nil {
		out = ret.Get(0).(*usecase.AuthOutput)
	}

	return out, ret.Error(1)
}

// HotelUsecase is a mock implementation of usecase.HotelUsecase.
type HotelUsecase struct {
	mock.Mock
}

func (_m *HotelUsecase) ListHotels(ctx context.Context, input usecase.ListHotelsInput) ([]*entity.Hotel, error) {
	ret := _m.Called(ctx, input)

	var hotels []*entity.Hotel
	if ret.Get(0) != nil {
		hotels = ret.Get(0).([]*entity.Hotel)
	}

	return hotels, ret.Error(1)
}

func (_m *HotelUsecase) GetHotel(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	ret := _m.Called(ctx, id)

	var hotel *entity.Hotel
	if ret.Get(0) != nil {
		hotel = ret.Get(0).(*entity.Hotel)
	}

	return hotel, ret.Error(1)
}

func (_m *HotelUsecase) CreateHotel(ctx context.Context, input usecase.CreateHotelInput) (*entity.Hotel, error) {
	ret := _m.Called(ctx, input)

	var hotel *entity.Hotel
	if ret.Get(0) != nil {
		hotel = ret.Get(0).(*entity.Hotel)
	}

	return hotel, ret.Error(1)
}

func (_m *HotelUsecase) UpdateHotel(ctx context.Context, input usecase.UpdateHotelInput) (*entity.Hotel, error) {
	ret := _m.Called(ctx, input)

	var hotel *entity.Hotel
	if ret.Get(0) != nil {
		hotel = ret.Get(0).(*entity.Hotel)
	}

	return hotel, ret.Error(1)
}

func (_m *HotelUsecase) DeleteHotel(ctx context.Context, hotelID, actorID uuid.UUID) error {
	ret := _m.Called(ctx, hotelID, actorID)

	return ret.Error(0)
}

// BookingUsecase is a mock implementation of usecase.BookingUsecase.
type BookingUsecase struct {
	mock.Mock
}

func (_m *BookingUsecase) CreateBooking(ctx context.Context, input usecase.CreateBookingInput) (*entity.Booking, error) {
	ret := _m.Called(ctx, input)

	var booking *entity.Booking
	if ret.Get(0) != nil {
		booking = ret.Get(0).(*entity.Booking)
	}

	return booking, ret.Error(1)
}

func (_m *BookingUsecase) ListBookings(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	ret := _m.Called(ctx, userID)

	var bookings []*entity.Booking
	if ret.Get(0) != nil {
		bookings = ret.Get(0).([]*entity.Booking)
	}

	return bookings, ret.Error(1)
}

func (_m *BookingUsecase) GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*entity.Booking, error) {
	ret := _m.Called(ctx, bookingID, userID)

	var booking *entity.Booking
	if ret.Get(0) != nil {
		booking = ret.Get(0).(*entity.Booking)
	}

	return booking, ret.Error(1)
}

func (_m *BookingUsecase) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) (*entity.Booking, error) {
	ret := _m.Called(ctx, bookingID, userID)

	var booking *entity.Booking
	if ret.Get(0) != nil {
		booking = ret.Get(0).(*entity.Booking)
	}

	return booking, ret.Error(1)
}

func (_m *BookingUsecase) BookingQRCode(ctx context.Context, bookingID, userID uuid.UUID) ([]byte, error) {
	ret := _m.Called(ctx, bookingID, userID)

	var png []byte
	if ret.Get(0) != nil {
		png = ret.Get(0).([]byte)
	}

	return png, ret.Error(1)
}

// ContactUsecase is a mock implementation of usecase.ContactUsecase.
type ContactUsecase struct {
	mock.Mock
}

func (_m *ContactUsecase) SubmitContact(ctx context.Context, input usecase.SubmitContactInput) (*entity.ContactMessage, error) {
	ret := _m.Called(ctx, input)

	var msg *entity.ContactMessage
	if ret.Get(0) != nil {
		msg = ret.Get(0).(*entity.ContactMessage)
	}

	return msg, ret.Error(1)
}

// NewsletterUsecase is a mock implementation of usecase.NewsletterUsecase.
type NewsletterUsecase struct {
	mock.Mock
}

func (_m *NewsletterUsecase) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	ret := _m.Called(ctx, email)

	var sub *entity.NewsletterSubscription
	if ret.Get(0) != nil {
		sub = ret.Get(0).(*entity.NewsletterSubscription)
	}

	return sub, ret.Error(1)
}

func (_m *NewsletterUsecase) Unsubscribe(ctx context.Context, email string) error {
	ret := _m.Called(ctx, email)

	return ret.Error(0)
}

// SeedUsecase is a mock implementation of usecase.SeedUsecase.
type SeedUsecase struct {
	mock.Mock
}

func (_m *SeedUsecase) SeedHotels(ctx context.Context) (*usecase.SeedResult, error) {
	ret := _m.Called(ctx)

	var result *usecase.SeedResult
	if ret.Get(0) != nil {
		result = ret.Get(0).(*usecase.SeedResult)
	}

	return result, ret.Error(1)
}

func (_m *SeedUsecase) ClearHotels(ctx context.Context) (*usecase.SeedResult, error) {
	ret := _m.Called(ctx)

	var result *usecase.SeedResult
	if ret.Get(0) != nil {
		result = ret.Get(0).(*usecase.SeedResult)
	}

	return result, ret.Error(1)
}

// HealthUsecase is a mock implementation of usecase.HealthUsecase.
type HealthUsecase struct {
	mock.Mock
}

func (_m *HealthUsecase) Check(ctx context.Context) (*usecase.HealthStatus, error) {
	ret := _m.Called(ctx)

	var status *usecase.HealthStatus
	if ret.Get(0) != nil {
		status = ret.Get(0).(*usecase.HealthStatus)
	}

	return status, ret.Error(1)
}
