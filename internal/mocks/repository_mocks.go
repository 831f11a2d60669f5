// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"innkeeper/internal/domain/entity"
	"innkeeper/internal/domain/repository"
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var user *entity.User
	if ret.Get(0) != nil {
		user = ret.Get(0).(*entity.User)
	}

	return user, ret.Error(1)
}

func (_m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := _m.Called(ctx, email)

	var user *entity.User
	if ret.Get(0) != nil {
		user = ret.Get(0).(*entity.User)
	}

	return user, ret.Error(1)
}

func (_m *UserRepository) FindByEmailWithDigest(ctx context.Context, email string) (*entity.User, error) {
	ret := _m.Called(ctx, email)

	var user *entity.User
	if ret.Get(0) != nil {
		user = ret.Get(0).(*entity.User)
	}

	return user, ret.Error(1)
}

func (_m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

// HotelRepository is a mock implementation of repository.HotelRepository.
type HotelRepository struct {
	mock.Mock
}

func (_m *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	ret := _m.Called(ctx, id)

	var hotel *entity.Hotel
	if ret.Get(0) != nil {
		hotel = ret.Get(0).(*entity.Hotel)
	}

	return hotel, ret.Error(1)
}

func (_m *HotelRepository) List(ctx context.Context, filter repository.HotelFilter) ([]*entity.Hotel, error) {
	ret := _m.Called(ctx, filter)

	var hotels []*entity.Hotel
	if ret.Get(0) != nil {
		hotels = ret.Get(0).([]*entity.Hotel)
	}

	return hotels, ret.Error(1)
}

func (_m *HotelRepository) Count(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *HotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	ret := _m.Called(ctx, hotel)

	return ret.Error(0)
}

func (_m *HotelRepository) CreateBatch(ctx context.Context, hotels []*entity.Hotel) error {
	ret := _m.Called(ctx, hotels)

	return ret.Error(0)
}

func (_m *HotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	ret := _m.Called(ctx, hotel)

	return ret.Error(0)
}

func (_m *HotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *HotelRepository) DeleteAll(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	return ret.Get(0).(int64), ret.Error(1)
}

// BookingRepository is a mock implementation of repository.BookingRepository.
type BookingRepository struct {
	mock.Mock
}

func (_m *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	ret := _m.Called(ctx, id)

	var booking *entity.Booking
	if ret.Get(0) != nil {
		booking = ret.Get(0).(*entity.Booking)
	}

	return booking, ret.Error(1)
}

func (_m *BookingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	ret := _m.Called(ctx, userID)

	var bookings []*entity.Booking
	if ret.Get(0) != nil {
		bookings = ret.Get(0).([]*entity.Booking)
	}

	return bookings, ret.Error(1)
}

func (_m *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	ret := _m.Called(ctx, booking)

	return ret.Error(0)
}

func (_m *BookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	ret := _m.Called(ctx, booking)

	return ret.Error(0)
}

// ContactRepository is a mock implementation of repository.ContactRepository.
type ContactRepository struct {
	mock.Mock
}

func (_m *ContactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	ret := _m.Called(ctx, msg)

	return ret.Error(0)
}

// NewsletterRepository is a mock implementation of repository.NewsletterRepository.
type NewsletterRepository struct {
	mock.Mock
}

func (_m *NewsletterRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	ret := _m.Called(ctx, email)

	var sub *entity.NewsletterSubscription
	if ret.Get(0) != nil {
		sub = ret.Get(0).(*entity.NewsletterSubscription)
	}

	return sub, ret.Error(1)
}

func (_m *NewsletterRepository) Create(ctx context.Context, sub *entity.NewsletterSubscription) error {
	ret := _m.Called(ctx, sub)

	return ret.Error(0)
}

func (_m *NewsletterRepository) DeleteByEmail(ctx context.Context, email string) error {
	ret := _m.Called(ctx, email)

	return ret.Error(0)
}
