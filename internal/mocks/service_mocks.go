package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"innkeeper/internal/domain/service"
)

// PasswordHasher is a mock implementation of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (_m *PasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (_m *PasswordHasher) Check(password, digest string) bool {
	ret := _m.Called(password, digest)

	return ret.Bool(0)
}

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (_m *TokenService) Issue(userID uuid.UUID) (string, error) {
	ret := _m.Called(userID)

	return ret.String(0), ret.Error(1)
}

func (_m *TokenService) Validate(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	var claims *service.Claims
	if ret.Get(0) != nil {
		claims = ret.Get(0).(*service.Claims)
	}

	return claims, ret.Error(1)
}

// EventPublisher is a mock implementation of service.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (_m *EventPublisher) PublishBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func (_m *EventPublisher) PublishContactEvent(ctx context.Context, event *service.ContactEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func (_m *EventPublisher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

// QRCodeService is a mock implementation of service.QRCodeService.
type QRCodeService struct {
	mock.Mock
}

func (_m *QRCodeService) GenerateBookingQR(bookingID uuid.UUID) ([]byte, error) {
	ret := _m.Called(bookingID)

	var png []byte
	if ret.Get(0) != nil {
		png = ret.Get(0).([]byte)
	}

	return png, ret.Error(1)
}

func (_m *QRCodeService) ParseBookingQR(qrData string) (uuid.UUID, error) {
	ret := _m.Called(qrData)

	return ret.Get(0).(uuid.UUID), ret.Error(1)
}
