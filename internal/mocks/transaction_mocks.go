package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"innkeeper/internal/domain/repository"
)

// TransactionManager is a mock implementation of repository.TransactionManager.
// By default Execute runs the callback against the configured factory, so use
// cases under test run their transactional body for real.
type TransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func (_m *TransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	if override, ok := ret.Get(0).(error); ok {
		return override
	}

	return fn(_m.Factory)
}

// RepositoryFactory is a mock implementation of repository.RepositoryFactory,
// handing out fixed repository mocks as if they were transaction-bound.
type RepositoryFactory struct {
	Users       *UserRepository
	Hotels      *HotelRepository
	Bookings    *BookingRepository
	Newsletters *NewsletterRepository
}

func (f *RepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

func (f *RepositoryFactory) HotelRepo() repository.HotelRepository {
	return f.Hotels
}

func (f *RepositoryFactory) BookingRepo() repository.BookingRepository {
	return f.Bookings
}

func (f *RepositoryFactory) NewsletterRepo() repository.NewsletterRepository {
	return f.Newsletters
}
