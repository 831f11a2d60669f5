package postgres

import (
	"context"

	"innkeeper/internal/domain/entity"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements the repository.BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// FindByID retrieves a single booking by its unique ID.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM), nil
}

// ListByUserID returns all bookings made by a user, newest first.
func (repo *bookingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var bookingMs []*model.BookingModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by user")
	}

	bookings := make([]*entity.Booking, 0, len(bookingMs))
	for _, bookingM := range bookingMs {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// Create persists a new booking.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := toBookingModel(booking)
	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBookingNotFound
		}

		return errors.Wrap(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// Update modifies an existing booking. Only the status changes after creation.
func (repo *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", booking.ID).
		Update("status", string(booking.Status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update booking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// toBookingDomain maps the persistence model to a pure domain entity.
func toBookingDomain(bookingM *model.BookingModel) *entity.Booking {
	return &entity.Booking{
		ID:         bookingM.ID,
		UserID:     bookingM.UserID,
		HotelID:    bookingM.HotelID,
		CheckIn:    bookingM.CheckIn,
		CheckOut:   bookingM.CheckOut,
		Guests:     bookingM.Guests,
		TotalPrice: bookingM.TotalPrice,
		Status:     entity.BookingStatus(bookingM.Status),
		CreatedAt:  bookingM.CreatedAt,
		UpdatedAt:  bookingM.UpdatedAt,
	}
}

// toBookingModel maps a domain entity to the persistence model.
func toBookingModel(booking *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		ID:         booking.ID,
		UserID:     booking.UserID,
		HotelID:    booking.HotelID,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		Guests:     booking.Guests,
		TotalPrice: booking.TotalPrice,
		Status:     string(booking.Status),
	}
}
