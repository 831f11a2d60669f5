package postgres

import (
	"context"

	"innkeeper/internal/domain/entity"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const seedBatchSize = 100

// hotelRepository implements the repository.HotelRepository interface using GORM.
type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository is the constructor for hotelRepository.
func NewHotelRepository(db *gorm.DB) repository.HotelRepository {
	return &hotelRepository{db: db}
}

// FindByID retrieves a single hotel by its unique ID.
func (repo *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	var hotelM model.HotelModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&hotelM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hotel by id")
	}

	return toHotelDomain(&hotelM), nil
}

// List returns hotels matching the filter, newest first.
func (repo *hotelRepository) List(ctx context.Context, filter repository.HotelFilter) ([]*entity.Hotel, error) {
	query := repo.db.WithContext(ctx).Model(&model.HotelModel{})
	if filter.City != "" {
		// Case-insensitive exact match so "Paris" and "paris" list the same city.
		query = query.Where("LOWER(city) = LOWER(?)", filter.City)
	}

	var hotelMs []*model.HotelModel
	if err := query.Order("created_at DESC").Find(&hotelMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hotels")
	}

	hotels := make([]*entity.Hotel, 0, len(hotelMs))
	for _, hotelM := range hotelMs {
		hotels = append(hotels, toHotelDomain(hotelM))
	}

	return hotels, nil
}

// Count returns the total number of hotels in the inventory.
func (repo *hotelRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.HotelModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count hotels")
	}

	return count, nil
}

// Create persists a new hotel.
func (repo *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	hotelM := toHotelModel(hotel)
	if err := repo.db.WithContext(ctx).Create(hotelM).Error; err != nil {
		return errors.Wrap(err, "failed to create hotel")
	}

	hotel.ID = hotelM.ID
	hotel.CreatedAt = hotelM.CreatedAt
	hotel.UpdatedAt = hotelM.UpdatedAt

	return nil
}

// CreateBatch persists several hotels at once. Used by seeding.
func (repo *hotelRepository) CreateBatch(ctx context.Context, hotels []*entity.Hotel) error {
	if len(hotels) == 0 {
		return nil
	}

	hotelMs := make([]*model.HotelModel, 0, len(hotels))
	for _, hotel := range hotels {
		hotelMs = append(hotelMs, toHotelModel(hotel))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(hotelMs, seedBatchSize).Error; err != nil {
		return errors.Wrap(err, "failed to create hotels in batch")
	}

	for i, hotelM := range hotelMs {
		hotels[i].ID = hotelM.ID
		hotels[i].CreatedAt = hotelM.CreatedAt
		hotels[i].UpdatedAt = hotelM.UpdatedAt
	}

	return nil
}

// Update modifies an existing hotel.
func (repo *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	hotelM := toHotelModel(hotel)
	result := repo.db.WithContext(ctx).
		Model(&model.HotelModel{}).
		Where("id = ?", hotel.ID).
		Updates(map[string]any{
			"name":        hotelM.Name,
			"city":        hotelM.City,
			"address":     hotelM.Address,
			"description": hotelM.Description,
			"price":       hotelM.Price,
			"star_rating": hotelM.StarRating,
			"amenities":   hotelM.Amenities,
			"images":      hotelM.Images,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update hotel")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHotelNotFound
	}

	return nil
}

// Delete removes a hotel by ID.
func (repo *hotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.HotelModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete hotel")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHotelNotFound
	}

	return nil
}

// DeleteAll clears the hotel inventory and reports how many rows were removed.
func (repo *hotelRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.HotelModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete all hotels")
	}

	return result.RowsAffected, nil
}

// toHotelDomain maps the persistence model to a pure domain entity.
func toHotelDomain(hotelM *model.HotelModel) *entity.Hotel {
	return &entity.Hotel{
		ID:          hotelM.ID,
		Name:        hotelM.Name,
		City:        hotelM.City,
		Address:     hotelM.Address,
		Description: hotelM.Description,
		Price:       hotelM.Price,
		StarRating:  hotelM.StarRating,
		Amenities:   hotelM.Amenities,
		Images:      hotelM.Images,
		OwnerID:     hotelM.OwnerID,
		CreatedAt:   hotelM.CreatedAt,
		UpdatedAt:   hotelM.UpdatedAt,
	}
}

// toHotelModel maps a domain entity to the persistence model.
func toHotelModel(hotel *entity.Hotel) *model.HotelModel {
	return &model.HotelModel{
		ID:          hotel.ID,
		Name:        hotel.Name,
		City:        hotel.City,
		Address:     hotel.Address,
		Description: hotel.Description,
		Price:       hotel.Price,
		StarRating:  hotel.StarRating,
		Amenities:   datatypes.NewJSONSlice(hotel.Amenities),
		Images:      datatypes.NewJSONSlice(hotel.Images),
		OwnerID:     hotel.OwnerID,
	}
}
