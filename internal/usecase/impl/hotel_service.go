package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "innkeeper/internal/delivery/context"
	"innkeeper/internal/domain/entity"
	domainerrors "innkeeper/internal/domain/errors"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/usecase"
)

// hotelService implements the HotelUsecase interface.
type hotelService struct {
	hotelRepo repository.HotelRepository
	logger    *slog.Logger
}

// HotelServiceParams holds dependencies for hotelService, injected by Fx.
type HotelServiceParams struct {
	fx.In

	HotelRepo repository.HotelRepository
	Logger    *slog.Logger
}

// NewHotelService is the constructor for hotelService.
func NewHotelService(params HotelServiceParams) usecase.HotelUsecase {
	return &hotelService{
		hotelRepo: params.HotelRepo,
		logger:    params.Logger,
	}
}

func (srv *hotelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListHotels returns hotels, optionally filtered by city.
func (srv *hotelService) ListHotels(ctx context.Context, input usecase.ListHotelsInput) ([]*entity.Hotel, error) {
	hotels, err := srv.hotelRepo.List(ctx, repository.HotelFilter{City: input.City})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hotels")
	}

	return hotels, nil
}

// GetHotel returns a single hotel by ID.
func (srv *hotelService) GetHotel(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	hotel, err := srv.hotelRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, domainerrors.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to get hotel")
	}

	return hotel, nil
}

// CreateHotel adds a listing owned by the acting user.
func (srv *hotelService) CreateHotel(ctx context.Context, input usecase.CreateHotelInput) (*entity.Hotel, error) {
	hotel := &entity.Hotel{
		Name:        input.Name,
		City:        input.City,
		Address:     input.Address,
		Description: input.Description,
		Price:       input.Price,
		StarRating:  input.StarRating,
		Amenities:   input.Amenities,
		Images:      input.Images,
		OwnerID:     input.OwnerID,
	}

	if err := srv.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, errors.Wrap(err, "failed to create hotel")
	}

	srv.log(ctx).Info("Hotel created",
		slog.String("hotelId", hotel.ID.String()),
		slog.String("ownerId", hotel.OwnerID.String()),
	)

	return hotel, nil
}

// UpdateHotel modifies a listing after verifying ownership.
func (srv *hotelService) UpdateHotel(ctx context.Context, input usecase.UpdateHotelInput) (*entity.Hotel, error) {
	hotel, err := srv.loadOwnedHotel(ctx, input.HotelID, input.ActorID)
	if err != nil {
		return nil, err
	}

	hotel.Name = input.Name
	hotel.City = input.City
	hotel.Address = input.Address
	hotel.Description = input.Description
	hotel.Price = input.Price
	hotel.StarRating = input.StarRating
	hotel.Amenities = input.Amenities
	hotel.Images = input.Images

	if err := srv.hotelRepo.Update(ctx, hotel); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, domainerrors.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to update hotel")
	}

	return hotel, nil
}

// DeleteHotel removes a listing after verifying ownership.
func (srv *hotelService) DeleteHotel(ctx context.Context, hotelID, actorID uuid.UUID) error {
	if _, err := srv.loadOwnedHotel(ctx, hotelID, actorID); err != nil {
		return err
	}

	if err := srv.hotelRepo.Delete(ctx, hotelID); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return domainerrors.ErrHotelNotFound
		}

		return errors.Wrap(err, "failed to delete hotel")
	}

	srv.log(ctx).Info("Hotel deleted", slog.String("hotelId", hotelID.String()))

	return nil
}

func (srv *hotelService) loadOwnedHotel(ctx context.Context, hotelID, actorID uuid.UUID) (*entity.Hotel, error) {
	hotel, err := srv.hotelRepo.FindByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, domainerrors.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to load hotel")
	}

	if hotel.OwnerID != actorID {
		return nil, domainerrors.ErrForbidden
	}

	return hotel, nil
}
