package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "innkeeper/internal/delivery/context"
	domainerrors "innkeeper/internal/domain/errors"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/usecase"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	hotelRepo repository.HotelRepository
	logger    *slog.Logger
}

// SeedServiceParams holds dependencies for seedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	HotelRepo repository.HotelRepository
	Logger    *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		hotelRepo: params.HotelRepo,
		logger:    params.Logger,
	}
}

func (srv *seedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SeedHotels inserts the sample inventory. Seeding a non-empty inventory is
// refused so repeated calls cannot duplicate the fixtures.
func (srv *seedService) SeedHotels(ctx context.Context) (*usecase.SeedResult, error) {
	count, err := srv.hotelRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count hotels before seeding")
	}
	if count > 0 {
		return nil, domainerrors.ErrSeedConflict
	}

	hotels := sampleHotels()
	if err := srv.hotelRepo.CreateBatch(ctx, hotels); err != nil {
		return nil, errors.Wrap(err, "failed to insert sample hotels")
	}

	srv.log(ctx).Info("Seeded sample hotels", slog.Int("count", len(hotels)))

	return &usecase.SeedResult{Inserted: int64(len(hotels))}, nil
}

// ClearHotels removes the entire hotel inventory.
func (srv *seedService) ClearHotels(ctx context.Context) (*usecase.SeedResult, error) {
	deleted, err := srv.hotelRepo.DeleteAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear hotels")
	}

	srv.log(ctx).Info("Cleared hotel inventory", slog.Int64("deleted", deleted))

	return &usecase.SeedResult{Deleted: deleted}, nil
}
