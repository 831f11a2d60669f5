package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "innkeeper/internal/delivery/context"
	"innkeeper/internal/domain/repository"
	"innkeeper/internal/usecase"
)

// healthService implements the HealthUsecase interface.
type healthService struct {
	hotelRepo repository.HotelRepository
	logger    *slog.Logger
}

// HealthServiceParams holds dependencies for healthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	HotelRepo repository.HotelRepository
	Logger    *slog.Logger
}

// NewHealthService is the constructor for healthService.
func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		hotelRepo: params.HotelRepo,
		logger:    params.Logger,
	}
}

// Check reports database reachability through an inventory count. A failing
// count marks the service degraded instead of failing the endpoint.
func (srv *healthService) Check(ctx context.Context) (*usecase.HealthStatus, error) {
	status := &usecase.HealthStatus{
		Status:   "ok",
		Database: "connected",
	}

	count, err := srv.hotelRepo.Count(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).
			Warn("Health check database probe failed", slog.Any("error", err))
		status.Status = "degraded"
		status.Database = "disconnected"

		return status, nil
	}

	status.HotelCount = count

	return status, nil
}
