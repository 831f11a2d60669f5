package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"innkeeper/internal/delivery/http/response"
	"innkeeper/internal/usecase"
)

// SeedHandler holds dependencies for the sample-data handlers. The router
// only mounts these routes when seeding is enabled in the configuration.
type SeedHandler struct {
	uc     usecase.SeedUsecase
	logger *slog.Logger
}

// NewSeedHandler is the constructor for SeedHandler, injected by Fx.
func NewSeedHandler(uc usecase.SeedUsecase, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{
		uc:     uc,
		logger: logger,
	}
}

// SeedHotels handles POST /api/seed/hotels.
func (h *SeedHandler) SeedHotels(c echo.Context) error {
	result, err := h.uc.SeedHotels(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, echo.Map{"count": result.Inserted}, "Database seeded successfully")
}

// ClearHotels handles DELETE /api/seed/hotels.
func (h *SeedHandler) ClearHotels(c echo.Context) error {
	result, err := h.uc.ClearHotels(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, echo.Map{"deletedCount": result.Deleted}, "All hotels deleted")
}
