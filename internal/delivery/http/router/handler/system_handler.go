package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"innkeeper/config"
	"innkeeper/internal/usecase"
)

// SystemHandler serves the health and root endpoints. These bypass the
// response envelope and keep their own shapes for external probes.
type SystemHandler struct {
	uc     usecase.HealthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(uc usecase.HealthUsecase, cfg *config.Config, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// Health handles GET /api/health. It always answers 200; degradation is
// reported in the body so probes can tell the process from the database.
func (h *SystemHandler) Health(c echo.Context) error {
	status, err := h.uc.Check(c.Request().Context())
	if err != nil {
		h.logger.Error("health check failed", slog.Any("error", err))

		return c.JSON(http.StatusOK, echo.Map{
			"status":      "degraded",
			"database":    "disconnected",
			"hotelCount":  0,
			"environment": h.cfg.Env.Env,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":      status.Status,
		"database":    status.Database,
		"hotelCount":  status.HotelCount,
		"environment": h.cfg.Env.Env,
	})
}

// Root handles GET /.
func (h *SystemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Hotel Booking API is running!",
	})
}
