package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"innkeeper/internal/delivery/http/response"
	domainerrors "innkeeper/internal/domain/errors"
	"innkeeper/internal/usecase"
)

// BookingHandler holds dependencies for booking handlers. All routes here
// sit behind the auth middleware.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		uc:     uc,
		logger: logger,
	}
}

type createBookingRequest struct {
	HotelID  string `json:"hotelId" validate:"required,uuid"`
	CheckIn  string `json:"checkIn" validate:"required"`
	CheckOut string `json:"checkOut" validate:"required"`
	Guests   int    `json:"guests" validate:"required,gte=1"`
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	checkIn, err := time.Parse(time.DateOnly, req.CheckIn)
	if err != nil {
		return errors.WithStack(domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "checkIn",
			Message: "CheckIn must be a valid date (YYYY-MM-DD)",
		}))
	}

	checkOut, err := time.Parse(time.DateOnly, req.CheckOut)
	if err != nil {
		return errors.WithStack(domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "checkOut",
			Message: "CheckOut must be a valid date (YYYY-MM-DD)",
		}))
	}

	if !checkOut.After(checkIn) {
		return errors.WithStack(domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "checkOut",
			Message: "Check-out date must be after check-in date",
		}))
	}

	booking, err := h.uc.CreateBooking(c.Request().Context(), usecase.CreateBookingInput{
		UserID:   actorID(c),
		HotelID:  uuid.MustParse(req.HotelID),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, booking, "Booking created successfully")
}

// ListBookings handles GET /api/bookings for the acting user.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.uc.ListBookings(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, bookings, "")
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrBookingNotFound)
	}

	booking, err := h.uc.GetBooking(c.Request().Context(), id, actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, booking, "")
}

// CancelBooking handles DELETE /api/bookings/:id. The record is kept with
// its status flipped, not removed.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrBookingNotFound)
	}

	booking, err := h.uc.CancelBooking(c.Request().Context(), id, actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, booking, "Booking cancelled successfully")
}

// BookingQRCode handles GET /api/bookings/:id/qrcode, returning a PNG.
func (h *BookingHandler) BookingQRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrBookingNotFound)
	}

	png, err := h.uc.BookingQRCode(c.Request().Context(), id, actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
