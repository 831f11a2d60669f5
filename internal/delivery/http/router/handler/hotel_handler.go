package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"innkeeper/internal/delivery/http/middleware"
	"innkeeper/internal/delivery/http/response"
	domainerrors "innkeeper/internal/domain/errors"
	"innkeeper/internal/usecase"
)

// HotelHandler holds dependencies for hotel inventory handlers.
type HotelHandler struct {
	uc     usecase.HotelUsecase
	logger *slog.Logger
}

// NewHotelHandler is the constructor for HotelHandler, injected by Fx.
func NewHotelHandler(uc usecase.HotelUsecase, logger *slog.Logger) *HotelHandler {
	return &HotelHandler{
		uc:     uc,
		logger: logger,
	}
}

type hotelRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	City        string   `json:"city" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	Description string   `json:"description"`
	Price       int64    `json:"price" validate:"required,gt=0"`
	StarRating  int      `json:"starRating" validate:"gte=0,lte=5"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

// ListHotels handles GET /api/hotels with an optional city filter.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.uc.ListHotels(c.Request().Context(), usecase.ListHotelsInput{
		City: c.QueryParam("city"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, hotels, "")
}

// GetHotel handles GET /api/hotels/:id.
func (h *HotelHandler) GetHotel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrHotelNotFound)
	}

	hotel, err := h.uc.GetHotel(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, hotel, "")
}

// CreateHotel handles POST /api/hotels. The listing is owned by the acting user.
func (h *HotelHandler) CreateHotel(c echo.Context) error {
	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	hotel, err := h.uc.CreateHotel(c.Request().Context(), usecase.CreateHotelInput{
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
		Price:       req.Price,
		StarRating:  req.StarRating,
		Amenities:   req.Amenities,
		Images:      req.Images,
		OwnerID:     actorID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, hotel, "Hotel created successfully")
}

// UpdateHotel handles PUT /api/hotels/:id. Only the owner may update a listing.
func (h *HotelHandler) UpdateHotel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrHotelNotFound)
	}

	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	hotel, err := h.uc.UpdateHotel(c.Request().Context(), usecase.UpdateHotelInput{
		HotelID:     id,
		ActorID:     actorID(c),
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
		Price:       req.Price,
		StarRating:  req.StarRating,
		Amenities:   req.Amenities,
		Images:      req.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, hotel, "Hotel updated successfully")
}

// DeleteHotel handles DELETE /api/hotels/:id. Only the owner may delete a listing.
func (h *HotelHandler) DeleteHotel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrHotelNotFound)
	}

	if err := h.uc.DeleteHotel(c.Request().Context(), id, actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Hotel deleted successfully")
}

// actorID returns the authenticated user set by the auth middleware.
func actorID(c echo.Context) uuid.UUID {
	id, _ := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return id
}
