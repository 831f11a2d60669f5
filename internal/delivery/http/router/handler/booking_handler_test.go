package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"innkeeper/internal/domain/entity"
	domainerrors "innkeeper/internal/domain/errors"
	"innkeeper/internal/mocks"
	"innkeeper/internal/usecase"
)

func newBookingEcho(t *testing.T, actor uuid.UUID) (*mocks.BookingUsecase, *echo.Echo) {
	t.Helper()

	uc := new(mocks.BookingUsecase)
	e := newTestEcho(t)
	h := NewBookingHandler(uc, discardLogger())
	g := e.Group("/api/bookings", withActor(actor))
	g.POST("", h.CreateBooking)
	g.GET("", h.ListBookings)
	g.GET("/:id", h.GetBooking)
	g.DELETE("/:id", h.CancelBooking)
	g.GET("/:id/qrcode", h.BookingQRCode)

	return uc, e
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	actor := uuid.New()
	uc, e := newBookingEcho(t, actor)

	hotelID := uuid.New()
	booking := &entity.Booking{
		ID:         uuid.New(),
		UserID:     actor,
		HotelID:    hotelID,
		Guests:     2,
		TotalPrice: 7500,
		Status:     entity.BookingStatusConfirmed,
	}
	uc.On("CreateBooking", mock.Anything, usecase.CreateBookingInput{
		UserID:   actor,
		HotelID:  hotelID,
		CheckIn:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC),
		Guests:   2,
	}).Return(booking, nil)

	body := mustRequest(t, e, http.MethodPost, "/api/bookings",
		`{"hotelId":"`+hotelID.String()+`","checkIn":"2026-10-01","checkOut":"2026-10-04","guests":2}`,
		http.StatusCreated)

	var envelope struct {
		Message string         `json:"message"`
		Data    entity.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, "Booking created successfully", envelope.Message)
	assert.Equal(t, int64(7500), envelope.Data.TotalPrice)
	assert.Equal(t, entity.BookingStatusConfirmed, envelope.Data.Status)
	uc.AssertExpectations(t)
}

func TestBookingHandler_CreateBooking_BadDates(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "malformed check-in",
			body:    `{"hotelId":"` + uuid.NewString() + `","checkIn":"01/10/2026","checkOut":"2026-10-04","guests":2}`,
			message: "CheckIn must be a valid date (YYYY-MM-DD)",
		},
		{
			name:    "check-out not after check-in",
			body:    `{"hotelId":"` + uuid.NewString() + `","checkIn":"2026-10-04","checkOut":"2026-10-04","guests":2}`,
			message: "Check-out date must be after check-in date",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, e := newBookingEcho(t, uuid.New())

			body := mustRequest(t, e, http.MethodPost, "/api/bookings", tc.body, http.StatusBadRequest)
			assert.Contains(t, body, tc.message)
			uc.AssertNotCalled(t, "CreateBooking")
		})
	}
}

func TestBookingHandler_CreateBooking_UnknownHotel(t *testing.T) {
	uc, e := newBookingEcho(t, uuid.New())

	uc.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrHotelNotFound)

	rec := doJSON(e, http.MethodPost, "/api/bookings",
		`{"hotelId":"`+uuid.NewString()+`","checkIn":"2026-10-01","checkOut":"2026-10-04","guests":2}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Hotel not found"`)
}

func TestBookingHandler_ListBookings(t *testing.T) {
	actor := uuid.New()
	uc, e := newBookingEcho(t, actor)

	uc.On("ListBookings", mock.Anything, actor).
		Return([]*entity.Booking{{ID: uuid.New(), UserID: actor}}, nil)

	body := mustRequest(t, e, http.MethodGet, "/api/bookings", "", http.StatusOK)

	var envelope struct {
		Data []entity.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Len(t, envelope.Data, 1)
	uc.AssertExpectations(t)
}

func TestBookingHandler_GetBooking_OtherUsersLooksMissing(t *testing.T) {
	uc, e := newBookingEcho(t, uuid.New())

	id := uuid.New()
	uc.On("GetBooking", mock.Anything, id, mock.Anything).
		Return(nil, domainerrors.ErrBookingNotFound)

	rec := doJSON(e, http.MethodGet, "/api/bookings/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Booking not found"`)
}

func TestBookingHandler_CancelBooking(t *testing.T) {
	actor := uuid.New()
	uc, e := newBookingEcho(t, actor)

	id := uuid.New()
	cancelled := &entity.Booking{ID: id, UserID: actor, Status: entity.BookingStatusCancelled}
	uc.On("CancelBooking", mock.Anything, id, actor).Return(cancelled, nil)

	body := mustRequest(t, e, http.MethodDelete, "/api/bookings/"+id.String(), "", http.StatusOK)
	assert.Contains(t, body, `"Booking cancelled successfully"`)
	assert.Contains(t, body, `"cancelled"`)
	uc.AssertExpectations(t)
}

func TestBookingHandler_CancelBooking_AlreadyCancelled(t *testing.T) {
	uc, e := newBookingEcho(t, uuid.New())

	uc.On("CancelBooking", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrBookingAlreadyCancelled)

	rec := doJSON(e, http.MethodDelete, "/api/bookings/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandler_BookingQRCode(t *testing.T) {
	actor := uuid.New()
	uc, e := newBookingEcho(t, actor)

	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	uc.On("BookingQRCode", mock.Anything, id, actor).Return(png, nil)

	rec := doJSON(e, http.MethodGet, "/api/bookings/"+id.String()+"/qrcode", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
	uc.AssertExpectations(t)
}
