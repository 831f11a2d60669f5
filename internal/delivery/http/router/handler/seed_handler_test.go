package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "innkeeper/internal/domain/errors"
	"innkeeper/internal/mocks"
	"innkeeper/internal/usecase"
)

func newSeedEcho(t *testing.T) (*mocks.SeedUsecase, *echo.Echo) {
	t.Helper()

	uc := new(mocks.SeedUsecase)
	e := newTestEcho(t)
	h := NewSeedHandler(uc, discardLogger())
	e.POST("/api/seed/hotels", h.SeedHotels)
	e.DELETE("/api/seed/hotels", h.ClearHotels)

	return uc, e
}

func TestSeedHandler_SeedHotels(t *testing.T) {
	uc, e := newSeedEcho(t)

	uc.On("SeedHotels", mock.Anything).Return(&usecase.SeedResult{Inserted: 15}, nil)

	body := mustRequest(t, e, http.MethodPost, "/api/seed/hotels", "", http.StatusCreated)

	var envelope struct {
		Message string `json:"message"`
		Data    struct {
			Count int64 `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, "Database seeded successfully", envelope.Message)
	assert.Equal(t, int64(15), envelope.Data.Count)
	uc.AssertExpectations(t)
}

func TestSeedHandler_SeedHotels_AlreadySeeded(t *testing.T) {
	uc, e := newSeedEcho(t)

	uc.On("SeedHotels", mock.Anything).Return(nil, domainerrors.ErrSeedConflict)

	rec := doJSON(e, http.MethodPost, "/api/seed/hotels", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Database already seeded"`)
}

func TestSeedHandler_ClearHotels(t *testing.T) {
	uc, e := newSeedEcho(t)

	uc.On("ClearHotels", mock.Anything).Return(&usecase.SeedResult{Deleted: 15}, nil)

	body := mustRequest(t, e, http.MethodDelete, "/api/seed/hotels", "", http.StatusOK)

	var envelope struct {
		Message string `json:"message"`
		Data    struct {
			DeletedCount int64 `json:"deletedCount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, "All hotels deleted", envelope.Message)
	assert.Equal(t, int64(15), envelope.Data.DeletedCount)
	uc.AssertExpectations(t)
}
