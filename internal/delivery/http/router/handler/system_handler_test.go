package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"innkeeper/config"
	"innkeeper/internal/mocks"
	"innkeeper/internal/usecase"
)

func newSystemEcho(t *testing.T, env string) (*mocks.HealthUsecase, *echo.Echo) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env

	uc := new(mocks.HealthUsecase)
	e := newTestEcho(t)
	h := NewSystemHandler(uc, cfg, discardLogger())
	e.GET("/", h.Root)
	e.GET("/api/health", h.Health)

	return uc, e
}

func TestSystemHandler_Root(t *testing.T) {
	_, e := newSystemEcho(t, "development")

	body := mustRequest(t, e, http.MethodGet, "/", "", http.StatusOK)
	assert.Contains(t, body, `"Hotel Booking API is running!"`)
}

func TestSystemHandler_Health(t *testing.T) {
	uc, e := newSystemEcho(t, "development")

	uc.On("Check", mock.Anything).Return(&usecase.HealthStatus{
		Status:     "ok",
		Database:   "connected",
		HotelCount: 15,
	}, nil)

	body := mustRequest(t, e, http.MethodGet, "/api/health", "", http.StatusOK)

	var status struct {
		Status      string `json:"status"`
		Database    string `json:"database"`
		HotelCount  int64  `json:"hotelCount"`
		Environment string `json:"environment"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "connected", status.Database)
	assert.Equal(t, int64(15), status.HotelCount)
	assert.Equal(t, "development", status.Environment)
}

func TestSystemHandler_Health_DatabaseDown(t *testing.T) {
	uc, e := newSystemEcho(t, "production")

	uc.On("Check", mock.Anything).Return(nil, assert.AnError)

	// The endpoint stays 200 so probes can read the degradation details.
	body := mustRequest(t, e, http.MethodGet, "/api/health", "", http.StatusOK)
	assert.Contains(t, body, `"degraded"`)
	assert.Contains(t, body, `"disconnected"`)
}

func TestRouter_UnknownRoute(t *testing.T) {
	_, e := newSystemEcho(t, "development")

	rec := doJSON(e, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Route not found"`)
}
