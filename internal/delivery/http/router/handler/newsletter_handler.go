package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"innkeeper/internal/delivery/http/response"
	"innkeeper/internal/usecase"
)

// NewsletterHandler holds dependencies for newsletter subscription handlers.
type NewsletterHandler struct {
	uc     usecase.NewsletterUsecase
	logger *slog.Logger
}

// NewNewsletterHandler is the constructor for NewsletterHandler, injected by Fx.
func NewNewsletterHandler(uc usecase.NewsletterUsecase, logger *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		uc:     uc,
		logger: logger,
	}
}

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe handles POST /api/newsletter/subscribe.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	subscription, err := h.uc.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, subscription, "Subscribed to newsletter successfully")
}

// Unsubscribe handles POST /api/newsletter/unsubscribe. Unsubscribing an
// unknown email succeeds.
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Unsubscribed from newsletter")
}
