package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"innkeeper/config"
	deliverycontext "innkeeper/internal/delivery/context"
	"innkeeper/internal/delivery/http/response"
	domainerrors "innkeeper/internal/domain/errors"
)

// ErrorMiddleware translates errors bubbling out of handlers into the
// uniform response envelope.
type ErrorMiddleware struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(cfg *config.Config, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		cfg:    cfg,
		logger: logger,
	}
}

// HandleHTTPError is installed as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Validation failures carry a per-field error list.
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.ValidationFailed(c, validationErr.Fields())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.log(c).Warn("request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.String("message", appErr.Message()),
			slog.String("path", c.Request().URL.Path),
		)
		_ = response.Fail(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			_ = response.Fail(c, http.StatusNotFound, "Route not found")

			return
		}

		message, _ := httpErr.Message.(string)
		_ = response.Fail(c, httpErr.Code, message)

		return
	}

	// Default to internal error, log and return a generic message.
	m.log(c).Error("unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	detail := ""
	if !m.cfg.IsProduction() {
		detail = err.Error()
	}
	_ = response.InternalError(c, "Something went wrong!", detail)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
