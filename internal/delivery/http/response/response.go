// Package response defines the unified JSON envelope for all API responses.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "innkeeper/internal/domain/errors"
)

// Response is the unified API envelope. Success responses carry message and
// data; validation failures carry the per-field errors list; server faults
// carry an optional error detail.
type Response struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message,omitempty"`
	Data    any                       `json:"data,omitempty"`
	Errors  []domainerrors.FieldError `json:"errors,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

// Success writes a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created writes a 201 response
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// OK writes a 200 response
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Fail writes an error response with a message only
func Fail(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// ValidationFailed writes the 400 per-field error list
func ValidationFailed(c echo.Context, fields []domainerrors.FieldError) error {
	return c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Errors:  fields,
	})
}

// InternalError writes a 500 response. detail is empty in production deployments.
func InternalError(c echo.Context, message, detail string) error {
	if message == "" {
		message = "Something went wrong!"
	}

	return c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: message,
		Error:   detail,
	})
}
