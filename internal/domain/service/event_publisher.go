package service

import (
	"context"
)

// Event types published by the backend.
const (
	EventTypeBookingCreated   = "booking.created"
	EventTypeBookingCancelled = "booking.cancelled"
	EventTypeContactReceived  = "contact.received"
)

// BookingEvent is emitted after a booking is created or cancelled, for
// downstream consumers (confirmation mail, analytics).
type BookingEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	HotelID   string `json:"hotel_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
}

// ContactEvent is emitted when a contact form submission is stored.
type ContactEvent struct {
	RequestID string `json:"request_id,omitempty"`
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

// EventPublisher defines the interface for publishing events to a message queue.
// Publishing is best-effort: callers log failures and never fail the request.
type EventPublisher interface {
	// PublishBookingEvent publishes a booking lifecycle event for async processing.
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error

	// PublishContactEvent publishes a contact form event for async processing.
	PublishContactEvent(ctx context.Context, event *ContactEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
