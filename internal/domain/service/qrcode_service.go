package service

import "github.com/google/uuid"

// QRCodeService generates and parses booking confirmation QR codes.
type QRCodeService interface {
	// GenerateBookingQR renders a PNG QR code encoding the booking reference.
	GenerateBookingQR(bookingID uuid.UUID) ([]byte, error)

	// ParseBookingQR decodes QR payload data back into a booking ID.
	ParseBookingQR(qrData string) (uuid.UUID, error)
}
