// Package qrcode renders booking confirmation QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"innkeeper/config"
	"innkeeper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload
type QRCodeData struct {
	BookingID string `json:"booking_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultQRSize
	levelName := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
	}

	var level qrcode.RecoveryLevel
	switch levelName {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateBookingQR renders a PNG QR code encoding the booking reference
func (s *qrcodeService) GenerateBookingQR(bookingID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		BookingID: bookingID.String(),
		Type:      "booking",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseBookingQR decodes QR payload data back into a booking ID
func (s *qrcodeService) ParseBookingQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "booking" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	bookingID, err := uuid.Parse(data.BookingID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse booking ID: %w", err)
	}

	return bookingID, nil
}
