package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeeper/config"
)

func TestQRCodeService_GenerateBookingQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"},
	})

	bookingID := uuid.New()
	png, err := svc.GenerateBookingQR(bookingID)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	bookingID := uuid.New()
	payload, err := json.Marshal(QRCodeData{BookingID: bookingID.String(), Type: "booking"})
	require.NoError(t, err)

	parsed, err := svc.ParseBookingQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, bookingID, parsed)
}

func TestQRCodeService_ParseBookingQR_WrongType(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	payload, err := json.Marshal(QRCodeData{BookingID: uuid.New().String(), Type: "subscription"})
	require.NoError(t, err)

	parsed, err := svc.ParseBookingQR(string(payload))
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestQRCodeService_ParseBookingQR_Malformed(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	parsed, err := svc.ParseBookingQR("not-json")
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, parsed)
}
