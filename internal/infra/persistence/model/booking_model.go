package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table. Overlapping stays are allowed,
// so no exclusion constraint exists on the date range.
type BookingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	HotelID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckIn    time.Time `gorm:"type:date;not null"`
	CheckOut   time.Time `gorm:"type:date;not null"`
	Guests     int       `gorm:"not null;default:1"`
	TotalPrice int64     `gorm:"not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'confirmed'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
