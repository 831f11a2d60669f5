package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HotelModel mirrors the 'hotels' table. Amenities and images are stored as
// JSONB arrays since they are read and written as a whole, never queried.
type HotelModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	City        string                      `gorm:"type:varchar(100);not null;index"`
	Address     string                      `gorm:"type:varchar(255)"`
	Description string                      `gorm:"type:text"`
	Price       int64                       `gorm:"not null"`
	StarRating  int                         `gorm:"not null;default:0"`
	Amenities   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	OwnerID     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Bookings []BookingModel `gorm:"foreignKey:HotelID"`
}

// TableName explicitly sets the table name for GORM.
func (HotelModel) TableName() string {
	return "hotels"
}
