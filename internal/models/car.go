package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Car struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"owner_id"`
	Owner   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner,omitempty"`

	Brand              string  `gorm:"size:60;not null;index" json:"brand"`
	Model              string  `gorm:"size:60;not null" json:"model"`
	Year               int     `gorm:"not null" json:"year"`
	RegistrationNumber string  `gorm:"size:32;uniqueIndex;not null" json:"registration_number"`
	Category           string  `gorm:"size:20;not null" json:"category"`
	Transmission       string  `gorm:"size:20;not null" json:"transmission"`
	FuelType           string  `gorm:"size:20;not null" json:"fuel_type"`
	Seats              int     `gorm:"not null" json:"seats"`
	PricePerDay        float64 `gorm:"type:decimal(10,2);not null" json:"price_per_day"`
	Location           string  `gorm:"size:120" json:"location"`
	Description        string  `gorm:"type:text" json:"description"`

	Images   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"images"`
	Features datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"features"`

	// Listing-level flag, unrelated to date availability.
	IsAvailable bool `gorm:"default:true;not null" json:"is_available"`

	Bookings []Booking `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Reviews  []Review  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
