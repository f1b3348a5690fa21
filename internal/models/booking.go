package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CarID uuid.UUID `gorm:"type:uuid;index;not null" json:"car_id"`
	Car   Car       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"car,omitempty"`

	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	TotalCost float64   `gorm:"type:decimal(10,2);not null" json:"total_cost"`

	Status        string `gorm:"size:20;default:'pending';not null;index" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending';not null" json:"payment_status"`

	Payment *Payment `gorm:"constraint:OnDelete:CASCADE;" json:"payment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
