package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"booking_id"`

	Amount   float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency string  `gorm:"size:3;not null" json:"currency"`

	GatewayOrderID   *string `gorm:"size:255" json:"gateway_order_id"`
	GatewayPaymentID *string `gorm:"size:255" json:"gateway_payment_id"`

	Status string `gorm:"size:20;default:'pending';not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
