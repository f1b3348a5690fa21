package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/models"
	"github.com/av954416-web/javadrive/internal/timezone"
)

type BookingListDTO struct {
	ID            uuid.UUID   `json:"id"`
	CarID         uuid.UUID   `json:"car_id"`
	CarName       string      `json:"car_name,omitempty"`
	CarImage      string      `json:"car_image,omitempty"`
	UserID        uuid.UUID   `json:"user_id"`
	UserName      string      `json:"user_name,omitempty"`
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	TotalCost     float64     `json:"total_cost"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	Payment       *PaymentDTO `json:"payment,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

type PaymentDTO struct {
	ID               uuid.UUID `json:"id"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	GatewayOrderID   *string   `json:"gateway_order_id"`
	GatewayPaymentID *string   `json:"gateway_payment_id"`
}

func NewPaymentDTO(p *models.Payment) *PaymentDTO {
	if p == nil {
		return nil
	}
	return &PaymentDTO{
		ID:               p.ID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Status:           p.Status,
		GatewayOrderID:   p.GatewayOrderID,
		GatewayPaymentID: p.GatewayPaymentID,
	}
}

// NewBookingListDTO flattens a booking; Car and User are used when preloaded.
func NewBookingListDTO(b models.Booking) BookingListDTO {
	out := BookingListDTO{
		ID:            b.ID,
		CarID:         b.CarID,
		UserID:        b.UserID,
		StartDate:     timezone.FormatDate(b.StartDate),
		EndDate:       timezone.FormatDate(b.EndDate),
		TotalCost:     b.TotalCost,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Payment:       NewPaymentDTO(b.Payment),
		CreatedAt:     b.CreatedAt,
	}
	if b.Car.ID != uuid.Nil {
		out.CarName = b.Car.Brand + " " + b.Car.Model
		if len(b.Car.Images) > 0 {
			out.CarImage = b.Car.Images[0]
		}
	}
	if b.User.ID != uuid.Nil {
		out.UserName = b.User.FullName()
	}
	return out
}

func NewBookingList(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingListDTO(b))
	}
	return out
}
