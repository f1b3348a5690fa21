package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/models"
)

type Repository interface {
	// -------- Car --------
	GetCar(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Car, error)

	// -------- Availability --------
	ListActiveBookingsForCar(
		ctx context.Context,
		carID uuid.UUID,
	) ([]models.Booking, error)

	// -------- Booking (create / conflict) --------

	// CreateBookingWithPayment locks the car, re-checks the range against
	// active bookings and inserts both rows in one transaction.
	CreateBookingWithPayment(
		ctx context.Context,
		b *models.Booking,
		p *models.Payment,
	) error

	// -------- Booking (read / state change) --------
	GetBooking(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Booking, error)

	ListBookingsForUser(
		ctx context.Context,
		userID uuid.UUID,
	) ([]models.Booking, error)

	UpdateBookingStatus(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Payment --------
	GetPayment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Payment, error)

	// UpdatePayment saves the payment and mirrors its status onto the booking.
	UpdatePayment(
		ctx context.Context,
		p *models.Payment,
		bookingPaymentStatus PaymentStatus,
	) error
}
