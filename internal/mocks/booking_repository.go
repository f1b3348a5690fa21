package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/models"
)

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) GetCar(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	args := m.Called(ctx, id)
	car, _ := args.Get(0).(*models.Car)
	return car, args.Error(1)
}

func (m *BookingRepository) ListActiveBookingsForCar(ctx context.Context, carID uuid.UUID) ([]models.Booking, error) {
	args := m.Called(ctx, carID)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *BookingRepository) CreateBookingWithPayment(ctx context.Context, b *models.Booking, p *models.Payment) error {
	return m.Called(ctx, b, p).Error(0)
}

func (m *BookingRepository) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *BookingRepository) ListBookingsForUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *BookingRepository) UpdateBookingStatus(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BookingRepository) GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Payment)
	return p, args.Error(1)
}

func (m *BookingRepository) UpdatePayment(ctx context.Context, p *models.Payment, bookingPaymentStatus domain.PaymentStatus) error {
	return m.Called(ctx, p, bookingPaymentStatus).Error(0)
}

var _ domain.Repository = (*BookingRepository)(nil)
