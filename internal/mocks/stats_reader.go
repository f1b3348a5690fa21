package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/av954416-web/javadrive/internal/domain/stats"
	"github.com/av954416-web/javadrive/internal/models"
)

type StatsReader struct {
	mock.Mock
}

func (m *StatsReader) ListCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Car, error) {
	args := m.Called(ctx, ownerID)
	cars, _ := args.Get(0).([]models.Car)
	return cars, args.Error(1)
}

func (m *StatsReader) ListBookingsForCars(ctx context.Context, carIDs []uuid.UUID) ([]models.Booking, error) {
	args := m.Called(ctx, carIDs)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *StatsReader) ListReviewsForCars(ctx context.Context, carIDs []uuid.UUID) ([]models.Review, error) {
	args := m.Called(ctx, carIDs)
	reviews, _ := args.Get(0).([]models.Review)
	return reviews, args.Error(1)
}

func (m *StatsReader) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *StatsReader) CountUsersByRole(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int64)
	return counts, args.Error(1)
}

func (m *StatsReader) CountCars(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

var _ stats.Reader = (*StatsReader)(nil)
