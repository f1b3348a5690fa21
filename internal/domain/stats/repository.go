package stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/models"
)

// Reader feeds the dashboards with raw rows; all arithmetic stays in this package.
type Reader interface {
	ListCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Car, error)
	ListBookingsForCars(ctx context.Context, carIDs []uuid.UUID) ([]models.Booking, error)
	ListReviewsForCars(ctx context.Context, carIDs []uuid.UUID) ([]models.Review, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
	CountUsersByRole(ctx context.Context) (map[string]int64, error)
	CountCars(ctx context.Context) (int64, error)
}
