package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/models"
)

type Repository interface {
	// -------- Car --------
	GetCar(ctx context.Context, id uuid.UUID) (*models.Car, error)
	GetCarWithOwner(ctx context.Context, id uuid.UUID) (*models.Car, error)
	ListCars(ctx context.Context, f CarFilter) ([]models.Car, error)
	ListCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Car, error)
	CreateCar(ctx context.Context, car *models.Car) error
	UpdateCar(ctx context.Context, car *models.Car) error
	DeleteCar(ctx context.Context, id uuid.UUID) error

	// -------- Review --------
	GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ListReviewsForCar(ctx context.Context, carID uuid.UUID) ([]models.Review, error)
	RatingsForCars(ctx context.Context, carIDs []uuid.UUID) (map[uuid.UUID][]int, error)
	HasReviewed(ctx context.Context, carID, userID uuid.UUID) (bool, error)
	CreateReview(ctx context.Context, r *models.Review) error
	UpdateReview(ctx context.Context, r *models.Review) error
}
