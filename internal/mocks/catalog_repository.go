package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/av954416-web/javadrive/internal/domain/catalog"
	"github.com/av954416-web/javadrive/internal/models"
)

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) GetCar(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	args := m.Called(ctx, id)
	car, _ := args.Get(0).(*models.Car)
	return car, args.Error(1)
}

func (m *CatalogRepository) GetCarWithOwner(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	args := m.Called(ctx, id)
	car, _ := args.Get(0).(*models.Car)
	return car, args.Error(1)
}

func (m *CatalogRepository) ListCars(ctx context.Context, f catalog.CarFilter) ([]models.Car, error) {
	args := m.Called(ctx, f)
	cars, _ := args.Get(0).([]models.Car)
	return cars, args.Error(1)
}

func (m *CatalogRepository) ListCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Car, error) {
	args := m.Called(ctx, ownerID)
	cars, _ := args.Get(0).([]models.Car)
	return cars, args.Error(1)
}

func (m *CatalogRepository) CreateCar(ctx context.Context, car *models.Car) error {
	return m.Called(ctx, car).Error(0)
}

func (m *CatalogRepository) UpdateCar(ctx context.Context, car *models.Car) error {
	return m.Called(ctx, car).Error(0)
}

func (m *CatalogRepository) DeleteCar(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CatalogRepository) GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*models.Review)
	return r, args.Error(1)
}

func (m *CatalogRepository) ListReviewsForCar(ctx context.Context, carID uuid.UUID) ([]models.Review, error) {
	args := m.Called(ctx, carID)
	reviews, _ := args.Get(0).([]models.Review)
	return reviews, args.Error(1)
}

func (m *CatalogRepository) RatingsForCars(ctx context.Context, carIDs []uuid.UUID) (map[uuid.UUID][]int, error) {
	args := m.Called(ctx, carIDs)
	ratings, _ := args.Get(0).(map[uuid.UUID][]int)
	return ratings, args.Error(1)
}

func (m *CatalogRepository) HasReviewed(ctx context.Context, carID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, carID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *CatalogRepository) CreateReview(ctx context.Context, r *models.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *CatalogRepository) UpdateReview(ctx context.Context, r *models.Review) error {
	return m.Called(ctx, r).Error(0)
}

var _ catalog.Repository = (*CatalogRepository)(nil)
