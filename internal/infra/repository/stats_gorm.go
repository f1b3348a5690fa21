package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/av954416-web/javadrive/internal/domain/stats"
	"github.com/av954416-web/javadrive/internal/models"
)

// StatsGormRepository only fetches rows; dashboards reduce them in Go.
type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

func (r *StatsGormRepository) ListCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Car, error) {
	var cars []models.Car
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *StatsGormRepository) ListBookingsForCars(ctx context.Context, carIDs []uuid.UUID) ([]models.Booking, error) {
	if len(carIDs) == 0 {
		return nil, nil
	}

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("car_id IN ?", carIDs).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *StatsGormRepository) ListReviewsForCars(ctx context.Context, carIDs []uuid.UUID) ([]models.Review, error) {
	if len(carIDs) == 0 {
		return nil, nil
	}

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Select("id", "car_id", "rating").
		Where("car_id IN ?", carIDs).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *StatsGormRepository) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "car_id", "user_id", "status", "payment_status", "total_cost", "start_date", "end_date", "created_at").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *StatsGormRepository) CountUsersByRole(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Role  string
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Role] = row.Count
	}
	return out, nil
}

func (r *StatsGormRepository) CountCars(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Car{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ stats.Reader = (*StatsGormRepository)(nil)
