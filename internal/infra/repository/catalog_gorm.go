package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/av954416-web/javadrive/internal/domain/catalog"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Car
// --------------------------------------------------

func (r *CatalogGormRepository) GetCar(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "car_not_found")
	}
	return &car, nil
}

func (r *CatalogGormRepository) GetCarWithOwner(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&car, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "car_not_found")
	}
	return &car, nil
}

func (r *CatalogGormRepository) ListCars(ctx context.Context, f catalog.CarFilter) ([]models.Car, error) {
	f = f.Normalize()

	q := r.db.WithContext(ctx).Model(&models.Car{})

	if !f.IncludeUnlisted {
		q = q.Where("is_available = ?", true)
	}

	if f.Search != "" {
		like := "%" + escapeLike(f.Search) + "%"
		q = q.Where(
			"LOWER(brand) LIKE ? OR LOWER(model) LIKE ? OR LOWER(description) LIKE ?",
			like, like, like,
		)
	}

	if f.MinPrice != nil {
		q = q.Where("price_per_day >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_per_day <= ?", *f.MaxPrice)
	}

	if len(f.Brands) > 0 {
		q = q.Where("LOWER(brand) IN ?", f.Brands)
	}
	if len(f.Categories) > 0 {
		q = q.Where("category IN ?", f.Categories)
	}
	if len(f.Transmissions) > 0 {
		q = q.Where("transmission IN ?", f.Transmissions)
	}

	var cars []models.Car
	if err := q.Order("created_at DESC").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CatalogGormRepository) ListCarsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Car, error) {
	var cars []models.Car
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CatalogGormRepository) CreateCar(ctx context.Context, car *models.Car) error {
	err := r.db.WithContext(ctx).Omit("Owner").Create(car).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("registration_taken")
	}
	return err
}

func (r *CatalogGormRepository) UpdateCar(ctx context.Context, car *models.Car) error {
	err := r.db.WithContext(ctx).Omit("Owner").Save(car).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("registration_taken")
	}
	return err
}

// DeleteCar relies on ON DELETE CASCADE for bookings, payments and reviews.
func (r *CatalogGormRepository) DeleteCar(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Car{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("car_not_found")
	}
	return nil
}

// likeEscaper neutralizes LIKE wildcards; backslash is Postgres's default
// LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// --------------------------------------------------
// Review
// --------------------------------------------------

func (r *CatalogGormRepository) GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "review_not_found")
	}
	return &review, nil
}

func (r *CatalogGormRepository) ListReviewsForCar(ctx context.Context, carID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("car_id = ?", carID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *CatalogGormRepository) RatingsForCars(ctx context.Context, carIDs []uuid.UUID) (map[uuid.UUID][]int, error) {
	out := make(map[uuid.UUID][]int, len(carIDs))
	if len(carIDs) == 0 {
		return out, nil
	}

	var rows []models.Review
	if err := r.db.WithContext(ctx).
		Select("car_id", "rating").
		Where("car_id IN ?", carIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.CarID] = append(out[row.CarID], row.Rating)
	}
	return out, nil
}

func (r *CatalogGormRepository) HasReviewed(ctx context.Context, carID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("car_id = ? AND user_id = ?", carID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CatalogGormRepository) CreateReview(ctx context.Context, review *models.Review) error {
	err := r.db.WithContext(ctx).Omit("Car", "User").Create(review).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("already_reviewed")
	}
	return err
}

func (r *CatalogGormRepository) UpdateReview(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).
		Model(review).
		Updates(map[string]any{
			"owner_response": review.OwnerResponse,
			"responded_at":   review.RespondedAt,
		}).Error
}

// Compile-time check
var _ catalog.Repository = (*CatalogGormRepository)(nil)
