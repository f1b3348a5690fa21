package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/av954416-web/javadrive/internal/domain/account"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

// UserRole reads only the stored role; the auth middleware calls it on
// every request so role changes apply before old tokens expire.
func (r *AccountGormRepository) UserRole(ctx context.Context, id uuid.UUID) (string, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Select("id", "role").
		First(&u, "id = ?", id).Error; err != nil {
		return "", notFound(err, "user_not_found")
	}
	return u.Role, nil
}

func (r *AccountGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (r *AccountGormRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("email_already_exists")
	}
	return err
}

func (r *AccountGormRepository) UpdateUserRole(ctx context.Context, id uuid.UUID, role string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("user_not_found")
	}
	return nil
}

// Compile-time check
var _ account.Repository = (*AccountGormRepository)(nil)
