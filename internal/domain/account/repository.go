package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/models"
)

type Repository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUserRole(ctx context.Context, id uuid.UUID, role string) error
}
