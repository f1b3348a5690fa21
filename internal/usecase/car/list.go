package car

import (
	"context"

	"github.com/av954416-web/javadrive/internal/domain/catalog"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/dto"
	"github.com/av954416-web/javadrive/internal/httperr"
)

type ListCars struct {
	repo catalog.Repository
}

func NewListCars(repo catalog.Repository) *ListCars {
	return &ListCars{repo: repo}
}

// Execute lists the public catalogue. viewer is the zero Principal for
// anonymous callers; only admins may see unlisted cars.
func (uc *ListCars) Execute(
	ctx context.Context,
	viewer identity.Principal,
	f catalog.CarFilter,
) ([]dto.CarDTO, error) {

	if !viewer.IsAdmin() {
		f.IncludeUnlisted = false
	}

	cars, err := uc.repo.ListCars(ctx, f)
	if err != nil {
		return nil, err
	}

	return withRatings(ctx, uc.repo, cars)
}

type ListOwnerCars struct {
	repo catalog.Repository
}

func NewListOwnerCars(repo catalog.Repository) *ListOwnerCars {
	return &ListOwnerCars{repo: repo}
}

func (uc *ListOwnerCars) Execute(ctx context.Context, p identity.Principal) ([]dto.CarDTO, error) {
	if !p.CanManageFleet() {
		return nil, httperr.ErrForbidden("owner_role_required")
	}

	cars, err := uc.repo.ListCarsByOwner(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	return withRatings(ctx, uc.repo, cars)
}
