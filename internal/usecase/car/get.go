package car

import (
	"context"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/domain/catalog"
	"github.com/av954416-web/javadrive/internal/domain/stats"
	"github.com/av954416-web/javadrive/internal/dto"
)

type GetCar struct {
	repo catalog.Repository
}

func NewGetCar(repo catalog.Repository) *GetCar {
	return &GetCar{repo: repo}
}

func (uc *GetCar) Execute(ctx context.Context, carID uuid.UUID) (*dto.CarDetailDTO, error) {
	car, err := uc.repo.GetCarWithOwner(ctx, carID)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.repo.ListReviewsForCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	avg := stats.AverageRating(stats.ReviewRatings(reviews))

	return &dto.CarDetailDTO{
		CarDTO: dto.NewCarDTO(*car, avg, len(reviews)),
		Owner: dto.OwnerSummaryDTO{
			ID:           car.Owner.ID,
			Name:         car.Owner.FullName(),
			ProfileImage: car.Owner.ProfileImage,
		},
		Reviews: dto.NewReviewList(reviews),
	}, nil
}
