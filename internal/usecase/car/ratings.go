package car

import (
	"context"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/domain/catalog"
	"github.com/av954416-web/javadrive/internal/domain/stats"
	"github.com/av954416-web/javadrive/internal/dto"
	"github.com/av954416-web/javadrive/internal/models"
)

// withRatings decorates cars with the same average every other view uses.
func withRatings(
	ctx context.Context,
	repo catalog.Repository,
	cars []models.Car,
) ([]dto.CarDTO, error) {

	ids := make([]uuid.UUID, 0, len(cars))
	for _, c := range cars {
		ids = append(ids, c.ID)
	}

	ratings, err := repo.RatingsForCars(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CarDTO, 0, len(cars))
	for _, c := range cars {
		r := ratings[c.ID]
		out = append(out, dto.NewCarDTO(c, stats.AverageRating(r), len(r)))
	}
	return out, nil
}
