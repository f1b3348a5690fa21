package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/timezone"
)

type AvailabilityResult struct {
	Available bool            `json:"available"`
	Blocked   []BlockedPeriod `json:"blocked"`
}

type BlockedPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// IsAvailable is the bare engine check. An unknown car has no bookings and
// is therefore reported as available; callers that care check the car first.
func (uc *CheckAvailability) IsAvailable(
	ctx context.Context,
	carID uuid.UUID,
	r domain.DateRange,
) (bool, error) {

	bookings, err := uc.repo.ListActiveBookingsForCar(ctx, carID)
	if err != nil {
		return false, err
	}
	return domain.IsAvailable(bookings, r), nil
}

// Execute answers the public availability query: the car must exist and
// the dates must parse and be ordered.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	carID uuid.UUID,
	startDate string,
	endDate string,
) (*AvailabilityResult, error) {

	r, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetCar(ctx, carID); err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListActiveBookingsForCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	conflicts := domain.Conflicts(bookings, r)
	out := &AvailabilityResult{
		Available: len(conflicts) == 0,
		Blocked:   make([]BlockedPeriod, 0, len(conflicts)),
	}
	for _, b := range conflicts {
		out.Blocked = append(out.Blocked, BlockedPeriod{
			StartDate: timezone.FormatDate(b.StartDate),
			EndDate:   timezone.FormatDate(b.EndDate),
		})
	}
	return out, nil
}
