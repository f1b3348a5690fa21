package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/domain/stats"
	"github.com/av954416-web/javadrive/internal/dto"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
)

const recentBookings = 10

// ======================================================
// OWNER
// ======================================================

type OwnerDashboard struct {
	repo stats.Reader
}

func NewOwnerDashboard(repo stats.Reader) *OwnerDashboard {
	return &OwnerDashboard{repo: repo}
}

func (uc *OwnerDashboard) Execute(ctx context.Context, p identity.Principal) (*dto.OwnerDashboardDTO, error) {
	if !p.CanManageFleet() {
		return nil, httperr.ErrForbidden("owner_role_required")
	}

	cars, err := uc.repo.ListCarsByOwner(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(cars))
	byID := make(map[uuid.UUID]models.Car, len(cars))
	for _, c := range cars {
		ids = append(ids, c.ID)
		byID[c.ID] = c
	}

	bookings, err := uc.repo.ListBookingsForCars(ctx, ids)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.repo.ListReviewsForCars(ctx, ids)
	if err != nil {
		return nil, err
	}

	bookingsByCar := make(map[uuid.UUID][]models.Booking, len(cars))
	for _, b := range bookings {
		bookingsByCar[b.CarID] = append(bookingsByCar[b.CarID], b)
	}
	reviewsByCar := make(map[uuid.UUID][]models.Review, len(cars))
	for _, r := range reviews {
		reviewsByCar[r.CarID] = append(reviewsByCar[r.CarID], r)
	}

	out := &dto.OwnerDashboardDTO{
		TotalCars:      len(cars),
		TotalBookings:  len(bookings),
		ActiveBookings: stats.ActiveBookings(bookings),
		Revenue:        stats.Revenue(bookings),
		AverageRating:  stats.AverageRating(stats.ReviewRatings(reviews)),
		ReviewCount:    len(reviews),
		Cars:           make([]dto.OwnerCarStatsDTO, 0, len(cars)),
	}

	for _, c := range cars {
		summary := stats.SummarizeCar(bookingsByCar[c.ID], reviewsByCar[c.ID])
		out.Cars = append(out.Cars, dto.OwnerCarStatsDTO{
			CarDTO: dto.NewCarDTO(c, summary.AverageRating, summary.ReviewCount),
			Stats:  summary,
		})
	}

	recent := head(bookings, recentBookings)
	for i := range recent {
		recent[i].Car = byID[recent[i].CarID]
	}
	out.RecentBookings = dto.NewBookingList(recent)

	return out, nil
}

// ======================================================
// ADMIN
// ======================================================

type AdminDashboard struct {
	repo stats.Reader
}

func NewAdminDashboard(repo stats.Reader) *AdminDashboard {
	return &AdminDashboard{repo: repo}
}

func (uc *AdminDashboard) Execute(ctx context.Context, p identity.Principal) (*dto.AdminDashboardDTO, error) {
	if !p.IsAdmin() {
		return nil, httperr.ErrForbidden("admin_role_required")
	}

	users, err := uc.repo.CountUsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	cars, err := uc.repo.CountCars(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := uc.repo.ListAllBookings(ctx)
	if err != nil {
		return nil, err
	}

	var totalUsers int64
	for _, n := range users {
		totalUsers += n
	}

	return &dto.AdminDashboardDTO{
		TotalUsers:       totalUsers,
		UsersByRole:      users,
		TotalCars:        cars,
		TotalBookings:    len(bookings),
		ActiveBookings:   stats.ActiveBookings(bookings),
		Revenue:          stats.Revenue(bookings),
		BookingsByStatus: stats.CountByStatus(bookings),
		RecentBookings:   dto.NewBookingList(head(bookings, recentBookings)),
	}, nil
}

// head assumes bookings are already newest first.
func head(bookings []models.Booking, n int) []models.Booking {
	if len(bookings) > n {
		bookings = bookings[:n]
	}
	out := make([]models.Booking, len(bookings))
	copy(out, bookings)
	return out
}
