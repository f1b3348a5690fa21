package booking

import (
	"context"

	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/dto"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	p identity.Principal,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	return dto.NewBookingList(bookings), nil
}
