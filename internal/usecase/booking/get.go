package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/dto"
	"github.com/av954416-web/javadrive/internal/httperr"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	p identity.Principal,
	bookingID uuid.UUID,
) (*dto.BookingListDTO, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.UserID != p.UserID && !p.Owns(b.Car.OwnerID) {
		return nil, httperr.ErrForbidden("not_booking_party")
	}

	out := dto.NewBookingListDTO(*b)
	return &out, nil
}
