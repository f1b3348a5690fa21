package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/audit"
	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
)

type UpdateBookingInput struct {
	Status        *string
	PaymentStatus *string
}

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies the requested moves through the transition tables.
// The car owner and admins drive the lifecycle; the renter may only cancel.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	p identity.Principal,
	bookingID uuid.UUID,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	isOwner := p.Owns(b.Car.OwnerID)
	isRenter := b.UserID == p.UserID

	if !isOwner && !isRenter {
		return nil, httperr.ErrForbidden("not_booking_party")
	}

	if !isOwner {
		if in.PaymentStatus != nil {
			return nil, httperr.ErrForbidden("not_owner")
		}
		if in.Status != nil && domain.Status(*in.Status) != domain.StatusCancelled {
			return nil, httperr.ErrForbidden("not_owner")
		}
	}

	from := b.Status
	fromPayment := b.PaymentStatus

	if in.Status != nil {
		if err := domain.ChangeStatus(b, domain.Status(*in.Status)); err != nil {
			return nil, err
		}
	}
	if in.PaymentStatus != nil {
		if err := domain.ChangePaymentStatus(b, domain.PaymentStatus(*in.PaymentStatus)); err != nil {
			return nil, err
		}
	}

	if b.Status == from && b.PaymentStatus == fromPayment {
		return b, nil
	}

	if err := uc.repo.UpdateBookingStatus(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"status_from":         from,
			"status_to":           b.Status,
			"payment_status_from": fromPayment,
			"payment_status_to":   b.PaymentStatus,
		},
	})

	return b, nil
}
