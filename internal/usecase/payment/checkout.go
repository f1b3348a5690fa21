package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/audit"
	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/httperr"
	gateway "github.com/av954416-web/javadrive/internal/infra/payment"
	"github.com/av954416-web/javadrive/internal/timezone"
)

type CheckoutResult struct {
	PaymentID uuid.UUID `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	CheckURL  string    `json:"checkout_url"`
}

type StartCheckout struct {
	repo    domain.Repository
	gateway gateway.Gateway
	audit   *audit.Dispatcher
}

func NewStartCheckout(
	repo domain.Repository,
	gw gateway.Gateway,
	audit *audit.Dispatcher,
) *StartCheckout {
	return &StartCheckout{repo: repo, gateway: gw, audit: audit}
}

func (uc *StartCheckout) Execute(
	ctx context.Context,
	p identity.Principal,
	bookingID uuid.UUID,
) (*CheckoutResult, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.UserID != p.UserID {
		return nil, httperr.ErrForbidden("not_booking_party")
	}

	if b.Payment == nil {
		return nil, httperr.ErrNotFound("payment_not_found")
	}
	if charge := domain.ChargeStatus(b.Payment.Status); charge == domain.ChargeSuccess || charge == domain.ChargeRefunded {
		return nil, httperr.ErrBusiness("payment_already_settled")
	}
	if domain.Status(b.Status) == domain.StatusCancelled {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	out, err := uc.gateway.CreateCheckout(ctx, gateway.CheckoutInput{
		PaymentID: b.Payment.ID,
		Title:     fmt.Sprintf("%s %s", b.Car.Brand, b.Car.Model),
		Description: fmt.Sprintf("Rental %s to %s",
			timezone.FormatDate(b.StartDate),
			timezone.FormatDate(b.EndDate),
		),
		Amount:   b.Payment.Amount,
		Currency: b.Payment.Currency,
	})
	if errors.Is(err, gateway.ErrDisabled) {
		return nil, httperr.ErrBusiness("payment_gateway_disabled")
	}
	if err != nil {
		return nil, err
	}

	pay := b.Payment
	if err := apply(ctx, uc.repo, pay, nil, &out.OrderID, nil); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "checkout_started",
		Entity:   "payment",
		EntityID: &pay.ID,
		Metadata: map[string]any{"order_id": out.OrderID},
	})

	return &CheckoutResult{
		PaymentID: pay.ID,
		OrderID:   out.OrderID,
		CheckURL:  out.CheckURL,
	}, nil
}
