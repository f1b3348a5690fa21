package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/audit"
	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
)

type UpdatePaymentInput struct {
	Status           *string
	GatewayOrderID   *string
	GatewayPaymentID *string
}

type UpdatePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdatePayment(repo domain.Repository, audit *audit.Dispatcher) *UpdatePayment {
	return &UpdatePayment{repo: repo, audit: audit}
}

// Execute is the manual override used by administrators. Gateway
// callbacks go through HandleWebhook instead.
func (uc *UpdatePayment) Execute(
	ctx context.Context,
	p identity.Principal,
	paymentID uuid.UUID,
	in UpdatePaymentInput,
) (*models.Payment, error) {

	if !p.IsAdmin() {
		return nil, httperr.ErrForbidden("admin_role_required")
	}

	pay, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	var to *domain.ChargeStatus
	if in.Status != nil {
		s := domain.ChargeStatus(*in.Status)
		to = &s
	}

	if err := apply(ctx, uc.repo, pay, to, in.GatewayOrderID, in.GatewayPaymentID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "payment_updated",
		Entity:   "payment",
		EntityID: &pay.ID,
		Metadata: map[string]any{"status": pay.Status},
	})

	return pay, nil
}

// apply moves the payment record and mirrors the result on its booking
// in one write.
func apply(
	ctx context.Context,
	repo domain.Repository,
	pay *models.Payment,
	to *domain.ChargeStatus,
	orderID, gatewayPaymentID *string,
) error {

	mirror := domain.ChargeStatus(pay.Status).BookingPaymentStatus()
	if to != nil {
		next, err := domain.ChangeCharge(pay, *to)
		if err != nil {
			return err
		}
		mirror = next
	}

	if orderID != nil {
		pay.GatewayOrderID = orderID
	}
	if gatewayPaymentID != nil {
		pay.GatewayPaymentID = gatewayPaymentID
	}

	return repo.UpdatePayment(ctx, pay, mirror)
}
