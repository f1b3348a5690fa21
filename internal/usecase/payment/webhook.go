package payment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/av954416-web/javadrive/internal/audit"
	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/httperr"
	gateway "github.com/av954416-web/javadrive/internal/infra/payment"
)

type HandleWebhook struct {
	repo    domain.Repository
	gateway gateway.Gateway
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewHandleWebhook(
	repo domain.Repository,
	gw gateway.Gateway,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *HandleWebhook {
	return &HandleWebhook{repo: repo, gateway: gw, audit: audit, log: log}
}

// Execute re-reads the payment from the gateway; the notification body
// is never trusted for the status itself.
func (uc *HandleWebhook) Execute(ctx context.Context, gatewayPaymentID string) error {
	remote, err := uc.gateway.FetchPayment(ctx, gatewayPaymentID)
	if errors.Is(err, gateway.ErrDisabled) {
		return httperr.ErrBusiness("payment_gateway_disabled")
	}
	if err != nil {
		return err
	}

	pay, err := uc.repo.GetPayment(ctx, remote.PaymentID)
	if err != nil {
		return err
	}

	from := pay.Status
	to := domain.ChargeStatus(remote.Status)

	if err := apply(ctx, uc.repo, pay, &to, nil, &remote.ID); err != nil {
		// Out-of-order notifications (e.g. pending after success) are
		// acknowledged so the gateway stops retrying.
		if httperr.IsBusiness(err, "invalid_transition") {
			uc.log.Warn("ignoring gateway status change",
				zap.String("payment_id", pay.ID.String()),
				zap.String("from", from),
				zap.String("to", string(to)),
			)
			return nil
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_webhook",
		Entity:   "payment",
		EntityID: &pay.ID,
		Metadata: map[string]any{
			"gateway_payment_id": remote.ID,
			"from":               from,
			"to":                 pay.Status,
		},
	})

	return nil
}
