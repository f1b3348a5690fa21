package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type MercadoPago struct {
	preferences     preference.Client
	payments        mppayment.Client
	notificationURL string
}

func NewMercadoPago(accessToken, notificationURL string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPago{
		preferences:     preference.NewClient(cfg),
		payments:        mppayment.NewClient(cfg),
		notificationURL: notificationURL,
	}, nil
}

func (m *MercadoPago) CreateCheckout(ctx context.Context, in CheckoutInput) (*Checkout, error) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          in.PaymentID.String(),
				Title:       in.Title,
				Description: in.Description,
				Quantity:    1,
				UnitPrice:   in.Amount,
				CurrencyID:  in.Currency,
			},
		},
		ExternalReference: in.PaymentID.String(),
		NotificationURL:   m.notificationURL,
	}

	res, err := m.preferences.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago preference: %w", err)
	}

	return &Checkout{OrderID: res.ID, CheckURL: res.InitPoint}, nil
}

func (m *MercadoPago) FetchPayment(ctx context.Context, gatewayPaymentID string) (*GatewayPayment, error) {
	id, err := strconv.Atoi(gatewayPaymentID)
	if err != nil {
		return nil, fmt.Errorf("mercadopago payment id %q: %w", gatewayPaymentID, err)
	}

	res, err := m.payments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mercadopago payment: %w", err)
	}

	paymentID, err := uuid.Parse(res.ExternalReference)
	if err != nil {
		return nil, fmt.Errorf("mercadopago external reference %q: %w", res.ExternalReference, err)
	}

	return &GatewayPayment{
		ID:        strconv.Itoa(res.ID),
		PaymentID: paymentID,
		Status:    MapStatus(res.Status),
	}, nil
}

// MapStatus folds Mercado Pago payment states into payment record states.
func MapStatus(status string) string {
	switch status {
	case "approved":
		return "success"
	case "rejected", "cancelled":
		return "failed"
	case "refunded", "charged_back":
		return "refunded"
	}
	return "pending"
}

var (
	_ Gateway = (*MercadoPago)(nil)
	_ Gateway = Disabled{}
)
