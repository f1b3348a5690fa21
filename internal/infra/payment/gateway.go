// Package payment talks to the card gateway. Only checkout creation and
// status lookups are supported; everything else stays on the gateway side.
package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrDisabled = errors.New("payment gateway disabled")

type CheckoutInput struct {
	PaymentID   uuid.UUID
	Title       string
	Description string
	Amount      float64
	Currency    string
}

type Checkout struct {
	OrderID  string
	CheckURL string
}

type GatewayPayment struct {
	ID        string
	PaymentID uuid.UUID
	// Status is already mapped to "pending", "success" or "failed".
	Status string
}

type Gateway interface {
	CreateCheckout(ctx context.Context, in CheckoutInput) (*Checkout, error)
	FetchPayment(ctx context.Context, gatewayPaymentID string) (*GatewayPayment, error)
}

// Disabled is wired when no gateway credentials are configured.
type Disabled struct{}

func (Disabled) CreateCheckout(context.Context, CheckoutInput) (*Checkout, error) {
	return nil, ErrDisabled
}

func (Disabled) FetchPayment(context.Context, string) (*GatewayPayment, error) {
	return nil, ErrDisabled
}
