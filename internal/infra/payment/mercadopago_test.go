package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	assert.Equal(t, "success", MapStatus("approved"))
	assert.Equal(t, "failed", MapStatus("rejected"))
	assert.Equal(t, "failed", MapStatus("cancelled"))
	assert.Equal(t, "refunded", MapStatus("refunded"))
	assert.Equal(t, "refunded", MapStatus("charged_back"))
	assert.Equal(t, "pending", MapStatus("in_process"))
	assert.Equal(t, "pending", MapStatus(""))
}

func TestDisabledGateway(t *testing.T) {
	_, err := Disabled{}.CreateCheckout(context.Background(), CheckoutInput{})
	assert.ErrorIs(t, err, ErrDisabled)

	_, err = Disabled{}.FetchPayment(context.Background(), "1")
	assert.ErrorIs(t, err, ErrDisabled)
}
