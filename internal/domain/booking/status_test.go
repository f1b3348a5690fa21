package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
)

func TestCanTransition(t *testing.T) {
	ok := [][2]Status{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
		{StatusCompleted, StatusCompleted},
	}
	for _, tr := range ok {
		assert.NoError(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	rejected := [][2]Status{
		{StatusCompleted, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusPending},
	}
	for _, tr := range rejected {
		err := CanTransition(tr[0], tr[1])
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "%s -> %s", tr[0], tr[1])
	}

	assert.True(t, httperr.IsBusiness(CanTransition(StatusPending, "archived"), "invalid_status"))
}

func TestCanTransitionPayment(t *testing.T) {
	assert.NoError(t, CanTransitionPayment(PaymentPending, PaymentPaid))
	assert.NoError(t, CanTransitionPayment(PaymentFailed, PaymentPaid))
	assert.NoError(t, CanTransitionPayment(PaymentPaid, PaymentRefunded))
	assert.True(t, httperr.IsBusiness(CanTransitionPayment(PaymentRefunded, PaymentPaid), "invalid_transition"))
	assert.True(t, httperr.IsBusiness(CanTransitionPayment(PaymentPending, PaymentRefunded), "invalid_transition"))
	assert.True(t, httperr.IsBusiness(CanTransitionPayment(PaymentPending, "paid-ish"), "invalid_payment_status"))
}

func TestChangeChargeMirrorsBookingStatus(t *testing.T) {
	p := &models.Payment{Status: string(ChargePending)}

	mirror, err := ChangeCharge(p, ChargeSuccess)
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, mirror)
	assert.Equal(t, string(ChargeSuccess), p.Status)

	_, err = ChangeCharge(p, ChargeFailed)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	assert.Equal(t, string(ChargeSuccess), p.Status)
}

func TestChangeStatusLeavesBookingUntouchedOnError(t *testing.T) {
	b := &models.Booking{Status: string(StatusCompleted)}

	err := ChangeStatus(b, StatusPending)

	assert.Error(t, err)
	assert.Equal(t, string(StatusCompleted), b.Status)
}

func TestInitialStates(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
	assert.Equal(t, PaymentPending, InitialPaymentStatus())
}

func TestChargeRefund(t *testing.T) {
	p := &models.Payment{Status: string(ChargeSuccess)}

	mirror, err := ChangeCharge(p, ChargeRefunded)
	require.NoError(t, err)
	assert.Equal(t, PaymentRefunded, mirror)

	_, err = ChangeCharge(p, ChargeSuccess)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}

func TestPaymentStatusChargeRoundTrip(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded} {
		assert.Equal(t, s, s.Charge().BookingPaymentStatus(), s)
	}
}

func TestChangePaymentStatusMovesPaymentRecord(t *testing.T) {
	t.Run("paid settles the record", func(t *testing.T) {
		b := &models.Booking{
			PaymentStatus: string(PaymentPending),
			Payment:       &models.Payment{Status: string(ChargePending)},
		}

		require.NoError(t, ChangePaymentStatus(b, PaymentPaid))
		assert.Equal(t, string(PaymentPaid), b.PaymentStatus)
		assert.Equal(t, string(ChargeSuccess), b.Payment.Status)
	})

	t.Run("record table is checked too", func(t *testing.T) {
		b := &models.Booking{
			PaymentStatus: string(PaymentPending),
			Payment:       &models.Payment{Status: string(ChargeSuccess)},
		}

		err := ChangePaymentStatus(b, PaymentFailed)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
		assert.Equal(t, string(PaymentPending), b.PaymentStatus)
		assert.Equal(t, string(ChargeSuccess), b.Payment.Status)
	})

	t.Run("missing record", func(t *testing.T) {
		b := &models.Booking{PaymentStatus: string(PaymentPending)}

		err := ChangePaymentStatus(b, PaymentPaid)
		assert.True(t, httperr.IsNotFound(err))
	})
}
