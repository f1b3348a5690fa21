package booking

import (
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func ChangeStatus(b *models.Booking, to Status) error {
	if err := CanTransition(Status(b.Status), to); err != nil {
		return err
	}
	b.Status = string(to)
	return nil
}

// ChangePaymentStatus drives the booking's payment status through its
// payment record, so both tables must accept the move.
func ChangePaymentStatus(b *models.Booking, to PaymentStatus) error {
	if err := CanTransitionPayment(PaymentStatus(b.PaymentStatus), to); err != nil {
		return err
	}
	if b.Payment == nil {
		return httperr.ErrNotFound("payment_not_found")
	}
	if _, err := ChangeCharge(b.Payment, to.Charge()); err != nil {
		return err
	}
	b.PaymentStatus = string(to)
	return nil
}

// ChangeCharge moves a payment record and returns the status its booking must mirror.
func ChangeCharge(p *models.Payment, to ChargeStatus) (PaymentStatus, error) {
	if err := CanTransitionCharge(ChargeStatus(p.Status), to); err != nil {
		return "", err
	}
	p.Status = string(to)
	return to.BookingPaymentStatus(), nil
}
