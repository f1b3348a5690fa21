package booking

import "github.com/av954416-web/javadrive/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ActiveStatuses block a car's dates. Completed and cancelled never do.
var ActiveStatuses = []string{string(StatusPending), string(StatusConfirmed)}

func (s Status) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ===============================
// Booking Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	_, ok := paymentStatusTransitions[s]
	return ok
}

var paymentStatusTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:  {PaymentPaid, PaymentFailed},
	PaymentFailed:   {PaymentPending, PaymentPaid},
	PaymentPaid:     {PaymentRefunded},
	PaymentRefunded: {},
}

// ===============================
// Payment Record Status
// ===============================

type ChargeStatus string

const (
	ChargePending  ChargeStatus = "pending"
	ChargeSuccess  ChargeStatus = "success"
	ChargeFailed   ChargeStatus = "failed"
	ChargeRefunded ChargeStatus = "refunded"
)

func (s ChargeStatus) Valid() bool {
	_, ok := chargeTransitions[s]
	return ok
}

var chargeTransitions = map[ChargeStatus][]ChargeStatus{
	ChargePending:  {ChargeSuccess, ChargeFailed},
	ChargeFailed:   {ChargePending, ChargeSuccess},
	ChargeSuccess:  {ChargeRefunded},
	ChargeRefunded: {},
}

// BookingPaymentStatus is the booking-side mirror of a payment record status.
func (s ChargeStatus) BookingPaymentStatus() PaymentStatus {
	switch s {
	case ChargeSuccess:
		return PaymentPaid
	case ChargeFailed:
		return PaymentFailed
	case ChargeRefunded:
		return PaymentRefunded
	}
	return PaymentPending
}

// Charge is the payment record status that produces s on the booking.
func (s PaymentStatus) Charge() ChargeStatus {
	switch s {
	case PaymentPaid:
		return ChargeSuccess
	case PaymentFailed:
		return ChargeFailed
	case PaymentRefunded:
		return ChargeRefunded
	}
	return ChargePending
}

// ===============================
// Validations
// ===============================

func allowed[T comparable](table map[T][]T, from, to T) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransition rejects any status move not listed in the table.
// Writing the current status again is accepted as a no-op.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if from == to || allowed(statusTransitions, from, to) {
		return nil
	}
	return httperr.ErrBusiness("invalid_transition")
}

func CanTransitionPayment(from, to PaymentStatus) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_payment_status")
	}
	if from == to || allowed(paymentStatusTransitions, from, to) {
		return nil
	}
	return httperr.ErrBusiness("invalid_transition")
}

func CanTransitionCharge(from, to ChargeStatus) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_payment_status")
	}
	if from == to || allowed(chargeTransitions, from, to) {
		return nil
	}
	return httperr.ErrBusiness("invalid_transition")
}

func InitialStatus() Status {
	return StatusPending
}

func InitialPaymentStatus() PaymentStatus {
	return PaymentPending
}
