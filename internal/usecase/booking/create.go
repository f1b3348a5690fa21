package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/av954416-web/javadrive/internal/audit"
	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/infra/lock"
	"github.com/av954416-web/javadrive/internal/models"
	"github.com/av954416-web/javadrive/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CarID     uuid.UUID
	StartDate string
	EndDate   string
	TotalCost float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	locker   lock.Locker
	audit    *audit.Dispatcher
	log      *zap.Logger
	currency string
	timezone string
	now      func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	log *zap.Logger,
	currency string,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		locker:   locker,
		audit:    audit,
		log:      log,
		currency: currency,
		timezone: tz,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	p identity.Principal,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Input shape
	// --------------------------------------------------
	r, err := parseRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	if r.Start.Before(timezone.Today(uc.now(), uc.timezone)) {
		return nil, httperr.ErrBusiness("start_in_past")
	}

	// totalCost is stored as given; pricing is the caller's responsibility.
	if in.TotalCost < 0 {
		return nil, httperr.ErrBusiness("invalid_total_cost")
	}

	// --------------------------------------------------
	// 2. Car
	// --------------------------------------------------
	car, err := uc.repo.GetCar(ctx, in.CarID)
	if err != nil {
		return nil, err
	}
	if !car.IsAvailable {
		return nil, httperr.ErrBusiness("car_not_listed")
	}

	// --------------------------------------------------
	// 3. Per-car lock (best effort, the database decides)
	// --------------------------------------------------
	unlock, err := uc.locker.Lock(ctx, "car:"+car.ID.String())
	if err != nil {
		uc.log.Warn("booking lock unavailable, relying on database lock",
			zap.String("car_id", car.ID.String()),
			zap.Error(err),
		)
		unlock = func() {}
	}
	defer unlock()

	// --------------------------------------------------
	// 4. Booking + payment, atomically with the conflict check
	// --------------------------------------------------
	b := &models.Booking{
		CarID:         car.ID,
		UserID:        p.UserID,
		StartDate:     r.Start,
		EndDate:       r.End,
		TotalCost:     in.TotalCost,
		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.InitialPaymentStatus()),
	}
	pay := &models.Payment{
		Amount:   in.TotalCost,
		Currency: uc.currency,
		Status:   string(domain.ChargePending),
	}

	if err := uc.repo.CreateBookingWithPayment(ctx, b, pay); err != nil {
		if httperr.IsBusiness(err, "booking_conflict") {
			uc.audit.Dispatch(audit.Event{
				UserID:   &p.UserID,
				Action:   "booking_conflict",
				Entity:   "car",
				EntityID: &car.ID,
				Metadata: map[string]any{
					"start_date": timezone.FormatDate(r.Start),
					"end_date":   timezone.FormatDate(r.End),
				},
			})
		}
		return nil, err
	}

	b.Payment = pay

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"car_id":     car.ID,
			"total_cost": b.TotalCost,
		},
	})

	return b, nil
}
