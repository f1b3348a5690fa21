package booking

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
)

// memRepo serializes writes the way the car-row lock does in Postgres.
type memRepo struct {
	mu       sync.Mutex
	cars     map[uuid.UUID]models.Car
	bookings []models.Booking
	payments map[uuid.UUID]*models.Payment
}

func newMemRepo(cars ...models.Car) *memRepo {
	r := &memRepo{
		cars:     map[uuid.UUID]models.Car{},
		payments: map[uuid.UUID]*models.Payment{},
	}
	for _, c := range cars {
		r.cars[c.ID] = c
	}
	return r
}

func (r *memRepo) GetCar(_ context.Context, id uuid.UUID) (*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cars[id]
	if !ok {
		return nil, httperr.ErrNotFound("car_not_found")
	}
	return &c, nil
}

func (r *memRepo) ListActiveBookingsForCar(_ context.Context, carID uuid.UUID) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CarID == carID && domain.Status(b.Status).Active() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memRepo) CreateBookingWithPayment(_ context.Context, b *models.Booking, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var existing []models.Booking
	for _, other := range r.bookings {
		if other.CarID == b.CarID {
			existing = append(existing, other)
		}
	}
	if !domain.IsAvailable(existing, domain.NewDateRange(b.StartDate, b.EndDate)) {
		return httperr.ErrBusiness("booking_conflict")
	}

	b.ID = uuid.New()
	p.ID = uuid.New()
	p.BookingID = b.ID
	r.bookings = append(r.bookings, *b)
	r.payments[p.ID] = p
	return nil
}

func (r *memRepo) GetBooking(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			b.Car = r.cars[b.CarID]
			b.Payment = r.paymentFor(b.ID)
			return &b, nil
		}
	}
	return nil, httperr.ErrNotFound("booking_not_found")
}

func (r *memRepo) ListBookingsForUser(_ context.Context, userID uuid.UUID) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memRepo) UpdateBookingStatus(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i].Status = b.Status
			r.bookings[i].PaymentStatus = b.PaymentStatus
			if b.Payment != nil {
				cp := *b.Payment
				r.payments[cp.ID] = &cp
			}
			return nil
		}
	}
	return httperr.ErrNotFound("booking_not_found")
}

func (r *memRepo) GetPayment(_ context.Context, id uuid.UUID) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, httperr.ErrNotFound("payment_not_found")
	}
	cp := *p
	return &cp, nil
}

func (r *memRepo) UpdatePayment(_ context.Context, p *models.Payment, s domain.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID != p.BookingID {
			continue
		}
		if err := domain.CanTransitionPayment(domain.PaymentStatus(r.bookings[i].PaymentStatus), s); err != nil {
			return err
		}
		cp := *p
		r.payments[p.ID] = &cp
		r.bookings[i].PaymentStatus = string(s)
		return nil
	}
	return httperr.ErrNotFound("booking_not_found")
}

// paymentFor must be called with mu held.
func (r *memRepo) paymentFor(bookingID uuid.UUID) *models.Payment {
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			cp := *p
			return &cp
		}
	}
	return nil
}

var _ domain.Repository = (*memRepo)(nil)
