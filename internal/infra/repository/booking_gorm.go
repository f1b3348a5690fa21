package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
)

// dateLayout keeps date parameters as calendar days so Postgres compares
// them as `date` regardless of the session time zone.
const dateLayout = "2006-01-02"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Car
// --------------------------------------------------

func (r *BookingGormRepository) GetCar(
	ctx context.Context,
	id uuid.UUID,
) (*models.Car, error) {

	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "car_not_found")
	}
	return &car, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookingsForCar(
	ctx context.Context,
	carID uuid.UUID,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "car_id", "start_date", "end_date", "status").
		Where("car_id = ? AND status IN ?", carID, domain.ActiveStatuses).
		Order("start_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBookingWithPayment(
	ctx context.Context,
	b *models.Booking,
	p *models.Payment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Serializes every booking attempt for the same car.
		var car models.Car
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&car, "id = ?", b.CarID).Error; err != nil {
			return notFound(err, "car_not_found")
		}

		var overlapping []models.Booking
		if err := tx.
			Select("id", "start_date", "end_date", "status").
			Where(
				"car_id = ? AND status IN ? AND start_date <= ? AND end_date >= ?",
				b.CarID,
				domain.ActiveStatuses,
				b.EndDate.Format(dateLayout),
				b.StartDate.Format(dateLayout),
			).
			Find(&overlapping).Error; err != nil {
			return err
		}

		if !domain.IsAvailable(overlapping, domain.NewDateRange(b.StartDate, b.EndDate)) {
			return httperr.ErrBusiness("booking_conflict")
		}

		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}

		p.BookingID = b.ID
		return tx.Create(p).Error
	})

	if httperr.IsExclusionConflict(err) || httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("booking_conflict")
	}
	return err
}

// --------------------------------------------------
// Booking (read / state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Car").
		Preload("Payment").
		First(&b, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "booking_not_found")
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Car").
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(b).
			Omit(clause.Associations).
			Updates(map[string]any{
				"status":         b.Status,
				"payment_status": b.PaymentStatus,
			}).Error; err != nil {
			return err
		}

		if b.Payment == nil {
			return nil
		}
		return tx.
			Model(b.Payment).
			Update("status", b.Payment.Status).Error
	})

	// Reviving a cancelled range is impossible through the transition
	// table, but the constraint still has the last word.
	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("booking_conflict")
	}
	return err
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *BookingGormRepository) GetPayment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "payment_not_found")
	}
	return &p, nil
}

// UpdatePayment writes the payment record and its booking mirror together.
// The booking row is locked so its own transition table is checked
// against the value actually stored.
func (r *BookingGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
	bookingPaymentStatus domain.PaymentStatus,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "payment_status").
			First(&b, "id = ?", p.BookingID).Error; err != nil {
			return notFound(err, "booking_not_found")
		}

		if err := domain.CanTransitionPayment(
			domain.PaymentStatus(b.PaymentStatus),
			bookingPaymentStatus,
		); err != nil {
			return err
		}

		if err := tx.
			Model(p).
			Updates(map[string]any{
				"status":             p.Status,
				"gateway_order_id":   p.GatewayOrderID,
				"gateway_payment_id": p.GatewayPaymentID,
			}).Error; err != nil {
			return err
		}

		return tx.
			Model(&models.Booking{}).
			Where("id = ?", p.BookingID).
			Update("payment_status", string(bookingPaymentStatus)).Error
	})
}

// notFound translates gorm's sentinel into the domain's 404 error.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
