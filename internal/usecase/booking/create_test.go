package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/infra/lock"
	"github.com/av954416-web/javadrive/internal/mocks"
	"github.com/av954416-web/javadrive/internal/models"
)

var fixedNow = time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

func newCreate(repo *memRepo, locker lock.Locker) *CreateBooking {
	uc := NewCreateBooking(repo, locker, nil, zap.NewNop(), "BRL", "UTC")
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func listedCar() models.Car {
	return models.Car{ID: uuid.New(), OwnerID: uuid.New(), Brand: "Fiat", Model: "Uno", IsAvailable: true}
}

func renter() identity.Principal {
	return identity.Principal{UserID: uuid.New(), Role: identity.RoleUser}
}

type failingLocker struct{}

func (failingLocker) Lock(context.Context, string) (func(), error) {
	return nil, errors.New("redis down")
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success creates pending booking and payment", func(t *testing.T) {
		car := listedCar()
		uc := newCreate(newMemRepo(car), lock.Noop{})

		b, err := uc.Execute(ctx, renter(), CreateBookingInput{
			CarID: car.ID, StartDate: "2024-06-01", EndDate: "2024-06-05", TotalCost: 450,
		})
		require.NoError(t, err)

		assert.Equal(t, "pending", b.Status)
		assert.Equal(t, "pending", b.PaymentStatus)
		assert.Equal(t, 450.0, b.TotalCost)
		require.NotNil(t, b.Payment)
		assert.Equal(t, "BRL", b.Payment.Currency)
		assert.Equal(t, "pending", b.Payment.Status)
		assert.Equal(t, 450.0, b.Payment.Amount)
		assert.Equal(t, b.ID, b.Payment.BookingID)
	})

	t.Run("boundary overlap is a conflict", func(t *testing.T) {
		car := listedCar()
		uc := newCreate(newMemRepo(car), lock.Noop{})
		p := renter()

		_, err := uc.Execute(ctx, p, CreateBookingInput{CarID: car.ID, StartDate: "2024-06-01", EndDate: "2024-06-05"})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, p, CreateBookingInput{CarID: car.ID, StartDate: "2024-06-05", EndDate: "2024-06-07"})
		assert.True(t, httperr.IsBusiness(err, "booking_conflict"))

		_, err = uc.Execute(ctx, p, CreateBookingInput{CarID: car.ID, StartDate: "2024-06-06", EndDate: "2024-06-07"})
		assert.NoError(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		car := listedCar()
		unlisted := listedCar()
		unlisted.IsAvailable = false
		uc := newCreate(newMemRepo(car, unlisted), lock.Noop{})

		cases := []struct {
			name string
			in   CreateBookingInput
			code string
		}{
			{"bad date", CreateBookingInput{CarID: car.ID, StartDate: "06/01/2024", EndDate: "2024-06-05"}, "invalid_date"},
			{"reversed", CreateBookingInput{CarID: car.ID, StartDate: "2024-06-05", EndDate: "2024-06-01"}, "invalid_date_range"},
			{"past", CreateBookingInput{CarID: car.ID, StartDate: "2024-05-19", EndDate: "2024-05-21"}, "start_in_past"},
			{"negative cost", CreateBookingInput{CarID: car.ID, StartDate: "2024-06-01", EndDate: "2024-06-02", TotalCost: -1}, "invalid_total_cost"},
			{"unlisted", CreateBookingInput{CarID: unlisted.ID, StartDate: "2024-06-01", EndDate: "2024-06-02"}, "car_not_listed"},
		}
		for _, tc := range cases {
			_, err := uc.Execute(ctx, renter(), tc.in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "%s: got %v", tc.name, err)
		}
	})

	t.Run("same-day booking starting today is allowed", func(t *testing.T) {
		car := listedCar()
		uc := newCreate(newMemRepo(car), lock.Noop{})

		b, err := uc.Execute(ctx, renter(), CreateBookingInput{CarID: car.ID, StartDate: "2024-05-20", EndDate: "2024-05-20"})
		require.NoError(t, err)
		assert.True(t, b.StartDate.Equal(b.EndDate))
	})

	t.Run("unknown car is not found", func(t *testing.T) {
		uc := newCreate(newMemRepo(), lock.Noop{})

		_, err := uc.Execute(ctx, renter(), CreateBookingInput{CarID: uuid.New(), StartDate: "2024-06-01", EndDate: "2024-06-02"})
		assert.True(t, httperr.IsNotFound(err))
	})

	t.Run("lock failure falls back to the database", func(t *testing.T) {
		car := listedCar()
		uc := newCreate(newMemRepo(car), failingLocker{})

		_, err := uc.Execute(ctx, renter(), CreateBookingInput{CarID: car.ID, StartDate: "2024-06-01", EndDate: "2024-06-02"})
		assert.NoError(t, err)
	})

	t.Run("storage failure is returned as is", func(t *testing.T) {
		car := listedCar()
		repo := new(mocks.BookingRepository)
		repo.On("GetCar", mock.Anything, car.ID).Return(&car, nil)
		repo.On("CreateBookingWithPayment", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down"))

		uc := NewCreateBooking(repo, lock.Noop{}, nil, zap.NewNop(), "BRL", "UTC")
		uc.now = func() time.Time { return fixedNow }

		_, err := uc.Execute(ctx, renter(), CreateBookingInput{CarID: car.ID, StartDate: "2024-06-01", EndDate: "2024-06-02"})
		assert.EqualError(t, err, "db down")
		repo.AssertExpectations(t)
	})
}

func TestCreateBookingConcurrentRequests(t *testing.T) {
	car := listedCar()
	repo := newMemRepo(car)
	uc := newCreate(repo, lock.Noop{})

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)

	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := uc.Execute(context.Background(), renter(), CreateBookingInput{
				CarID: car.ID, StartDate: "2024-07-01", EndDate: "2024-07-03", TotalCost: 100,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case httperr.IsBusiness(err, "booking_conflict"):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflicts)

	active, err := repo.ListActiveBookingsForCar(context.Background(), car.ID)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
