package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/infra/lock"
	"github.com/av954416-web/javadrive/internal/infra/payment"
	"github.com/av954416-web/javadrive/internal/middleware"
	"github.com/av954416-web/javadrive/internal/mocks"
	"github.com/av954416-web/javadrive/internal/models"
	ucBooking "github.com/av954416-web/javadrive/internal/usecase/booking"
	ucPayment "github.com/av954416-web/javadrive/internal/usecase/payment"
	"github.com/av954416-web/javadrive/internal/validators"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validators.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func as(p identity.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextPrincipal, p)
		c.Next()
	}
}

func newBookingHandler(repo *mocks.BookingRepository) *BookingHandler {
	return NewBookingHandler(
		ucBooking.NewCheckAvailability(repo),
		ucBooking.NewCreateBooking(repo, lock.Noop{}, nil, zap.NewNop(), "BRL", "UTC"),
		ucBooking.NewGetBooking(repo),
		ucBooking.NewUpdateBookingStatus(repo, nil),
		ucBooking.NewListUserBookings(repo),
	)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httperr.HTTPError {
	t.Helper()
	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAvailabilityEndpoint(t *testing.T) {
	carID := uuid.New()
	start, _ := time.Parse("2006-01-02", "2024-06-01")
	end, _ := time.Parse("2006-01-02", "2024-06-05")

	repo := new(mocks.BookingRepository)
	repo.On("GetCar", mock.Anything, carID).Return(&models.Car{ID: carID}, nil)
	repo.On("ListActiveBookingsForCar", mock.Anything, carID).Return([]models.Booking{
		{CarID: carID, StartDate: start, EndDate: end, Status: "confirmed"},
	}, nil)

	r := gin.New()
	r.GET("/cars/:id/availability", newBookingHandler(repo).Availability)

	cases := []struct {
		query     string
		status    int
		available bool
	}{
		{"start_date=2024-06-05&end_date=2024-06-07", http.StatusOK, false},
		{"start_date=2024-06-06&end_date=2024-06-07", http.StatusOK, true},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cars/"+carID.String()+"/availability?"+tc.query, nil))
		require.Equal(t, tc.status, w.Code)

		var res ucBooking.AvailabilityResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, tc.available, res.Available, tc.query)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cars/"+carID.String()+"/availability?start_date=2024-06-07&end_date=2024-06-01", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date_range", decodeError(t, w).Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cars/not-a-uuid/availability", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", decodeError(t, w).Code)
}

func TestCreateBookingEndpoint(t *testing.T) {
	user := identity.Principal{UserID: uuid.New(), Role: identity.RoleUser}
	car := &models.Car{ID: uuid.New(), OwnerID: uuid.New(), IsAvailable: true}

	post := func(r http.Handler, body any) *httptest.ResponseRecorder {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	future := time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02")

	t.Run("created", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		repo.On("GetCar", mock.Anything, car.ID).Return(car, nil)
		repo.On("CreateBookingWithPayment", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		r := gin.New()
		r.POST("/bookings", as(user), newBookingHandler(repo).Create)

		w := post(r, gin.H{"car_id": car.ID, "start_date": future, "end_date": future, "total_cost": 120})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var out map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "pending", out["status"])
		assert.Equal(t, "pending", out["payment_status"])
		assert.Equal(t, future, out["start_date"])
	})

	t.Run("conflict", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		repo.On("GetCar", mock.Anything, car.ID).Return(car, nil)
		repo.On("CreateBookingWithPayment", mock.Anything, mock.Anything, mock.Anything).
			Return(httperr.ErrBusiness("booking_conflict"))

		r := gin.New()
		r.POST("/bookings", as(user), newBookingHandler(repo).Create)

		w := post(r, gin.H{"car_id": car.ID, "start_date": future, "end_date": future})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "booking_conflict", decodeError(t, w).Code)
	})

	t.Run("binding rejects malformed dates", func(t *testing.T) {
		r := gin.New()
		r.POST("/bookings", as(user), newBookingHandler(new(mocks.BookingRepository)).Create)

		w := post(r, gin.H{"car_id": car.ID, "start_date": "June 1", "end_date": future})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", decodeError(t, w).Code)
	})

	t.Run("storage failure is a 500 without details", func(t *testing.T) {
		repo := new(mocks.BookingRepository)
		repo.On("GetCar", mock.Anything, car.ID).Return(nil, assert.AnError)

		r := gin.New()
		r.POST("/bookings", as(user), newBookingHandler(repo).Create)

		w := post(r, gin.H{"car_id": car.ID, "start_date": future, "end_date": future})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "internal_error", body.Code)
		assert.NotContains(t, body.Message, assert.AnError.Error())
	})

	t.Run("missing principal", func(t *testing.T) {
		r := gin.New()
		r.POST("/bookings", newBookingHandler(new(mocks.BookingRepository)).Create)

		w := post(r, gin.H{"car_id": car.ID, "start_date": future, "end_date": future})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateBookingStatusEndpoint(t *testing.T) {
	car := models.Car{ID: uuid.New(), OwnerID: uuid.New()}
	b := &models.Booking{ID: uuid.New(), CarID: car.ID, Car: car, UserID: uuid.New(), Status: "pending", PaymentStatus: "pending"}

	repo := new(mocks.BookingRepository)
	repo.On("GetBooking", mock.Anything, b.ID).Return(b, nil)
	repo.On("UpdateBookingStatus", mock.Anything, b).Return(nil)

	owner := identity.Principal{UserID: car.OwnerID, Role: identity.RoleOwner}
	r := gin.New()
	r.PATCH("/bookings/:id/status", as(owner), newBookingHandler(repo).UpdateStatus)

	patch := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/bookings/"+b.ID.String()+"/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := patch(`{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = patch(`{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = patch(`{"status":"completed"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_transition", decodeError(t, w).Code)

	w = patch(`{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
}

func TestPaymentWebhookEndpoint(t *testing.T) {
	repo := new(mocks.BookingRepository)
	h := NewPaymentHandler(
		ucPayment.NewStartCheckout(repo, payment.Disabled{}, nil),
		ucPayment.NewHandleWebhook(repo, payment.Disabled{}, nil, zap.NewNop()),
		ucPayment.NewUpdatePayment(repo, nil),
	)

	r := gin.New()
	r.POST("/payments/webhook", h.Webhook)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payments/webhook?type=merchant_order&data.id=1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payments/webhook?type=payment&data.id=1", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "payment_gateway_disabled", decodeError(t, w).Code)
}
