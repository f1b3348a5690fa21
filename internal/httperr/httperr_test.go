package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusinessUnwraps(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness("booking_conflict"))

	assert.True(t, IsBusiness(err, "booking_conflict"))
	assert.False(t, IsBusiness(err, "invalid_date"))
	assert.False(t, IsBusiness(errors.New("booking_conflict"), "booking_conflict"))
}

func TestPgErrorClassification(t *testing.T) {
	excl := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"})
	uniq := &pgconn.PgError{Code: "23505", ConstraintName: "idx_cars_registration_number"}

	assert.True(t, IsExclusionConflict(excl))
	assert.False(t, IsUniqueViolation(excl))
	assert.Equal(t, "bookings_no_overlap", ConstraintName(excl))

	assert.True(t, IsUniqueViolation(uniq))
	assert.False(t, IsExclusionConflict(uniq))

	assert.False(t, IsExclusionConflict(errors.New("boom")))
	assert.Equal(t, "", ConstraintName(errors.New("boom")))
}

func TestFromMapsStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrBusiness("booking_conflict"), http.StatusBadRequest, "booking_conflict"},
		{ErrNotFound("car_not_found"), http.StatusNotFound, "car_not_found"},
		{ErrForbidden("not_owner"), http.StatusForbidden, "not_owner"},
		{ErrUnauthorized("invalid_credentials"), http.StatusUnauthorized, "invalid_credentials"},
		{errors.New("connection refused"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		From(c, tc.err)

		assert.Equal(t, tc.status, w.Code)
		var body HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.code, body.Code)
		assert.NotContains(t, body.Message, "connection refused")
	}
}
