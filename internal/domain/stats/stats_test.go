package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/av954416-web/javadrive/internal/models"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 4.0, AverageRating([]int{5, 3, 4}))
	assert.InDelta(t, 4.5, AverageRating([]int{5, 4}), 1e-9)
	assert.InDelta(t, 11.0/3.0, AverageRating([]int{5, 5, 1}), 1e-9)
}

func TestRevenueCountsOnlyPaid(t *testing.T) {
	bookings := []models.Booking{
		{TotalCost: 100, PaymentStatus: "paid", Status: "completed"},
		{TotalCost: 250, PaymentStatus: "pending", Status: "pending"},
		{TotalCost: 40.5, PaymentStatus: "paid", Status: "confirmed"},
		{TotalCost: 999, PaymentStatus: "refunded", Status: "cancelled"},
		{TotalCost: 12, PaymentStatus: "failed", Status: "pending"},
	}

	assert.InDelta(t, 140.5, Revenue(bookings), 1e-9)
	assert.Equal(t, 0.0, Revenue(bookings[1:2]))
}

func TestActiveBookingsAndCounts(t *testing.T) {
	bookings := []models.Booking{
		{Status: "pending"},
		{Status: "confirmed"},
		{Status: "completed"},
		{Status: "cancelled"},
		{Status: "confirmed"},
	}

	assert.Equal(t, 3, ActiveBookings(bookings))
	assert.Equal(t, map[string]int{
		"pending":   1,
		"confirmed": 2,
		"completed": 1,
		"cancelled": 1,
	}, CountByStatus(bookings))
}

func TestSummarizeCar(t *testing.T) {
	summary := SummarizeCar(
		[]models.Booking{
			{Status: "confirmed", PaymentStatus: "paid", TotalCost: 300},
			{Status: "pending", PaymentStatus: "pending", TotalCost: 150},
		},
		[]models.Review{{Rating: 5}, {Rating: 3}, {Rating: 4}},
	)

	assert.Equal(t, CarSummary{
		Bookings:       2,
		ActiveBookings: 2,
		Revenue:        300,
		AverageRating:  4,
		ReviewCount:    3,
	}, summary)
}
