// Package stats holds the read-side reducers shared by the catalogue and dashboards.
package stats

import (
	"github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/models"
)

// AverageRating is the arithmetic mean of the ratings, 0 when there are none.
// Every view that shows a rating goes through here so totals reconcile.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

func ReviewRatings(reviews []models.Review) []int {
	out := make([]int, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r.Rating)
	}
	return out
}

// Revenue sums totalCost over bookings whose payment status is paid.
func Revenue(bookings []models.Booking) float64 {
	var total float64
	for _, b := range bookings {
		if booking.PaymentStatus(b.PaymentStatus) == booking.PaymentPaid {
			total += b.TotalCost
		}
	}
	return total
}

// ActiveBookings counts bookings that are pending or confirmed.
func ActiveBookings(bookings []models.Booking) int {
	n := 0
	for _, b := range bookings {
		if booking.Status(b.Status).Active() {
			n++
		}
	}
	return n
}

func CountByStatus(bookings []models.Booking) map[string]int {
	out := map[string]int{
		string(booking.StatusPending):   0,
		string(booking.StatusConfirmed): 0,
		string(booking.StatusCompleted): 0,
		string(booking.StatusCancelled): 0,
	}
	for _, b := range bookings {
		out[b.Status]++
	}
	return out
}

// CarSummary is the per-car slice of an owner dashboard.
type CarSummary struct {
	Bookings       int     `json:"bookings"`
	ActiveBookings int     `json:"active_bookings"`
	Revenue        float64 `json:"revenue"`
	AverageRating  float64 `json:"average_rating"`
	ReviewCount    int     `json:"review_count"`
}

func SummarizeCar(bookings []models.Booking, reviews []models.Review) CarSummary {
	return CarSummary{
		Bookings:       len(bookings),
		ActiveBookings: ActiveBookings(bookings),
		Revenue:        Revenue(bookings),
		AverageRating:  AverageRating(ReviewRatings(reviews)),
		ReviewCount:    len(reviews),
	}
}
