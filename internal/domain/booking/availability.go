package booking

import (
	"time"

	"github.com/av954416-web/javadrive/internal/models"
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: truncateDay(start), End: truncateDay(end)}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Valid reports start <= end.
func (r DateRange) Valid() bool {
	return !r.Start.After(r.End)
}

// Days counts rental days; a same-day rental is one day.
func (r DateRange) Days() int {
	if !r.Valid() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Overlaps is closed-interval overlap: s <= end AND e >= start.
// A return on the same day as the next pickup counts as a conflict.
func (r DateRange) Overlaps(other DateRange) bool {
	return !other.Start.After(r.End) && !other.End.Before(r.Start)
}

// Conflicts returns the active bookings whose dates intersect the range.
func Conflicts(bookings []models.Booking, r DateRange) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		if !Status(b.Status).Active() {
			continue
		}
		if r.Overlaps(NewDateRange(b.StartDate, b.EndDate)) {
			out = append(out, b)
		}
	}
	return out
}

// IsAvailable is true iff no active booking overlaps the range.
func IsAvailable(bookings []models.Booking, r DateRange) bool {
	return len(Conflicts(bookings, r)) == 0
}
