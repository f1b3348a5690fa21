package booking

import (
	domain "github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/timezone"
)

func parseRange(startDate, endDate string) (domain.DateRange, error) {
	start, err := timezone.ParseDate(startDate)
	if err != nil {
		return domain.DateRange{}, httperr.ErrBusiness("invalid_date")
	}
	end, err := timezone.ParseDate(endDate)
	if err != nil {
		return domain.DateRange{}, httperr.ErrBusiness("invalid_date")
	}

	r := domain.NewDateRange(start, end)
	if !r.Valid() {
		return domain.DateRange{}, httperr.ErrBusiness("invalid_date_range")
	}
	return r, nil
}
