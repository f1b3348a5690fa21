package validators

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/av954416-web/javadrive/internal/domain/booking"
	"github.com/av954416-web/javadrive/internal/domain/catalog"
)

const dateOnly = "2006-01-02"

var rules = map[string]func(string) bool{
	"car_category": catalog.ValidCategory,
	"transmission": catalog.ValidTransmission,
	"fuel_type":    catalog.ValidFuelType,
	"booking_status": func(v string) bool {
		return booking.Status(v).Valid()
	},
	"payment_status": func(v string) bool {
		return booking.PaymentStatus(v).Valid()
	},
	"date_only": func(v string) bool {
		_, err := time.Parse(dateOnly, v)
		return err == nil
	},
}

// Register adds the domain tags to gin's validator. Call once at startup.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	for tag, check := range rules {
		check := check
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		}); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}
