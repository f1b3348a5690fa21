package httperr

var messages = map[string]string{
	"booking_conflict":         "The car is already booked for some of these dates.",
	"booking_not_found":        "Booking not found.",
	"car_not_found":            "Car not found.",
	"car_not_listed":           "This car is not currently listed for rent.",
	"invalid_date_range":       "Start date must not be after end date.",
	"invalid_date":             "Dates must use the YYYY-MM-DD format.",
	"invalid_total_cost":       "Total cost must be zero or positive.",
	"invalid_transition":       "This status change is not allowed.",
	"invalid_status":           "Unknown booking status.",
	"invalid_payment_status":   "Unknown payment status.",
	"payment_not_found":        "Payment not found.",
	"review_not_found":         "Review not found.",
	"user_not_found":           "User not found.",
	"already_reviewed":         "You already reviewed this car.",
	"registration_taken":       "A car with this registration number already exists.",
	"not_owner":                "Only the owner of this car can do that.",
	"not_booking_party":        "You are not part of this booking.",
	"owner_role_required":      "Only car owners can do that.",
	"admin_role_required":      "Only administrators can do that.",
	"image_storage_disabled":   "Image uploads are not configured.",
	"invalid_image":            "The uploaded file is not a supported image.",
	"payment_gateway_disabled": "Online payments are not configured.",
	"payment_already_settled":  "This booking is already paid.",
	"invalid_role":             "Unknown role.",
	"cannot_demote_self":       "Administrators cannot remove their own admin role.",
	"start_in_past":            "Bookings cannot start before today.",
	"invalid_price":            "Price per day must be zero or positive.",
	"invalid_category":         "Unknown car category.",
	"invalid_transmission":     "Unknown transmission.",
	"invalid_fuel_type":        "Unknown fuel type.",
	"invalid_rating":           "Rating must be between 1 and 5.",
	"empty_response":           "Response must not be empty.",
	"email_already_exists":     "An account with this e-mail already exists.",
	"invalid_email":            "The e-mail address is malformed.",
	"invalid_email_domain":     "The e-mail domain does not look valid.",
	"invalid_credentials":      "Invalid e-mail or password.",
	"invalid_request":          "The request body or parameters are invalid.",
	"invalid_id":               "Invalid identifier.",
	"missing_token":            "Authorization header is missing.",
	"invalid_token":            "Token is invalid or expired.",
	"missing_image":            "An image file is required.",
}

func messageFor(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return code
}
