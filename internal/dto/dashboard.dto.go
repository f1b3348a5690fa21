package dto

import (
	"github.com/av954416-web/javadrive/internal/domain/stats"
)

type OwnerCarStatsDTO struct {
	CarDTO
	Stats stats.CarSummary `json:"stats"`
}

type OwnerDashboardDTO struct {
	TotalCars      int                `json:"total_cars"`
	TotalBookings  int                `json:"total_bookings"`
	ActiveBookings int                `json:"active_bookings"`
	Revenue        float64            `json:"revenue"`
	AverageRating  float64            `json:"average_rating"`
	ReviewCount    int                `json:"review_count"`
	Cars           []OwnerCarStatsDTO `json:"cars"`
	RecentBookings []BookingListDTO   `json:"recent_bookings"`
}

type AdminDashboardDTO struct {
	TotalUsers       int64            `json:"total_users"`
	UsersByRole      map[string]int64 `json:"users_by_role"`
	TotalCars        int64            `json:"total_cars"`
	TotalBookings    int              `json:"total_bookings"`
	ActiveBookings   int              `json:"active_bookings"`
	Revenue          float64          `json:"revenue"`
	BookingsByStatus map[string]int   `json:"bookings_by_status"`
	RecentBookings   []BookingListDTO `json:"recent_bookings"`
}
