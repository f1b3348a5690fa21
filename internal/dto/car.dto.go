package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/models"
)

type CarDTO struct {
	ID                 uuid.UUID `json:"id"`
	OwnerID            uuid.UUID `json:"owner_id"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	Year               int       `json:"year"`
	RegistrationNumber string    `json:"registration_number"`
	Category           string    `json:"category"`
	Transmission       string    `json:"transmission"`
	FuelType           string    `json:"fuel_type"`
	Seats              int       `json:"seats"`
	PricePerDay        float64   `json:"price_per_day"`
	Location           string    `json:"location"`
	Description        string    `json:"description"`
	Images             []string  `json:"images"`
	Features           []string  `json:"features"`
	IsAvailable        bool      `json:"is_available"`
	AverageRating      float64   `json:"average_rating"`
	ReviewCount        int       `json:"review_count"`
	CreatedAt          time.Time `json:"created_at"`
}

type OwnerSummaryDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProfileImage string    `json:"profile_image"`
}

type ReviewDTO struct {
	ID            uuid.UUID  `json:"id"`
	CarID         uuid.UUID  `json:"car_id"`
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name,omitempty"`
	Rating        int        `json:"rating"`
	Comment       string     `json:"comment"`
	OwnerResponse *string    `json:"owner_response"`
	RespondedAt   *time.Time `json:"responded_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CarDetailDTO struct {
	CarDTO
	Owner   OwnerSummaryDTO `json:"owner"`
	Reviews []ReviewDTO     `json:"reviews"`
}

func NewCarDTO(c models.Car, averageRating float64, reviewCount int) CarDTO {
	images := []string(c.Images)
	if images == nil {
		images = []string{}
	}
	features := []string(c.Features)
	if features == nil {
		features = []string{}
	}
	return CarDTO{
		ID:                 c.ID,
		OwnerID:            c.OwnerID,
		Brand:              c.Brand,
		Model:              c.Model,
		Year:               c.Year,
		RegistrationNumber: c.RegistrationNumber,
		Category:           c.Category,
		Transmission:       c.Transmission,
		FuelType:           c.FuelType,
		Seats:              c.Seats,
		PricePerDay:        c.PricePerDay,
		Location:           c.Location,
		Description:        c.Description,
		Images:             images,
		Features:           features,
		IsAvailable:        c.IsAvailable,
		AverageRating:      averageRating,
		ReviewCount:        reviewCount,
		CreatedAt:          c.CreatedAt,
	}
}

func NewReviewDTO(r models.Review) ReviewDTO {
	out := ReviewDTO{
		ID:            r.ID,
		CarID:         r.CarID,
		UserID:        r.UserID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		OwnerResponse: r.OwnerResponse,
		RespondedAt:   r.RespondedAt,
		CreatedAt:     r.CreatedAt,
	}
	if r.User.ID != uuid.Nil {
		out.UserName = r.User.FullName()
	}
	return out
}

func NewReviewList(reviews []models.Review) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewReviewDTO(r))
	}
	return out
}
