package car

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/audit"
	"github.com/av954416-web/javadrive/internal/domain/catalog"
	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/domain/stats"
	"github.com/av954416-web/javadrive/internal/dto"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CarInput struct {
	Brand              string
	Model              string
	Year               int
	RegistrationNumber string
	Category           string
	Transmission       string
	FuelType           string
	Seats              int
	PricePerDay        float64
	Location           string
	Description        string
	Features           []string
	IsAvailable        *bool
}

// CarPatch only touches the fields that are set.
type CarPatch struct {
	Brand              *string
	Model              *string
	Year               *int
	RegistrationNumber *string
	Category           *string
	Transmission       *string
	FuelType           *string
	Seats              *int
	PricePerDay        *float64
	Location           *string
	Description        *string
	Features           *[]string
	IsAvailable        *bool
}

func validateEnums(category, transmission, fuel string) error {
	if !catalog.ValidCategory(category) {
		return httperr.ErrBusiness("invalid_category")
	}
	if !catalog.ValidTransmission(transmission) {
		return httperr.ErrBusiness("invalid_transmission")
	}
	if !catalog.ValidFuelType(fuel) {
		return httperr.ErrBusiness("invalid_fuel_type")
	}
	return nil
}

// ======================================================
// CREATE
// ======================================================

type CreateCar struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
}

func NewCreateCar(repo catalog.Repository, audit *audit.Dispatcher) *CreateCar {
	return &CreateCar{repo: repo, audit: audit}
}

func (uc *CreateCar) Execute(
	ctx context.Context,
	p identity.Principal,
	in CarInput,
) (*dto.CarDTO, error) {

	if !p.CanManageFleet() {
		return nil, httperr.ErrForbidden("owner_role_required")
	}

	if err := validateEnums(in.Category, in.Transmission, in.FuelType); err != nil {
		return nil, err
	}
	if in.PricePerDay < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	car := &models.Car{
		OwnerID:            p.UserID,
		Brand:              strings.TrimSpace(in.Brand),
		Model:              strings.TrimSpace(in.Model),
		Year:               in.Year,
		RegistrationNumber: strings.ToUpper(strings.TrimSpace(in.RegistrationNumber)),
		Category:           in.Category,
		Transmission:       in.Transmission,
		FuelType:           in.FuelType,
		Seats:              in.Seats,
		PricePerDay:        in.PricePerDay,
		Location:           strings.TrimSpace(in.Location),
		Description:        in.Description,
		Images:             []string{},
		Features:           in.Features,
		IsAvailable:        true,
	}
	if in.IsAvailable != nil {
		car.IsAvailable = *in.IsAvailable
	}

	if err := uc.repo.CreateCar(ctx, car); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "car_created",
		Entity:   "car",
		EntityID: &car.ID,
	})

	out := dto.NewCarDTO(*car, 0, 0)
	return &out, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateCar struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
}

func NewUpdateCar(repo catalog.Repository, audit *audit.Dispatcher) *UpdateCar {
	return &UpdateCar{repo: repo, audit: audit}
}

func (uc *UpdateCar) Execute(
	ctx context.Context,
	p identity.Principal,
	carID uuid.UUID,
	in CarPatch,
) (*dto.CarDTO, error) {

	car, err := uc.repo.GetCar(ctx, carID)
	if err != nil {
		return nil, err
	}
	if !p.Owns(car.OwnerID) {
		return nil, httperr.ErrForbidden("not_owner")
	}

	if in.Brand != nil {
		car.Brand = strings.TrimSpace(*in.Brand)
	}
	if in.Model != nil {
		car.Model = strings.TrimSpace(*in.Model)
	}
	if in.Year != nil {
		car.Year = *in.Year
	}
	if in.RegistrationNumber != nil {
		car.RegistrationNumber = strings.ToUpper(strings.TrimSpace(*in.RegistrationNumber))
	}
	if in.Category != nil {
		car.Category = *in.Category
	}
	if in.Transmission != nil {
		car.Transmission = *in.Transmission
	}
	if in.FuelType != nil {
		car.FuelType = *in.FuelType
	}
	if in.Seats != nil {
		car.Seats = *in.Seats
	}
	if in.PricePerDay != nil {
		if *in.PricePerDay < 0 {
			return nil, httperr.ErrBusiness("invalid_price")
		}
		car.PricePerDay = *in.PricePerDay
	}
	if in.Location != nil {
		car.Location = strings.TrimSpace(*in.Location)
	}
	if in.Description != nil {
		car.Description = *in.Description
	}
	if in.Features != nil {
		car.Features = *in.Features
	}
	if in.IsAvailable != nil {
		car.IsAvailable = *in.IsAvailable
	}

	if err := validateEnums(car.Category, car.Transmission, car.FuelType); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateCar(ctx, car); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "car_updated",
		Entity:   "car",
		EntityID: &car.ID,
	})

	ratings, err := uc.repo.RatingsForCars(ctx, []uuid.UUID{car.ID})
	if err != nil {
		return nil, err
	}
	r := ratings[car.ID]

	out := dto.NewCarDTO(*car, stats.AverageRating(r), len(r))
	return &out, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteCar struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
}

func NewDeleteCar(repo catalog.Repository, audit *audit.Dispatcher) *DeleteCar {
	return &DeleteCar{repo: repo, audit: audit}
}

// Execute removes the car together with its bookings, payments and reviews.
func (uc *DeleteCar) Execute(ctx context.Context, p identity.Principal, carID uuid.UUID) error {
	car, err := uc.repo.GetCar(ctx, carID)
	if err != nil {
		return err
	}
	if !p.Owns(car.OwnerID) {
		return httperr.ErrForbidden("not_owner")
	}

	if err := uc.repo.DeleteCar(ctx, carID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "car_deleted",
		Entity:   "car",
		EntityID: &carID,
		Metadata: map[string]any{"registration_number": car.RegistrationNumber},
	})
	return nil
}
