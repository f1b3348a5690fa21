package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/av954416-web/javadrive/internal/domain/catalog"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/httpresp"
	"github.com/av954416-web/javadrive/internal/middleware"
	ucCar "github.com/av954416-web/javadrive/internal/usecase/car"
)

// maxImageBytes bounds a single multipart upload.
const maxImageBytes = 10 << 20

// ======================================================
// HANDLER
// ======================================================

type CarHandler struct {
	list      *ucCar.ListCars
	listOwner *ucCar.ListOwnerCars
	get       *ucCar.GetCar
	create    *ucCar.CreateCar
	update    *ucCar.UpdateCar
	remove    *ucCar.DeleteCar
	upload    *ucCar.UploadCarImage
}

func NewCarHandler(
	list *ucCar.ListCars,
	listOwner *ucCar.ListOwnerCars,
	get *ucCar.GetCar,
	create *ucCar.CreateCar,
	update *ucCar.UpdateCar,
	remove *ucCar.DeleteCar,
	upload *ucCar.UploadCarImage,
) *CarHandler {
	return &CarHandler{
		list:      list,
		listOwner: listOwner,
		get:       get,
		create:    create,
		update:    update,
		remove:    remove,
		upload:    upload,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCarRequest struct {
	Brand              string   `json:"brand" binding:"required,max=60"`
	Model              string   `json:"model" binding:"required,max=60"`
	Year               int      `json:"year" binding:"required,gte=1950,lte=2100"`
	RegistrationNumber string   `json:"registration_number" binding:"required,max=32"`
	Category           string   `json:"category" binding:"required,car_category"`
	Transmission       string   `json:"transmission" binding:"required,transmission"`
	FuelType           string   `json:"fuel_type" binding:"required,fuel_type"`
	Seats              int      `json:"seats" binding:"required,gte=1,lte=60"`
	PricePerDay        float64  `json:"price_per_day" binding:"gte=0"`
	Location           string   `json:"location" binding:"max=120"`
	Description        string   `json:"description"`
	Features           []string `json:"features"`
	IsAvailable        *bool    `json:"is_available"`
}

type UpdateCarRequest struct {
	Brand              *string   `json:"brand" binding:"omitempty,max=60"`
	Model              *string   `json:"model" binding:"omitempty,max=60"`
	Year               *int      `json:"year" binding:"omitempty,gte=1950,lte=2100"`
	RegistrationNumber *string   `json:"registration_number" binding:"omitempty,max=32"`
	Category           *string   `json:"category" binding:"omitempty,car_category"`
	Transmission       *string   `json:"transmission" binding:"omitempty,transmission"`
	FuelType           *string   `json:"fuel_type" binding:"omitempty,fuel_type"`
	Seats              *int      `json:"seats" binding:"omitempty,gte=1,lte=60"`
	PricePerDay        *float64  `json:"price_per_day" binding:"omitempty,gte=0"`
	Location           *string   `json:"location" binding:"omitempty,max=120"`
	Description        *string   `json:"description"`
	Features           *[]string `json:"features"`
	IsAvailable        *bool     `json:"is_available"`
}

// ======================================================
// READ
// ======================================================

func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryList(c *gin.Context, key string) []string {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func (h *CarHandler) List(c *gin.Context) {
	viewer, _ := middleware.PrincipalFrom(c)

	f := catalog.CarFilter{
		Search:          c.Query("search"),
		MinPrice:        parsePrice(c.Query("min_price")),
		MaxPrice:        parsePrice(c.Query("max_price")),
		Brands:          queryList(c, "brands"),
		Categories:      queryList(c, "types"),
		Transmissions:   queryList(c, "transmissions"),
		IncludeUnlisted: c.Query("include_unlisted") == "true",
	}

	cars, err := h.list.Execute(c.Request.Context(), viewer, f)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, cars)
}

func (h *CarHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	car, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, car)
}

func (h *CarHandler) ListOwner(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	cars, err := h.listOwner.Execute(c.Request.Context(), p)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, cars)
}

// ======================================================
// WRITE
// ======================================================

func (h *CarHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req CreateCarRequest
	if !bindJSON(c, &req) {
		return
	}

	car, err := h.create.Execute(c.Request.Context(), p, ucCar.CarInput{
		Brand:              req.Brand,
		Model:              req.Model,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		Category:           req.Category,
		Transmission:       req.Transmission,
		FuelType:           req.FuelType,
		Seats:              req.Seats,
		PricePerDay:        req.PricePerDay,
		Location:           req.Location,
		Description:        req.Description,
		Features:           req.Features,
		IsAvailable:        req.IsAvailable,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, car)
}

func (h *CarHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateCarRequest
	if !bindJSON(c, &req) {
		return
	}

	car, err := h.update.Execute(c.Request.Context(), p, id, ucCar.CarPatch{
		Brand:              req.Brand,
		Model:              req.Model,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		Category:           req.Category,
		Transmission:       req.Transmission,
		FuelType:           req.FuelType,
		Seats:              req.Seats,
		PricePerDay:        req.PricePerDay,
		Location:           req.Location,
		Description:        req.Description,
		Features:           req.Features,
		IsAvailable:        req.IsAvailable,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, car)
}

func (h *CarHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), p, id); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *CarHandler) UploadImage(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	if fh.Size > maxImageBytes {
		httperr.BadRequest(c, "invalid_image", "The uploaded file is too large.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.From(c, err)
		return
	}
	defer f.Close()

	images, err := h.upload.Execute(c.Request.Context(), p, id, f)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, gin.H{"images": images})
}
