package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/dto"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/httpresp"
	ucBooking "github.com/av954416-web/javadrive/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	availability *ucBooking.CheckAvailability
	create       *ucBooking.CreateBooking
	get          *ucBooking.GetBooking
	updateStatus *ucBooking.UpdateBookingStatus
	listUser     *ucBooking.ListUserBookings
}

func NewBookingHandler(
	availability *ucBooking.CheckAvailability,
	create *ucBooking.CreateBooking,
	get *ucBooking.GetBooking,
	updateStatus *ucBooking.UpdateBookingStatus,
	listUser *ucBooking.ListUserBookings,
) *BookingHandler {
	return &BookingHandler{
		availability: availability,
		create:       create,
		get:          get,
		updateStatus: updateStatus,
		listUser:     listUser,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CarID     uuid.UUID `json:"car_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required,date_only"`
	EndDate   string    `json:"end_date" binding:"required,date_only"`
	TotalCost float64   `json:"total_cost" binding:"gte=0"`
}

type UpdateBookingStatusRequest struct {
	Status        *string `json:"status" binding:"omitempty,booking_status"`
	PaymentStatus *string `json:"payment_status" binding:"omitempty,payment_status"`
}

// ======================================================
// AVAILABILITY (public)
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	carID, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := h.availability.Execute(
		c.Request.Context(),
		carID,
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), p, ucBooking.CreateBookingInput{
		CarID:     req.CarID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		TotalCost: req.TotalCost,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, dto.NewBookingListDTO(*b))
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), p, id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	bookings, err := h.listUser.Execute(c.Request.Context(), p)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Status == nil && req.PaymentStatus == nil {
		httperr.BadRequest(c, "invalid_request", "Nothing to update.")
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), p, id, ucBooking.UpdateBookingInput{
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingListDTO(*b))
}
