package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/httpresp"
	ucReview "github.com/av954416-web/javadrive/internal/usecase/review"
)

type ReviewHandler struct {
	create  *ucReview.CreateReview
	respond *ucReview.RespondToReview
	list    *ucReview.ListCarReviews
}

func NewReviewHandler(
	create *ucReview.CreateReview,
	respond *ucReview.RespondToReview,
	list *ucReview.ListCarReviews,
) *ReviewHandler {
	return &ReviewHandler{create: create, respond: respond, list: list}
}

type CreateReviewRequest struct {
	CarID   uuid.UUID `json:"car_id" binding:"required"`
	Rating  int       `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string    `json:"comment" binding:"max=2000"`
}

type RespondReviewRequest struct {
	Response string `json:"response" binding:"required,max=2000"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.create.Execute(c.Request.Context(), p, ucReview.CreateReviewInput{
		CarID:   req.CarID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, r)
}

func (h *ReviewHandler) Respond(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RespondReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.respond.Execute(c.Request.Context(), p, id, req.Response)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, r)
}

func (h *ReviewHandler) ListForCar(c *gin.Context) {
	carID, ok := pathID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.list.Execute(c.Request.Context(), carID)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, reviews)
}
