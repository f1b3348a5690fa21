package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/av954416-web/javadrive/internal/dto"
	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/httpresp"
	ucPayment "github.com/av954416-web/javadrive/internal/usecase/payment"
)

type PaymentHandler struct {
	checkout *ucPayment.StartCheckout
	webhook  *ucPayment.HandleWebhook
	update   *ucPayment.UpdatePayment
}

func NewPaymentHandler(
	checkout *ucPayment.StartCheckout,
	webhook *ucPayment.HandleWebhook,
	update *ucPayment.UpdatePayment,
) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, webhook: webhook, update: update}
}

type UpdatePaymentRequest struct {
	Status           *string `json:"status" binding:"omitempty,oneof=pending success failed refunded"`
	GatewayOrderID   *string `json:"gateway_order_id" binding:"omitempty,max=128"`
	GatewayPaymentID *string `json:"gateway_payment_id" binding:"omitempty,max=128"`
}

// webhookBody is the notification shape Mercado Pago posts.
type webhookBody struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (h *PaymentHandler) Checkout(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := h.checkout.Execute(c.Request.Context(), p, id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, res)
}

// Webhook accepts both the query-string and the JSON notification forms.
// Topics other than payment are acknowledged and ignored.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	topic := c.Query("type")
	id := c.Query("data.id")

	if id == "" {
		var body webhookBody
		if err := c.ShouldBindJSON(&body); err == nil {
			topic = body.Type
			id = body.Data.ID
		}
	}

	if topic != "payment" || id == "" {
		httpresp.OK(c, gin.H{"received": true})
		return
	}

	if err := h.webhook.Execute(c.Request.Context(), id); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"received": true})
}

func (h *PaymentHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	pay, err := h.update.Execute(c.Request.Context(), p, id, ucPayment.UpdatePaymentInput{
		Status:           req.Status,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, dto.NewPaymentDTO(pay))
}
