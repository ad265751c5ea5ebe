package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizdesk-api/internal/application/service"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/middleware"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	// Stripe caps event payloads well below this.
	maxWebhookBytes = 1 << 20
)

// BillingHandler handles subscription billing endpoints
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Checkout handles POST /billing/checkout
func (h *BillingHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	session, err := h.billingService.Checkout(c.Request.Context(), middleware.GetCaller(c), req.PlanID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewSessionResponse(session))
}

// Portal handles POST /billing/portal. The body is optional.
func (h *BillingHandler) Portal(c *gin.Context) {
	var req request.PortalRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BindError(c, err)
		return
	}

	session, err := h.billingService.Portal(c.Request.Context(), middleware.GetCaller(c), req.ReturnURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewSessionResponse(session))
}

// Cancel handles POST /billing/cancel
func (h *BillingHandler) Cancel(c *gin.Context) {
	result, err := h.billingService.Cancel(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewCancelResponse(result))
}

// Subscription handles GET /billing/subscription
func (h *BillingHandler) Subscription(c *gin.Context) {
	sub, err := h.billingService.GetSubscription(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, sub)
}

// Webhook handles POST /billing/webhook. The raw body is needed for the
// signature check, so it is read before any decoding.
func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Unable to read webhook payload"))
		return
	}

	result, err := h.billingService.HandleWebhook(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewWebhookResponse(result))
}
