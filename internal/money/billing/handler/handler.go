package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79/webhook"

	"biolink-server/internal/apierrors"
	"biolink-server/internal/money/billing/processor"
	"biolink-server/internal/observability"
)

type BillingHandler struct {
	processor *processor.BillingProcessor
	logger    *observability.Logger
}

func New(processor *processor.BillingProcessor, logger *observability.Logger) *BillingHandler {
	return &BillingHandler{
		processor: processor,
		logger:    logger,
	}
}

// HandleWebhook verifies and processes Stripe webhook deliveries
func (h *BillingHandler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Failed to read request body")
		return
	}

	signatureHeader := c.GetHeader("Stripe-Signature")
	if signatureHeader == "" {
		apierrors.BadRequest(c, "INVALID_SIGNATURE", "Missing Stripe-Signature header")
		return
	}

	event, err := webhook.ConstructEvent(payload, signatureHeader, h.processor.WebhookSecret)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_SIGNATURE", "Invalid webhook signature")
		return
	}

	if err := h.processor.HandleWebhook(ctx, event); err != nil {
		h.logger.Error(ctx, "failed to process stripe webhook", err)
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
