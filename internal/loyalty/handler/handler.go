package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"biolink-server/internal/apierrors"
	"biolink-server/internal/loyalty/processor"
	"biolink-server/internal/observability"
)

type LoyaltyHandler struct {
	processor *processor.LoyaltyProcessor
	logger    *observability.Logger
}

func New(processor *processor.LoyaltyProcessor, logger *observability.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		processor: processor,
		logger:    logger,
	}
}

// HandleAddStamp adds a stamp to a customer's loyalty card
func (h *LoyaltyHandler) HandleAddStamp(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid customer ID format")
		return
	}

	card, err := h.processor.AddStamp(ctx, profileID, customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stamp_card": card})
}

func (h *LoyaltyHandler) HandleGetStampCard(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid customer ID format")
		return
	}

	card, err := h.processor.GetStampCard(ctx, profileID, customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stamp_card": card})
}

func (h *LoyaltyHandler) HandleCreateReferralCode(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid customer ID format")
		return
	}

	code, err := h.processor.CreateReferralCode(ctx, profileID, customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"referral_code": code})
}

// HandleApplyReferralCode records a public referral against a code
func (h *LoyaltyHandler) HandleApplyReferralCode(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	code := c.Param("code")
	if slug == "" || code == "" {
		apierrors.BadRequest(c, "INVALID_INPUT", "Slug and code are required")
		return
	}

	if err := h.processor.ApplyReferralCode(ctx, slug, code); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"accepted": true})
}

func (h *LoyaltyHandler) getProfileID(c *gin.Context) (uuid.UUID, bool) {
	profileIDStr, exists := c.Get("Profile-ID")
	if !exists {
		apierrors.Unauthorized(c, "profile not found in context")
		return uuid.Nil, false
	}

	profileID, err := uuid.Parse(profileIDStr.(string))
	if err != nil {
		apierrors.Unauthorized(c, "invalid profile ID")
		return uuid.Nil, false
	}
	return profileID, true
}

func (h *LoyaltyHandler) handleError(c *gin.Context, err error) {
	switch err {
	case processor.ErrProfileNotFound:
		apierrors.NotFound(c, "profile not found")
	case processor.ErrCustomerNotFound:
		apierrors.NotFound(c, "customer not found")
	case processor.ErrCodeNotFound:
		apierrors.NotFound(c, "referral code not found")
	case processor.ErrUnauthorized:
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this customer")
	default:
		h.logger.Error(c.Request.Context(), "unhandled loyalty error", err)
		apierrors.InternalError(c, err)
	}
}
