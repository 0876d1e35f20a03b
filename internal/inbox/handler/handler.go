package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"biolink-server/internal/apierrors"
	customers "biolink-server/internal/customers/processor"
	"biolink-server/internal/inbox/processor"
	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

type InboxHandler struct {
	processor *processor.InboxProcessor
	logger    *observability.Logger
}

func New(processor *processor.InboxProcessor, logger *observability.Logger) *InboxHandler {
	return &InboxHandler{
		processor: processor,
		logger:    logger,
	}
}

type createMessageRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Email   string  `json:"email" binding:"required,email"`
	Body    string  `json:"body" binding:"required,min=1,max=5000"`
	Channel string  `json:"channel" binding:"omitempty,oneof=form email line"`
}

// HandleCreateMessage accepts a public contact-form message for the profile
// identified by the slug path parameter.
func (h *InboxHandler) HandleCreateMessage(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	if slug == "" {
		apierrors.BadRequest(c, "INVALID_INPUT", "Slug is required")
		return
	}

	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	channel := store.MessageChannel(req.Channel)
	if req.Channel == "" {
		channel = store.MessageChannelForm
	}

	message, err := h.processor.CreateMessage(ctx, slug, processor.CreateMessageRequest{
		Name:    req.Name,
		Email:   req.Email,
		Body:    req.Body,
		Channel: channel,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": message})
}

// HandleListMessages returns a customer's message history for the dashboard
func (h *InboxHandler) HandleListMessages(c *gin.Context) {
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

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	messages, err := h.processor.ListMessages(ctx, profileID, customerID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *InboxHandler) getProfileID(c *gin.Context) (uuid.UUID, bool) {
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

func (h *InboxHandler) handleError(c *gin.Context, err error) {
	switch err {
	case processor.ErrProfileNotFound:
		apierrors.NotFound(c, "profile not found")
	case customers.ErrCustomerNotFound:
		apierrors.NotFound(c, "customer not found")
	case customers.ErrUnauthorized:
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this customer")
	case customers.ErrEmailRequired:
		apierrors.BadRequest(c, "INVALID_INPUT", "Email is required")
	default:
		h.logger.Error(c.Request.Context(), "unhandled inbox error", err)
		apierrors.InternalError(c, err)
	}
}
