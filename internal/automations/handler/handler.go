package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"biolink-server/internal/apierrors"
	"biolink-server/internal/automations/processor"
	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

type Handler struct {
	processor processor.AutomationProcessor
	logger    *observability.Logger
}

func New(processor processor.AutomationProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// TriggerRequest represents an internal request to fire automation triggers
type TriggerRequest struct {
	TriggerType string `json:"trigger_type"`
	ProfileID   string `json:"profile_id"`
	CustomerID  string `json:"customer_id"`
}

// CreateRuleRequest represents the HTTP request for creating an automation rule
type CreateRuleRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=255"`
	TriggerType    string `json:"trigger_type" binding:"required,oneof=after_booking after_message after_subscribe after_signup after_stamp"`
	DelayHours     int    `json:"delay_hours" binding:"gte=0,lte=720"`
	MessageSubject string `json:"message_subject" binding:"required,min=1,max=255"`
	MessageBody    string `json:"message_body" binding:"required,min=1"`
}

// UpdateRuleRequest represents the HTTP request for updating an automation rule
type UpdateRuleRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	DelayHours     *int    `json:"delay_hours,omitempty" binding:"omitempty,gte=0,lte=720"`
	MessageSubject *string `json:"message_subject,omitempty" binding:"omitempty,min=1,max=255"`
	MessageBody    *string `json:"message_body,omitempty" binding:"omitempty,min=1"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// HandleTrigger accepts a lifecycle event from an internal caller and fires
// the matching automation triggers. It always responds 202: firing an
// automation is fire-and-forget from the caller's point of view, and a
// malformed event cannot be fixed by retrying it.
func (h *Handler) HandleTrigger(c *gin.Context) {
	ctx := c.Request.Context()

	var req TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "invalid automation trigger payload", err)
		c.JSON(http.StatusAccepted, gin.H{"accepted": true})
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "trigger_type", Value: req.TriggerType},
		observability.Field{Key: "profile_id", Value: req.ProfileID},
		observability.Field{Key: "customer_id", Value: req.CustomerID},
	)

	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		h.logger.Error(ctx, "trigger request has invalid profile_id", err)
		c.JSON(http.StatusAccepted, gin.H{"accepted": true})
		return
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		h.logger.Error(ctx, "trigger request has invalid customer_id", err)
		c.JSON(http.StatusAccepted, gin.H{"accepted": true})
		return
	}

	h.processor.Trigger(ctx, store.TriggerType(req.TriggerType), profileID, customerID)

	c.JSON(http.StatusAccepted, gin.H{"accepted": true})
}

// HandleCreateRule creates an automation rule
func (h *Handler) HandleCreateRule(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
		observability.Field{Key: "trigger_type", Value: req.TriggerType},
	)

	rule, err := h.processor.CreateRule(ctx, profileID, processor.CreateRuleRequest{
		Name:           req.Name,
		TriggerType:    store.TriggerType(req.TriggerType),
		DelayHours:     req.DelayHours,
		MessageSubject: req.MessageSubject,
		MessageBody:    req.MessageBody,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// HandleListRules lists all automation rules for the profile
func (h *Handler) HandleListRules(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	rules, err := h.processor.ListRules(ctx, profileID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// HandleUpdateRule updates an automation rule
func (h *Handler) HandleUpdateRule(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}
	ruleID, ok := h.getRuleID(c)
	if !ok {
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	rule, err := h.processor.UpdateRule(ctx, profileID, ruleID, processor.UpdateRuleRequest{
		Name:           req.Name,
		DelayHours:     req.DelayHours,
		MessageSubject: req.MessageSubject,
		MessageBody:    req.MessageBody,
		IsActive:       req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rule)
}

// HandleDeleteRule deletes an automation rule
func (h *Handler) HandleDeleteRule(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}
	ruleID, ok := h.getRuleID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteRule(ctx, profileID, ruleID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getProfileID(c *gin.Context) (uuid.UUID, bool) {
	profileIDStr, exists := c.Get("Profile-ID")
	if !exists {
		apierrors.Unauthorized(c, "Profile ID not found in context")
		return uuid.UUID{}, false
	}

	profileID, err := uuid.Parse(profileIDStr.(string))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid profile ID format")
		return uuid.UUID{}, false
	}
	return profileID, true
}

func (h *Handler) getRuleID(c *gin.Context) (uuid.UUID, bool) {
	ruleID, err := uuid.Parse(c.Param("rule_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid rule ID format")
		return uuid.UUID{}, false
	}
	return ruleID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrRuleNotFound):
		apierrors.NotFound(c, "Automation rule not found")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this automation rule")
	case errors.Is(err, processor.ErrInvalidTriggerType):
		apierrors.BadRequest(c, "INVALID_TRIGGER_TYPE", "Invalid trigger type")
	default:
		apierrors.InternalError(c, err)
	}
}
