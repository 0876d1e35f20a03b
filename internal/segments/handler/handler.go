package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"biolink-server/internal/apierrors"
	"biolink-server/internal/observability"
	"biolink-server/internal/segments/processor"
	"biolink-server/internal/store"
)

type Handler struct {
	processor processor.SegmentProcessor
	logger    *observability.Logger
}

func New(processor processor.SegmentProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateSegmentRequest represents the HTTP request for creating a custom segment
type CreateSegmentRequest struct {
	Name     string                 `json:"name" binding:"required,min=1,max=255"`
	Color    string                 `json:"color" binding:"required,min=4,max=9"`
	Criteria map[string]interface{} `json:"criteria" binding:"required"`
}

// UpdateSegmentRequest represents the HTTP request for updating a segment
type UpdateSegmentRequest struct {
	Name     *string                 `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Color    *string                 `json:"color,omitempty" binding:"omitempty,min=4,max=9"`
	Criteria *map[string]interface{} `json:"criteria,omitempty"`
	IsActive *bool                   `json:"is_active,omitempty"`
}

// HandleInitSegments creates the built-in segment catalog for the profile
func (h *Handler) HandleInitSegments(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "profile_id", Value: profileID.String()})

	result, err := h.processor.InitSystemSegments(ctx, profileID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"initialized": result.Initialized,
		"segments":    result.Segments,
	})
}

// HandleRefreshSegments rebuilds membership for every active segment
func (h *Handler) HandleRefreshSegments(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "profile_id", Value: profileID.String()})

	summary, err := h.processor.Refresh(ctx, profileID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// HandleListSegments lists all segments for the profile
func (h *Handler) HandleListSegments(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	segments, err := h.processor.ListSegments(ctx, profileID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"segments": segments})
}

// HandleCreateSegment creates a custom segment
func (h *Handler) HandleCreateSegment(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	var req CreateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
		observability.Field{Key: "segment_name", Value: req.Name},
	)

	segment, err := h.processor.CreateSegment(ctx, profileID, processor.CreateSegmentRequest{
		Name:     req.Name,
		Color:    req.Color,
		Criteria: store.JSONB(req.Criteria),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, segment)
}

// HandleUpdateSegment updates a segment owned by the profile
func (h *Handler) HandleUpdateSegment(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}
	segmentID, ok := h.getSegmentID(c)
	if !ok {
		return
	}

	var req UpdateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	var criteria *store.JSONB
	if req.Criteria != nil {
		jsonb := store.JSONB(*req.Criteria)
		criteria = &jsonb
	}

	segment, err := h.processor.UpdateSegment(ctx, profileID, segmentID, processor.UpdateSegmentRequest{
		Name:     req.Name,
		Color:    req.Color,
		Criteria: criteria,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, segment)
}

// HandleDeleteSegment deletes a custom segment
func (h *Handler) HandleDeleteSegment(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}
	segmentID, ok := h.getSegmentID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteSegment(ctx, profileID, segmentID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleMatchCustomer returns the active segments one customer currently matches
func (h *Handler) HandleMatchCustomer(c *gin.Context) {
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

	segments, err := h.processor.MatchCustomer(ctx, profileID, customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"segments": segments})
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

func (h *Handler) getSegmentID(c *gin.Context) (uuid.UUID, bool) {
	segmentID, err := uuid.Parse(c.Param("segment_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid segment ID format")
		return uuid.UUID{}, false
	}
	return segmentID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrSegmentNotFound):
		apierrors.NotFound(c, "Segment not found")
	case errors.Is(err, processor.ErrCustomerNotFound):
		apierrors.NotFound(c, "Customer not found")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this segment")
	case errors.Is(err, processor.ErrSystemSegment):
		apierrors.BadRequest(c, "SYSTEM_SEGMENT", "System segments cannot be deleted")
	default:
		apierrors.InternalError(c, err)
	}
}
