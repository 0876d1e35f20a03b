package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"biolink-server/internal/apierrors"
	"biolink-server/internal/links/processor"
	"biolink-server/internal/observability"
)

type LinkHandler struct {
	processor *processor.LinkProcessor
	logger    *observability.Logger
}

func New(processor *processor.LinkProcessor, logger *observability.Logger) *LinkHandler {
	return &LinkHandler{
		processor: processor,
		logger:    logger,
	}
}

// HandlePublicPage serves the public link-in-bio page payload for a slug
func (h *LinkHandler) HandlePublicPage(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	if slug == "" {
		apierrors.BadRequest(c, "INVALID_INPUT", "Slug is required")
		return
	}

	page, err := h.processor.GetPublicPage(ctx, slug)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// HandleRecordClick records a click on a public link
func (h *LinkHandler) HandleRecordClick(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	linkID, err := uuid.Parse(c.Param("link_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid link ID format")
		return
	}

	if err := h.processor.RecordClick(ctx, slug, linkID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"accepted": true})
}

type createLinkRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=255"`
	URL      string `json:"url" binding:"required,url,max=2048"`
	Position int    `json:"position" binding:"gte=0"`
}

func (h *LinkHandler) HandleCreateLink(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	link, err := h.processor.CreateLink(ctx, profileID, processor.CreateLinkRequest{
		Title:    req.Title,
		URL:      req.URL,
		Position: req.Position,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"link": link})
}

func (h *LinkHandler) HandleListLinks(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	links, err := h.processor.ListLinks(ctx, profileID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"links": links})
}

type updateLinkRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=255"`
	URL      *string `json:"url" binding:"omitempty,url,max=2048"`
	Position *int    `json:"position" binding:"omitempty,gte=0"`
	IsActive *bool   `json:"is_active"`
}

func (h *LinkHandler) HandleUpdateLink(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	linkID, err := uuid.Parse(c.Param("link_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid link ID format")
		return
	}

	var req updateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	link, err := h.processor.UpdateLink(ctx, profileID, linkID, processor.UpdateLinkRequest{
		Title:    req.Title,
		URL:      req.URL,
		Position: req.Position,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"link": link})
}

func (h *LinkHandler) HandleDeleteLink(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	linkID, err := uuid.Parse(c.Param("link_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid link ID format")
		return
	}

	if err := h.processor.DeleteLink(ctx, profileID, linkID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LinkHandler) getProfileID(c *gin.Context) (uuid.UUID, bool) {
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

func (h *LinkHandler) handleError(c *gin.Context, err error) {
	switch err {
	case processor.ErrProfileNotFound:
		apierrors.NotFound(c, "profile not found")
	case processor.ErrLinkNotFound:
		apierrors.NotFound(c, "link not found")
	case processor.ErrUnauthorized:
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this link")
	default:
		h.logger.Error(c.Request.Context(), "unhandled link error", err)
		apierrors.InternalError(c, err)
	}
}
