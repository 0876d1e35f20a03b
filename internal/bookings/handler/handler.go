package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"biolink-server/internal/apierrors"
	"biolink-server/internal/bookings/processor"
	customers "biolink-server/internal/customers/processor"
	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

type BookingHandler struct {
	processor *processor.BookingProcessor
	logger    *observability.Logger
}

func New(processor *processor.BookingProcessor, logger *observability.Logger) *BookingHandler {
	return &BookingHandler{
		processor: processor,
		logger:    logger,
	}
}

type createBookingRequest struct {
	Name        *string   `json:"name" binding:"omitempty,max=255"`
	Email       string    `json:"email" binding:"required,email"`
	ServiceName string    `json:"service_name" binding:"required,min=1,max=255"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	Note        *string   `json:"note" binding:"omitempty,max=2000"`
}

// HandleCreateBooking accepts a public booking request for the profile
// identified by the slug path parameter.
func (h *BookingHandler) HandleCreateBooking(c *gin.Context) {
	ctx := c.Request.Context()

	slug := c.Param("slug")
	if slug == "" {
		apierrors.BadRequest(c, "INVALID_INPUT", "Slug is required")
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	booking, err := h.processor.CreateBooking(ctx, slug, processor.CreateBookingRequest{
		Name:        req.Name,
		Email:       req.Email,
		ServiceName: req.ServiceName,
		StartsAt:    req.StartsAt,
		Note:        req.Note,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// HandleListBookings returns the authenticated profile's bookings
func (h *BookingHandler) HandleListBookings(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.processor.ListBookings(ctx, profileID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) getProfileID(c *gin.Context) (uuid.UUID, bool) {
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

func (h *BookingHandler) handleError(c *gin.Context, err error) {
	switch err {
	case processor.ErrProfileNotFound:
		apierrors.NotFound(c, "profile not found")
	case customers.ErrEmailRequired:
		apierrors.BadRequest(c, "INVALID_INPUT", "Email is required")
	case store.ErrNotFound:
		apierrors.NotFound(c, "resource not found")
	default:
		h.logger.Error(c.Request.Context(), "unhandled booking error", err)
		apierrors.InternalError(c, err)
	}
}
