package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"biolink-server/internal/apierrors"
	"biolink-server/internal/customers/processor"
	"biolink-server/internal/observability"
)

type Handler struct {
	processor processor.CustomerProcessor
	logger    *observability.Logger
}

func New(processor processor.CustomerProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// UpdateCustomerRequest represents the HTTP request for updating a customer
type UpdateCustomerRequest struct {
	Name *string   `json:"name,omitempty" binding:"omitempty,max=255"`
	Tags *[]string `json:"tags,omitempty" binding:"omitempty,dive,min=1,max=64"`
}

// HandleListCustomers lists customers for the profile
func (h *Handler) HandleListCustomers(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if _, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil {
			limit = 0
		}
	}

	customers, total, err := h.processor.ListCustomers(ctx, profileID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customers":   customers,
		"total_count": total,
	})
}

// HandleGetCustomer retrieves one customer
func (h *Handler) HandleGetCustomer(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}
	customerID, ok := h.getCustomerID(c)
	if !ok {
		return
	}

	customer, err := h.processor.GetCustomer(ctx, profileID, customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// HandleUpdateCustomer updates a customer's editable fields
func (h *Handler) HandleUpdateCustomer(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}
	customerID, ok := h.getCustomerID(c)
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	customer, err := h.processor.UpdateCustomer(ctx, profileID, customerID, processor.UpdateCustomerRequest{
		Name: req.Name,
		Tags: req.Tags,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// HandleExportCustomers streams the profile's customers as CSV
func (h *Handler) HandleExportCustomers(c *gin.Context) {
	ctx := c.Request.Context()

	profileID, ok := h.getProfileID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "profile_id", Value: profileID.String()})

	data, err := h.processor.ExportCSV(ctx, profileID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="customers.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
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

func (h *Handler) getCustomerID(c *gin.Context) (uuid.UUID, bool) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid customer ID format")
		return uuid.UUID{}, false
	}
	return customerID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCustomerNotFound):
		apierrors.NotFound(c, "Customer not found")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this customer")
	case errors.Is(err, processor.ErrEmailRequired):
		apierrors.BadRequest(c, "INVALID_INPUT", "Email is required")
	default:
		apierrors.InternalError(c, err)
	}
}
