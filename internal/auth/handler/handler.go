package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"biolink-server/internal/apierrors"
	"biolink-server/internal/auth/processor"
	"biolink-server/internal/observability"
)

type AuthHandler struct {
	processor *processor.AuthProcessor
	logger    *observability.Logger
}

func New(processor *processor.AuthProcessor, logger *observability.Logger) *AuthHandler {
	return &AuthHandler{
		processor: processor,
		logger:    logger,
	}
}

type emailSignupRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required,min=1,max=255"`
	Slug        string `json:"slug" binding:"required,min=3,max=64"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type emailLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) HandleEmailSignup(c *gin.Context) {
	ctx := c.Request.Context()

	var req emailSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	if !slugPattern.MatchString(req.Slug) {
		apierrors.BadRequest(c, "INVALID_INPUT", "Slug must be lowercase letters, digits and hyphens")
		return
	}

	signedUp, err := h.processor.Signup(ctx, req.Name, req.Email, req.Password, req.DisplayName, req.Slug)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, signedUp)
}

func (h *AuthHandler) HandleEmailLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req emailLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	token, err := h.processor.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// HandleJWTMiddleware validates the bearer token and stashes the user and
// profile identifiers for downstream handlers.
func (h *AuthHandler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	tokenHeader := c.GetHeader("Authorization")
	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")
	claims, err := h.processor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		c.Abort()
		return
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" || claims.ProfileID == "" {
		apierrors.Unauthorized(c, "token is missing required claims")
		c.Abort()
		return
	}

	c.Set("User-ID", sub)
	c.Set("Profile-ID", claims.ProfileID)
	c.Next()
}

func (h *AuthHandler) HandleGetUserInfo(c *gin.Context) {
	ctx := c.Request.Context()

	userIDStr, exists := c.Get("User-ID")
	if !exists {
		apierrors.Unauthorized(c, "user not found in context")
		return
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		apierrors.Unauthorized(c, "invalid user ID")
		return
	}

	user, err := h.processor.GetUserInfo(ctx, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	switch err {
	case processor.ErrEmailAlreadyExists:
		apierrors.Conflict(c, "EMAIL_EXISTS", "Email already exists")
	case processor.ErrSlugTaken:
		apierrors.Conflict(c, "SLUG_TAKEN", "Slug already taken")
	case processor.ErrInvalidCredentials:
		apierrors.Unauthorized(c, "invalid email or password")
	default:
		h.logger.Error(c.Request.Context(), "unhandled auth error", err)
		apierrors.InternalError(c, err)
	}
}
