package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authHandler "biolink-server/internal/auth/handler"
	automationHandler "biolink-server/internal/automations/handler"
	bookingHandler "biolink-server/internal/bookings/handler"
	customerHandler "biolink-server/internal/customers/handler"
	inboxHandler "biolink-server/internal/inbox/handler"
	linkHandler "biolink-server/internal/links/handler"
	loyaltyHandler "biolink-server/internal/loyalty/handler"
	billingHandler "biolink-server/internal/money/billing/handler"
	"biolink-server/internal/ratelimit"
	segmentHandler "biolink-server/internal/segments/handler"
)

// publicRateLimit is the per-minute request budget for anonymous intake
// endpoints, keyed by client IP and slug.
const publicRateLimit = 60

type API struct {
	router            *gin.RouterGroup
	rateLimiter       *ratelimit.Service
	authHandler       *authHandler.AuthHandler
	customerHandler   customerHandler.Handler
	segmentHandler    segmentHandler.Handler
	automationHandler automationHandler.Handler
	bookingHandler    *bookingHandler.BookingHandler
	inboxHandler      *inboxHandler.InboxHandler
	linkHandler       *linkHandler.LinkHandler
	loyaltyHandler    *loyaltyHandler.LoyaltyHandler
	billingHandler    *billingHandler.BillingHandler
}

func New(
	router *gin.RouterGroup,
	rateLimiter *ratelimit.Service,
	authHandler *authHandler.AuthHandler,
	customerHandler customerHandler.Handler,
	segmentHandler segmentHandler.Handler,
	automationHandler automationHandler.Handler,
	bookingHandler *bookingHandler.BookingHandler,
	inboxHandler *inboxHandler.InboxHandler,
	linkHandler *linkHandler.LinkHandler,
	loyaltyHandler *loyaltyHandler.LoyaltyHandler,
	billingHandler *billingHandler.BillingHandler,
) API {
	return API{
		router:            router,
		rateLimiter:       rateLimiter,
		authHandler:       authHandler,
		customerHandler:   customerHandler,
		segmentHandler:    segmentHandler,
		automationHandler: automationHandler,
		bookingHandler:    bookingHandler,
		inboxHandler:      inboxHandler,
		linkHandler:       linkHandler,
		loyaltyHandler:    loyaltyHandler,
		billingHandler:    billingHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	publicGroup := apiGroup.Group("/p", a.rateLimiter.Middleware(publicRateLimit))
	{
		publicGroup.GET("/:slug", a.linkHandler.HandlePublicPage)
		publicGroup.POST("/:slug/bookings", a.bookingHandler.HandleCreateBooking)
		publicGroup.POST("/:slug/messages", a.inboxHandler.HandleCreateMessage)
		publicGroup.POST("/:slug/links/:link_id/click", a.linkHandler.HandleRecordClick)
		publicGroup.POST("/:slug/referrals/:code", a.loyaltyHandler.HandleApplyReferralCode)
	}

	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/signup/email", a.authHandler.HandleEmailSignup)
		authGroup.POST("/login/email", a.authHandler.HandleEmailLogin)
	}

	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		protectedGroup.GET("/user", a.authHandler.HandleGetUserInfo)

		protectedGroup.GET("/customers", a.customerHandler.HandleListCustomers)
		protectedGroup.GET("/customers/export", a.customerHandler.HandleExportCustomers)
		protectedGroup.GET("/customers/:customer_id", a.customerHandler.HandleGetCustomer)
		protectedGroup.PATCH("/customers/:customer_id", a.customerHandler.HandleUpdateCustomer)
		protectedGroup.GET("/customers/:customer_id/segments", a.segmentHandler.HandleMatchCustomer)
		protectedGroup.GET("/customers/:customer_id/messages", a.inboxHandler.HandleListMessages)
		protectedGroup.GET("/customers/:customer_id/stamps", a.loyaltyHandler.HandleGetStampCard)
		protectedGroup.POST("/customers/:customer_id/stamps", a.loyaltyHandler.HandleAddStamp)
		protectedGroup.POST("/customers/:customer_id/referral-codes", a.loyaltyHandler.HandleCreateReferralCode)

		protectedGroup.POST("/segments/init", a.segmentHandler.HandleInitSegments)
		protectedGroup.POST("/segments/refresh", a.segmentHandler.HandleRefreshSegments)
		protectedGroup.GET("/segments", a.segmentHandler.HandleListSegments)
		protectedGroup.POST("/segments", a.segmentHandler.HandleCreateSegment)
		protectedGroup.PATCH("/segments/:segment_id", a.segmentHandler.HandleUpdateSegment)
		protectedGroup.DELETE("/segments/:segment_id", a.segmentHandler.HandleDeleteSegment)

		protectedGroup.GET("/automations/rules", a.automationHandler.HandleListRules)
		protectedGroup.POST("/automations/rules", a.automationHandler.HandleCreateRule)
		protectedGroup.PATCH("/automations/rules/:rule_id", a.automationHandler.HandleUpdateRule)
		protectedGroup.DELETE("/automations/rules/:rule_id", a.automationHandler.HandleDeleteRule)

		protectedGroup.GET("/links", a.linkHandler.HandleListLinks)
		protectedGroup.POST("/links", a.linkHandler.HandleCreateLink)
		protectedGroup.PATCH("/links/:link_id", a.linkHandler.HandleUpdateLink)
		protectedGroup.DELETE("/links/:link_id", a.linkHandler.HandleDeleteLink)

		protectedGroup.GET("/bookings", a.bookingHandler.HandleListBookings)
	}

	internalGroup := apiGroup.Group("/internal")
	{
		internalGroup.POST("/automations/trigger", a.automationHandler.HandleTrigger)
	}

	apiGroup.POST("/billing/webhook", a.billingHandler.HandleWebhook)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
