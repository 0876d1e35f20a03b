package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"biolink-server/internal/config"
	"biolink-server/internal/observability"
	"biolink-server/internal/store"

	authHandler "biolink-server/internal/auth/handler"
	authProcessor "biolink-server/internal/auth/processor"
	"biolink-server/internal/automations/executor"
	automationHandler "biolink-server/internal/automations/handler"
	automationProcessor "biolink-server/internal/automations/processor"
	bookingHandler "biolink-server/internal/bookings/handler"
	bookingProcessor "biolink-server/internal/bookings/processor"
	kafkaClient "biolink-server/internal/clients/kafka"
	"biolink-server/internal/clients/mail"
	redisClient "biolink-server/internal/clients/redis"
	customerHandler "biolink-server/internal/customers/handler"
	customerProcessor "biolink-server/internal/customers/processor"
	"biolink-server/internal/events"
	inboxHandler "biolink-server/internal/inbox/handler"
	inboxProcessor "biolink-server/internal/inbox/processor"
	linkHandler "biolink-server/internal/links/handler"
	linkProcessor "biolink-server/internal/links/processor"
	loyaltyHandler "biolink-server/internal/loyalty/handler"
	loyaltyProcessor "biolink-server/internal/loyalty/processor"
	billingHandler "biolink-server/internal/money/billing/handler"
	billingProcessor "biolink-server/internal/money/billing/processor"
	"biolink-server/internal/ratelimit"
	segmentHandler "biolink-server/internal/segments/handler"
	segmentProcessor "biolink-server/internal/segments/processor"
	"biolink-server/internal/workers"
	"biolink-server/internal/workers/lifecycle"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler       *authHandler.AuthHandler
	CustomerHandler   customerHandler.Handler
	SegmentHandler    segmentHandler.Handler
	AutomationHandler automationHandler.Handler
	BookingHandler    *bookingHandler.BookingHandler
	InboxHandler      *inboxHandler.InboxHandler
	LinkHandler       *linkHandler.LinkHandler
	LoyaltyHandler    *loyaltyHandler.LoyaltyHandler
	BillingHandler    *billingHandler.BillingHandler

	// Cross-cutting services
	RateLimiter *ratelimit.Service

	// Background workers
	LifecycleConsumer   workers.EventConsumer
	AutomationExecutor  *executor.Executor
	AutomationProcessor *automationProcessor.AutomationProcessor

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	st := &deps.Store

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, logger)

	brokerList := strings.Split(cfg.Kafka.Brokers, ",")
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
	}, logger)
	publisher := events.NewPublisher(deps.KafkaProducer, logger)

	// Core processors
	automationProc := automationProcessor.New(st, logger)
	deps.AutomationProcessor = &automationProc

	segmentProc := segmentProcessor.New(st, logger)
	deps.SegmentHandler = segmentHandler.New(segmentProc, logger)
	deps.AutomationHandler = automationHandler.New(automationProc, logger)

	// Customer-facing processors
	customerProc := customerProcessor.New(st, logger)
	deps.CustomerHandler = customerHandler.New(customerProc, logger)

	bookingProc := bookingProcessor.New(st, &customerProc, deps.AutomationProcessor, publisher, logger)
	deps.BookingHandler = bookingHandler.New(&bookingProc, logger)

	inboxProc := inboxProcessor.New(st, &customerProc, deps.AutomationProcessor, publisher, logger)
	deps.InboxHandler = inboxHandler.New(&inboxProc, logger)

	linkProc := linkProcessor.New(st, logger)
	deps.LinkHandler = linkHandler.New(&linkProc, logger)

	loyaltyProc := loyaltyProcessor.New(st, deps.AutomationProcessor, publisher, logger)
	deps.LoyaltyHandler = loyaltyHandler.New(&loyaltyProc, logger)

	// Billing and auth
	billingProc := billingProcessor.New(
		cfg.Services.StripeSecretKey,
		cfg.Services.StripeWebhookSecret,
		st,
		deps.AutomationProcessor,
		publisher,
		logger,
	)
	deps.BillingHandler = billingHandler.New(&billingProc, logger)

	authProc := authProcessor.New(st, &billingProc, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(&authProc, logger)

	// Lifecycle event consumer feeding the trigger engine
	lifecycleProc := lifecycle.NewProcessor(deps.AutomationProcessor, logger)
	consumerConfig := workers.DefaultConsumerConfig(brokerList, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topic)
	consumerConfig.NumWorkers = cfg.WorkerPool.EventWorkers
	deps.LifecycleConsumer = workers.NewConsumer(consumerConfig, lifecycleProc, logger)

	// Automation executor sending due messages
	deps.AutomationExecutor = executor.New(st, mailClient, cfg.Services.DefaultEmailSender, 30*time.Second, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
}
