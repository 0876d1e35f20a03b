package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"biolink-server/internal/automations/executor"
	automationProcessor "biolink-server/internal/automations/processor"
	"biolink-server/internal/clients/mail"
	"biolink-server/internal/config"
	"biolink-server/internal/observability"
	"biolink-server/internal/store"
	"biolink-server/internal/workers"
	"biolink-server/internal/workers/lifecycle"
)

// The worker binary runs the lifecycle event consumer and the automation
// executor without the HTTP surface, so event processing and message sending
// can scale independently of the API.
func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting lifecycle worker...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		log.Fatalf("failed to create resend client: %v", err)
	}

	automationProc := automationProcessor.New(&dataStore, logger)

	lifecycleProc := lifecycle.NewProcessor(&automationProc, logger)
	consumerConfig := workers.DefaultConsumerConfig(
		strings.Split(cfg.Kafka.Brokers, ","),
		cfg.Kafka.ConsumerGroup,
		cfg.Kafka.Topic,
	)
	consumerConfig.NumWorkers = cfg.WorkerPool.EventWorkers
	consumer := workers.NewConsumer(consumerConfig, lifecycleProc, logger)

	checkInterval := 30 * time.Second
	if raw := os.Getenv("EXECUTOR_CHECK_INTERVAL_SECONDS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			checkInterval = time.Duration(parsed) * time.Second
		}
	}
	automationExec := executor.New(&dataStore, mailClient, cfg.Services.DefaultEmailSender, checkInterval, logger)

	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.Error(ctx, "lifecycle event consumer stopped with error", err)
		}
	}()
	go automationExec.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "Shutting down worker...")
	automationExec.Stop()
	consumer.Stop()
	logger.Info(ctx, "Worker exited gracefully")
}
