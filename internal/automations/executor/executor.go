package executor

//go:generate go run go.uber.org/mock/mockgen@latest -source=executor.go -destination=mocks_test.go -package=executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

const dueLogBatchSize = 100

// ExecutorStore defines the database operations required by Executor
type ExecutorStore interface {
	GetDueAutomationLogs(ctx context.Context, now time.Time, limit int) ([]store.AutomationLog, error)
	GetAutomationRuleByID(ctx context.Context, ruleID uuid.UUID) (store.AutomationRule, error)
	GetCustomerByID(ctx context.Context, customerID uuid.UUID) (store.Customer, error)
	MarkAutomationLogSent(ctx context.Context, logID uuid.UUID, sentAt time.Time) error
	MarkAutomationLogFailed(ctx context.Context, logID uuid.UUID, errorMessage string) error
}

// Mailer sends a single email and returns the provider message id
type Mailer interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// Executor periodically drains due automation logs and sends their messages.
// It owns the pending -> sent|failed transition: the trigger engine only ever
// creates pending rows.
type Executor struct {
	store         ExecutorStore
	mailer        Mailer
	logger        *observability.Logger
	fromAddress   string
	checkInterval time.Duration
	stopChan      chan struct{}
	now           func() time.Time
}

// New creates a new automation executor
func New(
	store ExecutorStore,
	mailer Mailer,
	fromAddress string,
	checkInterval time.Duration,
	logger *observability.Logger,
) *Executor {
	if checkInterval <= 0 {
		checkInterval = 30 * time.Second
	}

	return &Executor{
		store:         store,
		mailer:        mailer,
		logger:        logger,
		fromAddress:   fromAddress,
		checkInterval: checkInterval,
		stopChan:      make(chan struct{}),
		now:           time.Now,
	}
}

// Start begins the executor loop
func (e *Executor) Start(ctx context.Context) {
	e.logger.Info(ctx, fmt.Sprintf("Starting automation executor with %v interval", e.checkInterval))

	ticker := time.NewTicker(e.checkInterval)
	defer ticker.Stop()

	// Run immediately on start
	e.processDueLogs(ctx)

	for {
		select {
		case <-ctx.Done():
			e.logger.Info(ctx, "Automation executor stopping: context cancelled")
			return
		case <-e.stopChan:
			e.logger.Info(ctx, "Automation executor stopping: stop signal received")
			return
		case <-ticker.C:
			e.processDueLogs(ctx)
		}
	}
}

// Stop signals the executor to stop
func (e *Executor) Stop() {
	close(e.stopChan)
}

// processDueLogs sends every pending message whose schedule has elapsed.
// Failures are recorded on each log row; one bad message never blocks the rest.
func (e *Executor) processDueLogs(ctx context.Context) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "process_due_automation_logs"},
	)

	logs, err := e.store.GetDueAutomationLogs(ctx, e.now(), dueLogBatchSize)
	if err != nil {
		e.logger.Error(ctx, "Failed to get due automation logs", err)
		return
	}
	if len(logs) == 0 {
		return
	}

	e.logger.Info(ctx, fmt.Sprintf("Found %d due automation messages", len(logs)))

	for _, logEntry := range logs {
		logCtx := observability.WithFields(ctx,
			observability.Field{Key: "log_id", Value: logEntry.ID},
			observability.Field{Key: "rule_id", Value: logEntry.RuleID},
			observability.Field{Key: "customer_id", Value: logEntry.CustomerID},
		)

		if err := e.sendOne(logCtx, logEntry); err != nil {
			e.logger.Error(logCtx, "Failed to send automation message", err)
			if markErr := e.store.MarkAutomationLogFailed(logCtx, logEntry.ID, err.Error()); markErr != nil {
				e.logger.Error(logCtx, "Failed to mark automation log as failed", markErr)
			}
			continue
		}

		if err := e.store.MarkAutomationLogSent(logCtx, logEntry.ID, e.now()); err != nil {
			e.logger.Error(logCtx, "Failed to mark automation log as sent", err)
			continue
		}

		e.logger.Info(logCtx, "Automation message sent")
	}
}

func (e *Executor) sendOne(ctx context.Context, logEntry store.AutomationLog) error {
	rule, err := e.store.GetAutomationRuleByID(ctx, logEntry.RuleID)
	if err != nil {
		return fmt.Errorf("failed to load automation rule: %w", err)
	}
	if !rule.IsActive {
		return errors.New("automation rule is no longer active")
	}

	customer, err := e.store.GetCustomerByID(ctx, logEntry.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to load customer: %w", err)
	}
	if customer.Email == "" {
		return errors.New("customer has no email address")
	}

	subject := personalize(rule.MessageSubject, customer)
	body := personalize(rule.MessageBody, customer)

	if _, err := e.mailer.SendEmail(ctx, e.fromAddress, customer.Email, subject, body); err != nil {
		return err
	}
	return nil
}

// personalize substitutes the {{name}} placeholder in rule templates
func personalize(template string, customer store.Customer) string {
	name := "there"
	if customer.Name != nil && *customer.Name != "" {
		name = *customer.Name
	}
	return strings.ReplaceAll(template, "{{name}}", name)
}
