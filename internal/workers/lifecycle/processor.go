package lifecycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"biolink-server/internal/automations/processor"
	"biolink-server/internal/events"
	"biolink-server/internal/observability"
	"biolink-server/internal/store"
	"biolink-server/internal/workers"
)

// Processor consumes customer lifecycle events from Kafka and fires the
// matching automation triggers
type Processor struct {
	automations *processor.AutomationProcessor
	logger      *observability.Logger
}

// NewProcessor creates a new lifecycle event processor
func NewProcessor(automations *processor.AutomationProcessor, logger *observability.Logger) *Processor {
	return &Processor{
		automations: automations,
		logger:      logger,
	}
}

// Process handles one lifecycle event. Malformed events are logged and
// skipped rather than returned as errors: redelivering them cannot fix them.
func (p *Processor) Process(ctx context.Context, event workers.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "profile_id", Value: event.ProfileID},
	)

	triggerType, ok := events.TriggerTypeForEvent(event.Type)
	if !ok {
		// Not an automation-bearing event, skip silently.
		return nil
	}

	profileID, err := uuid.Parse(event.ProfileID)
	if err != nil {
		p.logger.Error(ctx, "event has invalid profile_id", err)
		return nil
	}
	customerID, err := uuid.Parse(event.CustomerID)
	if err != nil {
		p.logger.Error(ctx, "event has invalid customer_id", err)
		return nil
	}

	p.logger.Info(ctx, fmt.Sprintf("dispatching %s event to automation trigger", event.Type))
	p.automations.Trigger(ctx, store.TriggerType(triggerType), profileID, customerID)
	return nil
}

// Name returns the processor name for logging
func (p *Processor) Name() string {
	return "lifecycle-automations"
}
