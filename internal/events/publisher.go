package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"biolink-server/internal/clients/kafka"
	"biolink-server/internal/observability"
)

// Lifecycle event types carried on the events topic
const (
	EventBookingCreated      = "booking.created"
	EventMessageReceived     = "message.received"
	EventSubscriptionCreated = "subscription.created"
	EventCustomerSignedUp    = "customer.signed_up"
	EventStampAdded          = "stamp.added"
)

// Publisher handles publishing customer lifecycle events to Kafka. All
// publish methods are best-effort: when Kafka is not configured they are
// no-ops, and failures are logged by the caller, never fatal to the request
// that produced the event.
type Publisher struct {
	kafkaProducer *kafka.Producer
	logger        *observability.Logger
}

// NewPublisher creates a new event publisher. A nil producer disables publishing.
func NewPublisher(kafkaProducer *kafka.Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		kafkaProducer: kafkaProducer,
		logger:        logger,
	}
}

func (p *Publisher) publish(ctx context.Context, eventType string, profileID, customerID uuid.UUID, data map[string]interface{}) {
	if p == nil || p.kafkaProducer == nil {
		return
	}

	event := kafka.EventMessage{
		ID:         uuid.New().String(),
		Type:       eventType,
		ProfileID:  profileID.String(),
		CustomerID: customerID.String(),
		Data:       data,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := p.kafkaProducer.PublishEvent(ctx, event); err != nil {
		p.logger.Error(ctx, "failed to publish lifecycle event", err)
	}
}

// PublishBookingCreated publishes a customer.booking_created event
func (p *Publisher) PublishBookingCreated(ctx context.Context, profileID, customerID, bookingID uuid.UUID) {
	p.publish(ctx, EventBookingCreated, profileID, customerID, map[string]interface{}{
		"booking_id": bookingID.String(),
	})
}

// PublishMessageReceived publishes a customer.message_received event
func (p *Publisher) PublishMessageReceived(ctx context.Context, profileID, customerID, messageID uuid.UUID, channel string) {
	p.publish(ctx, EventMessageReceived, profileID, customerID, map[string]interface{}{
		"message_id": messageID.String(),
		"channel":    channel,
	})
}

// PublishSubscriptionCreated publishes a subscription.created event
func (p *Publisher) PublishSubscriptionCreated(ctx context.Context, profileID, customerID uuid.UUID) {
	p.publish(ctx, EventSubscriptionCreated, profileID, customerID, nil)
}

// PublishCustomerSignedUp publishes a customer.signed_up event
func (p *Publisher) PublishCustomerSignedUp(ctx context.Context, profileID, customerID uuid.UUID) {
	p.publish(ctx, EventCustomerSignedUp, profileID, customerID, nil)
}

// PublishStampAdded publishes a customer.stamp_added event
func (p *Publisher) PublishStampAdded(ctx context.Context, profileID, customerID uuid.UUID, currentStamps int) {
	p.publish(ctx, EventStampAdded, profileID, customerID, map[string]interface{}{
		"current_stamps": currentStamps,
	})
}

// TriggerTypeForEvent maps a lifecycle event type to the automation trigger
// it should fire. The second return is false for event types that carry no
// automation semantics.
func TriggerTypeForEvent(eventType string) (string, bool) {
	switch eventType {
	case EventBookingCreated:
		return "after_booking", true
	case EventMessageReceived:
		return "after_message", true
	case EventSubscriptionCreated:
		return "after_subscribe", true
	case EventCustomerSignedUp:
		return "after_signup", true
	case EventStampAdded:
		return "after_stamp", true
	default:
		return "", false
	}
}
