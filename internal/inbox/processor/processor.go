package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	customers "biolink-server/internal/customers/processor"
	"biolink-server/internal/events"
	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

// InboxStore defines the database operations required by InboxProcessor
type InboxStore interface {
	GetProfileBySlug(ctx context.Context, slug string) (store.Profile, error)
	CreateCustomerMessage(ctx context.Context, params store.CreateCustomerMessageParams) (store.CustomerMessage, error)
	GetMessagesByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]store.CustomerMessage, error)
	RecordCustomerMessage(ctx context.Context, customerID uuid.UUID, seenAt time.Time) error
}

// CustomerService defines the customer operations required by InboxProcessor
type CustomerService interface {
	UpsertByEmail(ctx context.Context, profileID uuid.UUID, name *string, email string, source store.CustomerSource) (customers.UpsertResult, error)
	GetCustomer(ctx context.Context, profileID, customerID uuid.UUID) (store.Customer, error)
}

// AutomationTrigger defines the trigger engine surface required by InboxProcessor
type AutomationTrigger interface {
	Trigger(ctx context.Context, triggerType store.TriggerType, profileID, customerID uuid.UUID)
}

var ErrProfileNotFound = errors.New("profile not found")

type InboxProcessor struct {
	store       InboxStore
	customers   CustomerService
	automations AutomationTrigger
	publisher   *events.Publisher
	logger      *observability.Logger
	now         func() time.Time
}

func New(
	store InboxStore,
	customers CustomerService,
	automations AutomationTrigger,
	publisher *events.Publisher,
	logger *observability.Logger,
) InboxProcessor {
	return InboxProcessor{
		store:       store,
		customers:   customers,
		automations: automations,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateMessageRequest represents a public inbound message
type CreateMessageRequest struct {
	Name    *string
	Email   string
	Body    string
	Channel store.MessageChannel
}

// CreateMessage handles an inbound message for the profile behind a slug:
// the customer record is found or created, its message counter is bumped,
// and the after_message automation fires.
func (p *InboxProcessor) CreateMessage(ctx context.Context, slug string, req CreateMessageRequest) (store.CustomerMessage, error) {
	profile, err := p.store.GetProfileBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CustomerMessage{}, ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to resolve profile slug", err)
		return store.CustomerMessage{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profile.ID.String()},
		observability.Field{Key: "channel", Value: string(req.Channel)},
	)

	result, err := p.customers.UpsertByEmail(ctx, profile.ID, req.Name, req.Email, store.CustomerSourceContact)
	if err != nil {
		return store.CustomerMessage{}, err
	}
	customer := result.Customer

	message, err := p.store.CreateCustomerMessage(ctx, store.CreateCustomerMessageParams{
		ProfileID:  profile.ID,
		CustomerID: customer.ID,
		Body:       req.Body,
		Channel:    req.Channel,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create customer message", err)
		return store.CustomerMessage{}, err
	}

	if err := p.store.RecordCustomerMessage(ctx, customer.ID, p.now()); err != nil {
		p.logger.Error(ctx, "failed to record customer message activity", err)
	}

	p.automations.Trigger(ctx, store.TriggerAfterMessage, profile.ID, customer.ID)
	if result.Created {
		p.automations.Trigger(ctx, store.TriggerAfterSignup, profile.ID, customer.ID)
	}
	p.publisher.PublishMessageReceived(ctx, profile.ID, customer.ID, message.ID, string(req.Channel))

	p.logger.Info(ctx, "customer message recorded",
		observability.Field{Key: "message_id", Value: message.ID.String()},
	)
	return message, nil
}

// ListMessages retrieves a customer's recent messages for the dashboard
func (p *InboxProcessor) ListMessages(ctx context.Context, profileID, customerID uuid.UUID, limit int) ([]store.CustomerMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// Ownership check runs through the customer processor so the inbox and
	// customer views agree on access.
	if _, err := p.customers.GetCustomer(ctx, profileID, customerID); err != nil {
		return nil, err
	}

	messages, err := p.store.GetMessagesByCustomer(ctx, customerID, limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list customer messages", err)
		return nil, err
	}
	if messages == nil {
		messages = []store.CustomerMessage{}
	}
	return messages, nil
}
