package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/customer"

	"biolink-server/internal/events"
	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

// BillingStore defines the database operations required by BillingProcessor
type BillingStore interface {
	GetUserByStripeCustomerID(ctx context.Context, stripeCustomerID string) (store.User, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (store.Profile, error)
	GetCustomerByEmail(ctx context.Context, profileID uuid.UUID, email string) (store.Customer, error)
	UpsertSubscription(ctx context.Context, params store.UpsertSubscriptionParams) (store.Subscription, error)
	GetSubscriptionByUser(ctx context.Context, userID uuid.UUID) (store.Subscription, error)
}

// AutomationTrigger defines the trigger engine surface required by BillingProcessor
type AutomationTrigger interface {
	Trigger(ctx context.Context, triggerType store.TriggerType, profileID, customerID uuid.UUID)
}

var ErrFailedToCreateCustomer = errors.New("failed to create customer")

type BillingProcessor struct {
	stripeKey     string
	WebhookSecret string
	store         BillingStore
	automations   AutomationTrigger
	publisher     *events.Publisher
	logger        *observability.Logger
}

func New(
	stripeKey string,
	webhookSecret string,
	store BillingStore,
	automations AutomationTrigger,
	publisher *events.Publisher,
	logger *observability.Logger,
) BillingProcessor {
	stripe.Key = stripeKey
	return BillingProcessor{
		stripeKey:     stripeKey,
		WebhookSecret: webhookSecret,
		store:         store,
		automations:   automations,
		publisher:     publisher,
		logger:        logger,
	}
}

func (p *BillingProcessor) CreateStripeCustomer(ctx context.Context, email string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	stripeCustomer, err := customer.New(params)
	if err != nil {
		p.logger.Error(ctx, "failed to create stripe customer", err)
		return "", ErrFailedToCreateCustomer
	}
	return stripeCustomer.ID, nil
}

// HandleWebhook dispatches a verified Stripe event
func (p *BillingProcessor) HandleWebhook(ctx context.Context, event stripe.Event) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "stripe_event_type", Value: string(event.Type)})

	switch event.Type {
	case "customer.subscription.created", "customer.subscription.updated":
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			p.logger.Error(ctx, "failed to parse subscription event", err)
			return err
		}
		return p.subscriptionChanged(ctx, subscription, event.Type == "customer.subscription.created")
	default:
		p.logger.Info(ctx, "unhandled stripe event type")
		return nil
	}
}

// subscriptionChanged records the subscription and, on creation, fires the
// after_subscribe automation for the matching customer record.
func (p *BillingProcessor) subscriptionChanged(ctx context.Context, subscription stripe.Subscription, created bool) error {
	if subscription.Customer == nil {
		return errors.New("subscription event missing customer")
	}

	user, err := p.store.GetUserByStripeCustomerID(ctx, subscription.Customer.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to resolve user for stripe customer", err)
		return err
	}

	var priceID string
	if subscription.Items != nil && len(subscription.Items.Data) > 0 {
		priceID = subscription.Items.Data[0].Price.ID
	}

	_, err = p.store.UpsertSubscription(ctx, store.UpsertSubscriptionParams{
		UserID:               user.ID,
		StripeSubscriptionID: subscription.ID,
		PriceID:              priceID,
		Status:               string(subscription.Status),
		CurrentPeriodEnd:     time.Unix(subscription.CurrentPeriodEnd, 0).UTC(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to upsert subscription", err)
		return err
	}

	if !created {
		return nil
	}

	// The subscriber may also exist as a customer record on the user's own
	// profile. When they do, the subscribe automation fires for them.
	profile, err := p.store.GetProfileByUserID(ctx, user.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to resolve profile for subscriber", err)
		return nil
	}
	bioCustomer, err := p.store.GetCustomerByEmail(ctx, profile.ID, user.Email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to look up subscriber customer", err)
		}
		return nil
	}

	p.automations.Trigger(ctx, store.TriggerAfterSubscribe, profile.ID, bioCustomer.ID)
	p.publisher.PublishSubscriptionCreated(ctx, profile.ID, bioCustomer.ID)
	return nil
}
