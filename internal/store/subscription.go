package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UpsertSubscriptionParams represents parameters for upserting a subscription
type UpsertSubscriptionParams struct {
	UserID               uuid.UUID
	StripeSubscriptionID string
	PriceID              string
	Status               string
	CurrentPeriodEnd     time.Time
}

const sqlUpsertSubscription = `
INSERT INTO subscriptions (user_id, stripe_subscription_id, price_id, status, current_period_end)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (stripe_subscription_id) DO UPDATE
SET price_id = EXCLUDED.price_id,
    status = EXCLUDED.status,
    current_period_end = EXCLUDED.current_period_end,
    updated_at = CURRENT_TIMESTAMP
RETURNING id, user_id, stripe_subscription_id, price_id, status, current_period_end, created_at, updated_at
`

// UpsertSubscription inserts or updates a subscription keyed on the Stripe id.
// Webhook deliveries can arrive more than once and out of order, so writes
// must be idempotent.
func (s *Store) UpsertSubscription(ctx context.Context, params UpsertSubscriptionParams) (Subscription, error) {
	var subscription Subscription
	err := s.db.GetContext(ctx, &subscription, sqlUpsertSubscription,
		params.UserID,
		params.StripeSubscriptionID,
		params.PriceID,
		params.Status,
		params.CurrentPeriodEnd)
	if err != nil {
		return Subscription{}, fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return subscription, nil
}

const sqlGetSubscriptionByUser = `
SELECT id, user_id, stripe_subscription_id, price_id, status, current_period_end, created_at, updated_at
FROM subscriptions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1
`

// GetSubscriptionByUser retrieves a user's latest subscription
func (s *Store) GetSubscriptionByUser(ctx context.Context, userID uuid.UUID) (Subscription, error) {
	var subscription Subscription
	err := s.db.GetContext(ctx, &subscription, sqlGetSubscriptionByUser, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, fmt.Errorf("failed to get subscription: %w", err)
	}
	return subscription, nil
}
