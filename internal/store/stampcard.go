package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateStampCardParams represents parameters for creating a stamp card
type CreateStampCardParams struct {
	ProfileID      uuid.UUID
	CustomerID     uuid.UUID
	RequiredStamps int
}

const sqlCreateStampCard = `
INSERT INTO stamp_cards (profile_id, customer_id, required_stamps)
VALUES ($1, $2, $3)
RETURNING id, profile_id, customer_id, current_stamps, required_stamps, redeemed_count, created_at, updated_at
`

// CreateStampCard creates a stamp card for a customer
func (s *Store) CreateStampCard(ctx context.Context, params CreateStampCardParams) (StampCard, error) {
	var card StampCard
	err := s.db.GetContext(ctx, &card, sqlCreateStampCard,
		params.ProfileID, params.CustomerID, params.RequiredStamps)
	if err != nil {
		return StampCard{}, fmt.Errorf("failed to create stamp card: %w", err)
	}
	return card, nil
}

const sqlGetStampCardByCustomer = `
SELECT id, profile_id, customer_id, current_stamps, required_stamps, redeemed_count, created_at, updated_at
FROM stamp_cards
WHERE customer_id = $1
`

// GetStampCardByCustomer retrieves a customer's stamp card
func (s *Store) GetStampCardByCustomer(ctx context.Context, customerID uuid.UUID) (StampCard, error) {
	var card StampCard
	err := s.db.GetContext(ctx, &card, sqlGetStampCardByCustomer, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StampCard{}, ErrNotFound
		}
		return StampCard{}, fmt.Errorf("failed to get stamp card: %w", err)
	}
	return card, nil
}

const sqlAddStamp = `
UPDATE stamp_cards
SET current_stamps = current_stamps + 1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, profile_id, customer_id, current_stamps, required_stamps, redeemed_count, created_at, updated_at
`

// AddStamp adds one stamp to a card
func (s *Store) AddStamp(ctx context.Context, cardID uuid.UUID) (StampCard, error) {
	var card StampCard
	err := s.db.GetContext(ctx, &card, sqlAddStamp, cardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StampCard{}, ErrNotFound
		}
		return StampCard{}, fmt.Errorf("failed to add stamp: %w", err)
	}
	return card, nil
}

const sqlGetStampOwnerIDs = `
SELECT DISTINCT customer_id
FROM stamp_cards
WHERE customer_id IN (?) AND current_stamps > 0
`

// GetStampOwnerIDs retrieves, from the given id set, the customers holding a
// stamp card with at least one stamp. One batched query per refresh run.
func (s *Store) GetStampOwnerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(customerIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	query, args, err := sqlx.In(sqlGetStampOwnerIDs, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build stamp owner query: %w", err)
	}
	query = s.db.Rebind(query)

	var ids []uuid.UUID
	if err := s.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get stamp owner ids: %w", err)
	}
	return ids, nil
}
