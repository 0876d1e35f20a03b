package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateCustomerMessageParams represents parameters for recording an inbound message
type CreateCustomerMessageParams struct {
	ProfileID  uuid.UUID
	CustomerID uuid.UUID
	Body       string
	Channel    MessageChannel
}

const sqlCreateCustomerMessage = `
INSERT INTO customer_messages (profile_id, customer_id, body, channel)
VALUES ($1, $2, $3, $4)
RETURNING id, profile_id, customer_id, body, channel, created_at
`

// CreateCustomerMessage records an inbound message from a customer
func (s *Store) CreateCustomerMessage(ctx context.Context, params CreateCustomerMessageParams) (CustomerMessage, error) {
	var message CustomerMessage
	err := s.db.GetContext(ctx, &message, sqlCreateCustomerMessage,
		params.ProfileID,
		params.CustomerID,
		params.Body,
		params.Channel)
	if err != nil {
		return CustomerMessage{}, fmt.Errorf("failed to create customer message: %w", err)
	}
	return message, nil
}

const sqlGetMessagesByCustomer = `
SELECT id, profile_id, customer_id, body, channel, created_at
FROM customer_messages
WHERE customer_id = $1
ORDER BY created_at DESC
LIMIT $2
`

// GetMessagesByCustomer retrieves a customer's recent messages
func (s *Store) GetMessagesByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]CustomerMessage, error) {
	var messages []CustomerMessage
	err := s.db.SelectContext(ctx, &messages, sqlGetMessagesByCustomer, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer messages: %w", err)
	}
	return messages, nil
}
