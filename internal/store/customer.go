package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateCustomerParams represents parameters for creating a customer
type CreateCustomerParams struct {
	ProfileID   uuid.UUID
	Name        *string
	Email       string
	Tags        StringArray
	Source      string
	FirstSeenAt time.Time
	LastSeenAt  time.Time
}

const sqlCreateCustomer = `
INSERT INTO customers (profile_id, name, email, tags, source, first_seen_at, last_seen_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, profile_id, name, email, total_bookings, total_messages, tags, source, first_seen_at, last_seen_at, created_at, updated_at
`

// CreateCustomer creates a new customer. Email is normalized to lower case so
// the (profile_id, email) uniqueness constraint holds.
func (s *Store) CreateCustomer(ctx context.Context, params CreateCustomerParams) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlCreateCustomer,
		params.ProfileID,
		params.Name,
		strings.ToLower(strings.TrimSpace(params.Email)),
		params.Tags,
		params.Source,
		params.FirstSeenAt,
		params.LastSeenAt)
	if err != nil {
		return Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

const sqlGetCustomerByID = `
SELECT id, profile_id, name, email, total_bookings, total_messages, tags, source, first_seen_at, last_seen_at, created_at, updated_at
FROM customers
WHERE id = $1
`

// GetCustomerByID retrieves a customer by ID
func (s *Store) GetCustomerByID(ctx context.Context, customerID uuid.UUID) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlGetCustomerByID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

const sqlGetCustomerByEmail = `
SELECT id, profile_id, name, email, total_bookings, total_messages, tags, source, first_seen_at, last_seen_at, created_at, updated_at
FROM customers
WHERE profile_id = $1 AND email = $2
`

// GetCustomerByEmail retrieves a customer by normalized email within a profile
func (s *Store) GetCustomerByEmail(ctx context.Context, profileID uuid.UUID, email string) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlGetCustomerByEmail,
		profileID, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, fmt.Errorf("failed to get customer by email: %w", err)
	}
	return customer, nil
}

const sqlGetCustomersByProfile = `
SELECT id, profile_id, name, email, total_bookings, total_messages, tags, source, first_seen_at, last_seen_at, created_at, updated_at
FROM customers
WHERE profile_id = $1
ORDER BY last_seen_at DESC
LIMIT $2
`

// GetCustomersByProfile retrieves customers for a profile, newest activity first,
// capped at limit to bound worst-case work per refresh run.
func (s *Store) GetCustomersByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]Customer, error) {
	var customers []Customer
	err := s.db.SelectContext(ctx, &customers, sqlGetCustomersByProfile, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

// UpdateCustomerParams represents parameters for updating a customer
type UpdateCustomerParams struct {
	Name *string
	Tags *StringArray
}

const sqlUpdateCustomer = `
UPDATE customers
SET name = COALESCE($2, name),
    tags = COALESCE($3, tags),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, profile_id, name, email, total_bookings, total_messages, tags, source, first_seen_at, last_seen_at, created_at, updated_at
`

// UpdateCustomer updates a customer's editable fields
func (s *Store) UpdateCustomer(ctx context.Context, customerID uuid.UUID, params UpdateCustomerParams) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlUpdateCustomer, customerID, params.Name, params.Tags)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

const sqlRecordCustomerBooking = `
UPDATE customers
SET total_bookings = total_bookings + 1,
    last_seen_at = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// RecordCustomerBooking increments the booking counter and touches last_seen_at
func (s *Store) RecordCustomerBooking(ctx context.Context, customerID uuid.UUID, seenAt time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlRecordCustomerBooking, customerID, seenAt)
	if err != nil {
		return fmt.Errorf("failed to record customer booking: %w", err)
	}
	return requireRowsAffected(res)
}

const sqlRecordCustomerMessage = `
UPDATE customers
SET total_messages = total_messages + 1,
    last_seen_at = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// RecordCustomerMessage increments the message counter and touches last_seen_at
func (s *Store) RecordCustomerMessage(ctx context.Context, customerID uuid.UUID, seenAt time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlRecordCustomerMessage, customerID, seenAt)
	if err != nil {
		return fmt.Errorf("failed to record customer message: %w", err)
	}
	return requireRowsAffected(res)
}

const sqlAppendCustomerSource = `
UPDATE customers
SET source = CASE
        WHEN source = '' THEN $2
        WHEN position($2 in source) > 0 THEN source
        ELSE source || ',' || $2
    END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// AppendCustomerSource adds a provenance entry to the comma-joined source list
// if it is not already present.
func (s *Store) AppendCustomerSource(ctx context.Context, customerID uuid.UUID, source string) error {
	res, err := s.db.ExecContext(ctx, sqlAppendCustomerSource, customerID, source)
	if err != nil {
		return fmt.Errorf("failed to append customer source: %w", err)
	}
	return requireRowsAffected(res)
}

const sqlCountCustomersByProfile = `
SELECT COUNT(*) FROM customers WHERE profile_id = $1
`

// CountCustomersByProfile counts all customers for a profile
func (s *Store) CountCustomersByProfile(ctx context.Context, profileID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCustomersByProfile, profileID)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

// requireRowsAffected converts a zero-row update into ErrNotFound
func requireRowsAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
