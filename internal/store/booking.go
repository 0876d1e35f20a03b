package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateBookingParams represents parameters for creating a booking
type CreateBookingParams struct {
	ProfileID   uuid.UUID
	CustomerID  uuid.UUID
	ServiceName string
	StartsAt    time.Time
	Note        *string
}

const sqlCreateBooking = `
INSERT INTO bookings (profile_id, customer_id, service_name, starts_at, note)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, profile_id, customer_id, service_name, starts_at, note, created_at
`

// CreateBooking creates a new booking
func (s *Store) CreateBooking(ctx context.Context, params CreateBookingParams) (Booking, error) {
	var booking Booking
	err := s.db.GetContext(ctx, &booking, sqlCreateBooking,
		params.ProfileID,
		params.CustomerID,
		params.ServiceName,
		params.StartsAt,
		params.Note)
	if err != nil {
		return Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

const sqlGetBookingsByProfile = `
SELECT id, profile_id, customer_id, service_name, starts_at, note, created_at
FROM bookings
WHERE profile_id = $1
ORDER BY starts_at DESC
LIMIT $2 OFFSET $3
`

// GetBookingsByProfile retrieves bookings for a profile, newest first
func (s *Store) GetBookingsByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]Booking, error) {
	var bookings []Booking
	err := s.db.SelectContext(ctx, &bookings, sqlGetBookingsByProfile, profileID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return bookings, nil
}
