package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// membershipInsertBatchSize bounds a single INSERT so one oversized profile
// cannot exceed reasonable per-statement resource bounds.
const membershipInsertBatchSize = 500

// CreateSegmentParams represents parameters for creating a segment
type CreateSegmentParams struct {
	ProfileID uuid.UUID
	Name      string
	Color     string
	Type      SegmentType
	Criteria  JSONB
	IsActive  bool
}

const sqlCreateSegment = `
INSERT INTO customer_segments (profile_id, name, color, type, criteria, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, profile_id, name, color, type, criteria, is_active, customer_count, created_at, updated_at
`

// CreateSegment creates a new segment
func (s *Store) CreateSegment(ctx context.Context, params CreateSegmentParams) (CustomerSegment, error) {
	var segment CustomerSegment
	err := s.db.GetContext(ctx, &segment, sqlCreateSegment,
		params.ProfileID,
		params.Name,
		params.Color,
		params.Type,
		params.Criteria,
		params.IsActive)
	if err != nil {
		return CustomerSegment{}, fmt.Errorf("failed to create segment: %w", err)
	}
	return segment, nil
}

const sqlGetSegmentByID = `
SELECT id, profile_id, name, color, type, criteria, is_active, customer_count, created_at, updated_at
FROM customer_segments
WHERE id = $1
`

// GetSegmentByID retrieves a segment by ID
func (s *Store) GetSegmentByID(ctx context.Context, segmentID uuid.UUID) (CustomerSegment, error) {
	var segment CustomerSegment
	err := s.db.GetContext(ctx, &segment, sqlGetSegmentByID, segmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerSegment{}, ErrNotFound
		}
		return CustomerSegment{}, fmt.Errorf("failed to get segment: %w", err)
	}
	return segment, nil
}

const sqlGetSegmentsByProfile = `
SELECT id, profile_id, name, color, type, criteria, is_active, customer_count, created_at, updated_at
FROM customer_segments
WHERE profile_id = $1
ORDER BY created_at ASC
`

// GetSegmentsByProfile retrieves all segments for a profile
func (s *Store) GetSegmentsByProfile(ctx context.Context, profileID uuid.UUID) ([]CustomerSegment, error) {
	var segments []CustomerSegment
	err := s.db.SelectContext(ctx, &segments, sqlGetSegmentsByProfile, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get segments: %w", err)
	}
	return segments, nil
}

const sqlGetActiveSegmentsByProfile = `
SELECT id, profile_id, name, color, type, criteria, is_active, customer_count, created_at, updated_at
FROM customer_segments
WHERE profile_id = $1 AND is_active = TRUE
ORDER BY created_at ASC
`

// GetActiveSegmentsByProfile retrieves all active segments for a profile
func (s *Store) GetActiveSegmentsByProfile(ctx context.Context, profileID uuid.UUID) ([]CustomerSegment, error) {
	var segments []CustomerSegment
	err := s.db.SelectContext(ctx, &segments, sqlGetActiveSegmentsByProfile, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active segments: %w", err)
	}
	return segments, nil
}

const sqlCountSegmentsByProfileAndType = `
SELECT COUNT(*) FROM customer_segments WHERE profile_id = $1 AND type = $2
`

// CountSegmentsByProfileAndType counts a profile's segments of a given type
func (s *Store) CountSegmentsByProfileAndType(ctx context.Context, profileID uuid.UUID, segmentType SegmentType) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountSegmentsByProfileAndType, profileID, segmentType)
	if err != nil {
		return 0, fmt.Errorf("failed to count segments: %w", err)
	}
	return count, nil
}

// UpdateSegmentParams represents parameters for updating a segment
type UpdateSegmentParams struct {
	Name     *string
	Color    *string
	Criteria *JSONB
	IsActive *bool
}

const sqlUpdateSegment = `
UPDATE customer_segments
SET name = COALESCE($2, name),
    color = COALESCE($3, color),
    criteria = COALESCE($4, criteria),
    is_active = COALESCE($5, is_active),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, profile_id, name, color, type, criteria, is_active, customer_count, created_at, updated_at
`

// UpdateSegment updates a segment
func (s *Store) UpdateSegment(ctx context.Context, segmentID uuid.UUID, params UpdateSegmentParams) (CustomerSegment, error) {
	var segment CustomerSegment
	err := s.db.GetContext(ctx, &segment, sqlUpdateSegment,
		segmentID,
		params.Name,
		params.Color,
		params.Criteria,
		params.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerSegment{}, ErrNotFound
		}
		return CustomerSegment{}, fmt.Errorf("failed to update segment: %w", err)
	}
	return segment, nil
}

const sqlDeleteSegment = `
DELETE FROM customer_segments WHERE id = $1
`

// DeleteSegment deletes a segment; memberships cascade via foreign key
func (s *Store) DeleteSegment(ctx context.Context, segmentID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteSegment, segmentID)
	if err != nil {
		return fmt.Errorf("failed to delete segment: %w", err)
	}
	return requireRowsAffected(res)
}

const sqlUpdateSegmentCustomerCount = `
UPDATE customer_segments
SET customer_count = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// UpdateSegmentCustomerCount updates the cached customer count for a segment
func (s *Store) UpdateSegmentCustomerCount(ctx context.Context, segmentID uuid.UUID, count int) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateSegmentCustomerCount, segmentID, count)
	if err != nil {
		return fmt.Errorf("failed to update segment customer count: %w", err)
	}
	return requireRowsAffected(res)
}

const sqlDeleteSegmentMembership = `
DELETE FROM segment_memberships WHERE segment_id = $1
`

// ReplaceSegmentMembership rewrites a segment's membership set wholesale:
// delete everything, then insert the matched ids in bounded batches. Runs in
// one transaction so a reader never observes a half-written set for this
// segment.
func (s *Store) ReplaceSegmentMembership(ctx context.Context, segmentID uuid.UUID, customerIDs []uuid.UUID) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin membership transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, sqlDeleteSegmentMembership, segmentID); err != nil {
		return fmt.Errorf("failed to clear segment membership: %w", err)
	}

	for start := 0; start < len(customerIDs); start += membershipInsertBatchSize {
		end := start + membershipInsertBatchSize
		if end > len(customerIDs) {
			end = len(customerIDs)
		}
		batch := customerIDs[start:end]

		var query strings.Builder
		query.WriteString("INSERT INTO segment_memberships (segment_id, customer_id) VALUES ")
		args := make([]interface{}, 0, len(batch)+1)
		args = append(args, segmentID)
		for i, customerID := range batch {
			if i > 0 {
				query.WriteString(", ")
			}
			query.WriteString(fmt.Sprintf("($1, $%d)", i+2))
			args = append(args, customerID)
		}

		if _, err := tx.ExecContext(ctx, query.String(), args...); err != nil {
			return fmt.Errorf("failed to insert segment membership batch: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit membership transaction: %w", err)
	}
	return nil
}

const sqlGetSegmentMemberIDs = `
SELECT customer_id FROM segment_memberships WHERE segment_id = $1 ORDER BY customer_id
`

// GetSegmentMemberIDs retrieves the customer ids currently in a segment
func (s *Store) GetSegmentMemberIDs(ctx context.Context, segmentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.SelectContext(ctx, &ids, sqlGetSegmentMemberIDs, segmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get segment member ids: %w", err)
	}
	return ids, nil
}

const sqlGetSegmentIDsForCustomer = `
SELECT segment_id FROM segment_memberships WHERE customer_id = $1
`

// GetSegmentIDsForCustomer retrieves the segment ids a customer belongs to
func (s *Store) GetSegmentIDsForCustomer(ctx context.Context, customerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.SelectContext(ctx, &ids, sqlGetSegmentIDsForCustomer, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get segment ids for customer: %w", err)
	}
	return ids, nil
}
