package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateLinkParams represents parameters for creating a link
type CreateLinkParams struct {
	ProfileID uuid.UUID
	Title     string
	URL       string
	Position  int
}

const sqlCreateLink = `
INSERT INTO links (profile_id, title, url, position)
VALUES ($1, $2, $3, $4)
RETURNING id, profile_id, title, url, position, click_count, is_active, created_at, updated_at
`

// CreateLink creates a new link on a profile page
func (s *Store) CreateLink(ctx context.Context, params CreateLinkParams) (Link, error) {
	var link Link
	err := s.db.GetContext(ctx, &link, sqlCreateLink,
		params.ProfileID, params.Title, params.URL, params.Position)
	if err != nil {
		return Link{}, fmt.Errorf("failed to create link: %w", err)
	}
	return link, nil
}

const sqlGetLinkByID = `
SELECT id, profile_id, title, url, position, click_count, is_active, created_at, updated_at
FROM links
WHERE id = $1
`

// GetLinkByID retrieves a link by ID
func (s *Store) GetLinkByID(ctx context.Context, linkID uuid.UUID) (Link, error) {
	var link Link
	err := s.db.GetContext(ctx, &link, sqlGetLinkByID, linkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Link{}, ErrNotFound
		}
		return Link{}, fmt.Errorf("failed to get link: %w", err)
	}
	return link, nil
}

const sqlGetLinksByProfile = `
SELECT id, profile_id, title, url, position, click_count, is_active, created_at, updated_at
FROM links
WHERE profile_id = $1
ORDER BY position ASC
`

// GetLinksByProfile retrieves all links for a profile in display order
func (s *Store) GetLinksByProfile(ctx context.Context, profileID uuid.UUID) ([]Link, error) {
	var links []Link
	err := s.db.SelectContext(ctx, &links, sqlGetLinksByProfile, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}
	return links, nil
}

// UpdateLinkParams represents parameters for updating a link
type UpdateLinkParams struct {
	Title    *string
	URL      *string
	Position *int
	IsActive *bool
}

const sqlUpdateLink = `
UPDATE links
SET title = COALESCE($2, title),
    url = COALESCE($3, url),
    position = COALESCE($4, position),
    is_active = COALESCE($5, is_active),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, profile_id, title, url, position, click_count, is_active, created_at, updated_at
`

// UpdateLink updates a link
func (s *Store) UpdateLink(ctx context.Context, linkID uuid.UUID, params UpdateLinkParams) (Link, error) {
	var link Link
	err := s.db.GetContext(ctx, &link, sqlUpdateLink,
		linkID, params.Title, params.URL, params.Position, params.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Link{}, ErrNotFound
		}
		return Link{}, fmt.Errorf("failed to update link: %w", err)
	}
	return link, nil
}

const sqlDeleteLink = `
DELETE FROM links WHERE id = $1
`

// DeleteLink deletes a link
func (s *Store) DeleteLink(ctx context.Context, linkID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteLink, linkID)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return requireRowsAffected(res)
}

const sqlIncrementLinkClicks = `
UPDATE links
SET click_count = click_count + 1
WHERE id = $1 AND is_active = TRUE
`

// IncrementLinkClicks bumps the click counter on an active link
func (s *Store) IncrementLinkClicks(ctx context.Context, linkID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlIncrementLinkClicks, linkID)
	if err != nil {
		return fmt.Errorf("failed to increment link clicks: %w", err)
	}
	return requireRowsAffected(res)
}
