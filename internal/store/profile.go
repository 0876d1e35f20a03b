package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CreateUserParams represents parameters for creating a dashboard account
type CreateUserParams struct {
	Email          string
	Name           string
	HashedPassword string
}

const sqlCreateUser = `
INSERT INTO users (email, name, hashed_password)
VALUES ($1, $2, $3)
RETURNING id, email, name, hashed_password, stripe_customer_id, created_at, updated_at
`

// CreateUser creates a new dashboard account
func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser,
		strings.ToLower(strings.TrimSpace(params.Email)),
		params.Name,
		params.HashedPassword)
	if err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `
SELECT id, email, name, hashed_password, stripe_customer_id, created_at, updated_at
FROM users
WHERE email = $1
`

// GetUserByEmail retrieves a user by email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

const sqlGetUserByID = `
SELECT id, email, name, hashed_password, stripe_customer_id, created_at, updated_at
FROM users
WHERE id = $1
`

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

const sqlGetUserByStripeCustomerID = `
SELECT id, email, name, hashed_password, stripe_customer_id, created_at, updated_at
FROM users
WHERE stripe_customer_id = $1
`

// GetUserByStripeCustomerID retrieves a user by Stripe customer ID
func (s *Store) GetUserByStripeCustomerID(ctx context.Context, stripeCustomerID string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByStripeCustomerID, stripeCustomerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by stripe customer id: %w", err)
	}
	return user, nil
}

const sqlUpdateUserStripeCustomerID = `
UPDATE users
SET stripe_customer_id = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// UpdateUserStripeCustomerID stores the Stripe customer ID on a user
func (s *Store) UpdateUserStripeCustomerID(ctx context.Context, userID uuid.UUID, stripeCustomerID string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateUserStripeCustomerID, userID, stripeCustomerID)
	if err != nil {
		return fmt.Errorf("failed to update stripe customer id: %w", err)
	}
	return requireRowsAffected(res)
}

// CreateProfileParams represents parameters for creating a profile
type CreateProfileParams struct {
	UserID      uuid.UUID
	Slug        string
	DisplayName string
	Bio         *string
}

const sqlCreateProfile = `
INSERT INTO profiles (user_id, slug, display_name, bio)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, slug, display_name, bio, avatar_url, created_at, updated_at
`

// CreateProfile creates a new profile
func (s *Store) CreateProfile(ctx context.Context, params CreateProfileParams) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlCreateProfile,
		params.UserID, params.Slug, params.DisplayName, params.Bio)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

const sqlGetProfileByID = `
SELECT id, user_id, slug, display_name, bio, avatar_url, created_at, updated_at
FROM profiles
WHERE id = $1
`

// GetProfileByID retrieves a profile by ID
func (s *Store) GetProfileByID(ctx context.Context, profileID uuid.UUID) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlGetProfileByID, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

const sqlGetProfileBySlug = `
SELECT id, user_id, slug, display_name, bio, avatar_url, created_at, updated_at
FROM profiles
WHERE slug = $1
`

// GetProfileBySlug retrieves a profile by its public slug
func (s *Store) GetProfileBySlug(ctx context.Context, slug string) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlGetProfileBySlug, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("failed to get profile by slug: %w", err)
	}
	return profile, nil
}

const sqlGetProfileByUserID = `
SELECT id, user_id, slug, display_name, bio, avatar_url, created_at, updated_at
FROM profiles
WHERE user_id = $1
`

// GetProfileByUserID retrieves the profile owned by a user
func (s *Store) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlGetProfileByUserID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("failed to get profile by user: %w", err)
	}
	return profile, nil
}

// UpdateProfileParams represents parameters for updating a profile
type UpdateProfileParams struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

const sqlUpdateProfile = `
UPDATE profiles
SET display_name = COALESCE($2, display_name),
    bio = COALESCE($3, bio),
    avatar_url = COALESCE($4, avatar_url),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, user_id, slug, display_name, bio, avatar_url, created_at, updated_at
`

// UpdateProfile updates a profile's editable fields
func (s *Store) UpdateProfile(ctx context.Context, profileID uuid.UUID, params UpdateProfileParams) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlUpdateProfile,
		profileID, params.DisplayName, params.Bio, params.AvatarURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
