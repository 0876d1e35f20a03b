package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateReferralCodeParams represents parameters for creating a referral code
type CreateReferralCodeParams struct {
	ProfileID  uuid.UUID
	CustomerID uuid.UUID
	Code       string
}

const sqlCreateReferralCode = `
INSERT INTO referral_codes (profile_id, customer_id, code)
VALUES ($1, $2, $3)
RETURNING id, profile_id, customer_id, code, referral_count, created_at
`

// CreateReferralCode creates a referral code for a customer
func (s *Store) CreateReferralCode(ctx context.Context, params CreateReferralCodeParams) (ReferralCode, error) {
	var code ReferralCode
	err := s.db.GetContext(ctx, &code, sqlCreateReferralCode,
		params.ProfileID, params.CustomerID, params.Code)
	if err != nil {
		return ReferralCode{}, fmt.Errorf("failed to create referral code: %w", err)
	}
	return code, nil
}

const sqlGetReferralCodeByCode = `
SELECT id, profile_id, customer_id, code, referral_count, created_at
FROM referral_codes
WHERE code = $1
`

// GetReferralCodeByCode retrieves a referral code by its share code
func (s *Store) GetReferralCodeByCode(ctx context.Context, code string) (ReferralCode, error) {
	var referralCode ReferralCode
	err := s.db.GetContext(ctx, &referralCode, sqlGetReferralCodeByCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralCode{}, ErrNotFound
		}
		return ReferralCode{}, fmt.Errorf("failed to get referral code: %w", err)
	}
	return referralCode, nil
}

const sqlIncrementReferralCount = `
UPDATE referral_codes
SET referral_count = referral_count + 1
WHERE id = $1
`

// IncrementReferralCount bumps the referral counter on a code
func (s *Store) IncrementReferralCount(ctx context.Context, referralCodeID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlIncrementReferralCount, referralCodeID)
	if err != nil {
		return fmt.Errorf("failed to increment referral count: %w", err)
	}
	return requireRowsAffected(res)
}

const sqlGetReferralOwnerIDs = `
SELECT DISTINCT customer_id
FROM referral_codes
WHERE profile_id = $1 AND referral_count > 0
`

// GetReferralOwnerIDs retrieves the ids of customers who own a referral code
// with at least one successful referral. One batched query per refresh run.
func (s *Store) GetReferralOwnerIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.SelectContext(ctx, &ids, sqlGetReferralOwnerIDs, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get referral owner ids: %w", err)
	}
	return ids, nil
}
