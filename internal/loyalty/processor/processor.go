package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"

	"biolink-server/internal/events"
	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

// AutomationTrigger defines the trigger engine surface required by LoyaltyProcessor
type AutomationTrigger interface {
	Trigger(ctx context.Context, triggerType store.TriggerType, profileID, customerID uuid.UUID)
}

// LoyaltyStore defines the database operations required by LoyaltyProcessor
type LoyaltyStore interface {
	GetProfileBySlug(ctx context.Context, slug string) (store.Profile, error)
	GetCustomerByID(ctx context.Context, customerID uuid.UUID) (store.Customer, error)
	CreateStampCard(ctx context.Context, params store.CreateStampCardParams) (store.StampCard, error)
	GetStampCardByCustomer(ctx context.Context, customerID uuid.UUID) (store.StampCard, error)
	AddStamp(ctx context.Context, cardID uuid.UUID) (store.StampCard, error)
	CreateReferralCode(ctx context.Context, params store.CreateReferralCodeParams) (store.ReferralCode, error)
	GetReferralCodeByCode(ctx context.Context, code string) (store.ReferralCode, error)
	IncrementReferralCount(ctx context.Context, referralCodeID uuid.UUID) error
}

const defaultRequiredStamps = 10

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrCodeNotFound     = errors.New("referral code not found")
	ErrUnauthorized     = errors.New("customer does not belong to profile")
)

type LoyaltyProcessor struct {
	store       LoyaltyStore
	automations AutomationTrigger
	publisher   *events.Publisher
	logger      *observability.Logger
}

func New(
	store LoyaltyStore,
	automations AutomationTrigger,
	publisher *events.Publisher,
	logger *observability.Logger,
) LoyaltyProcessor {
	return LoyaltyProcessor{
		store:       store,
		automations: automations,
		publisher:   publisher,
		logger:      logger,
	}
}

// AddStamp adds one stamp to a customer's card, creating the card on first
// use, and fires the after_stamp automation.
func (p *LoyaltyProcessor) AddStamp(ctx context.Context, profileID, customerID uuid.UUID) (store.StampCard, error) {
	customer, err := p.ownedCustomer(ctx, profileID, customerID)
	if err != nil {
		return store.StampCard{}, err
	}

	card, err := p.store.GetStampCardByCustomer(ctx, customerID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to get stamp card", err)
			return store.StampCard{}, err
		}
		card, err = p.store.CreateStampCard(ctx, store.CreateStampCardParams{
			ProfileID:      profileID,
			CustomerID:     customerID,
			RequiredStamps: defaultRequiredStamps,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to create stamp card", err)
			return store.StampCard{}, err
		}
	}

	card, err = p.store.AddStamp(ctx, card.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to add stamp", err)
		return store.StampCard{}, err
	}

	p.automations.Trigger(ctx, store.TriggerAfterStamp, profileID, customer.ID)
	p.publisher.PublishStampAdded(ctx, profileID, customer.ID, card.CurrentStamps)

	p.logger.Info(ctx, "stamp added",
		observability.Field{Key: "customer_id", Value: customer.ID.String()},
		observability.Field{Key: "current_stamps", Value: card.CurrentStamps},
	)
	return card, nil
}

func (p *LoyaltyProcessor) GetStampCard(ctx context.Context, profileID, customerID uuid.UUID) (store.StampCard, error) {
	if _, err := p.ownedCustomer(ctx, profileID, customerID); err != nil {
		return store.StampCard{}, err
	}

	card, err := p.store.GetStampCardByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// No card yet reads as an empty card.
			return store.StampCard{
				ProfileID:      profileID,
				CustomerID:     customerID,
				RequiredStamps: defaultRequiredStamps,
			}, nil
		}
		p.logger.Error(ctx, "failed to get stamp card", err)
		return store.StampCard{}, err
	}
	return card, nil
}

// CreateReferralCode issues a shareable code tied to a customer
func (p *LoyaltyProcessor) CreateReferralCode(ctx context.Context, profileID, customerID uuid.UUID) (store.ReferralCode, error) {
	if _, err := p.ownedCustomer(ctx, profileID, customerID); err != nil {
		return store.ReferralCode{}, err
	}

	code, err := generateCode()
	if err != nil {
		p.logger.Error(ctx, "failed to generate referral code", err)
		return store.ReferralCode{}, err
	}

	referralCode, err := p.store.CreateReferralCode(ctx, store.CreateReferralCodeParams{
		ProfileID:  profileID,
		CustomerID: customerID,
		Code:       code,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create referral code", err)
		return store.ReferralCode{}, err
	}

	p.logger.Info(ctx, "referral code created",
		observability.Field{Key: "customer_id", Value: customerID.String()},
	)
	return referralCode, nil
}

// ApplyReferralCode counts a referral against the code's owner. The code must
// belong to the profile behind the slug.
func (p *LoyaltyProcessor) ApplyReferralCode(ctx context.Context, slug, code string) error {
	profile, err := p.store.GetProfileBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	referralCode, err := p.store.GetReferralCodeByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCodeNotFound
		}
		p.logger.Error(ctx, "failed to look up referral code", err)
		return err
	}
	if referralCode.ProfileID != profile.ID {
		return ErrCodeNotFound
	}

	if err := p.store.IncrementReferralCount(ctx, referralCode.ID); err != nil {
		p.logger.Error(ctx, "failed to increment referral count", err)
		return err
	}
	return nil
}

func (p *LoyaltyProcessor) ownedCustomer(ctx context.Context, profileID, customerID uuid.UUID) (store.Customer, error) {
	customer, err := p.store.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Customer{}, ErrCustomerNotFound
		}
		p.logger.Error(ctx, "failed to get customer", err)
		return store.Customer{}, err
	}
	if customer.ProfileID != profileID {
		return store.Customer{}, ErrUnauthorized
	}
	return customer, nil
}

func generateCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
