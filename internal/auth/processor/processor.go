package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	UpdateUserStripeCustomerID(ctx context.Context, userID uuid.UUID, stripeCustomerID string) error
	CreateProfile(ctx context.Context, params store.CreateProfileParams) (store.Profile, error)
	GetProfileBySlug(ctx context.Context, slug string) (store.Profile, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (store.Profile, error)
}

// BillingProcessor defines the billing operations required by AuthProcessor
type BillingProcessor interface {
	CreateStripeCustomer(ctx context.Context, email string) (string, error)
}

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrSlugTaken          = errors.New("slug already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthProcessor struct {
	store     AuthStore
	billing   BillingProcessor
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(store AuthStore, billing BillingProcessor, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		billing:   billing,
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

type SignedUpUser struct {
	Email   string        `json:"email"`
	Name    string        `json:"name"`
	Profile store.Profile `json:"profile"`
	Token   string        `json:"token"`
}

// Signup creates a dashboard account with its public profile page and
// provisions a Stripe customer for billing.
func (p *AuthProcessor) Signup(ctx context.Context, name, email, password, displayName, slug string) (SignedUpUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	slug = strings.ToLower(strings.TrimSpace(slug))
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	if _, err := p.store.GetUserByEmail(ctx, email); err == nil {
		return SignedUpUser{}, ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check if email exists", err)
		return SignedUpUser{}, err
	}

	if _, err := p.store.GetProfileBySlug(ctx, slug); err == nil {
		return SignedUpUser{}, ErrSlugTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check slug availability", err)
		return SignedUpUser{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return SignedUpUser{}, err
	}

	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Email:          email,
		Name:           name,
		HashedPassword: string(hashedPassword),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create user", err)
		return SignedUpUser{}, err
	}

	profile, err := p.store.CreateProfile(ctx, store.CreateProfileParams{
		UserID:      user.ID,
		Slug:        slug,
		DisplayName: displayName,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create profile", err)
		return SignedUpUser{}, err
	}

	// Billing provisioning is best effort: a missing Stripe customer is
	// backfilled on the first billing interaction.
	if p.billing != nil {
		stripeCustomerID, err := p.billing.CreateStripeCustomer(ctx, email)
		if err != nil {
			p.logger.Error(ctx, "failed to create stripe customer", err)
		} else if err := p.store.UpdateUserStripeCustomerID(ctx, user.ID, stripeCustomerID); err != nil {
			p.logger.Error(ctx, "failed to save stripe customer id", err)
		}
	}

	token, err := p.generateJWTToken(ctx, user, profile)
	if err != nil {
		return SignedUpUser{}, err
	}

	p.logger.Info(ctx, "user signed up",
		observability.Field{Key: "profile_id", Value: profile.ID.String()},
	)
	return SignedUpUser{
		Email:   user.Email,
		Name:    user.Name,
		Profile: profile,
		Token:   token,
	}, nil
}

// Login verifies credentials and returns a signed JWT
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	profile, err := p.store.GetProfileByUserID(ctx, user.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to get profile for user", err)
		return "", err
	}

	return p.generateJWTToken(ctx, user, profile)
}

type UserInfo struct {
	ID      uuid.UUID     `json:"id"`
	Email   string        `json:"email"`
	Name    string        `json:"name"`
	Profile store.Profile `json:"profile"`
}

func (p *AuthProcessor) GetUserInfo(ctx context.Context, userID uuid.UUID) (UserInfo, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to get user by id", err)
		return UserInfo{}, err
	}
	profile, err := p.store.GetProfileByUserID(ctx, user.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to get profile for user", err)
		return UserInfo{}, err
	}
	return UserInfo{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Profile: profile,
	}, nil
}
