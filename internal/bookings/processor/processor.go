package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	customers "biolink-server/internal/customers/processor"
	"biolink-server/internal/events"
	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

// BookingStore defines the database operations required by BookingProcessor
type BookingStore interface {
	GetProfileBySlug(ctx context.Context, slug string) (store.Profile, error)
	CreateBooking(ctx context.Context, params store.CreateBookingParams) (store.Booking, error)
	GetBookingsByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]store.Booking, error)
	RecordCustomerBooking(ctx context.Context, customerID uuid.UUID, seenAt time.Time) error
}

// CustomerUpserter defines the customer intake operations required by BookingProcessor
type CustomerUpserter interface {
	UpsertByEmail(ctx context.Context, profileID uuid.UUID, name *string, email string, source store.CustomerSource) (customers.UpsertResult, error)
}

// AutomationTrigger defines the trigger engine surface required by BookingProcessor
type AutomationTrigger interface {
	Trigger(ctx context.Context, triggerType store.TriggerType, profileID, customerID uuid.UUID)
}

var ErrProfileNotFound = errors.New("profile not found")

type BookingProcessor struct {
	store       BookingStore
	customers   CustomerUpserter
	automations AutomationTrigger
	publisher   *events.Publisher
	logger      *observability.Logger
	now         func() time.Time
}

func New(
	store BookingStore,
	customers CustomerUpserter,
	automations AutomationTrigger,
	publisher *events.Publisher,
	logger *observability.Logger,
) BookingProcessor {
	return BookingProcessor{
		store:       store,
		customers:   customers,
		automations: automations,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateBookingRequest represents a public booking intake
type CreateBookingRequest struct {
	Name        *string
	Email       string
	ServiceName string
	StartsAt    time.Time
	Note        *string
}

// CreateBooking handles a public booking intake for the profile behind a
// slug: the customer record is found or created, its activity counters are
// bumped, and the after_booking automation fires.
func (p *BookingProcessor) CreateBooking(ctx context.Context, slug string, req CreateBookingRequest) (store.Booking, error) {
	profile, err := p.store.GetProfileBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Booking{}, ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to resolve profile slug", err)
		return store.Booking{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profile.ID.String()},
		observability.Field{Key: "service_name", Value: req.ServiceName},
	)

	result, err := p.customers.UpsertByEmail(ctx, profile.ID, req.Name, req.Email, store.CustomerSourceBooking)
	if err != nil {
		return store.Booking{}, err
	}
	customer := result.Customer

	booking, err := p.store.CreateBooking(ctx, store.CreateBookingParams{
		ProfileID:   profile.ID,
		CustomerID:  customer.ID,
		ServiceName: req.ServiceName,
		StartsAt:    req.StartsAt,
		Note:        req.Note,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create booking", err)
		return store.Booking{}, err
	}

	if err := p.store.RecordCustomerBooking(ctx, customer.ID, p.now()); err != nil {
		p.logger.Error(ctx, "failed to record customer booking activity", err)
	}

	p.automations.Trigger(ctx, store.TriggerAfterBooking, profile.ID, customer.ID)
	if result.Created {
		p.automations.Trigger(ctx, store.TriggerAfterSignup, profile.ID, customer.ID)
	}
	p.publisher.PublishBookingCreated(ctx, profile.ID, customer.ID, booking.ID)

	p.logger.Info(ctx, "booking created successfully",
		observability.Field{Key: "booking_id", Value: booking.ID.String()},
	)
	return booking, nil
}

// ListBookings retrieves bookings for the profile, newest first
func (p *BookingProcessor) ListBookings(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]store.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	bookings, err := p.store.GetBookingsByProfile(ctx, profileID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list bookings", err)
		return nil, err
	}
	if bookings == nil {
		bookings = []store.Booking{}
	}
	return bookings, nil
}
