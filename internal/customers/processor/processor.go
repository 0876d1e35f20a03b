package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

const defaultListLimit = 200

// CustomerStore defines the database operations required by CustomerProcessor
type CustomerStore interface {
	CreateCustomer(ctx context.Context, params store.CreateCustomerParams) (store.Customer, error)
	GetCustomerByID(ctx context.Context, customerID uuid.UUID) (store.Customer, error)
	GetCustomerByEmail(ctx context.Context, profileID uuid.UUID, email string) (store.Customer, error)
	GetCustomersByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]store.Customer, error)
	UpdateCustomer(ctx context.Context, customerID uuid.UUID, params store.UpdateCustomerParams) (store.Customer, error)
	CountCustomersByProfile(ctx context.Context, profileID uuid.UUID) (int, error)
	AppendCustomerSource(ctx context.Context, customerID uuid.UUID, source string) error
}

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrUnauthorized     = errors.New("unauthorized access to customer")
	ErrEmailRequired    = errors.New("customer email is required")
)

type CustomerProcessor struct {
	store  CustomerStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store CustomerStore, logger *observability.Logger) CustomerProcessor {
	return CustomerProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ListCustomers retrieves the most recently seen customers for a profile
func (p *CustomerProcessor) ListCustomers(ctx context.Context, profileID uuid.UUID, limit int) ([]store.Customer, int, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	customers, err := p.store.GetCustomersByProfile(ctx, profileID, limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list customers", err)
		return nil, 0, err
	}
	if customers == nil {
		customers = []store.Customer{}
	}

	total, err := p.store.CountCustomersByProfile(ctx, profileID)
	if err != nil {
		p.logger.Error(ctx, "failed to count customers", err)
		return nil, 0, err
	}
	return customers, total, nil
}

// GetCustomer retrieves one customer owned by the profile
func (p *CustomerProcessor) GetCustomer(ctx context.Context, profileID, customerID uuid.UUID) (store.Customer, error) {
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

// UpdateCustomerRequest represents editable customer fields
type UpdateCustomerRequest struct {
	Name *string
	Tags *[]string
}

// UpdateCustomer updates a customer's editable fields
func (p *CustomerProcessor) UpdateCustomer(ctx context.Context, profileID, customerID uuid.UUID, req UpdateCustomerRequest) (store.Customer, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
		observability.Field{Key: "customer_id", Value: customerID.String()},
	)

	if _, err := p.GetCustomer(ctx, profileID, customerID); err != nil {
		return store.Customer{}, err
	}

	var tags *store.StringArray
	if req.Tags != nil {
		arr := store.StringArray(*req.Tags)
		tags = &arr
	}

	customer, err := p.store.UpdateCustomer(ctx, customerID, store.UpdateCustomerParams{
		Name: req.Name,
		Tags: tags,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Customer{}, ErrCustomerNotFound
		}
		p.logger.Error(ctx, "failed to update customer", err)
		return store.Customer{}, err
	}

	p.logger.Info(ctx, "customer updated successfully")
	return customer, nil
}

// UpsertResult reports whether an intake created a new customer record
type UpsertResult struct {
	Customer store.Customer
	Created  bool
}

// UpsertByEmail finds or creates the customer record an intake flow belongs
// to. Existing customers get the source appended; a missing name on the
// record is filled in from the intake payload.
func (p *CustomerProcessor) UpsertByEmail(ctx context.Context, profileID uuid.UUID, name *string, email string, source store.CustomerSource) (UpsertResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return UpsertResult{}, ErrEmailRequired
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
	)

	existing, err := p.store.GetCustomerByEmail(ctx, profileID, email)
	if err == nil {
		if err := p.store.AppendCustomerSource(ctx, existing.ID, string(source)); err != nil {
			p.logger.Error(ctx, "failed to append customer source", err)
		}
		if existing.Name == nil && name != nil {
			if updated, err := p.store.UpdateCustomer(ctx, existing.ID, store.UpdateCustomerParams{Name: name}); err == nil {
				existing = updated
			}
		}
		return UpsertResult{Customer: existing, Created: false}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to look up customer by email", err)
		return UpsertResult{}, err
	}

	now := p.now()
	customer, err := p.store.CreateCustomer(ctx, store.CreateCustomerParams{
		ProfileID:   profileID,
		Name:        name,
		Email:       email,
		Source:      string(source),
		FirstSeenAt: now,
		LastSeenAt:  now,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create customer", err)
		return UpsertResult{}, err
	}

	p.logger.Info(ctx, "customer created from intake",
		observability.Field{Key: "customer_id", Value: customer.ID.String()},
		observability.Field{Key: "source", Value: string(source)},
	)
	return UpsertResult{Customer: customer, Created: true}, nil
}

// ExportCSV renders every customer of a profile as a CSV document
func (p *CustomerProcessor) ExportCSV(ctx context.Context, profileID uuid.UUID) ([]byte, error) {
	customers, err := p.store.GetCustomersByProfile(ctx, profileID, defaultListLimit*50)
	if err != nil {
		p.logger.Error(ctx, "failed to load customers for export", err)
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"email", "name", "total_bookings", "total_messages", "tags", "source", "first_seen_at", "last_seen_at"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, customer := range customers {
		name := ""
		if customer.Name != nil {
			name = *customer.Name
		}
		record := []string{
			customer.Email,
			name,
			strconv.Itoa(customer.TotalBookings),
			strconv.Itoa(customer.TotalMessages),
			strings.Join(customer.Tags, ";"),
			customer.Source,
			customer.FirstSeenAt.UTC().Format(time.RFC3339),
			customer.LastSeenAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
