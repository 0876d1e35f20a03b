package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"biolink-server/internal/observability"
	"biolink-server/internal/segments/engine"
	"biolink-server/internal/store"
)

// refreshCustomerLimit bounds worst-case work for one refresh run.
const refreshCustomerLimit = 10000

// SegmentStore defines the database operations required by SegmentProcessor
type SegmentStore interface {
	GetSegmentByID(ctx context.Context, segmentID uuid.UUID) (store.CustomerSegment, error)
	GetSegmentsByProfile(ctx context.Context, profileID uuid.UUID) ([]store.CustomerSegment, error)
	GetActiveSegmentsByProfile(ctx context.Context, profileID uuid.UUID) ([]store.CustomerSegment, error)
	CountSegmentsByProfileAndType(ctx context.Context, profileID uuid.UUID, segmentType store.SegmentType) (int, error)
	CreateSegment(ctx context.Context, params store.CreateSegmentParams) (store.CustomerSegment, error)
	UpdateSegment(ctx context.Context, segmentID uuid.UUID, params store.UpdateSegmentParams) (store.CustomerSegment, error)
	DeleteSegment(ctx context.Context, segmentID uuid.UUID) error
	UpdateSegmentCustomerCount(ctx context.Context, segmentID uuid.UUID, count int) error
	ReplaceSegmentMembership(ctx context.Context, segmentID uuid.UUID, customerIDs []uuid.UUID) error
	GetCustomerByID(ctx context.Context, customerID uuid.UUID) (store.Customer, error)
	GetCustomersByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]store.Customer, error)
	GetReferralOwnerIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error)
	GetStampOwnerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]uuid.UUID, error)
}

var (
	ErrSegmentNotFound  = errors.New("segment not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrUnauthorized     = errors.New("unauthorized access to segment")
	ErrSystemSegment    = errors.New("system segments cannot be deleted")
)

type SegmentProcessor struct {
	store  SegmentStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store SegmentStore, logger *observability.Logger) SegmentProcessor {
	return SegmentProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// InitResult reports whether initialization created anything
type InitResult struct {
	Initialized bool                    `json:"initialized"`
	Segments    []store.CustomerSegment `json:"segments"`
}

// InitSystemSegments creates the built-in segment catalog for a profile.
// Idempotent: if any system segment already exists the call is a no-op that
// returns the existing segments unchanged.
func (p *SegmentProcessor) InitSystemSegments(ctx context.Context, profileID uuid.UUID) (InitResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
	)

	existing, err := p.store.CountSegmentsByProfileAndType(ctx, profileID, store.SegmentTypeSystem)
	if err != nil {
		p.logger.Error(ctx, "failed to count system segments", err)
		return InitResult{}, err
	}

	if existing > 0 {
		segments, err := p.store.GetSegmentsByProfile(ctx, profileID)
		if err != nil {
			p.logger.Error(ctx, "failed to list segments", err)
			return InitResult{}, err
		}
		return InitResult{Initialized: false, Segments: segments}, nil
	}

	created := make([]store.CustomerSegment, 0, engine.SystemSegmentCount)
	for _, params := range engine.SystemSegments(profileID) {
		segment, err := p.store.CreateSegment(ctx, params)
		if err != nil {
			p.logger.Error(ctx, "failed to create system segment", err)
			return InitResult{}, err
		}
		created = append(created, segment)
	}

	p.logger.Info(ctx, "system segments initialized")
	return InitResult{Initialized: true, Segments: created}, nil
}

// RefreshSummary reports the totals of one refresh run
type RefreshSummary struct {
	SegmentsUpdated    int `json:"segments_updated"`
	TotalMemberships   int `json:"total_memberships"`
	CustomersEvaluated int `json:"customers_evaluated"`
}

// Refresh rebuilds membership and cached counts for every active segment of a
// profile. Load failures abort the whole run; a write failure on one segment
// is logged and skipped so it cannot corrupt segments already rewritten.
func (p *SegmentProcessor) Refresh(ctx context.Context, profileID uuid.UUID) (RefreshSummary, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
	)

	segments, err := p.store.GetActiveSegmentsByProfile(ctx, profileID)
	if err != nil {
		p.logger.Error(ctx, "failed to load active segments", err)
		return RefreshSummary{}, err
	}
	if len(segments) == 0 {
		return RefreshSummary{}, nil
	}

	customers, err := p.store.GetCustomersByProfile(ctx, profileID, refreshCustomerLimit)
	if err != nil {
		p.logger.Error(ctx, "failed to load customers", err)
		return RefreshSummary{}, err
	}

	summary := RefreshSummary{CustomersEvaluated: len(customers)}

	// With no customers left, every segment is cleared so none retains
	// stale membership.
	if len(customers) == 0 {
		for _, segment := range segments {
			if ok := p.writeSegment(ctx, segment.ID, nil); ok {
				summary.SegmentsUpdated++
			}
		}
		return summary, nil
	}

	extrasByID, err := p.loadExtras(ctx, profileID, customers)
	if err != nil {
		p.logger.Error(ctx, "failed to load customer extras", err)
		return RefreshSummary{}, err
	}

	// One clock reading and one field computation per customer for the
	// whole run keeps results deterministic across segments.
	now := p.now()
	fieldsByID := make(map[uuid.UUID]engine.ComputedFields, len(customers))
	for _, customer := range customers {
		extras := extrasByID[customer.ID]
		fieldsByID[customer.ID] = engine.ComputeFields(customer, &extras, now)
	}

	for _, segment := range segments {
		criteria := engine.ParseCriteria(segment.Criteria)

		// Matching happens fully in memory before any mutation of this
		// segment's membership.
		var matched []uuid.UUID
		for _, customer := range customers {
			if engine.Evaluate(customer, fieldsByID[customer.ID], criteria) {
				matched = append(matched, customer.ID)
			}
		}

		if ok := p.writeSegment(ctx, segment.ID, matched); ok {
			summary.SegmentsUpdated++
			summary.TotalMemberships += len(matched)
		}
	}

	p.logger.Info(ctx, "segment refresh completed",
		observability.Field{Key: "segments_updated", Value: summary.SegmentsUpdated},
		observability.Field{Key: "total_memberships", Value: summary.TotalMemberships},
		observability.Field{Key: "customers_evaluated", Value: summary.CustomersEvaluated},
	)
	return summary, nil
}

// writeSegment replaces one segment's membership and cached count. Failures
// are logged, not propagated: each segment's write is independent.
func (p *SegmentProcessor) writeSegment(ctx context.Context, segmentID uuid.UUID, matched []uuid.UUID) bool {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "segment_id", Value: segmentID.String()},
	)

	if err := p.store.ReplaceSegmentMembership(ctx, segmentID, matched); err != nil {
		p.logger.Error(ctx, "failed to replace segment membership", err)
		return false
	}
	if err := p.store.UpdateSegmentCustomerCount(ctx, segmentID, len(matched)); err != nil {
		p.logger.Error(ctx, "failed to update segment count", err)
		return false
	}
	return true
}

// loadExtras bulk-fetches auxiliary signals for exactly the loaded customer
// set: one query per source table, joined in memory by customer id.
func (p *SegmentProcessor) loadExtras(ctx context.Context, profileID uuid.UUID, customers []store.Customer) (map[uuid.UUID]engine.Extras, error) {
	customerIDs := make([]uuid.UUID, len(customers))
	for i, customer := range customers {
		customerIDs[i] = customer.ID
	}

	referralOwners, err := p.store.GetReferralOwnerIDs(ctx, profileID)
	if err != nil {
		return nil, err
	}
	stampOwners, err := p.store.GetStampOwnerIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}

	extras := make(map[uuid.UUID]engine.Extras, len(customers))
	for _, id := range referralOwners {
		entry := extras[id]
		entry.HasReferrals = true
		extras[id] = entry
	}
	for _, id := range stampOwners {
		entry := extras[id]
		entry.HasStamps = true
		extras[id] = entry
	}
	return extras, nil
}

// ListSegments retrieves all segments for a profile
func (p *SegmentProcessor) ListSegments(ctx context.Context, profileID uuid.UUID) ([]store.CustomerSegment, error) {
	segments, err := p.store.GetSegmentsByProfile(ctx, profileID)
	if err != nil {
		p.logger.Error(ctx, "failed to list segments", err)
		return nil, err
	}
	if segments == nil {
		segments = []store.CustomerSegment{}
	}
	return segments, nil
}

// MatchCustomer evaluates every active segment against one customer and
// returns the matching segments, for the dashboard badge next to a customer.
// Reuses the same pure evaluator as the bulk refresh, so preview and refresh
// can never disagree for a fixed snapshot.
func (p *SegmentProcessor) MatchCustomer(ctx context.Context, profileID, customerID uuid.UUID) ([]store.CustomerSegment, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
		observability.Field{Key: "customer_id", Value: customerID.String()},
	)

	customer, err := p.store.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		p.logger.Error(ctx, "failed to get customer", err)
		return nil, err
	}
	if customer.ProfileID != profileID {
		return nil, ErrUnauthorized
	}

	segments, err := p.store.GetActiveSegmentsByProfile(ctx, profileID)
	if err != nil {
		p.logger.Error(ctx, "failed to load active segments", err)
		return nil, err
	}

	extrasByID, err := p.loadExtras(ctx, profileID, []store.Customer{customer})
	if err != nil {
		p.logger.Error(ctx, "failed to load customer extras", err)
		return nil, err
	}

	extras := extrasByID[customer.ID]
	fields := engine.ComputeFields(customer, &extras, p.now())

	matched := []store.CustomerSegment{}
	for _, segment := range segments {
		if engine.Evaluate(customer, fields, engine.ParseCriteria(segment.Criteria)) {
			matched = append(matched, segment)
		}
	}
	return matched, nil
}

// CreateSegmentRequest represents a request to create a custom segment
type CreateSegmentRequest struct {
	Name     string
	Color    string
	Criteria store.JSONB
}

// CreateSegment creates a custom segment for a profile
func (p *SegmentProcessor) CreateSegment(ctx context.Context, profileID uuid.UUID, req CreateSegmentRequest) (store.CustomerSegment, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
	)

	segment, err := p.store.CreateSegment(ctx, store.CreateSegmentParams{
		ProfileID: profileID,
		Name:      req.Name,
		Color:     req.Color,
		Type:      store.SegmentTypeCustom,
		Criteria:  req.Criteria,
		IsActive:  true,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create segment", err)
		return store.CustomerSegment{}, err
	}

	p.logger.Info(ctx, "segment created successfully")
	return segment, nil
}

// UpdateSegmentRequest represents a request to update a segment
type UpdateSegmentRequest struct {
	Name     *string
	Color    *string
	Criteria *store.JSONB
	IsActive *bool
}

// UpdateSegment updates a segment owned by the profile
func (p *SegmentProcessor) UpdateSegment(ctx context.Context, profileID, segmentID uuid.UUID, req UpdateSegmentRequest) (store.CustomerSegment, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
		observability.Field{Key: "segment_id", Value: segmentID.String()},
	)

	existing, err := p.store.GetSegmentByID(ctx, segmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CustomerSegment{}, ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to get segment", err)
		return store.CustomerSegment{}, err
	}
	if existing.ProfileID != profileID {
		return store.CustomerSegment{}, ErrUnauthorized
	}

	// System segments keep their fixed criteria; only activation can change.
	if existing.Type == string(store.SegmentTypeSystem) {
		req = UpdateSegmentRequest{IsActive: req.IsActive}
	}

	segment, err := p.store.UpdateSegment(ctx, segmentID, store.UpdateSegmentParams{
		Name:     req.Name,
		Color:    req.Color,
		Criteria: req.Criteria,
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CustomerSegment{}, ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to update segment", err)
		return store.CustomerSegment{}, err
	}

	p.logger.Info(ctx, "segment updated successfully")
	return segment, nil
}

// DeleteSegment deletes a custom segment owned by the profile
func (p *SegmentProcessor) DeleteSegment(ctx context.Context, profileID, segmentID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
		observability.Field{Key: "segment_id", Value: segmentID.String()},
	)

	existing, err := p.store.GetSegmentByID(ctx, segmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to get segment", err)
		return err
	}
	if existing.ProfileID != profileID {
		return ErrUnauthorized
	}
	if existing.Type == string(store.SegmentTypeSystem) {
		return ErrSystemSegment
	}

	if err := p.store.DeleteSegment(ctx, segmentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to delete segment", err)
		return err
	}

	p.logger.Info(ctx, "segment deleted successfully")
	return nil
}
