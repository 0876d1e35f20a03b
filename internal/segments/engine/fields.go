package engine

import (
	"time"

	"biolink-server/internal/store"
)

// Extras carries per-customer boolean signals that live outside the customer
// row. Callers load them in bulk (one query per table per refresh run) and
// join them in memory by customer id.
type Extras struct {
	HasReferrals bool
	HasStamps    bool
}

// ComputedFields are derived behavioral attributes, recomputed on every
// evaluation and never persisted.
type ComputedFields struct {
	DaysSinceLastSeen  int
	DaysSinceFirstSeen int
	IsRepeat           bool
	HasReferrals       bool
	HasStamps          bool
}

// ComputeFields derives behavioral attributes from a customer record plus
// auxiliary signals. Pure: no I/O, no side effects. A nil extras is treated
// as all-false, and zero-activity customers produce well-defined fields.
// The evaluation time is passed in so one refresh run uses a single clock
// reading for every date-relative comparison.
func ComputeFields(customer store.Customer, extras *Extras, now time.Time) ComputedFields {
	fields := ComputedFields{
		DaysSinceLastSeen:  daysSince(customer.LastSeenAt, now),
		DaysSinceFirstSeen: daysSince(customer.FirstSeenAt, now),
		IsRepeat:           customer.TotalBookings+customer.TotalMessages > 1,
	}
	if extras != nil {
		fields.HasReferrals = extras.HasReferrals
		fields.HasStamps = extras.HasStamps
	}
	return fields
}

// daysSince returns whole days elapsed from t to now. A zero t means the
// customer has never been seen; report the maximum so "within N days"
// conditions never match and "over N days" conditions always do.
func daysSince(t, now time.Time) int {
	if t.IsZero() {
		return int(^uint(0) >> 1)
	}
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
