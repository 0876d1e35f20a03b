package engine

import (
	"strings"

	"biolink-server/internal/store"
)

// Evaluate decides whether a customer belongs to a segment. It is a pure
// interpreter over the criteria tree: total, side-effect free, and
// deterministic for a fixed (customer, fields, criteria).
//
// A criteria with no conditions matches nobody under either combinator, and a
// condition of unknown kind evaluates to non-matching rather than erroring,
// so a criteria persisted with a since-removed condition type can neither
// crash evaluation nor match everyone.
func Evaluate(customer store.Customer, fields ComputedFields, criteria Criteria) bool {
	if len(criteria.Conditions) == 0 {
		return false
	}

	for _, condition := range criteria.Conditions {
		matched := evaluateCondition(customer, fields, condition)

		if criteria.Combinator == CombinatorOr {
			if matched {
				return true
			}
		} else if !matched {
			return false
		}
	}

	return criteria.Combinator != CombinatorOr
}

func evaluateCondition(customer store.Customer, fields ComputedFields, condition Condition) bool {
	if condition.Invalid {
		return false
	}

	switch condition.Kind {
	case CondLastSeenWithinDays:
		return fields.DaysSinceLastSeen <= condition.Number
	case CondLastSeenOverDays:
		return fields.DaysSinceLastSeen > condition.Number
	case CondFirstSeenWithinDays:
		return fields.DaysSinceFirstSeen <= condition.Number
	case CondMinBookings:
		return customer.TotalBookings >= condition.Number
	case CondMinMessages:
		return customer.TotalMessages >= condition.Number
	case CondIsRepeat:
		return fields.IsRepeat == condition.Flag
	case CondHasReferrals:
		return fields.HasReferrals == condition.Flag
	case CondHasStamps:
		return fields.HasStamps == condition.Flag
	case CondTagIncludes:
		return containsAny(customer.Tags, condition.Values)
	case CondSourceIncludes:
		return containsAny(strings.Split(customer.Source, ","), condition.Values)
	default:
		// Fail closed on condition kinds this version does not know.
		return false
	}
}

func containsAny(haystack []string, needles []string) bool {
	for _, needle := range needles {
		for _, item := range haystack {
			if strings.TrimSpace(item) == needle {
				return true
			}
		}
	}
	return false
}
