package engine

import (
	"biolink-server/internal/store"
)

// Combinator joins the top-level condition list of a criteria tree.
type Combinator string

const (
	CombinatorAnd Combinator = "and"
	CombinatorOr  Combinator = "or"
)

// ConditionKind names one condition check. Kinds have fixed semantics,
// independent of the profile that persisted them.
type ConditionKind string

const (
	CondLastSeenWithinDays  ConditionKind = "last_seen_within_days"
	CondLastSeenOverDays    ConditionKind = "last_seen_over_days"
	CondFirstSeenWithinDays ConditionKind = "first_seen_within_days"
	CondMinBookings         ConditionKind = "min_bookings"
	CondMinMessages         ConditionKind = "min_messages"
	CondIsRepeat            ConditionKind = "is_repeat"
	CondHasReferrals        ConditionKind = "has_referrals"
	CondHasStamps           ConditionKind = "has_stamps"
	CondTagIncludes         ConditionKind = "tag_includes"
	CondSourceIncludes      ConditionKind = "source_includes"
)

// Condition is one named check in a criteria tree: a kind plus whichever
// parameter slot that kind reads. Data, not code, so criteria can be
// persisted and edited by profile owners. Invalid marks a condition whose
// persisted parameter did not decode into the slot its kind requires; such
// a condition never matches.
type Condition struct {
	Kind    ConditionKind
	Number  int
	Flag    bool
	Values  []string
	Invalid bool
}

// Criteria is the declarative rule tree a segment is defined by.
type Criteria struct {
	Combinator Combinator
	Conditions []Condition
}

// ParseCriteria decodes the flat JSONB document a segment persists into a
// Criteria. Unknown keys are kept as conditions with their original kind so
// evaluation can fail closed on them instead of silently dropping them.
// Parsing never fails: a malformed or null parameter marks its condition
// invalid, which evaluates to non-matching.
func ParseCriteria(doc store.JSONB) Criteria {
	criteria := Criteria{Combinator: CombinatorAnd}

	if op, ok := doc["operator"].(string); ok && Combinator(op) == CombinatorOr {
		criteria.Combinator = CombinatorOr
	}

	for key, raw := range doc {
		if key == "operator" {
			continue
		}
		criteria.Conditions = append(criteria.Conditions, parseCondition(ConditionKind(key), raw))
	}

	return criteria
}

func parseCondition(kind ConditionKind, raw interface{}) Condition {
	condition := Condition{Kind: kind}

	switch kind {
	case CondLastSeenWithinDays, CondLastSeenOverDays, CondFirstSeenWithinDays,
		CondMinBookings, CondMinMessages:
		switch value := raw.(type) {
		case float64:
			condition.Number = int(value)
		case int:
			condition.Number = value
		default:
			condition.Invalid = true
		}
	case CondIsRepeat, CondHasReferrals, CondHasStamps:
		if value, ok := raw.(bool); ok {
			condition.Flag = value
		} else {
			condition.Invalid = true
		}
	case CondTagIncludes, CondSourceIncludes:
		switch value := raw.(type) {
		case string:
			condition.Values = []string{value}
		case []string:
			condition.Values = append(condition.Values, value...)
		case []interface{}:
			for _, item := range value {
				str, ok := item.(string)
				if !ok {
					condition.Invalid = true
					break
				}
				condition.Values = append(condition.Values, str)
			}
		default:
			condition.Invalid = true
		}
	}
	// An unknown kind keeps a zero-valued condition; evaluation fails
	// closed on the kind itself.

	return condition
}

// ToJSONB encodes a Criteria back into the flat document form for persistence.
func (c Criteria) ToJSONB() store.JSONB {
	doc := make(store.JSONB)
	if c.Combinator == CombinatorOr {
		doc["operator"] = string(CombinatorOr)
	}

	for _, condition := range c.Conditions {
		if condition.Invalid {
			continue
		}
		switch condition.Kind {
		case CondLastSeenWithinDays, CondLastSeenOverDays, CondFirstSeenWithinDays,
			CondMinBookings, CondMinMessages:
			doc[string(condition.Kind)] = condition.Number
		case CondIsRepeat, CondHasReferrals, CondHasStamps:
			doc[string(condition.Kind)] = condition.Flag
		case CondTagIncludes, CondSourceIncludes:
			values := make([]interface{}, len(condition.Values))
			for i, v := range condition.Values {
				values[i] = v
			}
			doc[string(condition.Kind)] = values
		}
	}

	return doc
}
