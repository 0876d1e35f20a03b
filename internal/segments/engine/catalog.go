package engine

import (
	"github.com/google/uuid"

	"biolink-server/internal/store"
)

// SystemSegmentCount is the size of the built-in catalog.
const SystemSegmentCount = 8

// SystemSegments materializes the fixed catalog of built-in segment
// definitions for one profile. The set itself is a constant; profileID only
// stamps the foreign key. Each call returns freshly allocated definitions so
// callers may mutate their copy, which serves both persisted initialization
// and dashboard preview before any segments exist.
func SystemSegments(profileID uuid.UUID) []store.CreateSegmentParams {
	definitions := []struct {
		name     string
		color    string
		criteria Criteria
	}{
		{
			name:  "New customers",
			color: "#38bdf8",
			criteria: Criteria{Combinator: CombinatorAnd, Conditions: []Condition{
				{Kind: CondFirstSeenWithinDays, Number: 30},
			}},
		},
		{
			name:  "Active",
			color: "#4ade80",
			criteria: Criteria{Combinator: CombinatorAnd, Conditions: []Condition{
				{Kind: CondLastSeenWithinDays, Number: 30},
			}},
		},
		{
			name:  "Repeat customers",
			color: "#a78bfa",
			criteria: Criteria{Combinator: CombinatorAnd, Conditions: []Condition{
				{Kind: CondIsRepeat, Flag: true},
			}},
		},
		{
			name:  "VIP",
			color: "#facc15",
			criteria: Criteria{Combinator: CombinatorAnd, Conditions: []Condition{
				{Kind: CondMinBookings, Number: 5},
			}},
		},
		{
			name:  "At risk",
			color: "#fb923c",
			criteria: Criteria{Combinator: CombinatorAnd, Conditions: []Condition{
				{Kind: CondLastSeenOverDays, Number: 60},
				{Kind: CondMinBookings, Number: 1},
			}},
		},
		{
			name:  "Dormant",
			color: "#94a3b8",
			criteria: Criteria{Combinator: CombinatorAnd, Conditions: []Condition{
				{Kind: CondLastSeenOverDays, Number: 180},
			}},
		},
		{
			name:  "Advocates",
			color: "#f472b6",
			criteria: Criteria{Combinator: CombinatorAnd, Conditions: []Condition{
				{Kind: CondHasReferrals, Flag: true},
			}},
		},
		{
			name:  "Stamp collectors",
			color: "#2dd4bf",
			criteria: Criteria{Combinator: CombinatorAnd, Conditions: []Condition{
				{Kind: CondHasStamps, Flag: true},
			}},
		},
	}

	segments := make([]store.CreateSegmentParams, 0, len(definitions))
	for _, def := range definitions {
		segments = append(segments, store.CreateSegmentParams{
			ProfileID: profileID,
			Name:      def.name,
			Color:     def.color,
			Type:      store.SegmentTypeSystem,
			Criteria:  def.criteria.ToJSONB(),
			IsActive:  true,
		})
	}
	return segments
}
