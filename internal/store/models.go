package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	err := json.Unmarshal(bytes, &result)
	if err != nil {
		return err
	}
	*j = result
	return nil
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {"item1","item2"}. Every element is quoted
	// so values containing commas, braces, or quotes round-trip intact.
	escaper := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(escaper.Replace(s))
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String(), nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	if len(str) < 2 || str[0] != '{' || str[len(str)-1] != '}' {
		return fmt.Errorf("malformed array literal: %q", str)
	}
	inner := str[1 : len(str)-1]
	if inner == "" {
		*a = []string{}
		return nil
	}

	// Elements may be bare or double-quoted with backslash escapes.
	out := []string{}
	var elem strings.Builder
	inQuotes := false
	for i := 0; i < len(inner); i++ {
		ch := inner[i]
		switch {
		case inQuotes:
			switch {
			case ch == '\\' && i+1 < len(inner):
				i++
				elem.WriteByte(inner[i])
			case ch == '"':
				inQuotes = false
			default:
				elem.WriteByte(ch)
			}
		case ch == '"':
			inQuotes = true
		case ch == ',':
			out = append(out, elem.String())
			elem.Reset()
		default:
			elem.WriteByte(ch)
		}
	}
	if inQuotes {
		return fmt.Errorf("malformed array literal: %q", str)
	}
	out = append(out, elem.String())
	*a = out
	return nil
}

// User represents a dashboard account
type User struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Email            string    `db:"email" json:"email"`
	Name             string    `db:"name" json:"name"`
	HashedPassword   string    `db:"hashed_password" json:"-"`
	StripeCustomerID *string   `db:"stripe_customer_id" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Profile represents a tenant: one public micro-site and everything under it
type Profile struct {
	ID     uuid.UUID `db:"id" json:"id"`
	UserID uuid.UUID `db:"user_id" json:"user_id"`

	Slug        string  `db:"slug" json:"slug"`
	DisplayName string  `db:"display_name" json:"display_name"`
	Bio         *string `db:"bio" json:"bio,omitempty"`
	AvatarURL   *string `db:"avatar_url" json:"avatar_url,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Link represents one entry on the public profile page
type Link struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ProfileID uuid.UUID `db:"profile_id" json:"profile_id"`

	Title    string `db:"title" json:"title"`
	URL      string `db:"url" json:"url"`
	Position int    `db:"position" json:"position"`

	ClickCount int  `db:"click_count" json:"click_count"`
	IsActive   bool `db:"is_active" json:"is_active"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Customer represents a profile-scoped contact record.
// Unique per (profile_id, lower(email)); counters are bumped by intake flows
// and only ever read by the segmentation core.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ProfileID uuid.UUID `db:"profile_id" json:"profile_id"`

	Name  *string `db:"name" json:"name,omitempty"`
	Email string  `db:"email" json:"email"`

	TotalBookings int `db:"total_bookings" json:"total_bookings"`
	TotalMessages int `db:"total_messages" json:"total_messages"`

	Tags StringArray `db:"tags" json:"tags"`

	// Comma-joined provenance list: booking, contact, subscriber
	Source string `db:"source" json:"source"`

	FirstSeenAt time.Time `db:"first_seen_at" json:"first_seen_at"`
	LastSeenAt  time.Time `db:"last_seen_at" json:"last_seen_at"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CustomerSegment represents a named, criteria-defined subset of a profile's customers
type CustomerSegment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ProfileID uuid.UUID `db:"profile_id" json:"profile_id"`

	Name  string `db:"name" json:"name"`
	Color string `db:"color" json:"color"`
	Type  string `db:"type" json:"type"`

	Criteria JSONB `db:"criteria" json:"criteria"`

	IsActive      bool `db:"is_active" json:"is_active"`
	CustomerCount int  `db:"customer_count" json:"customer_count"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SegmentMembership is the (segment, customer) join row, fully owned and
// rebuilt by the refresh orchestrator.
type SegmentMembership struct {
	SegmentID  uuid.UUID `db:"segment_id" json:"segment_id"`
	CustomerID uuid.UUID `db:"customer_id" json:"customer_id"`
}

// AutomationRule maps a lifecycle trigger type to a delayed message
type AutomationRule struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ProfileID uuid.UUID `db:"profile_id" json:"profile_id"`

	Name        string `db:"name" json:"name"`
	TriggerType string `db:"trigger_type" json:"trigger_type"`
	DelayHours  int    `db:"delay_hours" json:"delay_hours"`

	MessageSubject string `db:"message_subject" json:"message_subject"`
	MessageBody    string `db:"message_body" json:"message_body"`

	IsActive bool `db:"is_active" json:"is_active"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AutomationLog is one scheduled/executed instance of a rule firing for one customer
type AutomationLog struct {
	ID         uuid.UUID `db:"id" json:"id"`
	RuleID     uuid.UUID `db:"rule_id" json:"rule_id"`
	CustomerID uuid.UUID `db:"customer_id" json:"customer_id"`
	ProfileID  uuid.UUID `db:"profile_id" json:"profile_id"`

	Status      string    `db:"status" json:"status"`
	ScheduledAt time.Time `db:"scheduled_at" json:"scheduled_at"`

	SentAt       *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	ErrorMessage *string    `db:"error_message" json:"error_message,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Booking represents one booking made through the public page
type Booking struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ProfileID  uuid.UUID `db:"profile_id" json:"profile_id"`
	CustomerID uuid.UUID `db:"customer_id" json:"customer_id"`

	ServiceName string    `db:"service_name" json:"service_name"`
	StartsAt    time.Time `db:"starts_at" json:"starts_at"`
	Note        *string   `db:"note" json:"note,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CustomerMessage represents one inbound message from a customer
type CustomerMessage struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ProfileID  uuid.UUID `db:"profile_id" json:"profile_id"`
	CustomerID uuid.UUID `db:"customer_id" json:"customer_id"`

	Body    string `db:"body" json:"body"`
	Channel string `db:"channel" json:"channel"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReferralCode represents a customer-owned share code
type ReferralCode struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ProfileID  uuid.UUID `db:"profile_id" json:"profile_id"`
	CustomerID uuid.UUID `db:"customer_id" json:"customer_id"`

	Code          string `db:"code" json:"code"`
	ReferralCount int    `db:"referral_count" json:"referral_count"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// StampCard represents a customer's loyalty stamp card
type StampCard struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ProfileID  uuid.UUID `db:"profile_id" json:"profile_id"`
	CustomerID uuid.UUID `db:"customer_id" json:"customer_id"`

	CurrentStamps  int `db:"current_stamps" json:"current_stamps"`
	RequiredStamps int `db:"required_stamps" json:"required_stamps"`
	RedeemedCount  int `db:"redeemed_count" json:"redeemed_count"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Subscription represents a Stripe subscription for a dashboard account
type Subscription struct {
	ID     uuid.UUID `db:"id" json:"id"`
	UserID uuid.UUID `db:"user_id" json:"user_id"`

	StripeSubscriptionID string    `db:"stripe_subscription_id" json:"stripe_subscription_id"`
	PriceID              string    `db:"price_id" json:"price_id"`
	Status               string    `db:"status" json:"status"`
	CurrentPeriodEnd     time.Time `db:"current_period_end" json:"current_period_end"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
