package store

// Segment ENUMs

// SegmentType represents how a segment came to exist
type SegmentType string

const (
	SegmentTypeSystem SegmentType = "system"
	SegmentTypeCustom SegmentType = "custom"
)

// Automation ENUMs

// TriggerType represents a lifecycle event that can fire automation rules
type TriggerType string

const (
	TriggerAfterBooking   TriggerType = "after_booking"
	TriggerAfterMessage   TriggerType = "after_message"
	TriggerAfterSubscribe TriggerType = "after_subscribe"
	TriggerAfterSignup    TriggerType = "after_signup"
	TriggerAfterStamp     TriggerType = "after_stamp"
)

// ValidTriggerTypes lists every trigger type accepted on rules and events
var ValidTriggerTypes = map[TriggerType]bool{
	TriggerAfterBooking:   true,
	TriggerAfterMessage:   true,
	TriggerAfterSubscribe: true,
	TriggerAfterSignup:    true,
	TriggerAfterStamp:     true,
}

// AutomationLogStatus represents the lifecycle of one scheduled action.
// The trigger engine only ever creates pending rows; the executor owns the
// pending -> sent|failed transition.
type AutomationLogStatus string

const (
	AutomationLogStatusPending AutomationLogStatus = "pending"
	AutomationLogStatusSent    AutomationLogStatus = "sent"
	AutomationLogStatusFailed  AutomationLogStatus = "failed"
)

// Customer ENUMs

// CustomerSource represents a provenance entry on a customer record
type CustomerSource string

const (
	CustomerSourceBooking    CustomerSource = "booking"
	CustomerSourceContact    CustomerSource = "contact"
	CustomerSourceSubscriber CustomerSource = "subscriber"
)

// Message ENUMs

// MessageChannel represents where an inbound customer message arrived from
type MessageChannel string

const (
	MessageChannelForm  MessageChannel = "form"
	MessageChannelEmail MessageChannel = "email"
	MessageChannelLine  MessageChannel = "line"
)
