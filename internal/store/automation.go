package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateAutomationRuleParams represents parameters for creating an automation rule
type CreateAutomationRuleParams struct {
	ProfileID      uuid.UUID
	Name           string
	TriggerType    TriggerType
	DelayHours     int
	MessageSubject string
	MessageBody    string
	IsActive       bool
}

const sqlCreateAutomationRule = `
INSERT INTO automation_rules (profile_id, name, trigger_type, delay_hours, message_subject, message_body, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, profile_id, name, trigger_type, delay_hours, message_subject, message_body, is_active, created_at, updated_at
`

// CreateAutomationRule creates a new automation rule
func (s *Store) CreateAutomationRule(ctx context.Context, params CreateAutomationRuleParams) (AutomationRule, error) {
	var rule AutomationRule
	err := s.db.GetContext(ctx, &rule, sqlCreateAutomationRule,
		params.ProfileID,
		params.Name,
		params.TriggerType,
		params.DelayHours,
		params.MessageSubject,
		params.MessageBody,
		params.IsActive)
	if err != nil {
		return AutomationRule{}, fmt.Errorf("failed to create automation rule: %w", err)
	}
	return rule, nil
}

const sqlGetAutomationRuleByID = `
SELECT id, profile_id, name, trigger_type, delay_hours, message_subject, message_body, is_active, created_at, updated_at
FROM automation_rules
WHERE id = $1
`

// GetAutomationRuleByID retrieves an automation rule by ID
func (s *Store) GetAutomationRuleByID(ctx context.Context, ruleID uuid.UUID) (AutomationRule, error) {
	var rule AutomationRule
	err := s.db.GetContext(ctx, &rule, sqlGetAutomationRuleByID, ruleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationRule{}, ErrNotFound
		}
		return AutomationRule{}, fmt.Errorf("failed to get automation rule: %w", err)
	}
	return rule, nil
}

const sqlGetAutomationRulesByProfile = `
SELECT id, profile_id, name, trigger_type, delay_hours, message_subject, message_body, is_active, created_at, updated_at
FROM automation_rules
WHERE profile_id = $1
ORDER BY created_at ASC
`

// GetAutomationRulesByProfile retrieves all automation rules for a profile
func (s *Store) GetAutomationRulesByProfile(ctx context.Context, profileID uuid.UUID) ([]AutomationRule, error) {
	var rules []AutomationRule
	err := s.db.SelectContext(ctx, &rules, sqlGetAutomationRulesByProfile, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get automation rules: %w", err)
	}
	return rules, nil
}

const sqlGetActiveAutomationRules = `
SELECT id, profile_id, name, trigger_type, delay_hours, message_subject, message_body, is_active, created_at, updated_at
FROM automation_rules
WHERE profile_id = $1 AND trigger_type = $2 AND is_active = TRUE
ORDER BY created_at ASC
`

// GetActiveAutomationRules retrieves active rules for a profile and trigger type
func (s *Store) GetActiveAutomationRules(ctx context.Context, profileID uuid.UUID, triggerType TriggerType) ([]AutomationRule, error) {
	var rules []AutomationRule
	err := s.db.SelectContext(ctx, &rules, sqlGetActiveAutomationRules, profileID, triggerType)
	if err != nil {
		return nil, fmt.Errorf("failed to get active automation rules: %w", err)
	}
	return rules, nil
}

// UpdateAutomationRuleParams represents parameters for updating an automation rule
type UpdateAutomationRuleParams struct {
	Name           *string
	DelayHours     *int
	MessageSubject *string
	MessageBody    *string
	IsActive       *bool
}

const sqlUpdateAutomationRule = `
UPDATE automation_rules
SET name = COALESCE($2, name),
    delay_hours = COALESCE($3, delay_hours),
    message_subject = COALESCE($4, message_subject),
    message_body = COALESCE($5, message_body),
    is_active = COALESCE($6, is_active),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, profile_id, name, trigger_type, delay_hours, message_subject, message_body, is_active, created_at, updated_at
`

// UpdateAutomationRule updates an automation rule
func (s *Store) UpdateAutomationRule(ctx context.Context, ruleID uuid.UUID, params UpdateAutomationRuleParams) (AutomationRule, error) {
	var rule AutomationRule
	err := s.db.GetContext(ctx, &rule, sqlUpdateAutomationRule,
		ruleID,
		params.Name,
		params.DelayHours,
		params.MessageSubject,
		params.MessageBody,
		params.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationRule{}, ErrNotFound
		}
		return AutomationRule{}, fmt.Errorf("failed to update automation rule: %w", err)
	}
	return rule, nil
}

const sqlDeleteAutomationRule = `
DELETE FROM automation_rules WHERE id = $1
`

// DeleteAutomationRule deletes an automation rule
func (s *Store) DeleteAutomationRule(ctx context.Context, ruleID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteAutomationRule, ruleID)
	if err != nil {
		return fmt.Errorf("failed to delete automation rule: %w", err)
	}
	return requireRowsAffected(res)
}

// CreateAutomationLogParams represents parameters for scheduling one action
type CreateAutomationLogParams struct {
	RuleID      uuid.UUID
	CustomerID  uuid.UUID
	ProfileID   uuid.UUID
	ScheduledAt time.Time
}

const sqlCreateAutomationLog = `
INSERT INTO automation_logs (rule_id, customer_id, profile_id, status, scheduled_at)
VALUES ($1, $2, $3, 'pending', $4)
RETURNING id, rule_id, customer_id, profile_id, status, scheduled_at, sent_at, error_message, created_at, updated_at
`

// CreateAutomationLog inserts a new pending automation log
func (s *Store) CreateAutomationLog(ctx context.Context, params CreateAutomationLogParams) (AutomationLog, error) {
	var logEntry AutomationLog
	err := s.db.GetContext(ctx, &logEntry, sqlCreateAutomationLog,
		params.RuleID,
		params.CustomerID,
		params.ProfileID,
		params.ScheduledAt)
	if err != nil {
		return AutomationLog{}, fmt.Errorf("failed to create automation log: %w", err)
	}
	return logEntry, nil
}

const sqlGetPendingAutomationLog = `
SELECT id, rule_id, customer_id, profile_id, status, scheduled_at, sent_at, error_message, created_at, updated_at
FROM automation_logs
WHERE rule_id = $1 AND customer_id = $2 AND status = 'pending'
LIMIT 1
`

// GetPendingAutomationLog finds a pending log for a (rule, customer) pair.
// Returns ErrNotFound when no pending work exists, which is the dedup signal
// the trigger engine relies on.
func (s *Store) GetPendingAutomationLog(ctx context.Context, ruleID, customerID uuid.UUID) (AutomationLog, error) {
	var logEntry AutomationLog
	err := s.db.GetContext(ctx, &logEntry, sqlGetPendingAutomationLog, ruleID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationLog{}, ErrNotFound
		}
		return AutomationLog{}, fmt.Errorf("failed to get pending automation log: %w", err)
	}
	return logEntry, nil
}

const sqlGetDueAutomationLogs = `
SELECT id, rule_id, customer_id, profile_id, status, scheduled_at, sent_at, error_message, created_at, updated_at
FROM automation_logs
WHERE status = 'pending' AND scheduled_at <= $1
ORDER BY scheduled_at ASC
LIMIT $2
`

// GetDueAutomationLogs retrieves pending logs whose scheduled time has passed
func (s *Store) GetDueAutomationLogs(ctx context.Context, now time.Time, limit int) ([]AutomationLog, error) {
	var logs []AutomationLog
	err := s.db.SelectContext(ctx, &logs, sqlGetDueAutomationLogs, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get due automation logs: %w", err)
	}
	return logs, nil
}

const sqlMarkAutomationLogSent = `
UPDATE automation_logs
SET status = 'sent',
    sent_at = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
`

// MarkAutomationLogSent transitions a pending log to sent
func (s *Store) MarkAutomationLogSent(ctx context.Context, logID uuid.UUID, sentAt time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlMarkAutomationLogSent, logID, sentAt)
	if err != nil {
		return fmt.Errorf("failed to mark automation log sent: %w", err)
	}
	return requireRowsAffected(res)
}

const sqlMarkAutomationLogFailed = `
UPDATE automation_logs
SET status = 'failed',
    error_message = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
`

// MarkAutomationLogFailed transitions a pending log to failed
func (s *Store) MarkAutomationLogFailed(ctx context.Context, logID uuid.UUID, errorMessage string) error {
	res, err := s.db.ExecContext(ctx, sqlMarkAutomationLogFailed, logID, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to mark automation log failed: %w", err)
	}
	return requireRowsAffected(res)
}
