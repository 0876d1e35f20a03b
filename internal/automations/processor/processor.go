package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"biolink-server/internal/observability"
	"biolink-server/internal/store"
)

// AutomationStore defines the database operations required by AutomationProcessor
type AutomationStore interface {
	CreateAutomationRule(ctx context.Context, params store.CreateAutomationRuleParams) (store.AutomationRule, error)
	GetAutomationRuleByID(ctx context.Context, ruleID uuid.UUID) (store.AutomationRule, error)
	GetAutomationRulesByProfile(ctx context.Context, profileID uuid.UUID) ([]store.AutomationRule, error)
	GetActiveAutomationRules(ctx context.Context, profileID uuid.UUID, triggerType store.TriggerType) ([]store.AutomationRule, error)
	UpdateAutomationRule(ctx context.Context, ruleID uuid.UUID, params store.UpdateAutomationRuleParams) (store.AutomationRule, error)
	DeleteAutomationRule(ctx context.Context, ruleID uuid.UUID) error
	CreateAutomationLog(ctx context.Context, params store.CreateAutomationLogParams) (store.AutomationLog, error)
	GetPendingAutomationLog(ctx context.Context, ruleID, customerID uuid.UUID) (store.AutomationLog, error)
}

var (
	ErrRuleNotFound       = errors.New("automation rule not found")
	ErrUnauthorized       = errors.New("unauthorized access to automation rule")
	ErrInvalidTriggerType = errors.New("invalid trigger type")
)

type AutomationProcessor struct {
	store  AutomationStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store AutomationStore, logger *observability.Logger) AutomationProcessor {
	return AutomationProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Trigger schedules pending messages for every active rule bound to the
// event's trigger type. It never returns an error: a lifecycle event must not
// fail because scheduling its follow-up did, so failures are logged and
// swallowed here.
func (p *AutomationProcessor) Trigger(ctx context.Context, triggerType store.TriggerType, profileID, customerID uuid.UUID) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "trigger_type", Value: string(triggerType)},
		observability.Field{Key: "profile_id", Value: profileID.String()},
		observability.Field{Key: "customer_id", Value: customerID.String()},
	)

	if err := p.trigger(ctx, triggerType, profileID, customerID); err != nil {
		p.logger.Error(ctx, "automation trigger failed", err)
	}
}

func (p *AutomationProcessor) trigger(ctx context.Context, triggerType store.TriggerType, profileID, customerID uuid.UUID) error {
	if !store.ValidTriggerTypes[triggerType] {
		return ErrInvalidTriggerType
	}

	rules, err := p.store.GetActiveAutomationRules(ctx, profileID, triggerType)
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		return nil
	}

	now := p.now()
	for _, rule := range rules {
		ruleCtx := observability.WithFields(ctx,
			observability.Field{Key: "rule_id", Value: rule.ID.String()},
		)

		// One pending message per rule and customer at a time: a second
		// trigger before the first message goes out is dropped.
		_, err := p.store.GetPendingAutomationLog(ruleCtx, rule.ID, customerID)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ruleCtx, "failed to check pending automation log", err)
			continue
		}

		scheduledAt := now.Add(time.Duration(rule.DelayHours) * time.Hour)
		if _, err := p.store.CreateAutomationLog(ruleCtx, store.CreateAutomationLogParams{
			RuleID:      rule.ID,
			CustomerID:  customerID,
			ProfileID:   profileID,
			ScheduledAt: scheduledAt,
		}); err != nil {
			p.logger.Error(ruleCtx, "failed to schedule automation message", err)
			continue
		}

		p.logger.Info(ruleCtx, "automation message scheduled",
			observability.Field{Key: "scheduled_at", Value: scheduledAt.Format(time.RFC3339)},
		)
	}
	return nil
}

// CreateRuleRequest represents a request to create an automation rule
type CreateRuleRequest struct {
	Name           string
	TriggerType    store.TriggerType
	DelayHours     int
	MessageSubject string
	MessageBody    string
}

// CreateRule creates an automation rule for a profile
func (p *AutomationProcessor) CreateRule(ctx context.Context, profileID uuid.UUID, req CreateRuleRequest) (store.AutomationRule, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
	)

	if !store.ValidTriggerTypes[req.TriggerType] {
		return store.AutomationRule{}, ErrInvalidTriggerType
	}
	if req.DelayHours < 0 {
		req.DelayHours = 0
	}

	rule, err := p.store.CreateAutomationRule(ctx, store.CreateAutomationRuleParams{
		ProfileID:      profileID,
		Name:           req.Name,
		TriggerType:    req.TriggerType,
		DelayHours:     req.DelayHours,
		MessageSubject: req.MessageSubject,
		MessageBody:    req.MessageBody,
		IsActive:       true,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create automation rule", err)
		return store.AutomationRule{}, err
	}

	p.logger.Info(ctx, "automation rule created successfully")
	return rule, nil
}

// ListRules retrieves all automation rules for a profile
func (p *AutomationProcessor) ListRules(ctx context.Context, profileID uuid.UUID) ([]store.AutomationRule, error) {
	rules, err := p.store.GetAutomationRulesByProfile(ctx, profileID)
	if err != nil {
		p.logger.Error(ctx, "failed to list automation rules", err)
		return nil, err
	}
	if rules == nil {
		rules = []store.AutomationRule{}
	}
	return rules, nil
}

// UpdateRuleRequest represents a request to update an automation rule
type UpdateRuleRequest struct {
	Name           *string
	DelayHours     *int
	MessageSubject *string
	MessageBody    *string
	IsActive       *bool
}

// UpdateRule updates an automation rule owned by the profile
func (p *AutomationProcessor) UpdateRule(ctx context.Context, profileID, ruleID uuid.UUID, req UpdateRuleRequest) (store.AutomationRule, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
		observability.Field{Key: "rule_id", Value: ruleID.String()},
	)

	if _, err := p.ownedRule(ctx, profileID, ruleID); err != nil {
		return store.AutomationRule{}, err
	}

	rule, err := p.store.UpdateAutomationRule(ctx, ruleID, store.UpdateAutomationRuleParams{
		Name:           req.Name,
		DelayHours:     req.DelayHours,
		MessageSubject: req.MessageSubject,
		MessageBody:    req.MessageBody,
		IsActive:       req.IsActive,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AutomationRule{}, ErrRuleNotFound
		}
		p.logger.Error(ctx, "failed to update automation rule", err)
		return store.AutomationRule{}, err
	}

	p.logger.Info(ctx, "automation rule updated successfully")
	return rule, nil
}

// DeleteRule deletes an automation rule owned by the profile
func (p *AutomationProcessor) DeleteRule(ctx context.Context, profileID, ruleID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
		observability.Field{Key: "rule_id", Value: ruleID.String()},
	)

	if _, err := p.ownedRule(ctx, profileID, ruleID); err != nil {
		return err
	}

	if err := p.store.DeleteAutomationRule(ctx, ruleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRuleNotFound
		}
		p.logger.Error(ctx, "failed to delete automation rule", err)
		return err
	}

	p.logger.Info(ctx, "automation rule deleted successfully")
	return nil
}

func (p *AutomationProcessor) ownedRule(ctx context.Context, profileID, ruleID uuid.UUID) (store.AutomationRule, error) {
	rule, err := p.store.GetAutomationRuleByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AutomationRule{}, ErrRuleNotFound
		}
		p.logger.Error(ctx, "failed to get automation rule", err)
		return store.AutomationRule{}, err
	}
	if rule.ProfileID != profileID {
		return store.AutomationRule{}, ErrUnauthorized
	}
	return rule, nil
}
