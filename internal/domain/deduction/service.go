package deduction

import "context"

// RuleService defines business logic for deduction rule configuration
type RuleService interface {
	Create(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)
	Update(ctx context.Context, req UpdateRuleRequest) (RuleResponse, error)
	List(ctx context.Context, activeOnly bool) ([]RuleResponse, error)
}
